package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// Recoverable rule violations: the caller chose bad parameters.
	ErrNotYourTurn       = errors.New("not your turn")
	ErrWrongPhase        = errors.New("wrong phase for this command")
	ErrInvalidAction     = errors.New("invalid action")
	ErrActionUnavailable = errors.New("action not available")
	ErrInvalidParams     = errors.New("action parameters not valid")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrFieldNotFound     = errors.New("field not found")
	ErrNoTokens          = errors.New("no tokens to cure on this field")
	ErrLabExists         = errors.New("field already has a laboratory")
	ErrEmptyStack        = errors.New("stack is empty")
	ErrCardNotFound      = errors.New("card not in stack")
	ErrApprovalNotFound  = errors.New("no pending approval with that id")
	ErrNoPendingTrigger  = errors.New("no pending triggerable")
	ErrTurnNotOver       = errors.New("turn is not over yet")

	// ErrPoolExhausted surfaces from infection when the token supply runs
	// dry. The game translates it into a loss, not a rejection.
	ErrPoolExhausted = errors.New("token pool exhausted")

	// ErrContract marks a programming-contract violation: an incorrectly
	// constructed request, not a game-rule outcome.
	ErrContract = errors.New("contract violation")
)

// GameConfig holds the knobs a game is created with. Difficulty is the
// number of epidemic cards mixed into the player deck.
type GameConfig struct {
	MapType            MapType
	Plagues            []Plague
	Difficulty         int
	StartCity          string
	TokensPerPlague    int
	ActionBudget       int
	PlayerCardsPerTurn int
	MaxOutbreaks       int
	InfectionRates     []int
}

func DefaultConfig() GameConfig {
	return GameConfig{
		MapType:            ClassicMap(),
		Plagues:            DefaultPlagues(),
		Difficulty:         4,
		StartCity:          "London",
		TokensPerPlague:    24,
		ActionBudget:       4,
		PlayerCardsPerTurn: 2,
		MaxOutbreaks:       8,
		InfectionRates:     []int{2, 2, 2, 3, 3, 4, 4},
	}
}

// Game is the aggregate owning the board, the token pool, the players, the
// four card stacks, the markers, and the current turn. All mutation goes
// through Apply; the surrounding service serializes commands per game.
type Game struct {
	ID      string
	Players []*Player
	Board   *Board
	Pool    *TokenPool
	Config  GameConfig
	Actions *ActionRegistry
	Events  *EventRegistry

	PlayerDraw       *Stack[PlayerCard]
	PlayerDiscard    *Stack[PlayerCard]
	InfectionDraw    *Stack[InfectionCard]
	InfectionDiscard *Stack[InfectionCard]

	Phase          GamePhase
	InfectionLevel int
	OutbreakLevel  int
	Antidotes      map[Plague]bool

	TurnIndex int
	Turn      *Turn

	Won        bool
	Lost       bool
	LostReason string

	pending           map[string]*PendingApproval
	pendingTriggers   map[string]*PendingTrigger
	skipNextInfection bool
}

// NewGame creates a game in the lobby phase. Start deals and begins play.
func NewGame(id string, players []*Player, config GameConfig, actions *ActionRegistry, events *EventRegistry) *Game {
	g := &Game{
		ID:               id,
		Players:          players,
		Board:            NewBoard(config.MapType),
		Pool:             NewTokenPool(config.Plagues, config.TokensPerPlague),
		Config:           config,
		Actions:          actions,
		Events:           events,
		PlayerDiscard:    NewStack[PlayerCard](nil),
		InfectionDiscard: NewStack[InfectionCard](nil),
		Phase:            PhaseLobby,
		Antidotes:        make(map[Plague]bool, len(config.Plagues)),
		pending:          make(map[string]*PendingApproval),
		pendingTriggers:  make(map[string]*PendingTrigger),
	}
	for _, p := range config.Plagues {
		g.Antidotes[p] = false
	}
	return g
}

// Start sets the board up: roles and starting positions, hands, epidemic
// distribution, the initial infection, and the first turn.
func (g *Game) Start() []Event {
	start, err := g.Board.FieldIndex(g.Config.StartCity)
	if err != nil {
		start = 0
	}
	_ = g.Board.BuildLab(start)

	roles := AllRoles()
	for i, p := range g.Players {
		p.Role = roles[i%len(roles)]
		p.Field = start
	}

	// Deal hands from the shuffled deck, then thread the epidemics through
	// what remains.
	deck := NewStack(NewPlayerDeck(g.Config.MapType))
	deck.Shuffle()
	perPlayer := 6 - len(g.Players)
	if perPlayer < 2 {
		perPlayer = 2
	}
	if perPlayer > 4 {
		perPlayer = 4
	}
	for _, p := range g.Players {
		for k := 0; k < perPlayer; k++ {
			if c, err := deck.Pop(); err == nil {
				p.Hand = append(p.Hand, c)
			}
		}
	}
	g.PlayerDraw = NewStack(InsertEpidemics(deck.Drain(), g.Config.Difficulty))

	g.InfectionDraw = NewStack(NewInfectionDeck(g.Config.MapType))
	g.InfectionDraw.Shuffle()

	events := []Event{{Type: EventGameStarted, Data: map[string]interface{}{
		"game_id":    g.ID,
		"map":        g.Config.MapType.Name,
		"difficulty": g.Config.Difficulty,
	}}}

	// Initial infection: three cities at three tokens, three at two, three
	// at one.
	for _, strength := range []int{3, 3, 3, 2, 2, 2, 1, 1, 1} {
		card, err := g.InfectionDraw.Pop()
		if err != nil {
			break
		}
		infectEvents, _ := g.resolveInfection(card, strength)
		events = append(events, infectEvents...)
		g.InfectionDiscard.Push(card)
	}

	events = append(events, g.startTurn(0)...)
	return events
}

func (g *Game) startTurn(idx int) []Event {
	g.TurnIndex = idx
	p := g.Players[idx]

	infectionDraws := g.InfectionRate()
	if g.skipNextInfection {
		infectionDraws = 0
		g.skipNextInfection = false
	}
	g.Turn = NewTurn(p.ID, g.Config.ActionBudget, g.Config.PlayerCardsPerTurn, infectionDraws)

	// Every event card in any hand is offered once this turn; its holder
	// decides whether to fire it.
	for _, pl := range g.Players {
		for _, c := range pl.EventCards() {
			g.Turn.QueueManualOffer(TriggerOffer{HolderID: pl.ID, Card: c})
		}
	}

	g.Phase = PhaseActions
	return []Event{
		{Type: EventTurnStarted, Player: p.ID, Data: map[string]interface{}{
			"actions":         g.Turn.ActionsLeft,
			"player_cards":    g.Turn.PlayerCardsToDraw,
			"infection_cards": g.Turn.InfectionCardsToDraw,
		}},
		{Type: EventPhaseChange, Data: map[string]interface{}{"phase": PhaseActions.String()}},
	}
}

// CommandType identifies the external commands driving the engine.
type CommandType string

const (
	CmdAction        CommandType = "action"
	CmdApproval      CommandType = "approval"
	CmdTrigger       CommandType = "trigger"
	CmdDrawPlayer    CommandType = "draw_player_card"
	CmdDrawInfection CommandType = "draw_infection_card"
	CmdEndTurn       CommandType = "end_turn"
)

// Command is a player's command input.
type Command struct {
	Type       CommandType   `json:"type"`
	Action     ActionKind    `json:"action,omitempty"`
	Params     ActionParams  `json:"params,omitempty"`
	ApprovalID string        `json:"approval_id,omitempty"`
	Approve    bool          `json:"approve,omitempty"`
	Accept     bool          `json:"accept,omitempty"`
	Trigger    TriggerParams `json:"trigger,omitempty"`
}

// Apply is the single entry point for player commands. A finished game
// answers every command with a game-finished notification and no error.
func (g *Game) Apply(playerID string, cmd Command) ([]Event, error) {
	if g.Phase == PhaseGameOver {
		return []Event{{Type: EventGameFinished, Player: playerID}}, nil
	}
	switch cmd.Type {
	case CmdAction:
		return g.applyAction(playerID, cmd.Action, cmd.Params)
	case CmdApproval:
		return g.applyApproval(playerID, cmd.ApprovalID, cmd.Approve)
	case CmdTrigger:
		return g.applyTrigger(playerID, cmd.Accept, cmd.Trigger)
	case CmdDrawPlayer:
		return g.applyDrawPlayerCard(playerID)
	case CmdDrawInfection:
		return g.applyDrawInfectionCard(playerID)
	case CmdEndTurn:
		return g.applyEndTurn(playerID)
	default:
		return nil, ErrInvalidAction
	}
}

func (g *Game) applyAction(playerID string, kind ActionKind, params ActionParams) ([]Event, error) {
	if g.Turn == nil || g.Turn.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.Phase != PhaseActions {
		return nil, ErrWrongPhase
	}
	p := g.GetPlayer(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	params.Player = playerID
	action, err := g.Actions.New(kind, p.Role, params)
	if err != nil {
		return nil, ErrInvalidAction
	}
	if !g.Turn.HasActionsToDo() {
		return nil, ErrWrongPhase
	}
	if !action.IsAvailable(g) {
		return nil, ErrActionUnavailable
	}

	if ap, ok := action.(Approvable); ok && !ap.Approved() {
		if g.GetPlayer(ap.ApprovingPlayer()) == nil {
			return nil, ErrPlayerNotFound
		}
		pending := &PendingApproval{ID: uuid.NewString(), Action: action}
		g.pending[pending.ID] = pending
		return []Event{{
			Type:   EventApprovalRequested,
			Player: ap.ApprovingPlayer(),
			Data: map[string]interface{}{
				"approval_id": pending.ID,
				"initiator":   playerID,
				"action":      string(action.Kind()),
				"text":        ap.RequestText(g),
			},
		}}, nil
	}

	if !action.IsExecutable(g) {
		return nil, ErrInvalidParams
	}
	return g.execute(action)
}

// execute runs an executable action, spends the budget, and runs the
// win/loss and phase checks.
func (g *Game) execute(action Action) ([]Event, error) {
	events, err := action.Execute(g)
	if err != nil {
		return nil, err
	}

	zeroCost := false
	if zc, ok := action.(ZeroCost); ok && zc.IsZeroCost() {
		zeroCost = true
	}
	if g.Turn != nil && g.Turn.PlayerID == action.PlayerID() && !zeroCost {
		g.Turn.ExecuteCommand(action.Kind())
		events = append(events, Event{Type: EventActionExecuted, Player: action.PlayerID(), Data: map[string]interface{}{
			"action":       string(action.Kind()),
			"actions_left": g.Turn.ActionsLeft,
		}})
	}

	events = append(events, g.checkWin()...)
	if g.Phase == PhaseActions && g.Turn != nil && !g.Turn.HasActionsToDo() {
		g.Phase = PhaseDrawPlayerCard
		events = append(events, Event{Type: EventPhaseChange, Data: map[string]interface{}{
			"phase": PhaseDrawPlayerCard.String(),
		}})
	}
	return events, nil
}

func (g *Game) applyApproval(playerID, approvalID string, approve bool) ([]Event, error) {
	if pt, ok := g.pendingTriggers[approvalID]; ok {
		return g.applyTriggerApproval(playerID, pt, approve)
	}
	pending, ok := g.pending[approvalID]
	if !ok {
		return nil, ErrApprovalNotFound
	}
	ap := pending.Action.(Approvable)
	if ap.ApprovingPlayer() != playerID {
		return nil, fmt.Errorf("approval %s is not directed at %s: %w", approvalID, playerID, ErrInvalidAction)
	}

	// Rejection is terminal for the pending action.
	if !approve {
		delete(g.pending, approvalID)
		return []Event{{Type: EventApprovalRejected, Player: playerID, Data: map[string]interface{}{
			"approval_id": approvalID,
			"initiator":   pending.Action.PlayerID(),
		}}}, nil
	}

	ap.Approve()
	delete(g.pending, approvalID)
	events := []Event{{Type: EventApprovalGranted, Player: playerID, Data: map[string]interface{}{
		"approval_id": approvalID,
		"initiator":   pending.Action.PlayerID(),
	}}}

	if !pending.Action.IsExecutable(g) {
		// The game moved on while approval was pending; the initiator must
		// start over.
		return events, ErrInvalidParams
	}
	execEvents, err := g.execute(pending.Action)
	if err != nil {
		return events, err
	}
	return append(events, execEvents...), nil
}

func (g *Game) applyTrigger(playerID string, accept bool, params TriggerParams) ([]Event, error) {
	if g.Turn == nil {
		return nil, ErrNoPendingTrigger
	}
	offer, ok := g.Turn.PeekNextManualOffer()
	if !ok {
		return nil, ErrNoPendingTrigger
	}
	if offer.HolderID != playerID {
		return nil, fmt.Errorf("pending trigger belongs to %s: %w", offer.HolderID, ErrInvalidAction)
	}

	holder := g.GetPlayer(playerID)
	if !accept || holder == nil || !holder.HasCard(offer.Card) {
		g.Turn.ConsumeManualOffer()
		return []Event{{Type: EventTriggerDeclined, Player: playerID, Data: map[string]interface{}{
			"event": string(offer.Card.Event),
		}}}, nil
	}

	trigger, err := g.Events.New(playerID, offer.Card, params)
	if err != nil {
		return nil, ErrInvalidAction
	}

	// Effects landing on another player wait for that player's consent; the
	// offer stays pending until the answer arrives.
	if ct, ok := trigger.(ConsentingTrigger); ok {
		if approver := ct.ApprovingPlayer(g); approver != "" {
			if g.GetPlayer(approver) == nil {
				return nil, ErrPlayerNotFound
			}
			for _, pt := range g.pendingTriggers {
				if pt.HolderID == playerID && pt.Card == offer.Card {
					return nil, fmt.Errorf("trigger already awaiting approval: %w", ErrInvalidParams)
				}
			}
			pending := &PendingTrigger{
				ID:       uuid.NewString(),
				HolderID: playerID,
				Approver: approver,
				Card:     offer.Card,
				Trigger:  trigger,
			}
			g.pendingTriggers[pending.ID] = pending
			return []Event{{
				Type:   EventApprovalRequested,
				Player: approver,
				Data: map[string]interface{}{
					"approval_id": pending.ID,
					"initiator":   playerID,
					"action":      string(offer.Card.Event),
					"text":        ct.RequestText(g),
				},
			}}, nil
		}
	}

	events, err := trigger.Trigger(g)
	if err != nil {
		return nil, err
	}

	// Event cards self-discard after firing.
	holder.RemoveFromHand(offer.Card)
	g.PlayerDiscard.Push(offer.Card)
	g.Turn.ConsumeManualOffer()

	events = append(events, Event{Type: EventTriggerResolved, Player: playerID, Data: map[string]interface{}{
		"event":   string(offer.Card.Event),
		"summary": trigger.Summary(),
	}})
	events = append(events, g.checkLoss()...)
	return events, nil
}

// applyTriggerApproval resumes a fired triggerable suspended on another
// player's consent. Rejection declines the offer; approval runs the effect
// and discards the card, same as a direct accept would have.
func (g *Game) applyTriggerApproval(playerID string, pt *PendingTrigger, approve bool) ([]Event, error) {
	if pt.Approver != playerID {
		return nil, fmt.Errorf("approval %s is not directed at %s: %w", pt.ID, playerID, ErrInvalidAction)
	}
	delete(g.pendingTriggers, pt.ID)

	if !approve {
		if g.Turn != nil {
			g.Turn.ConsumeManualOffer()
		}
		return []Event{
			{Type: EventApprovalRejected, Player: playerID, Data: map[string]interface{}{
				"approval_id": pt.ID,
				"initiator":   pt.HolderID,
			}},
			{Type: EventTriggerDeclined, Player: pt.HolderID, Data: map[string]interface{}{
				"event": string(pt.Card.Event),
			}},
		}, nil
	}

	events := []Event{{Type: EventApprovalGranted, Player: playerID, Data: map[string]interface{}{
		"approval_id": pt.ID,
		"initiator":   pt.HolderID,
	}}}

	holder := g.GetPlayer(pt.HolderID)
	if holder == nil || !holder.HasCard(pt.Card) {
		if g.Turn != nil {
			g.Turn.ConsumeManualOffer()
		}
		return append(events, Event{Type: EventTriggerDeclined, Player: pt.HolderID, Data: map[string]interface{}{
			"event": string(pt.Card.Event),
		}}), nil
	}

	trigEvents, err := pt.Trigger.Trigger(g)
	if err != nil {
		return events, err
	}
	events = append(events, trigEvents...)

	holder.RemoveFromHand(pt.Card)
	g.PlayerDiscard.Push(pt.Card)
	if g.Turn != nil {
		g.Turn.ConsumeManualOffer()
	}

	events = append(events, Event{Type: EventTriggerResolved, Player: pt.HolderID, Data: map[string]interface{}{
		"event":   string(pt.Card.Event),
		"summary": pt.Trigger.Summary(),
	}})
	events = append(events, g.checkLoss()...)
	return events, nil
}

// ResolveNextAutoTriggerable drains one pending auto triggerable. The
// service calls this until none remain after each mutating command.
func (g *Game) ResolveNextAutoTriggerable() ([]Event, error) {
	if g.Turn == nil || !g.Turn.HasNextAutoTriggerable() {
		return nil, ErrNoPendingTrigger
	}
	trigger := g.Turn.NextAutoTriggerable()
	events, err := trigger.Trigger(g)
	if err != nil && !errors.Is(err, ErrPoolExhausted) {
		return events, err
	}
	if errors.Is(err, ErrPoolExhausted) {
		events = append(events, g.lose("the plague token supply is exhausted")...)
		return events, nil
	}
	events = append(events, Event{Type: EventTriggerResolved, Data: map[string]interface{}{
		"summary": trigger.Summary(),
	}})
	events = append(events, g.checkLoss()...)
	return events, nil
}

func (g *Game) applyDrawPlayerCard(playerID string) ([]Event, error) {
	if g.Turn == nil || g.Turn.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.Phase != PhaseDrawPlayerCard || g.Turn.PlayerCardsToDraw <= 0 {
		return nil, ErrWrongPhase
	}

	card, err := g.PlayerDraw.Pop()
	if err != nil {
		// Running out of player cards loses the game.
		return g.lose("the player deck is exhausted"), nil
	}
	g.Turn.PlayerCardsToDraw--

	p := g.GetPlayer(playerID)
	events := []Event{{Type: EventPlayerCardDrawn, Player: playerID, Data: map[string]interface{}{
		"kind":      card.Kind.String(),
		"remaining": g.Turn.PlayerCardsToDraw,
	}}}

	switch card.Kind {
	case EpidemicCard:
		g.PlayerDiscard.Push(card)
		g.Turn.QueueAutoTriggerable(epidemicTrigger{})
	case EventCard:
		p.Hand = append(p.Hand, card)
		g.Turn.QueueManualOffer(TriggerOffer{HolderID: p.ID, Card: card})
	default:
		p.Hand = append(p.Hand, card)
	}

	if g.Turn.PlayerCardsToDraw == 0 {
		g.Phase = PhaseDrawInfection
		events = append(events, Event{Type: EventPhaseChange, Data: map[string]interface{}{
			"phase": PhaseDrawInfection.String(),
		}})
	}
	return events, nil
}

func (g *Game) applyDrawInfectionCard(playerID string) ([]Event, error) {
	if g.Turn == nil || g.Turn.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.Phase != PhaseDrawInfection || g.Turn.InfectionCardsToDraw <= 0 {
		return nil, ErrWrongPhase
	}

	card, err := g.InfectionDraw.Pop()
	if err != nil {
		// An empty infection deck ends the phase early; tell the clients why.
		g.Turn.InfectionCardsToDraw = 0
		return []Event{{Type: EventInfectionDrawn, Player: playerID, Data: map[string]interface{}{
			"exhausted": true,
			"remaining": 0,
		}}}, nil
	}
	g.Turn.InfectionCardsToDraw--

	events := []Event{{Type: EventInfectionDrawn, Player: playerID, Data: map[string]interface{}{
		"city":      card.City,
		"plague":    string(card.Plague),
		"remaining": g.Turn.InfectionCardsToDraw,
	}}}

	infectEvents, infectErr := g.resolveInfection(card, 1)
	events = append(events, infectEvents...)
	g.InfectionDiscard.Push(card)

	if errors.Is(infectErr, ErrPoolExhausted) {
		events = append(events, g.lose("the plague token supply is exhausted")...)
		return events, nil
	}
	events = append(events, g.checkLoss()...)
	return events, nil
}

func (g *Game) applyEndTurn(playerID string) ([]Event, error) {
	if g.Turn == nil || g.Turn.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	if !g.Turn.IsOver() || !g.Turn.DrawsDone() {
		return nil, ErrTurnNotOver
	}

	events := []Event{{Type: EventTurnEnded, Player: playerID}}
	next := (g.TurnIndex + 1) % len(g.Players)
	events = append(events, g.startTurn(next)...)
	return events, nil
}

// resolveInfection applies n tokens of the card's plague to its city,
// cascading outbreaks as needed, and moves the outbreak marker. A plague
// whose antidote is discovered and which has no tokens left on the board is
// eradicated and no longer infects.
func (g *Game) resolveInfection(card InfectionCard, n int) ([]Event, error) {
	if g.Antidotes[card.Plague] && g.Board.TokensOnBoard(card.Plague) == 0 {
		return []Event{{Type: EventInfected, Data: map[string]interface{}{
			"city":       card.City,
			"plague":     string(card.Plague),
			"eradicated": true,
		}}}, nil
	}

	idx, err := g.Board.FieldIndex(card.City)
	if err != nil {
		return nil, err
	}

	outbreaks, infectErr := g.Board.InfectUpTo(idx, card.Plague, n, g.Pool)
	g.OutbreakLevel += outbreaks

	events := []Event{{Type: EventInfected, Data: map[string]interface{}{
		"city":   card.City,
		"plague": string(card.Plague),
		"tokens": g.Board.Field(idx).Tokens[card.Plague],
	}}}
	if outbreaks > 0 {
		events = append(events, Event{Type: EventOutbreak, Data: map[string]interface{}{
			"origin":         card.City,
			"plague":         string(card.Plague),
			"fields":         outbreaks,
			"outbreak_level": g.OutbreakLevel,
		}})
	}
	return events, infectErr
}

// SkipInfectionPhase zeroes the current turn's infection draws, or the next
// turn's if this one is already past them. Quiet Night uses this.
func (g *Game) SkipInfectionPhase() {
	if g.Turn != nil && g.Turn.InfectionCardsToDraw > 0 {
		g.Turn.InfectionCardsToDraw = 0
		return
	}
	g.skipNextInfection = true
}

// InfectionRate returns the infection cards drawn per turn at the current
// infection level.
func (g *Game) InfectionRate() int {
	rates := g.Config.InfectionRates
	if len(rates) == 0 {
		return 2
	}
	if g.InfectionLevel >= len(rates) {
		return rates[len(rates)-1]
	}
	return rates[g.InfectionLevel]
}

func (g *Game) checkWin() []Event {
	if g.Won || g.Lost {
		return nil
	}
	for _, found := range g.Antidotes {
		if !found {
			return nil
		}
	}
	g.Won = true
	g.Phase = PhaseGameOver
	return []Event{
		{Type: EventGameWon},
		{Type: EventPhaseChange, Data: map[string]interface{}{"phase": PhaseGameOver.String()}},
	}
}

func (g *Game) checkLoss() []Event {
	if g.Won || g.Lost {
		return nil
	}
	if g.OutbreakLevel >= g.Config.MaxOutbreaks {
		return g.lose("the outbreak marker reached its maximum")
	}
	return nil
}

func (g *Game) lose(reason string) []Event {
	if g.Lost || g.Won {
		return nil
	}
	g.Lost = true
	g.LostReason = reason
	g.Phase = PhaseGameOver
	return []Event{
		{Type: EventGameLost, Data: map[string]interface{}{"reason": reason}},
		{Type: EventPhaseChange, Data: map[string]interface{}{"phase": PhaseGameOver.String()}},
	}
}

// IsGameLost reports whether the game ended in defeat.
func (g *Game) IsGameLost() bool { return g.Lost }

// IsGameWon reports whether every antidote has been discovered.
func (g *Game) IsGameWon() bool { return g.Won }

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PendingApprovalsFor returns the pending approvals awaiting the given
// player's consent.
func (g *Game) PendingApprovalsFor(playerID string) []*PendingApproval {
	var out []*PendingApproval
	for _, p := range g.pending {
		if ap, ok := p.Action.(Approvable); ok && ap.ApprovingPlayer() == playerID {
			out = append(out, p)
		}
	}
	return out
}

// PendingApproval returns a pending approval by id.
func (g *Game) PendingApproval(id string) (*PendingApproval, bool) {
	p, ok := g.pending[id]
	return p, ok
}
