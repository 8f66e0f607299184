package server

import (
	"encoding/json"
	"errors"

	"contagion/internal/engine"
	"contagion/internal/engine/actions"
	"contagion/internal/engine/events"
	"contagion/internal/lobby"
	"contagion/internal/protocol"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub owns one game: a single goroutine drains the register, unregister and
// incoming channels, so every mutation of the engine passes through one
// writer. That loop is the serialization boundary the engine relies on.
type Hub struct {
	logger     *zap.Logger
	gameID     string
	lobby      *lobby.Lobby
	game       *engine.Game
	difficulty int
	clients    map[*Client]bool

	// last trigger prompt sent to a human holder, so repeated pump passes
	// do not spam the same offer
	prompted    engine.TriggerOffer
	hasPrompted bool

	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(gameID string, lob *lobby.Lobby, difficulty int, logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger.With(zap.String("game_id", gameID)),
		gameID:     gameID,
		lobby:      lob,
		difficulty: difficulty,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.sendLobbyUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	default:
		h.handleGameCommand(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	var start protocol.StartGameMsg
	if len(msg.Envelope.Payload) > 0 {
		if err := json.Unmarshal(msg.Envelope.Payload, &start); err != nil {
			h.sendError(msg.Client, "invalid start message")
			return
		}
	}
	if !h.lobby.CanStart() {
		h.sendError(msg.Client, "not all players ready")
		return
	}
	if err := h.lobby.Start(); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	lobbyPlayers := h.lobby.GetPlayers()
	var players []*engine.Player
	for _, lp := range lobbyPlayers {
		players = append(players, engine.NewPlayer(lp.ID, lp.Name, engine.RoleGeneralist, false))
	}
	for i := 0; i < start.Automated && len(players) < 4; i++ {
		id := uuid.NewString()
		players = append(players, engine.NewPlayer(id, "Auto-"+id[:4], engine.RoleGeneralist, true))
	}

	actionReg := engine.NewActionRegistry()
	actions.Register(actionReg)
	eventReg := engine.NewEventRegistry()
	events.Register(eventReg)

	cfg := engine.DefaultConfig()
	if h.difficulty > 0 {
		cfg.Difficulty = h.difficulty
	}
	if start.Difficulty > 0 {
		cfg.Difficulty = start.Difficulty
	}

	h.game = engine.NewGame(h.gameID, players, cfg, actionReg, eventReg)
	h.logger.Info("game started",
		zap.Int("players", len(players)),
		zap.Int("difficulty", cfg.Difficulty))

	evs := h.game.Start()
	h.dispatchEvents(evs)
	h.broadcastState()
	h.pump()
}

func (h *Hub) handleGameCommand(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "game not started")
		return
	}

	cmd, err := parseCommand(msg.Envelope)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	evs, err := h.game.Apply(msg.Client.PlayerID, cmd)
	if err != nil {
		if errors.Is(err, engine.ErrContract) {
			// A contract violation means a stale or buggy client, not a
			// game-rule outcome.
			h.logger.Error("contract violation",
				zap.String("player", msg.Client.PlayerID),
				zap.String("command", string(cmd.Type)),
				zap.Error(err))
		} else {
			h.logger.Debug("command rejected",
				zap.String("player", msg.Client.PlayerID),
				zap.String("command", string(cmd.Type)),
				zap.Error(err))
		}
		h.sendError(msg.Client, err.Error())
		return
	}

	h.dispatchEvents(evs)
	h.broadcastState()
	h.pump()
}

// parseCommand maps an envelope onto an engine command.
func parseCommand(env protocol.Envelope) (engine.Command, error) {
	var payload protocol.CommandMsg
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return engine.Command{}, errors.New("invalid payload")
		}
	}
	return engine.Command{
		Type:       engine.CommandType(env.Type),
		Action:     payload.Action,
		Params:     payload.Params,
		ApprovalID: payload.ApprovalID,
		Approve:    payload.Approve,
		Accept:     payload.Accept,
		Trigger:    payload.Trigger,
	}, nil
}

// pump resolves everything that needs no human input: pending auto
// triggerables, approvals awaited from automated players, and manual
// trigger offers held by automated players (declined by policy). Humans
// get directed prompts instead.
func (h *Hub) pump() {
	if h.game == nil {
		return
	}
	for i := 0; i < 64; i++ { // hard cap against pathological loops
		progressed := false

		if h.game.Turn != nil && h.game.Turn.HasNextAutoTriggerable() {
			evs, err := h.game.ResolveNextAutoTriggerable()
			if err != nil {
				h.logger.Error("auto trigger failed", zap.Error(err))
			}
			h.dispatchEvents(evs)
			progressed = true
		}

		if offer, ok := h.pendingManualOffer(); ok {
			holder := h.game.GetPlayer(offer.HolderID)
			if holder != nil && holder.Automated {
				// Policy: automated players never fire event cards.
				evs, err := h.game.Apply(holder.ID, engine.Command{Type: engine.CmdTrigger, Accept: false})
				if err == nil {
					h.dispatchEvents(evs)
					progressed = true
				}
			} else if holder != nil && (!h.hasPrompted || h.prompted != offer) {
				h.sendToPlayer(holder.ID, protocol.MustEnvelope(protocol.MsgTriggerPrompt, protocol.TriggerPrompt{
					Event: offer.Card.Event,
				}))
				h.prompted = offer
				h.hasPrompted = true
			}
		} else {
			h.hasPrompted = false
		}

		if !progressed {
			break
		}
	}
	h.broadcastState()
}

func (h *Hub) pendingManualOffer() (engine.TriggerOffer, bool) {
	if h.game.Turn == nil || h.game.Turn.HasNextAutoTriggerable() {
		return engine.TriggerOffer{}, false
	}
	return h.game.Turn.PeekNextManualOffer()
}

// dispatchEvents routes directed notifications and broadcasts the rest.
// Approval requests aimed at automated players are granted immediately;
// the policy lives here so the action contract stays symmetric.
func (h *Hub) dispatchEvents(evs []engine.Event) {
	for _, ev := range evs {
		if ev.Type == engine.EventApprovalRequested {
			h.handleApprovalRequested(ev)
			continue
		}
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, ev))
	}
}

func (h *Hub) handleApprovalRequested(ev engine.Event) {
	data, _ := ev.Data.(map[string]interface{})
	approvalID, _ := data["approval_id"].(string)
	approver := h.game.GetPlayer(ev.Player)
	if approver == nil {
		return
	}

	if approver.Automated {
		evs, err := h.game.Apply(approver.ID, engine.Command{
			Type:       engine.CmdApproval,
			ApprovalID: approvalID,
			Approve:    true,
		})
		if err != nil {
			h.logger.Debug("auto approval failed", zap.Error(err))
			return
		}
		h.dispatchEvents(evs)
		return
	}

	initiator, _ := data["initiator"].(string)
	action, _ := data["action"].(string)
	text, _ := data["text"].(string)
	h.sendToPlayer(approver.ID, protocol.MustEnvelope(protocol.MsgApprovalRequest, protocol.ApprovalRequest{
		ApprovalID: approvalID,
		Initiator:  initiator,
		Action:     action,
		Text:       text,
	}))
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	if client.Type == ClientObserver {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.PublicView()))
	} else {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, h.game.ViewFor(client.PlayerID)))
	}
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready}
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:  h.gameID,
		Players: lps,
		Started: h.lobby.Started,
	}))
}

func (h *Hub) sendToPlayer(playerID string, env protocol.Envelope) {
	for client := range h.clients {
		if client.PlayerID == playerID {
			client.SendEnvelope(env)
		}
	}
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("broadcast marshal failed", zap.Error(err))
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("client buffer full", zap.String("player", client.PlayerID))
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}

// IncomingMessage pairs a message with its source client.
type IncomingMessage struct {
	Client   *Client
	Envelope protocol.Envelope
}

// Stop shuts the hub's run loop down.
func (h *Hub) Stop() {
	close(h.quit)
}
