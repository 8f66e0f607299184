package engine

// FieldView is one field in a snapshot.
type FieldView struct {
	City   string         `json:"city"`
	Tokens map[Plague]int `json:"tokens"`
	HasLab bool           `json:"has_lab"`
}

// PlayerSummary is the publicly visible state of a player.
type PlayerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	City      string `json:"city"`
	HandSize  int    `json:"hand_size"`
	Automated bool   `json:"automated"`
}

// Snapshot is the full-state view pushed after every mutating command.
// External collaborators treat it as the sole source of truth for what is
// legal now.
type Snapshot struct {
	GameID         string          `json:"game_id"`
	Phase          string          `json:"phase"`
	Fields         []FieldView     `json:"fields"`
	Players        []PlayerSummary `json:"players"`
	InfectionRate  int             `json:"infection_rate"`
	InfectionLevel int             `json:"infection_level"`
	OutbreakLevel  int             `json:"outbreak_level"`
	MaxOutbreaks   int             `json:"max_outbreaks"`
	Antidotes      map[Plague]bool `json:"antidotes"`
	PlayerDraw     int             `json:"player_draw"`
	PlayerDiscard  int             `json:"player_discard"`
	InfectionDraw  int             `json:"infection_draw"`
	InfectionDisc  int             `json:"infection_discard"`
	Turn           *Turn           `json:"turn,omitempty"`
	Won            bool            `json:"won"`
	Lost           bool            `json:"lost"`
	LostReason     string          `json:"lost_reason,omitempty"`
}

// ApprovalView is a pending approval directed at the viewing player.
type ApprovalView struct {
	ID        string `json:"id"`
	Initiator string `json:"initiator"`
	Action    string `json:"action"`
	Text      string `json:"text"`
}

// PlayerView extends the snapshot with the viewing player's private state.
type PlayerView struct {
	Snapshot
	Hand             []PlayerCard   `json:"hand"`
	PendingApprovals []ApprovalView `json:"pending_approvals,omitempty"`
	PendingTrigger   *TriggerOffer  `json:"pending_trigger,omitempty"`
	IsMyTurn         bool           `json:"is_my_turn"`
}

// PublicView builds the shared snapshot.
func (g *Game) PublicView() Snapshot {
	snap := Snapshot{
		GameID:         g.ID,
		Phase:          g.Phase.String(),
		InfectionRate:  g.InfectionRate(),
		InfectionLevel: g.InfectionLevel,
		OutbreakLevel:  g.OutbreakLevel,
		MaxOutbreaks:   g.Config.MaxOutbreaks,
		Antidotes:      g.Antidotes,
		Turn:           g.Turn,
		Won:            g.Won,
		Lost:           g.Lost,
		LostReason:     g.LostReason,
	}
	if g.PlayerDraw != nil {
		snap.PlayerDraw = g.PlayerDraw.Len()
	}
	if g.PlayerDiscard != nil {
		snap.PlayerDiscard = g.PlayerDiscard.Len()
	}
	if g.InfectionDraw != nil {
		snap.InfectionDraw = g.InfectionDraw.Len()
	}
	if g.InfectionDiscard != nil {
		snap.InfectionDisc = g.InfectionDiscard.Len()
	}

	for i := 0; i < g.Board.Size(); i++ {
		f := g.Board.Field(i)
		snap.Fields = append(snap.Fields, FieldView{
			City:   g.Board.CityName(i),
			Tokens: f.Tokens,
			HasLab: f.HasLab,
		})
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerSummary{
			ID:        p.ID,
			Name:      p.Name,
			Role:      p.Role.String(),
			City:      g.Board.CityName(p.Field),
			HandSize:  len(p.Hand),
			Automated: p.Automated,
		})
	}
	return snap
}

// ViewFor builds the snapshot as seen by one player.
func (g *Game) ViewFor(playerID string) PlayerView {
	view := PlayerView{Snapshot: g.PublicView()}

	p := g.GetPlayer(playerID)
	if p == nil {
		return view
	}
	view.Hand = p.Hand
	view.IsMyTurn = g.Turn != nil && g.Turn.PlayerID == playerID

	for _, pending := range g.PendingApprovalsFor(playerID) {
		ap := pending.Action.(Approvable)
		view.PendingApprovals = append(view.PendingApprovals, ApprovalView{
			ID:        pending.ID,
			Initiator: pending.Action.PlayerID(),
			Action:    string(pending.Action.Kind()),
			Text:      ap.RequestText(g),
		})
	}
	for _, pt := range g.pendingTriggers {
		if pt.Approver != playerID {
			continue
		}
		text := ""
		if ct, ok := pt.Trigger.(ConsentingTrigger); ok {
			text = ct.RequestText(g)
		}
		view.PendingApprovals = append(view.PendingApprovals, ApprovalView{
			ID:        pt.ID,
			Initiator: pt.HolderID,
			Action:    string(pt.Card.Event),
			Text:      text,
		})
	}

	if g.Turn != nil {
		if offer, ok := g.Turn.PeekNextManualOffer(); ok && offer.HolderID == playerID {
			view.PendingTrigger = &offer
		}
	}
	return view
}
