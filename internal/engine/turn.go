package engine

import "fmt"

// Turn tracks one player's turn: the action budget, the card draws still
// owed, and the pending triggerables. A turn is over once the budget is
// spent and every triggerable has been consumed; card draws gate the end of
// the turn separately.
type Turn struct {
	PlayerID             string       `json:"player_id"`
	ActionsLeft          int          `json:"actions_left"`
	PlayerCardsToDraw    int          `json:"player_cards_to_draw"`
	InfectionCardsToDraw int          `json:"infection_cards_to_draw"`
	Executed             []ActionKind `json:"executed"`

	autoTriggers  []Triggerable
	autoCursor    int
	manualOffers  []TriggerOffer
	manualCursor  int
	usedCarrier   bool
}

// NewTurn creates a turn with the given budgets.
func NewTurn(playerID string, budget, playerDraws, infectionDraws int) *Turn {
	return &Turn{
		PlayerID:             playerID,
		ActionsLeft:          budget,
		PlayerCardsToDraw:    playerDraws,
		InfectionCardsToDraw: infectionDraws,
	}
}

// HasActionsToDo reports whether budget remains.
func (t *Turn) HasActionsToDo() bool { return t.ActionsLeft > 0 }

// ExecuteCommand records an executed action and spends one budget point.
func (t *Turn) ExecuteCommand(kind ActionKind) {
	t.Executed = append(t.Executed, kind)
	if t.ActionsLeft > 0 {
		t.ActionsLeft--
	}
}

// WaiveActions records the waive and zeroes the remaining budget.
func (t *Turn) WaiveActions() {
	t.Executed = append(t.Executed, ActionWaive)
	t.ActionsLeft = 0
}

// QueueAutoTriggerable appends an engine-initiated triggerable.
func (t *Turn) QueueAutoTriggerable(tr Triggerable) {
	t.autoTriggers = append(t.autoTriggers, tr)
}

// HasNextAutoTriggerable reports whether an auto triggerable is pending.
func (t *Turn) HasNextAutoTriggerable() bool {
	return t.autoCursor < len(t.autoTriggers)
}

// NextAutoTriggerable consumes and returns the next auto triggerable. The
// cursor is monotonic: a consumed triggerable is never revisited.
func (t *Turn) NextAutoTriggerable() Triggerable {
	if !t.HasNextAutoTriggerable() {
		return nil
	}
	tr := t.autoTriggers[t.autoCursor]
	t.autoCursor++
	return tr
}

// QueueManualOffer appends a manual triggerable offer for an event card.
func (t *Turn) QueueManualOffer(o TriggerOffer) {
	t.manualOffers = append(t.manualOffers, o)
}

// HasNextManualOffer reports whether a manual offer is pending.
func (t *Turn) HasNextManualOffer() bool {
	return t.manualCursor < len(t.manualOffers)
}

// PeekNextManualOffer returns the pending offer without consuming it; the
// holder still has to accept or decline.
func (t *Turn) PeekNextManualOffer() (TriggerOffer, bool) {
	if !t.HasNextManualOffer() {
		return TriggerOffer{}, false
	}
	return t.manualOffers[t.manualCursor], true
}

// ConsumeManualOffer advances past the pending offer.
func (t *Turn) ConsumeManualOffer() {
	if t.HasNextManualOffer() {
		t.manualCursor++
	}
}

// UseCarrierAbility marks the single-use carrier flight as spent. Using it
// twice in one turn is a caller bug, not a game condition.
func (t *Turn) UseCarrierAbility() error {
	if t.usedCarrier {
		return fmt.Errorf("carrier ability already used this turn: %w", ErrContract)
	}
	t.usedCarrier = true
	return nil
}

// CarrierAbilityUsed reports whether the carrier flight was taken this turn.
func (t *Turn) CarrierAbilityUsed() bool { return t.usedCarrier }

// DrawsDone reports whether both draw phases are satisfied.
func (t *Turn) DrawsDone() bool {
	return t.PlayerCardsToDraw == 0 && t.InfectionCardsToDraw == 0
}

// IsOver reports whether the turn is finished: no budget left and no
// triggerable of either kind still pending.
func (t *Turn) IsOver() bool {
	return t.ActionsLeft == 0 &&
		!t.HasNextAutoTriggerable() &&
		!t.HasNextManualOffer()
}
