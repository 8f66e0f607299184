package engine

import "fmt"

// Triggerable is a deferred side effect. Auto triggerables are queued by the
// engine and drained without player input; manual triggerables are event
// cards fired at their holder's discretion. Summary is the human-readable
// effect description used by the notification layer.
type Triggerable interface {
	Trigger(g *Game) ([]Event, error)
	Summary() string
}

// TriggerParams carries the player-chosen parameters of a manual trigger.
type TriggerParams struct {
	TargetPlayer string        `json:"target_player,omitempty"`
	TargetField  string        `json:"target_field,omitempty"`
	Card         InfectionCard `json:"card,omitempty"`
	Order        []int         `json:"order,omitempty"`
}

// TriggerCtor builds a concrete triggerable for an event card once its
// holder has chosen parameters.
type TriggerCtor func(holderID string, card PlayerCard, params TriggerParams) Triggerable

// EventRegistry maps event kinds to their triggerable constructors. It is
// the static counterpart of the engine's action registry: the full set of
// event cards is enumerated at wiring time.
type EventRegistry struct {
	ctors map[EventKind]TriggerCtor
}

func NewEventRegistry() *EventRegistry {
	return &EventRegistry{ctors: make(map[EventKind]TriggerCtor)}
}

func (r *EventRegistry) Register(k EventKind, ctor TriggerCtor) {
	r.ctors[k] = ctor
}

// New constructs the triggerable for an event card.
func (r *EventRegistry) New(holderID string, card PlayerCard, params TriggerParams) (Triggerable, error) {
	ctor, ok := r.ctors[card.Event]
	if !ok {
		return nil, fmt.Errorf("no trigger registered for event %q", card.Event)
	}
	return ctor(holderID, card, params), nil
}

// ConsentingTrigger is a triggerable whose effect lands on a player other
// than the card's holder; that player must approve before it fires.
// ApprovingPlayer returns the player owed the request, or empty when the
// chosen parameters need no consent.
type ConsentingTrigger interface {
	Triggerable
	ApprovingPlayer(g *Game) string
	RequestText(g *Game) string
}

// TriggerOffer marks a manual triggerable pending inside a turn: an event
// card whose holder has not yet decided whether to fire it. Consuming the
// offer, by firing or declining, is final for the turn.
type TriggerOffer struct {
	HolderID string     `json:"holder_id"`
	Card     PlayerCard `json:"card"`
}

// PendingTrigger is a fired triggerable suspended on another player's
// consent: the holder accepted the offer, the affected player has not
// answered yet. The manual offer stays unconsumed until the answer lands,
// so the turn cannot end around it.
type PendingTrigger struct {
	ID       string
	HolderID string
	Approver string
	Card     PlayerCard
	Trigger  Triggerable
}

// epidemicTrigger is the auto triggerable queued when an epidemic card is
// drawn: infection rate up, bottom infection card resolved at full strength,
// infection discard reshuffled onto the draw stack.
type epidemicTrigger struct{}

func (epidemicTrigger) Summary() string {
	return "Epidemic: infection rate rises, a new city is struck, and the infection discard returns to the deck"
}

func (epidemicTrigger) Trigger(g *Game) ([]Event, error) {
	if g.InfectionLevel < len(g.Config.InfectionRates)-1 {
		g.InfectionLevel++
	}

	events := []Event{{Type: EventEpidemic, Data: map[string]interface{}{
		"infection_rate": g.InfectionRate(),
	}}}

	card, err := g.InfectionDraw.RemoveFirst()
	if err == nil {
		infectEvents, infectErr := g.resolveInfection(card, MaxTokensPerField)
		events = append(events, infectEvents...)
		g.InfectionDiscard.Push(card)
		if infectErr != nil {
			return events, infectErr
		}
	}

	// The discard, struck city included, goes back on top of the draw stack.
	discard := NewStack(g.InfectionDiscard.Drain())
	discard.Shuffle()
	for discard.Len() > 0 {
		c, _ := discard.RemoveFirst()
		g.InfectionDraw.Push(c)
	}

	return events, nil
}
