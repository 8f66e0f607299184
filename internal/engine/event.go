package engine

// EventType identifies notifications emitted by the engine.
type EventType string

const (
	EventGameStarted       EventType = "game_started"
	EventPhaseChange       EventType = "phase_change"
	EventTurnStarted       EventType = "turn_started"
	EventTurnEnded         EventType = "turn_ended"
	EventActionExecuted    EventType = "action_executed"
	EventActionsWaived     EventType = "actions_waived"
	EventApprovalRequested EventType = "approval_requested"
	EventApprovalGranted   EventType = "approval_granted"
	EventApprovalRejected  EventType = "approval_rejected"
	EventTriggerResolved   EventType = "trigger_resolved"
	EventTriggerDeclined   EventType = "trigger_declined"
	EventPlayerCardDrawn   EventType = "player_card_drawn"
	EventInfectionDrawn    EventType = "infection_drawn"
	EventEpidemic          EventType = "epidemic"
	EventInfected          EventType = "infected"
	EventOutbreak          EventType = "outbreak"
	EventCured             EventType = "cured"
	EventLabBuilt          EventType = "lab_built"
	EventAntidoteFound     EventType = "antidote_found"
	EventCardTransferred   EventType = "card_transferred"
	EventPlayerMoved       EventType = "player_moved"
	EventGameWon           EventType = "game_won"
	EventGameLost          EventType = "game_lost"
	EventGameFinished      EventType = "game_finished" // command rejected, game already over
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType   `json:"type"`
	Player string      `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}
