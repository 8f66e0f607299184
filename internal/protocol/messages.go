package protocol

import "contagion/internal/engine"

// Message types: Server → Client
const (
	MsgLobbyUpdate     = "lobby_update"
	MsgGameState       = "game_state"
	MsgPlayerState     = "player_state"
	MsgEvent           = "event"
	MsgApprovalRequest = "approval_request"
	MsgTriggerPrompt   = "trigger_prompt"
	MsgError           = "error"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	// In-game commands use the same names as engine CommandType
	MsgAction        = "action"
	MsgApproval      = "approval"
	MsgTrigger       = "trigger"
	MsgDrawPlayer    = "draw_player_card"
	MsgDrawInfection = "draw_infection_card"
	MsgEndTurn       = "end_turn"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// StartGameMsg configures the game being started.
type StartGameMsg struct {
	Difficulty int `json:"difficulty,omitempty"`
	Automated  int `json:"automated,omitempty"` // automated players to seat
}

// CommandMsg is the payload of every in-game command; the envelope type
// selects the engine command.
type CommandMsg struct {
	Action     engine.ActionKind    `json:"action,omitempty"`
	Params     engine.ActionParams  `json:"params,omitempty"`
	ApprovalID string               `json:"approval_id,omitempty"`
	Approve    bool                 `json:"approve,omitempty"`
	Accept     bool                 `json:"accept,omitempty"`
	Trigger    engine.TriggerParams `json:"trigger,omitempty"`
}

// ApprovalRequest is sent to the approving player.
type ApprovalRequest struct {
	ApprovalID string `json:"approval_id"`
	Initiator  string `json:"initiator"`
	Action     string `json:"action"`
	Text       string `json:"text"`
}

// TriggerPrompt asks an event card's holder whether to fire it.
type TriggerPrompt struct {
	Event engine.EventKind `json:"event"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
