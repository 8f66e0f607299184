package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhaseLobby          GamePhase = iota // waiting for players
	PhaseActions                         // active player spending action budget
	PhaseDrawPlayerCard                  // active player drawing player cards
	PhaseDrawInfection                   // active player drawing infection cards
	PhaseGameOver                        // game finished, won or lost
)

var phaseNames = map[GamePhase]string{
	PhaseLobby:          "Lobby",
	PhaseActions:        "Actions",
	PhaseDrawPlayerCard: "DrawPlayerCard",
	PhaseDrawInfection:  "DrawInfection",
	PhaseGameOver:       "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
