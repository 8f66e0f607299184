package events

import "contagion/internal/engine"

// QuietNight skips the next infection-card draw phase.
type QuietNight struct {
	holder string
}

func (q *QuietNight) Summary() string {
	return "Quiet Night: the next infection phase is skipped"
}

func (q *QuietNight) Trigger(g *engine.Game) ([]engine.Event, error) {
	g.SkipInfectionPhase()
	return nil, nil
}
