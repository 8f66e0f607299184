package events

import (
	"fmt"

	"contagion/internal/engine"
)

// Subsidy builds a research laboratory on any field without discarding a
// city card.
type Subsidy struct {
	holder string
	params engine.TriggerParams
}

func (s *Subsidy) Summary() string {
	return fmt.Sprintf("Government Subsidy: a laboratory is built in %s", s.params.TargetField)
}

func (s *Subsidy) Trigger(g *engine.Game) ([]engine.Event, error) {
	target, err := g.Board.FieldIndex(s.params.TargetField)
	if err != nil {
		return nil, err
	}
	if err := g.Board.BuildLab(target); err != nil {
		return nil, err
	}
	return []engine.Event{{Type: engine.EventLabBuilt, Player: s.holder, Data: map[string]interface{}{
		"city": g.Board.CityName(target),
	}}}, nil
}
