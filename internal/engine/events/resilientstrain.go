package events

import (
	"fmt"

	"contagion/internal/engine"
)

// ResilientStrain removes one card from the infection discard for the rest
// of the game; the named city can no longer return through a reshuffle.
type ResilientStrain struct {
	holder string
	params engine.TriggerParams
}

func (r *ResilientStrain) Summary() string {
	return fmt.Sprintf("Resilient Strain: the %s infection card is removed from the game", r.params.Card.City)
}

func (r *ResilientStrain) Trigger(g *engine.Game) ([]engine.Event, error) {
	if err := g.InfectionDiscard.Remove(r.params.Card); err != nil {
		return nil, err
	}
	return nil, nil
}
