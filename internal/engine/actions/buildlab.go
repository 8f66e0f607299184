package actions

import (
	"fmt"

	"contagion/internal/engine"
)

// BuildLab erects a research laboratory on the player's current field at
// the cost of that city's card.
type BuildLab struct {
	params engine.ActionParams
}

func (a *BuildLab) Kind() engine.ActionKind { return engine.ActionBuildLab }
func (a *BuildLab) PlayerID() string        { return a.params.Player }

func (a *BuildLab) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil || g.Board.Field(p.Field).HasLab {
		return false
	}
	_, held := p.CityCardFor(g.Board.CityName(p.Field))
	return held
}

func (a *BuildLab) IsExecutable(g *engine.Game) bool {
	return a.IsAvailable(g)
}

// DiscardedCards previews the cost: the current city's card.
func (a *BuildLab) DiscardedCards(g *engine.Game) ([]engine.PlayerCard, error) {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return nil, fmt.Errorf("discard query without player: %w", engine.ErrContract)
	}
	card, held := p.CityCardFor(g.Board.CityName(p.Field))
	if !held {
		return nil, fmt.Errorf("discard query without the required city card: %w", engine.ErrContract)
	}
	return []engine.PlayerCard{card}, nil
}

func (a *BuildLab) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	cards, err := a.DiscardedCards(g)
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		p.RemoveFromHand(c)
		g.PlayerDiscard.Push(c)
	}
	if err := g.Board.BuildLab(p.Field); err != nil {
		return nil, err
	}
	return []engine.Event{{Type: engine.EventLabBuilt, Player: p.ID, Data: map[string]interface{}{
		"city": g.Board.CityName(p.Field),
	}}}, nil
}
