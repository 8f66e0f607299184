package actions

import (
	"fmt"

	"contagion/internal/engine"
)

// DiscoverAntidote trades a set of same-plague city cards at a laboratory
// for the plague's antidote. The Researcher needs one card fewer.
type DiscoverAntidote struct {
	params engine.ActionParams
}

func (a *DiscoverAntidote) Kind() engine.ActionKind { return engine.ActionDiscoverAntidote }
func (a *DiscoverAntidote) PlayerID() string        { return a.params.Player }

func (a *DiscoverAntidote) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil || !g.Board.Field(p.Field).HasLab {
		return false
	}
	for _, plague := range g.Config.Plagues {
		if !g.Antidotes[plague] && len(p.CityCards(plague)) >= p.Role.AntidoteCardCost() {
			return true
		}
	}
	return false
}

func (a *DiscoverAntidote) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil || a.params.Plague == "" || g.Antidotes[a.params.Plague] {
		return false
	}
	if !g.Board.Field(p.Field).HasLab {
		return false
	}
	return len(p.CityCards(a.params.Plague)) >= p.Role.AntidoteCardCost()
}

// DiscardedCards previews the city cards the discovery will consume.
func (a *DiscoverAntidote) DiscardedCards(g *engine.Game) ([]engine.PlayerCard, error) {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return nil, fmt.Errorf("discard query without player: %w", engine.ErrContract)
	}
	cards := p.CityCards(a.params.Plague)
	cost := p.Role.AntidoteCardCost()
	if len(cards) < cost {
		return nil, fmt.Errorf("discard query with %d of %d required cards: %w",
			len(cards), cost, engine.ErrContract)
	}
	return cards[:cost], nil
}

func (a *DiscoverAntidote) Execute(g *engine.Game) ([]engine.Event, error) {
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
	g.Antidotes[a.params.Plague] = true
	return []engine.Event{{Type: engine.EventAntidoteFound, Player: p.ID, Data: map[string]interface{}{
		"plague": string(a.params.Plague),
		"cards":  len(cards),
	}}}, nil
}
