package actions

import "contagion/internal/engine"

// DirectFlight discards the target city's card to move there.
type DirectFlight struct {
	params engine.ActionParams
}

func (a *DirectFlight) Kind() engine.ActionKind { return engine.ActionDirectFlight }
func (a *DirectFlight) PlayerID() string        { return a.params.Player }

func (a *DirectFlight) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return false
	}
	for _, c := range p.Hand {
		if c.Kind == engine.CityCard {
			return true
		}
	}
	return false
}

func (a *DirectFlight) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return false
	}
	target := fieldIndex(g, a.params.TargetField)
	if target < 0 || target == p.Field {
		return false
	}
	_, held := p.CityCardFor(a.params.TargetField)
	return held
}

func (a *DirectFlight) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	card, _ := p.CityCardFor(a.params.TargetField)
	p.RemoveFromHand(card)
	g.PlayerDiscard.Push(card)

	from := p.Field
	target, _ := g.Board.FieldIndex(a.params.TargetField)
	p.Field = target
	return []engine.Event{movedEvent(g, p.ID, from, target, a.Kind())}, nil
}

// CharterFlight discards the current city's card to move anywhere.
type CharterFlight struct {
	params engine.ActionParams
}

func (a *CharterFlight) Kind() engine.ActionKind { return engine.ActionCharterFlight }
func (a *CharterFlight) PlayerID() string        { return a.params.Player }

func (a *CharterFlight) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return false
	}
	_, held := p.CityCardFor(g.Board.CityName(p.Field))
	return held
}

func (a *CharterFlight) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return false
	}
	target := fieldIndex(g, a.params.TargetField)
	if target < 0 || target == p.Field {
		return false
	}
	_, held := p.CityCardFor(g.Board.CityName(p.Field))
	return held
}

func (a *CharterFlight) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	card, _ := p.CityCardFor(g.Board.CityName(p.Field))
	p.RemoveFromHand(card)
	g.PlayerDiscard.Push(card)

	from := p.Field
	target, _ := g.Board.FieldIndex(a.params.TargetField)
	p.Field = target
	return []engine.Event{movedEvent(g, p.ID, from, target, a.Kind())}, nil
}

// ShuttleFlight moves between two fields that both have laboratories.
type ShuttleFlight struct {
	params engine.ActionParams
}

func (a *ShuttleFlight) Kind() engine.ActionKind { return engine.ActionShuttleFlight }
func (a *ShuttleFlight) PlayerID() string        { return a.params.Player }

func (a *ShuttleFlight) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	return p != nil && g.Board.Field(p.Field).HasLab && g.Board.LabCount() >= 2
}

func (a *ShuttleFlight) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil || !g.Board.Field(p.Field).HasLab {
		return false
	}
	target := fieldIndex(g, a.params.TargetField)
	return target >= 0 && target != p.Field && g.Board.Field(target).HasLab
}

func (a *ShuttleFlight) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	from := p.Field
	target, _ := g.Board.FieldIndex(a.params.TargetField)
	p.Field = target
	return []engine.Event{movedEvent(g, p.ID, from, target, a.Kind())}, nil
}
