package actions

import "contagion/internal/engine"

// Move walks the player along one connection to a neighboring city.
type Move struct {
	params engine.ActionParams
}

func (a *Move) Kind() engine.ActionKind { return engine.ActionMove }
func (a *Move) PlayerID() string        { return a.params.Player }

func (a *Move) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	return p != nil && len(g.Board.Neighbors(p.Field)) > 0
}

func (a *Move) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return false
	}
	target := fieldIndex(g, a.params.TargetField)
	return target >= 0 && adjacent(g, p.Field, target)
}

func (a *Move) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	from := p.Field
	target, _ := g.Board.FieldIndex(a.params.TargetField)
	p.Field = target
	return []engine.Event{movedEvent(g, p.ID, from, target, a.Kind())}, nil
}
