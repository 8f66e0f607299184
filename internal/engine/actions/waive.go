package actions

import "contagion/internal/engine"

// Waive gives up the rest of the turn's actions. It costs nothing itself;
// it zeroes the remaining budget instead.
type Waive struct {
	params engine.ActionParams
}

func (a *Waive) Kind() engine.ActionKind { return engine.ActionWaive }
func (a *Waive) PlayerID() string        { return a.params.Player }
func (a *Waive) IsZeroCost() bool        { return true }

func (a *Waive) IsAvailable(g *engine.Game) bool {
	return g.GetPlayer(a.params.Player) != nil
}

func (a *Waive) IsExecutable(g *engine.Game) bool {
	return a.IsAvailable(g) && g.Turn != nil
}

func (a *Waive) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	g.Turn.WaiveActions()
	return []engine.Event{{Type: engine.EventActionsWaived, Player: a.params.Player}}, nil
}
