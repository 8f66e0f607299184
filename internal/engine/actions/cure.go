package actions

import "contagion/internal/engine"

// CurePlague removes one token of the chosen plague from the player's
// current field.
type CurePlague struct {
	params engine.ActionParams
}

func (a *CurePlague) Kind() engine.ActionKind { return engine.ActionCurePlague }
func (a *CurePlague) PlayerID() string        { return a.params.Player }

func (a *CurePlague) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil {
		return false
	}
	for _, n := range g.Board.Field(p.Field).Tokens {
		if n > 0 {
			return true
		}
	}
	return false
}

func (a *CurePlague) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	return p != nil && a.params.Plague != "" && g.Board.Field(p.Field).Tokens[a.params.Plague] > 0
}

func (a *CurePlague) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	if err := g.Board.Cure(p.Field, a.params.Plague, g.Pool); err != nil {
		return nil, err
	}
	// With the antidote discovered, one cure action clears the field.
	removed := 1
	if g.Antidotes[a.params.Plague] {
		removed += g.Board.CureAll(p.Field, a.params.Plague, g.Pool)
	}
	return []engine.Event{{Type: engine.EventCured, Player: p.ID, Data: map[string]interface{}{
		"city":    g.Board.CityName(p.Field),
		"plague":  string(a.params.Plague),
		"removed": removed,
	}}}, nil
}

// CureAllPlague is the Medic's substitution for cure_plague: every token of
// the chosen plague leaves the field in a single action.
type CureAllPlague struct {
	params engine.ActionParams
}

func (a *CureAllPlague) Kind() engine.ActionKind { return engine.ActionCureAllPlague }
func (a *CureAllPlague) PlayerID() string        { return a.params.Player }

func (a *CureAllPlague) IsAvailable(g *engine.Game) bool {
	return (&CurePlague{params: a.params}).IsAvailable(g)
}

func (a *CureAllPlague) IsExecutable(g *engine.Game) bool {
	return (&CurePlague{params: a.params}).IsExecutable(g)
}

func (a *CureAllPlague) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	p := g.GetPlayer(a.params.Player)
	removed := g.Board.CureAll(p.Field, a.params.Plague, g.Pool)
	return []engine.Event{{Type: engine.EventCured, Player: p.ID, Data: map[string]interface{}{
		"city":    g.Board.CityName(p.Field),
		"plague":  string(a.params.Plague),
		"removed": removed,
	}}}, nil
}
