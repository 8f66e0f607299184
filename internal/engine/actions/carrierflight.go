package actions

import "contagion/internal/engine"

// CarrierFlight is the Carrier's single-use-per-turn jump to any field.
type CarrierFlight struct {
	params engine.ActionParams
}

func (a *CarrierFlight) Kind() engine.ActionKind { return engine.ActionCarrierFlight }
func (a *CarrierFlight) PlayerID() string        { return a.params.Player }

func (a *CarrierFlight) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil || p.Role != engine.RoleCarrier {
		return false
	}
	return g.Turn == nil || !g.Turn.CarrierAbilityUsed()
}

func (a *CarrierFlight) IsExecutable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	if p == nil || p.Role != engine.RoleCarrier {
		return false
	}
	target := fieldIndex(g, a.params.TargetField)
	return target >= 0 && target != p.Field
}

func (a *CarrierFlight) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	// Second use in the same turn is a fatal contract error for the turn.
	if err := g.Turn.UseCarrierAbility(); err != nil {
		return nil, err
	}
	p := g.GetPlayer(a.params.Player)
	from := p.Field
	target, _ := g.Board.FieldIndex(a.params.TargetField)
	p.Field = target
	return []engine.Event{movedEvent(g, p.ID, from, target, a.Kind())}, nil
}
