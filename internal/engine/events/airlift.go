package events

import (
	"fmt"

	"contagion/internal/engine"
)

// Airlift relocates any pawn to any field. Firing it on the holder's own
// pawn resolves immediately; relocating another player waits for that
// player's approval.
type Airlift struct {
	holder string
	params engine.TriggerParams
}

func (a *Airlift) Summary() string {
	return fmt.Sprintf("Airlift: a pawn is flown directly to %s", a.params.TargetField)
}

// ApprovingPlayer names the relocated player when it is not the holder.
func (a *Airlift) ApprovingPlayer(g *engine.Game) string {
	if a.params.TargetPlayer == "" || a.params.TargetPlayer == a.holder {
		return ""
	}
	return a.params.TargetPlayer
}

func (a *Airlift) RequestText(g *engine.Game) string {
	holder := g.GetPlayer(a.holder)
	if holder == nil {
		return ""
	}
	return fmt.Sprintf("%s wants to fly you to %s", holder.Name, a.params.TargetField)
}

func (a *Airlift) Trigger(g *engine.Game) ([]engine.Event, error) {
	moved := a.params.TargetPlayer
	if moved == "" {
		moved = a.holder
	}
	p := g.GetPlayer(moved)
	if p == nil {
		return nil, engine.ErrPlayerNotFound
	}
	target, err := g.Board.FieldIndex(a.params.TargetField)
	if err != nil {
		return nil, err
	}
	from := p.Field
	p.Field = target
	return []engine.Event{{Type: engine.EventPlayerMoved, Player: p.ID, Data: map[string]interface{}{
		"from": g.Board.CityName(from),
		"to":   g.Board.CityName(target),
		"how":  string(engine.EventAirlift),
	}}}, nil
}
