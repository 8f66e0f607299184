package actions

import (
	"fmt"

	"contagion/internal/engine"
)

// MoveAlly lets the Coordinator walk another player one connection, with
// that player's approval.
type MoveAlly struct {
	params engine.ActionParams
	approval
}

func NewMoveAlly(p engine.ActionParams) *MoveAlly {
	return &MoveAlly{params: p, approval: approval{approver: p.TargetPlayer}}
}

func (a *MoveAlly) Kind() engine.ActionKind { return engine.ActionMoveAlly }
func (a *MoveAlly) PlayerID() string        { return a.params.Player }

func (a *MoveAlly) RequestText(g *engine.Game) string {
	initiator := g.GetPlayer(a.params.Player)
	if initiator == nil {
		return ""
	}
	return fmt.Sprintf("%s wants to move you to %s", initiator.Name, a.params.TargetField)
}

func (a *MoveAlly) IsAvailable(g *engine.Game) bool {
	p := g.GetPlayer(a.params.Player)
	return p != nil && p.Role == engine.RoleCoordinator && len(g.Players) > 1
}

func (a *MoveAlly) IsExecutable(g *engine.Game) bool {
	if !a.Approved() {
		return false
	}
	p := g.GetPlayer(a.params.Player)
	ally := g.GetPlayer(a.params.TargetPlayer)
	if p == nil || ally == nil || p.ID == ally.ID || p.Role != engine.RoleCoordinator {
		return false
	}
	target := fieldIndex(g, a.params.TargetField)
	return target >= 0 && adjacent(g, ally.Field, target)
}

func (a *MoveAlly) Execute(g *engine.Game) ([]engine.Event, error) {
	if !a.IsExecutable(g) {
		return nil, errNotExecutable(a.Kind())
	}
	ally := g.GetPlayer(a.params.TargetPlayer)
	from := ally.Field
	target, _ := g.Board.FieldIndex(a.params.TargetField)
	ally.Field = target
	return []engine.Event{movedEvent(g, ally.ID, from, target, a.Kind())}, nil
}
