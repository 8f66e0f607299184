// Package actions implements the action variants executable against a game.
// Each file holds one kind, mirroring the static registry the engine
// resolves kinds through.
package actions

import (
	"fmt"

	"contagion/internal/engine"
)

// Register binds every action kind to its constructor. The registry is the
// complete enumeration of instantiable variants.
func Register(r *engine.ActionRegistry) {
	r.Register(engine.ActionMove, func(p engine.ActionParams) engine.Action { return &Move{params: p} })
	r.Register(engine.ActionDirectFlight, func(p engine.ActionParams) engine.Action { return &DirectFlight{params: p} })
	r.Register(engine.ActionCharterFlight, func(p engine.ActionParams) engine.Action { return &CharterFlight{params: p} })
	r.Register(engine.ActionShuttleFlight, func(p engine.ActionParams) engine.Action { return &ShuttleFlight{params: p} })
	r.Register(engine.ActionBuildLab, func(p engine.ActionParams) engine.Action { return &BuildLab{params: p} })
	r.Register(engine.ActionCurePlague, func(p engine.ActionParams) engine.Action { return &CurePlague{params: p} })
	r.Register(engine.ActionCureAllPlague, func(p engine.ActionParams) engine.Action { return &CureAllPlague{params: p} })
	r.Register(engine.ActionDiscoverAntidote, func(p engine.ActionParams) engine.Action { return &DiscoverAntidote{params: p} })
	r.Register(engine.ActionSendCard, func(p engine.ActionParams) engine.Action { return NewSendCard(p) })
	r.Register(engine.ActionReceiveCard, func(p engine.ActionParams) engine.Action { return NewReceiveCard(p) })
	r.Register(engine.ActionMoveAlly, func(p engine.ActionParams) engine.Action { return NewMoveAlly(p) })
	r.Register(engine.ActionCarrierFlight, func(p engine.ActionParams) engine.Action { return &CarrierFlight{params: p} })
	r.Register(engine.ActionWaive, func(p engine.ActionParams) engine.Action { return &Waive{params: p} })
}

// approval is the one-way consent flag embedded by approvable actions.
type approval struct {
	approver string
	approved bool
}

func (a *approval) ApprovingPlayer() string { return a.approver }
func (a *approval) Approve()                { a.approved = true }
func (a *approval) Approved() bool          { return a.approved }

// errNotExecutable is the contract error for Execute called out of contract.
func errNotExecutable(kind engine.ActionKind) error {
	return fmt.Errorf("execute %s while not executable: %w", kind, engine.ErrContract)
}

// fieldIndex resolves a city name, returning -1 when unknown or empty.
func fieldIndex(g *engine.Game, city string) int {
	if city == "" {
		return -1
	}
	i, err := g.Board.FieldIndex(city)
	if err != nil {
		return -1
	}
	return i
}

// adjacent reports whether field b neighbors field a.
func adjacent(g *engine.Game, a, b int) bool {
	for _, n := range g.Board.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

func movedEvent(g *engine.Game, playerID string, from, to int, how engine.ActionKind) engine.Event {
	return engine.Event{Type: engine.EventPlayerMoved, Player: playerID, Data: map[string]interface{}{
		"from": g.Board.CityName(from),
		"to":   g.Board.CityName(to),
		"how":  string(how),
	}}
}
