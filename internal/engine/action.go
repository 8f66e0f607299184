package engine

import "fmt"

// ActionKind identifies the finite set of action variants. The registry
// below replaces any runtime discovery: every kind is enumerated and bound
// to a constructor at wiring time.
type ActionKind string

const (
	ActionMove             ActionKind = "move"
	ActionDirectFlight     ActionKind = "direct_flight"
	ActionCharterFlight    ActionKind = "charter_flight"
	ActionShuttleFlight    ActionKind = "shuttle_flight"
	ActionBuildLab         ActionKind = "build_lab"
	ActionCurePlague       ActionKind = "cure_plague"
	ActionCureAllPlague    ActionKind = "cure_all_plague" // Medic substitution for cure_plague
	ActionDiscoverAntidote ActionKind = "discover_antidote"
	ActionSendCard         ActionKind = "send_card"
	ActionReceiveCard      ActionKind = "receive_card"
	ActionMoveAlly         ActionKind = "move_ally"
	ActionCarrierFlight    ActionKind = "carrier_flight"
	ActionWaive            ActionKind = "waive"
)

// ActionParams are the player-chosen parameters of an action. Which fields
// matter depends on the kind.
type ActionParams struct {
	Player       string     `json:"player"`
	TargetField  string     `json:"target_field,omitempty"`
	TargetPlayer string     `json:"target_player,omitempty"`
	Plague       Plague     `json:"plague,omitempty"`
	Card         PlayerCard `json:"card,omitempty"`
}

// Action is a single attempted move. IsAvailable asks whether the kind is
// conceivably open to the player in the current state, independent of chosen
// parameters; IsExecutable validates the chosen parameters, approval
// included. Execute applies the effect and must only be called once
// IsExecutable holds — violating that is a contract error, not a game rule.
type Action interface {
	Kind() ActionKind
	PlayerID() string
	IsAvailable(g *Game) bool
	IsExecutable(g *Game) bool
	Execute(g *Game) ([]Event, error)
}

// Approvable marks an action that needs another player's consent before it
// can execute. Approve is one-way; a rejection discards the pending action
// instead.
type Approvable interface {
	ApprovingPlayer() string
	Approve()
	Approved() bool
	RequestText(g *Game) string
}

// CardCoster marks an action that costs cards. DiscardedCards is a query
// for previewing the cost; calling it while the player lacks the required
// cards is a contract error.
type CardCoster interface {
	DiscardedCards(g *Game) ([]PlayerCard, error)
}

// Paired marks one half of a matched action pair (send/receive card). The
// counterpart kind lets the service construct the opposite side of a trade.
type Paired interface {
	CounterpartKind() ActionKind
}

// ZeroCost marks actions that do not spend an action point.
type ZeroCost interface {
	IsZeroCost() bool
}

// ActionCtor builds an action from chosen parameters.
type ActionCtor func(params ActionParams) Action

// ActionRegistry is the static table of instantiable action kinds.
type ActionRegistry struct {
	ctors map[ActionKind]ActionCtor
}

func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{ctors: make(map[ActionKind]ActionCtor)}
}

func (r *ActionRegistry) Register(k ActionKind, ctor ActionCtor) {
	r.ctors[k] = ctor
}

// New constructs an action of the given kind, applying the player's role
// substitution table first: a role-specific kind replaces the default kind
// it shadows.
func (r *ActionRegistry) New(kind ActionKind, role Role, params ActionParams) (Action, error) {
	if replaced := role.ReplacedActions(); replaced != nil {
		if sub, ok := replaced[kind]; ok {
			kind = sub
		}
	}
	ctor, ok := r.ctors[kind]
	if !ok {
		return nil, fmt.Errorf("no action registered for kind %q", kind)
	}
	return ctor(params), nil
}

// Kinds returns the registered kinds.
func (r *ActionRegistry) Kinds() []ActionKind {
	out := make([]ActionKind, 0, len(r.ctors))
	for k := range r.ctors {
		out = append(out, k)
	}
	return out
}

// PendingApproval is an approvable action suspended between its outbound
// request and the approving player's response. It lives in the game's
// pending map keyed by id; turn progression does not disturb it.
type PendingApproval struct {
	ID     string
	Action Action
}
