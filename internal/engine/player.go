package engine

// Role identifies a player's special role.
type Role int

const (
	RoleGeneralist Role = iota
	RoleMedic
	RoleResearcher
	RoleCoordinator
	RoleCarrier
)

var roleNames = map[Role]string{
	RoleGeneralist:  "Generalist",
	RoleMedic:       "Medic",
	RoleResearcher:  "Researcher",
	RoleCoordinator: "Coordinator",
	RoleCarrier:     "Carrier",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unknown"
}

// AllRoles returns the assignable roles in deal order.
func AllRoles() []Role {
	return []Role{RoleMedic, RoleResearcher, RoleCoordinator, RoleCarrier, RoleGeneralist}
}

// ReplacedActions maps a default action kind to the role-specific kind that
// substitutes for it. Roles without substitutions return nil.
func (r Role) ReplacedActions() map[ActionKind]ActionKind {
	switch r {
	case RoleMedic:
		return map[ActionKind]ActionKind{ActionCurePlague: ActionCureAllPlague}
	default:
		return nil
	}
}

// ExtraActions returns action kinds only this role may take.
func (r Role) ExtraActions() []ActionKind {
	switch r {
	case RoleCoordinator:
		return []ActionKind{ActionMoveAlly}
	case RoleCarrier:
		return []ActionKind{ActionCarrierFlight}
	default:
		return nil
	}
}

// AntidoteCardCost is the number of same-plague city cards an antidote
// discovery requires for the given role.
func (r Role) AntidoteCardCost() int {
	if r == RoleResearcher {
		return 4
	}
	return 5
}

// Player is a participant. Automated players are driven externally; the
// engine only cares about the flag when the service decides approval policy.
// The current field is an index into the game's board, never a pointer.
type Player struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Role      Role         `json:"role"`
	Field     int          `json:"field"`
	Hand      []PlayerCard `json:"hand"`
	Automated bool         `json:"automated"`
}

// NewPlayer creates a player standing on field 0.
func NewPlayer(id, name string, role Role, automated bool) *Player {
	return &Player{ID: id, Name: name, Role: role, Automated: automated}
}

// HasCard reports whether the card is in the player's hand.
func (p *Player) HasCard(c PlayerCard) bool {
	for _, x := range p.Hand {
		if x == c {
			return true
		}
	}
	return false
}

// RemoveFromHand takes the card out of the hand, reporting whether it was
// there.
func (p *Player) RemoveFromHand(c PlayerCard) bool {
	for i, x := range p.Hand {
		if x == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// CityCardFor returns the city card for the named city if held.
func (p *Player) CityCardFor(city string) (PlayerCard, bool) {
	for _, x := range p.Hand {
		if x.Kind == CityCard && x.City == city {
			return x, true
		}
	}
	return PlayerCard{}, false
}

// CityCards returns the held city cards of the given plague.
func (p *Player) CityCards(plague Plague) []PlayerCard {
	var out []PlayerCard
	for _, x := range p.Hand {
		if x.Kind == CityCard && x.Plague == plague {
			out = append(out, x)
		}
	}
	return out
}

// EventCards returns the held event cards.
func (p *Player) EventCards() []PlayerCard {
	var out []PlayerCard
	for _, x := range p.Hand {
		if x.Kind == EventCard {
			out = append(out, x)
		}
	}
	return out
}
