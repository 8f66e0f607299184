package engine

import "math/rand"

// PlayerCardKind discriminates the player-card variants.
type PlayerCardKind int

const (
	CityCard PlayerCardKind = iota + 1
	EventCard
	EpidemicCard
)

var playerCardKindNames = map[PlayerCardKind]string{
	CityCard:     "City",
	EventCard:    "Event",
	EpidemicCard: "Epidemic",
}

func (k PlayerCardKind) String() string {
	if s, ok := playerCardKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// EventKind identifies the playable event cards.
type EventKind string

const (
	EventAirlift         EventKind = "airlift"
	EventQuietNight      EventKind = "quiet_night"
	EventSubsidy         EventKind = "government_subsidy"
	EventResilientStrain EventKind = "resilient_strain"
	EventForecast        EventKind = "forecast"
)

// AllEventKinds returns the event cards shuffled into the player deck.
func AllEventKinds() []EventKind {
	return []EventKind{
		EventAirlift, EventQuietNight, EventSubsidy,
		EventResilientStrain, EventForecast,
	}
}

// PlayerCard is one card of the player deck. City cards carry their city and
// its plague color, event cards carry their event kind, epidemic cards carry
// neither.
type PlayerCard struct {
	Kind   PlayerCardKind `json:"kind"`
	City   string         `json:"city,omitempty"`
	Plague Plague         `json:"plague,omitempty"`
	Event  EventKind      `json:"event,omitempty"`
}

// InfectionCard names a field to infect and the plague to infect it with.
type InfectionCard struct {
	City   string `json:"city"`
	Plague Plague `json:"plague"`
}

// NewPlayerDeck builds the unshuffled player deck for a map: one city card
// per slot plus the event cards. Epidemics are inserted separately after
// hands are dealt.
func NewPlayerDeck(mt MapType) []PlayerCard {
	cards := make([]PlayerCard, 0, len(mt.Slots)+5)
	for _, s := range mt.Slots {
		cards = append(cards, PlayerCard{
			Kind:   CityCard,
			City:   s.City.Name,
			Plague: s.DefaultPlague,
		})
	}
	for _, e := range AllEventKinds() {
		cards = append(cards, PlayerCard{Kind: EventCard, Event: e})
	}
	return cards
}

// NewInfectionDeck builds the unshuffled infection deck: one card per slot.
func NewInfectionDeck(mt MapType) []InfectionCard {
	cards := make([]InfectionCard, 0, len(mt.Slots))
	for _, s := range mt.Slots {
		cards = append(cards, InfectionCard{
			City:   s.City.Name,
			Plague: s.DefaultPlague,
		})
	}
	return cards
}

// InsertEpidemics splits the deck into n near-equal piles, shuffles one
// epidemic card into each, and restacks the piles. This is the difficulty
// knob: more epidemics means denser infection-deck reshuffles.
func InsertEpidemics(cards []PlayerCard, n int) []PlayerCard {
	if n <= 0 {
		return cards
	}
	out := make([]PlayerCard, 0, len(cards)+n)
	size := len(cards) / n
	rem := len(cards) % n
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		pile := make([]PlayerCard, 0, end-start+1)
		pile = append(pile, cards[start:end]...)
		pile = append(pile, PlayerCard{Kind: EpidemicCard})
		rand.Shuffle(len(pile), func(a, b int) {
			pile[a], pile[b] = pile[b], pile[a]
		})
		out = append(out, pile...)
		start = end
	}
	return out
}
