package engine

// Plague identifies one of the contagions in play.
type Plague string

// DefaultPlagues returns the four standard plagues.
func DefaultPlagues() []Plague {
	return []Plague{"Cholera", "Typhus", "Influenza", "Pox"}
}

// City is a named location on the map.
type City struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MapSlot is the static placement of a city: its neighbors, the plague it
// defaults to during setup, and its board coordinates.
type MapSlot struct {
	City          City     `json:"city"`
	Connections   []string `json:"connections"`
	DefaultPlague Plague   `json:"default_plague"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
}

// MapType is an immutable board topology. Instances of a running game hold
// Fields referencing slots by index, never the other way around.
type MapType struct {
	Name  string    `json:"name"`
	Slots []MapSlot `json:"slots"`
}

// SlotIndex returns the index of the slot for the named city, or -1.
func (mt MapType) SlotIndex(city string) int {
	for i, s := range mt.Slots {
		if s.City.Name == city {
			return i
		}
	}
	return -1
}

// ClassicMap returns the standard 26-city world map. Connections are
// symmetric and the graph is cyclic.
func ClassicMap() MapType {
	var slots []MapSlot
	add := func(name string, plague Plague, x, y int, conns ...string) {
		slots = append(slots, MapSlot{
			City:          City{Name: name},
			Connections:   conns,
			DefaultPlague: plague,
			X:             x,
			Y:             y,
		})
	}

	// Cholera region
	add("London", "Cholera", 1, 1, "Paris", "Madrid", "New York")
	add("Paris", "Cholera", 2, 1, "London", "Madrid", "Milan", "Algiers")
	add("Madrid", "Cholera", 1, 2, "London", "Paris", "Algiers", "Sao Paulo")
	add("Milan", "Cholera", 3, 1, "Paris", "Istanbul")
	add("New York", "Cholera", 0, 1, "London", "Toronto", "Mexico City")
	add("Toronto", "Cholera", 0, 0, "New York", "Los Angeles")

	// Typhus region
	add("Algiers", "Typhus", 2, 2, "Paris", "Madrid", "Cairo", "Istanbul")
	add("Cairo", "Typhus", 3, 2, "Algiers", "Istanbul", "Khartoum", "Baghdad")
	add("Istanbul", "Typhus", 3, 1, "Milan", "Algiers", "Cairo", "Baghdad")
	add("Khartoum", "Typhus", 3, 3, "Cairo", "Lagos", "Johannesburg")
	add("Lagos", "Typhus", 2, 3, "Khartoum", "Sao Paulo")
	add("Johannesburg", "Typhus", 3, 4, "Khartoum", "Sao Paulo")

	// Influenza region
	add("Baghdad", "Influenza", 4, 2, "Istanbul", "Cairo", "Karachi", "Tehran")
	add("Tehran", "Influenza", 5, 1, "Baghdad", "Karachi", "Delhi")
	add("Karachi", "Influenza", 5, 2, "Baghdad", "Tehran", "Delhi", "Mumbai")
	add("Delhi", "Influenza", 6, 2, "Tehran", "Karachi", "Mumbai", "Kolkata")
	add("Mumbai", "Influenza", 5, 3, "Karachi", "Delhi", "Chennai")
	add("Kolkata", "Influenza", 6, 1, "Delhi", "Bangkok", "Hong Kong")

	// Pox region
	add("Chennai", "Pox", 6, 3, "Mumbai", "Bangkok", "Jakarta")
	add("Bangkok", "Pox", 7, 2, "Kolkata", "Chennai", "Hong Kong", "Jakarta")
	add("Hong Kong", "Pox", 7, 1, "Kolkata", "Bangkok", "Sydney")
	add("Jakarta", "Pox", 7, 3, "Chennai", "Bangkok", "Sydney")
	add("Sydney", "Pox", 8, 4, "Hong Kong", "Jakarta", "Los Angeles")
	add("Los Angeles", "Pox", 0, 2, "Toronto", "Sydney", "Mexico City")

	// Cross-region links that close the world cycle
	add("Mexico City", "Cholera", 0, 3, "New York", "Los Angeles", "Sao Paulo")
	add("Sao Paulo", "Typhus", 1, 4, "Madrid", "Lagos", "Johannesburg", "Mexico City")

	return MapType{Name: "Classic", Slots: slots}
}
