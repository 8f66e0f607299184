package events

import "contagion/internal/engine"

// Forecast looks at the top six infection cards and puts them back in the
// order the holder chose. Order holds positions into the peeked cards, new
// top first; an empty order keeps the cards as they were.
type Forecast struct {
	holder string
	params engine.TriggerParams
}

func (f *Forecast) Summary() string {
	return "Forecast: the top of the infection deck is rearranged"
}

func (f *Forecast) Trigger(g *engine.Game) ([]engine.Event, error) {
	n := 6
	if g.InfectionDraw.Len() < n {
		n = g.InfectionDraw.Len()
	}
	top := make([]engine.InfectionCard, 0, n)
	for i := 0; i < n; i++ {
		c, err := g.InfectionDraw.Pop()
		if err != nil {
			break
		}
		top = append(top, c)
	}

	order := f.params.Order
	if len(order) != len(top) {
		order = nil
	}
	seen := make(map[int]bool, len(top))
	for _, idx := range order {
		if idx < 0 || idx >= len(top) || seen[idx] {
			order = nil
			break
		}
		seen[idx] = true
	}

	arranged := top
	if order != nil {
		arranged = make([]engine.InfectionCard, len(top))
		for pos, idx := range order {
			arranged[pos] = top[idx]
		}
	}
	for i := len(arranged) - 1; i >= 0; i-- {
		g.InfectionDraw.Push(arranged[i])
	}

	cities := make([]string, len(arranged))
	for i, c := range arranged {
		cities[i] = c.City
	}
	return []engine.Event{{Type: engine.EventInfectionDrawn, Player: f.holder, Data: map[string]interface{}{
		"forecast": cities,
	}}}, nil
}
