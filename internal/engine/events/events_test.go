package events_test

import (
	"testing"

	"contagion/internal/engine"
	"contagion/internal/engine/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringMap(n int) engine.MapType {
	names := []string{"Aberdeen", "Bristol", "Cardiff", "Dundee", "Exeter", "Falkirk"}
	slots := make([]engine.MapSlot, n)
	for i := 0; i < n; i++ {
		slots[i] = engine.MapSlot{
			City:          engine.City{Name: names[i]},
			Connections:   []string{names[(i+n-1)%n], names[(i+1)%n]},
			DefaultPlague: "Cholera",
		}
	}
	return engine.MapType{Name: "ring", Slots: slots}
}

func newGame() *engine.Game {
	reg := engine.NewEventRegistry()
	events.Register(reg)

	players := []*engine.Player{
		engine.NewPlayer("Alice", "Alice", engine.RoleGeneralist, false),
		engine.NewPlayer("Bob", "Bob", engine.RoleGeneralist, false),
	}
	cfg := engine.GameConfig{
		MapType:            ringMap(6),
		Plagues:            []engine.Plague{"Cholera"},
		StartCity:          "Aberdeen",
		TokensPerPlague:    24,
		ActionBudget:       4,
		PlayerCardsPerTurn: 2,
		MaxOutbreaks:       8,
		InfectionRates:     []int{2},
	}
	g := engine.NewGame("test", players, cfg, engine.NewActionRegistry(), reg)
	g.Turn = engine.NewTurn("Alice", 4, 2, 2)
	g.InfectionDraw = engine.NewStack[engine.InfectionCard](nil)
	return g
}

func trigger(t *testing.T, g *engine.Game, kind engine.EventKind, holder string, params engine.TriggerParams) ([]engine.Event, error) {
	t.Helper()
	card := engine.PlayerCard{Kind: engine.EventCard, Event: kind}
	tr, err := g.Events.New(holder, card, params)
	require.NoError(t, err)
	require.NotEmpty(t, tr.Summary())
	return tr.Trigger(g)
}

func TestAirliftMovesHolderByDefault(t *testing.T) {
	g := newGame()

	_, err := trigger(t, g, engine.EventAirlift, "Alice",
		engine.TriggerParams{TargetField: "Dundee"})
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Dundee")
	assert.Equal(t, idx, g.GetPlayer("Alice").Field)
}

func TestAirliftMovesNamedPlayer(t *testing.T) {
	g := newGame()

	evs, err := trigger(t, g, engine.EventAirlift, "Alice",
		engine.TriggerParams{TargetPlayer: "Bob", TargetField: "Cardiff"})
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Cardiff")
	assert.Equal(t, idx, g.GetPlayer("Bob").Field)
	assert.Equal(t, 0, g.GetPlayer("Alice").Field)
	require.Len(t, evs, 1)
	assert.Equal(t, engine.EventPlayerMoved, evs[0].Type)
}

func TestAirliftNamesMovedPlayerAsApprover(t *testing.T) {
	g := newGame()
	card := engine.PlayerCard{Kind: engine.EventCard, Event: engine.EventAirlift}

	tr, err := g.Events.New("Alice", card, engine.TriggerParams{TargetPlayer: "Bob", TargetField: "Cardiff"})
	require.NoError(t, err)
	ct, ok := tr.(engine.ConsentingTrigger)
	require.True(t, ok)
	assert.Equal(t, "Bob", ct.ApprovingPlayer(g))
	assert.NotEmpty(t, ct.RequestText(g))

	// Moving the holder's own pawn needs nobody's consent.
	tr, err = g.Events.New("Alice", card, engine.TriggerParams{TargetField: "Cardiff"})
	require.NoError(t, err)
	assert.Empty(t, tr.(engine.ConsentingTrigger).ApprovingPlayer(g))

	tr, err = g.Events.New("Alice", card, engine.TriggerParams{TargetPlayer: "Alice", TargetField: "Cardiff"})
	require.NoError(t, err)
	assert.Empty(t, tr.(engine.ConsentingTrigger).ApprovingPlayer(g))
}

func TestAirliftUnknownFieldFails(t *testing.T) {
	g := newGame()
	_, err := trigger(t, g, engine.EventAirlift, "Alice",
		engine.TriggerParams{TargetField: "Atlantis"})
	assert.ErrorIs(t, err, engine.ErrFieldNotFound)
}

func TestQuietNightSkipsInfectionDraws(t *testing.T) {
	g := newGame()
	require.Equal(t, 2, g.Turn.InfectionCardsToDraw)

	_, err := trigger(t, g, engine.EventQuietNight, "Alice", engine.TriggerParams{})
	require.NoError(t, err)
	assert.Zero(t, g.Turn.InfectionCardsToDraw)
}

func TestSubsidyBuildsLabForFree(t *testing.T) {
	g := newGame()

	_, err := trigger(t, g, engine.EventSubsidy, "Alice",
		engine.TriggerParams{TargetField: "Exeter"})
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Exeter")
	assert.True(t, g.Board.Field(idx).HasLab)
}

func TestSubsidyOnExistingLabFails(t *testing.T) {
	g := newGame()
	idx, _ := g.Board.FieldIndex("Exeter")
	require.NoError(t, g.Board.BuildLab(idx))

	_, err := trigger(t, g, engine.EventSubsidy, "Alice",
		engine.TriggerParams{TargetField: "Exeter"})
	assert.ErrorIs(t, err, engine.ErrLabExists)
}

func TestResilientStrainRemovesDiscardedCard(t *testing.T) {
	g := newGame()
	card := engine.InfectionCard{City: "Bristol", Plague: "Cholera"}
	g.InfectionDiscard.Push(card)

	_, err := trigger(t, g, engine.EventResilientStrain, "Alice",
		engine.TriggerParams{Card: card})
	require.NoError(t, err)
	assert.Zero(t, g.InfectionDiscard.Len())

	_, err = trigger(t, g, engine.EventResilientStrain, "Alice",
		engine.TriggerParams{Card: card})
	assert.ErrorIs(t, err, engine.ErrCardNotFound)
}

func TestForecastRearrangesTopOfInfectionDeck(t *testing.T) {
	g := newGame()
	for _, city := range []string{"Falkirk", "Exeter", "Dundee", "Cardiff", "Bristol", "Aberdeen"} {
		g.InfectionDraw.Push(engine.InfectionCard{City: city, Plague: "Cholera"})
	}
	// Top to bottom: Aberdeen, Bristol, Cardiff, Dundee, Exeter, Falkirk.

	_, err := trigger(t, g, engine.EventForecast, "Alice",
		engine.TriggerParams{Order: []int{5, 4, 3, 2, 1, 0}})
	require.NoError(t, err)

	top := g.InfectionDraw.Peek(6)
	want := []string{"Falkirk", "Exeter", "Dundee", "Cardiff", "Bristol", "Aberdeen"}
	for i, c := range top {
		assert.Equal(t, want[i], c.City)
	}
	assert.Equal(t, 6, g.InfectionDraw.Len())
}

func TestForecastInvalidOrderKeepsDeck(t *testing.T) {
	g := newGame()
	for _, city := range []string{"Cardiff", "Bristol", "Aberdeen"} {
		g.InfectionDraw.Push(engine.InfectionCard{City: city, Plague: "Cholera"})
	}

	_, err := trigger(t, g, engine.EventForecast, "Alice",
		engine.TriggerParams{Order: []int{0, 0, 1}})
	require.NoError(t, err)

	top := g.InfectionDraw.Peek(3)
	want := []string{"Aberdeen", "Bristol", "Cardiff"}
	for i, c := range top {
		assert.Equal(t, want[i], c.City)
	}
}
