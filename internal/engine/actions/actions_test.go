package actions_test

import (
	"testing"

	"contagion/internal/engine"
	"contagion/internal/engine/actions"

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

// newGame builds a game with one player per role, everyone on field 0, and
// an open turn for the first player. Setup randomness is skipped entirely.
func newGame(roles ...engine.Role) *engine.Game {
	reg := engine.NewActionRegistry()
	actions.Register(reg)

	names := []string{"Alice", "Bob", "Carol"}
	var players []*engine.Player
	for i, r := range roles {
		players = append(players, engine.NewPlayer(names[i], names[i], r, false))
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
	g := engine.NewGame("test", players, cfg, reg, engine.NewEventRegistry())
	g.Turn = engine.NewTurn("Alice", 4, 0, 0)
	return g
}

func newAction(t *testing.T, g *engine.Game, kind engine.ActionKind, role engine.Role, params engine.ActionParams) engine.Action {
	t.Helper()
	a, err := g.Actions.New(kind, role, params)
	require.NoError(t, err)
	return a
}

func cityCard(name string) engine.PlayerCard {
	return engine.PlayerCard{Kind: engine.CityCard, City: name, Plague: "Cholera"}
}

func TestMoveWalksOneConnection(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	a := newAction(t, g, engine.ActionMove, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", TargetField: "Bristol"})

	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Bristol")
	assert.Equal(t, idx, g.GetPlayer("Alice").Field)
}

func TestMoveRejectsNonAdjacentTarget(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	a := newAction(t, g, engine.ActionMove, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", TargetField: "Dundee"})

	assert.False(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	assert.ErrorIs(t, err, engine.ErrContract)
}

func TestDirectFlightDiscardsTargetCard(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	alice := g.GetPlayer("Alice")
	alice.Hand = append(alice.Hand, cityCard("Dundee"))

	a := newAction(t, g, engine.ActionDirectFlight, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", TargetField: "Dundee"})
	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Dundee")
	assert.Equal(t, idx, alice.Field)
	assert.Empty(t, alice.Hand)
	assert.Equal(t, 1, g.PlayerDiscard.Len())
}

func TestCharterFlightDiscardsCurrentCard(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	alice := g.GetPlayer("Alice")
	alice.Hand = append(alice.Hand, cityCard("Aberdeen"))

	a := newAction(t, g, engine.ActionCharterFlight, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", TargetField: "Exeter"})
	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Exeter")
	assert.Equal(t, idx, alice.Field)
	assert.Empty(t, alice.Hand)
}

func TestShuttleFlightNeedsLabsOnBothEnds(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	require.NoError(t, g.Board.BuildLab(0))

	a := newAction(t, g, engine.ActionShuttleFlight, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", TargetField: "Cardiff"})
	assert.False(t, a.IsExecutable(g))

	idx, _ := g.Board.FieldIndex("Cardiff")
	require.NoError(t, g.Board.BuildLab(idx))
	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.Equal(t, idx, g.GetPlayer("Alice").Field)
}

func TestBuildLabConsumesCityCard(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	alice := g.GetPlayer("Alice")
	alice.Hand = append(alice.Hand, cityCard("Aberdeen"))

	a := newAction(t, g, engine.ActionBuildLab, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice"})
	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)

	assert.True(t, g.Board.Field(0).HasLab)
	assert.Empty(t, alice.Hand)
	assert.Equal(t, 1, g.PlayerDiscard.Len())
}

func TestBuildLabDiscardQueryWithoutCardIsContractError(t *testing.T) {
	g := newGame(engine.RoleGeneralist)

	a := newAction(t, g, engine.ActionBuildLab, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice"})
	coster, ok := a.(engine.CardCoster)
	require.True(t, ok)

	_, err := coster.DiscardedCards(g)
	assert.ErrorIs(t, err, engine.ErrContract)
}

func TestCurePlagueRemovesOneToken(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	for i := 0; i < 3; i++ {
		_, err := g.Board.Infect(0, "Cholera", g.Pool)
		require.NoError(t, err)
	}

	a := newAction(t, g, engine.ActionCurePlague, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", Plague: "Cholera"})
	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Board.Field(0).Tokens["Cholera"])
}

func TestCureClearsFieldOnceAntidoteFound(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	for i := 0; i < 3; i++ {
		_, err := g.Board.Infect(0, "Cholera", g.Pool)
		require.NoError(t, err)
	}
	g.Antidotes["Cholera"] = true

	a := newAction(t, g, engine.ActionCurePlague, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", Plague: "Cholera"})
	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.Zero(t, g.Board.Field(0).Tokens["Cholera"])
}

func TestMedicCureSubstitution(t *testing.T) {
	g := newGame(engine.RoleMedic)
	for i := 0; i < 3; i++ {
		_, err := g.Board.Infect(0, "Cholera", g.Pool)
		require.NoError(t, err)
	}

	a := newAction(t, g, engine.ActionCurePlague, engine.RoleMedic,
		engine.ActionParams{Player: "Alice", Plague: "Cholera"})
	assert.Equal(t, engine.ActionCureAllPlague, a.Kind())

	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.Zero(t, g.Board.Field(0).Tokens["Cholera"])
}

func TestDiscoverAntidoteCardCost(t *testing.T) {
	tests := []struct {
		role  engine.Role
		cards int
		ok    bool
	}{
		{engine.RoleGeneralist, 4, false},
		{engine.RoleGeneralist, 5, true},
		{engine.RoleResearcher, 4, true},
	}
	for _, tt := range tests {
		g := newGame(tt.role)
		require.NoError(t, g.Board.BuildLab(0))
		alice := g.GetPlayer("Alice")
		cities := []string{"Aberdeen", "Bristol", "Cardiff", "Dundee", "Exeter"}
		for i := 0; i < tt.cards; i++ {
			alice.Hand = append(alice.Hand, cityCard(cities[i]))
		}

		a := newAction(t, g, engine.ActionDiscoverAntidote, tt.role,
			engine.ActionParams{Player: "Alice", Plague: "Cholera"})
		assert.Equal(t, tt.ok, a.IsExecutable(g), "%s with %d cards", tt.role, tt.cards)
		if !tt.ok {
			continue
		}
		_, err := a.Execute(g)
		require.NoError(t, err)
		assert.True(t, g.Antidotes["Cholera"])
		assert.Len(t, alice.Hand, tt.cards-tt.role.AntidoteCardCost())
	}
}

func TestCarrierFlightSingleUsePerTurn(t *testing.T) {
	g := newGame(engine.RoleCarrier)

	a := newAction(t, g, engine.ActionCarrierFlight, engine.RoleCarrier,
		engine.ActionParams{Player: "Alice", TargetField: "Dundee"})
	_, err := a.Execute(g)
	require.NoError(t, err)

	b := newAction(t, g, engine.ActionCarrierFlight, engine.RoleCarrier,
		engine.ActionParams{Player: "Alice", TargetField: "Aberdeen"})
	assert.False(t, b.IsAvailable(g))
	_, err = b.Execute(g)
	assert.ErrorIs(t, err, engine.ErrContract)
}

func TestCarrierFlightOnlyForCarrier(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	a := newAction(t, g, engine.ActionCarrierFlight, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice", TargetField: "Dundee"})
	assert.False(t, a.IsAvailable(g))
	assert.False(t, a.IsExecutable(g))
}

func TestSendCardExecuteBeforeApprovalIsContractError(t *testing.T) {
	g := newGame(engine.RoleGeneralist, engine.RoleGeneralist)
	alice := g.GetPlayer("Alice")
	alice.Hand = append(alice.Hand, cityCard("Aberdeen"))

	a := actions.NewSendCard(engine.ActionParams{Player: "Alice", TargetPlayer: "Bob"})
	require.True(t, a.IsAvailable(g))
	require.False(t, a.IsExecutable(g))

	_, err := a.Execute(g)
	assert.ErrorIs(t, err, engine.ErrContract)
	assert.True(t, alice.HasCard(cityCard("Aberdeen")))
}

func TestSendCardExecutesAfterApproval(t *testing.T) {
	g := newGame(engine.RoleGeneralist, engine.RoleGeneralist)
	alice := g.GetPlayer("Alice")
	card := cityCard("Aberdeen")
	alice.Hand = append(alice.Hand, card)

	a := actions.NewSendCard(engine.ActionParams{Player: "Alice", TargetPlayer: "Bob"})
	assert.Equal(t, "Bob", a.ApprovingPlayer())
	a.Approve()
	require.True(t, a.IsExecutable(g))

	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.False(t, alice.HasCard(card))
	assert.True(t, g.GetPlayer("Bob").HasCard(card))
}

func TestReceiveCardIsCounterpartOfSendCard(t *testing.T) {
	g := newGame(engine.RoleGeneralist, engine.RoleGeneralist)
	bob := g.GetPlayer("Bob")
	card := cityCard("Aberdeen")
	bob.Hand = append(bob.Hand, card)

	a := actions.NewReceiveCard(engine.ActionParams{Player: "Alice", TargetPlayer: "Bob"})
	assert.Equal(t, engine.ActionSendCard, a.CounterpartKind())
	assert.Equal(t, "Bob", a.ApprovingPlayer())

	a.Approve()
	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.True(t, g.GetPlayer("Alice").HasCard(card))
	assert.False(t, bob.HasCard(card))
}

func TestMoveAllyNeedsCoordinatorAndApproval(t *testing.T) {
	g := newGame(engine.RoleCoordinator, engine.RoleGeneralist)

	a := actions.NewMoveAlly(engine.ActionParams{
		Player: "Alice", TargetPlayer: "Bob", TargetField: "Bristol",
	})
	require.True(t, a.IsAvailable(g))
	assert.False(t, a.IsExecutable(g))

	a.Approve()
	require.True(t, a.IsExecutable(g))
	_, err := a.Execute(g)
	require.NoError(t, err)

	idx, _ := g.Board.FieldIndex("Bristol")
	assert.Equal(t, idx, g.GetPlayer("Bob").Field)
	assert.Equal(t, 0, g.GetPlayer("Alice").Field)
}

func TestWaiveIsZeroCost(t *testing.T) {
	g := newGame(engine.RoleGeneralist)
	a := newAction(t, g, engine.ActionWaive, engine.RoleGeneralist,
		engine.ActionParams{Player: "Alice"})

	zc, ok := a.(engine.ZeroCost)
	require.True(t, ok)
	assert.True(t, zc.IsZeroCost())

	_, err := a.Execute(g)
	require.NoError(t, err)
	assert.Zero(t, g.Turn.ActionsLeft)
}
