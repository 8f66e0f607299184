package lobby_test

import (
	"testing"

	"contagion/internal/lobby"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAndRejoin(t *testing.T) {
	l := lobby.NewLobby("g1")

	require.NoError(t, l.Join("p1", "Alice"))
	require.NoError(t, l.Join("p2", "Bob"))
	assert.Len(t, l.GetPlayers(), 2)
	assert.Equal(t, 2, l.SeatsLeft())

	// Rejoining updates the name, no duplicate seat.
	require.NoError(t, l.Join("p1", "Alicia"))
	players := l.GetPlayers()
	assert.Len(t, players, 2)
	assert.Equal(t, "Alicia", players[0].Name)
}

func TestJoinFullLobby(t *testing.T) {
	l := lobby.NewLobby("g1")
	for i := 0; i < l.MaxPlayers; i++ {
		require.NoError(t, l.Join(string(rune('a'+i)), "p"))
	}
	assert.Error(t, l.Join("z", "late"))
	assert.Zero(t, l.SeatsLeft())
}

func TestCanStartRequiresEveryoneReady(t *testing.T) {
	l := lobby.NewLobby("g1")
	require.NoError(t, l.Join("p1", "Alice"))
	require.NoError(t, l.Join("p2", "Bob"))

	assert.False(t, l.CanStart())
	l.SetReady("p1", true)
	assert.False(t, l.CanStart())
	l.SetReady("p2", true)
	assert.True(t, l.CanStart())
}

func TestStartIsFinal(t *testing.T) {
	l := lobby.NewLobby("g1")
	require.NoError(t, l.Join("p1", "Alice"))
	l.SetReady("p1", true)

	require.NoError(t, l.Start())
	assert.True(t, l.Started)
	assert.Error(t, l.Start())
	assert.Error(t, l.Join("p2", "late"))
}

func TestLeave(t *testing.T) {
	l := lobby.NewLobby("g1")
	require.NoError(t, l.Join("p1", "Alice"))
	require.NoError(t, l.Join("p2", "Bob"))

	l.Leave("p1")
	players := l.GetPlayers()
	require.Len(t, players, 1)
	assert.Equal(t, "p2", players[0].ID)
}

func TestManagerCreateAndGet(t *testing.T) {
	m := lobby.NewManager()
	id := m.Create()
	require.NotEmpty(t, id)
	assert.NotNil(t, m.Get(id))
	assert.Nil(t, m.Get("missing"))
}
