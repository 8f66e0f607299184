package engine_test

import (
	"testing"

	"contagion/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnBudgetExhaustion(t *testing.T) {
	turn := engine.NewTurn("alice", 2, 0, 0)

	require.True(t, turn.HasActionsToDo())
	assert.False(t, turn.IsOver())

	turn.ExecuteCommand(engine.ActionMove)
	assert.True(t, turn.HasActionsToDo())
	assert.False(t, turn.IsOver())

	turn.ExecuteCommand(engine.ActionCurePlague)
	assert.False(t, turn.HasActionsToDo())
	assert.True(t, turn.IsOver())
	assert.Equal(t, []engine.ActionKind{engine.ActionMove, engine.ActionCurePlague}, turn.Executed)
}

func TestTurnWaiveZeroesBudget(t *testing.T) {
	turn := engine.NewTurn("alice", 4, 0, 0)
	turn.WaiveActions()
	assert.Zero(t, turn.ActionsLeft)
	assert.True(t, turn.IsOver())
}

func TestTurnNotOverWhileManualOfferPending(t *testing.T) {
	turn := engine.NewTurn("alice", 1, 0, 0)
	turn.ExecuteCommand(engine.ActionMove)
	require.True(t, turn.IsOver())

	offer := engine.TriggerOffer{
		HolderID: "bob",
		Card:     engine.PlayerCard{Kind: engine.EventCard, Event: engine.EventAirlift},
	}
	turn.QueueManualOffer(offer)
	assert.False(t, turn.IsOver())

	got, ok := turn.PeekNextManualOffer()
	require.True(t, ok)
	assert.Equal(t, offer, got)

	// Peek does not consume; the cursor only moves on an explicit decision.
	_, ok = turn.PeekNextManualOffer()
	assert.True(t, ok)

	turn.ConsumeManualOffer()
	assert.True(t, turn.IsOver())
	_, ok = turn.PeekNextManualOffer()
	assert.False(t, ok)
}

func TestTurnNotOverWhileAutoTriggerablePending(t *testing.T) {
	turn := engine.NewTurn("alice", 0, 0, 0)
	require.True(t, turn.IsOver())

	turn.QueueAutoTriggerable(stubTrigger{})
	assert.False(t, turn.IsOver())

	tr := turn.NextAutoTriggerable()
	assert.NotNil(t, tr)
	assert.True(t, turn.IsOver())
	assert.Nil(t, turn.NextAutoTriggerable())
}

func TestTurnDrawsDone(t *testing.T) {
	turn := engine.NewTurn("alice", 0, 2, 1)
	assert.False(t, turn.DrawsDone())

	turn.PlayerCardsToDraw = 0
	assert.False(t, turn.DrawsDone())

	turn.InfectionCardsToDraw = 0
	assert.True(t, turn.DrawsDone())
}

func TestCarrierAbilitySingleUse(t *testing.T) {
	turn := engine.NewTurn("alice", 4, 0, 0)

	require.NoError(t, turn.UseCarrierAbility())
	assert.True(t, turn.CarrierAbilityUsed())

	err := turn.UseCarrierAbility()
	assert.ErrorIs(t, err, engine.ErrContract)
}

type stubTrigger struct{}

func (stubTrigger) Trigger(g *engine.Game) ([]engine.Event, error) { return nil, nil }
func (stubTrigger) Summary() string                                { return "stub" }
