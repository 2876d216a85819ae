package battle_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/stretchr/testify/require"
)

func TestAdvancePhaseCyclesThroughPhases(t *testing.T) {
	turn := battle.TurnState{ActivePlayer: core.PlayerOne, Phase: battle.PhaseJudgment, TurnId: 1}

	turn.AdvancePhase()
	require.Equal(t, battle.PhaseDreamwell, turn.Phase)
	turn.AdvancePhase()
	require.Equal(t, battle.PhaseDraw, turn.Phase)
	turn.AdvancePhase()
	require.Equal(t, battle.PhaseMain, turn.Phase)
	turn.AdvancePhase()
	require.Equal(t, battle.PhaseEnding, turn.Phase)

	next := turn.AdvancePhase()
	require.Equal(t, battle.PhaseJudgment, turn.Phase)
	require.Equal(t, core.PlayerTwo, next)
	require.Equal(t, core.TurnId(2), turn.TurnId)
}

func TestStackLIFO(t *testing.T) {
	b, identity := newTestBattle(t)
	first := b.CreateCard(identity, core.PlayerOne)
	second := b.CreateCard(identity, core.PlayerOne)

	_, err := b.PushStack(battle.StackItem{
		Id:         battle.CardStackItemId{Card: core.StackCardId{ID: first.Id}},
		Controller: core.PlayerOne,
		SourceCard: first.Id,
	})
	require.NoError(t, err)
	_, err = b.PushStack(battle.StackItem{
		Id:         battle.CardStackItemId{Card: core.StackCardId{ID: second.Id}},
		Controller: core.PlayerOne,
		SourceCard: second.Id,
	})
	require.NoError(t, err)

	top, ok := b.PopStack()
	require.True(t, ok)
	require.Equal(t, second.Id, top.SourceCard)

	bottom, ok := b.PopStack()
	require.True(t, ok)
	require.Equal(t, first.Id, bottom.SourceCard)

	require.True(t, b.StackEmpty())
}
