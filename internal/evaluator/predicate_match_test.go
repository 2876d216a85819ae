package evaluator_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/evaluator"
	"github.com/stretchr/testify/require"
)

func setupTwoCharacters(t *testing.T) (*battle.BattleState, *battle.CardInstance, *battle.CardInstance) {
	t.Helper()
	store := carddef.NewStore()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "Vanilla",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(2),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)

	b := battle.New(store, 1)
	mine := b.CreateCard(identity, core.PlayerOne)
	theirs := b.CreateCard(identity, core.PlayerTwo)
	_, err = b.Cards.MoveCard(mine.Id, core.ZoneBattlefield, core.PlayerOne)
	require.NoError(t, err)
	_, err = b.Cards.MoveCard(theirs.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)
	return b, mine, theirs
}

func TestMatchesEnemy(t *testing.T) {
	b, mine, theirs := setupTwoCharacters(t)
	source := evaluator.CardSource(b, mine.Id)

	require.True(t, evaluator.Matches(b, source, ability.Enemy{Card: ability.AnyCard{}}, theirs.Id))
	require.False(t, evaluator.Matches(b, source, ability.Enemy{Card: ability.AnyCard{}}, mine.Id))
}

func TestMatchesAnother(t *testing.T) {
	b, mine, _ := setupTwoCharacters(t)
	source := evaluator.CardSource(b, mine.Id)

	// Another excludes the source itself even though it matches controller.
	require.False(t, evaluator.Matches(b, source, ability.Another{Card: ability.AnyCard{}}, mine.Id))
}

func TestMatchesYourAndAny(t *testing.T) {
	b, mine, theirs := setupTwoCharacters(t)
	source := evaluator.CardSource(b, mine.Id)

	require.True(t, evaluator.Matches(b, source, ability.Your{Card: ability.AnyCard{}}, mine.Id))
	require.False(t, evaluator.Matches(b, source, ability.Your{Card: ability.AnyCard{}}, theirs.Id))
	require.True(t, evaluator.Matches(b, source, ability.Any{Card: ability.AnyCard{}}, theirs.Id))
	require.True(t, evaluator.Matches(b, source, ability.Any{Card: ability.AnyCard{}}, mine.Id))
}

func TestMatchesAnyOtherExcludesSource(t *testing.T) {
	b, mine, theirs := setupTwoCharacters(t)
	source := evaluator.CardSource(b, mine.Id)

	require.False(t, evaluator.Matches(b, source, ability.AnyOther{Card: ability.AnyCard{}}, mine.Id))
	require.True(t, evaluator.Matches(b, source, ability.AnyOther{Card: ability.AnyCard{}}, theirs.Id))
}

func TestCostCompareOperator(t *testing.T) {
	b, mine, _ := setupTwoCharacters(t)
	source := evaluator.CardSource(b, mine.Id)

	exactly := ability.Your{Card: ability.CostCompare{Op: ability.OpExactly, Value: 2}}
	require.True(t, evaluator.Matches(b, source, exactly, mine.Id))

	tooHigh := ability.Your{Card: ability.CostCompare{Op: ability.OpExactly, Value: 3}}
	require.False(t, evaluator.Matches(b, source, tooHigh, mine.Id))
}

func TestEffectiveCostWithoutReductionIsPrintedCost(t *testing.T) {
	b, mine, _ := setupTwoCharacters(t)
	require.Equal(t, core.Energy(2), evaluator.EffectiveCost(b, mine.Id))
}
