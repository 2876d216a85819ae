package battle_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/stretchr/testify/require"
)

func newTestBattle(t *testing.T) (*battle.BattleState, carddef.BattleCardIdentity) {
	t.Helper()
	store := carddef.NewStore()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestVanillaCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(1),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)
	return battle.New(store, 42), identity
}

func TestZoneExclusivity(t *testing.T) {
	b, identity := newTestBattle(t)
	card := b.CreateCard(identity, core.PlayerOne)

	require.Equal(t, 1, b.Cards.Count(core.PlayerOne, core.ZoneDeck))

	_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	require.Equal(t, 0, b.Cards.Count(core.PlayerOne, core.ZoneDeck))
	require.Equal(t, 1, b.Cards.Count(core.PlayerOne, core.ZoneHand))

	zone, controller, ok := b.Cards.Zone(card.Id)
	require.True(t, ok)
	require.Equal(t, core.ZoneHand, zone)
	require.Equal(t, core.PlayerOne, controller)
}

func TestObjectIdMonotonicity(t *testing.T) {
	b, identity := newTestBattle(t)
	card := b.CreateCard(identity, core.PlayerOne)
	first := card.ObjectId

	change, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	require.Greater(t, change.NewObjectId, first)

	change2, err := b.Cards.MoveCard(card.Id, core.ZoneBattlefield, core.PlayerOne)
	require.NoError(t, err)
	require.Greater(t, change2.NewObjectId, change.NewObjectId)
}

func TestTargetValidityLaw(t *testing.T) {
	b, identity := newTestBattle(t)
	card := b.CreateCard(identity, core.PlayerOne)

	target := card.ObjectIdOf()
	require.True(t, b.Cards.TargetValid(target))

	_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	// The old (CardId, ObjectId) pair is now stale.
	require.False(t, b.Cards.TargetValid(target))
	// But a freshly captured pair for the same card is valid again.
	require.True(t, b.Cards.TargetValid(card.ObjectIdOf()))
}

func TestMoveCardUnknownCard(t *testing.T) {
	b, _ := newTestBattle(t)
	_, err := b.Cards.MoveCard(core.CardId(999), core.ZoneHand, core.PlayerOne)
	require.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	b, identity := newTestBattle(t)
	card := b.CreateCard(identity, core.PlayerOne)

	clone := b.Clone()
	_, err := clone.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	// The original is untouched by mutating the clone.
	zone, _, ok := b.Cards.Zone(card.Id)
	require.True(t, ok)
	require.Equal(t, core.ZoneDeck, zone)
}
