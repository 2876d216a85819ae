package invalidation_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/stretchr/testify/require"
)

func newVanillaCharacter(t *testing.T, store *carddef.Store, name string, cost core.Energy, fast bool) carddef.BattleCardIdentity {
	t.Helper()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     name,
		CardType: carddef.TypeCharacter,
		Cost:     cost,
		Spark:    core.Spark(1),
		IsFast:   fast,
	})
	require.NoError(t, err)
	return identity
}

// TestComputeLegalCardsFiltersByAffordability grounds §4.9's
// CanPlayCardsData: only hand cards the player can currently pay for are
// listed as Playable.
func TestComputeLegalCardsFiltersByAffordability(t *testing.T) {
	store := carddef.NewStore()
	b := battle.New(store, 1)

	cheap := newVanillaCharacter(t, store, "TestCheap", core.Energy(1), false)
	expensive := newVanillaCharacter(t, store, "TestExpensive", core.Energy(9), false)

	cheapCard := b.CreateCard(cheap, core.PlayerOne)
	_, err := b.Cards.MoveCard(cheapCard.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	expensiveCard := b.CreateCard(expensive, core.PlayerOne)
	_, err = b.Cards.MoveCard(expensiveCard.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	b.Players[core.PlayerOne].CurrentEnergy = 3

	data := invalidation.ComputeLegalCards(b, core.PlayerOne)
	require.Contains(t, data.Playable, cheapCard.Id)
	require.NotContains(t, data.Playable, expensiveCard.Id)
}

// TestComputeLegalCardsSeparatesFastPlayable grounds §4.7's "fast card"
// distinction used while stack priority is held.
func TestComputeLegalCardsSeparatesFastPlayable(t *testing.T) {
	store := carddef.NewStore()
	b := battle.New(store, 1)

	fast := newVanillaCharacter(t, store, "TestFast", core.Energy(1), true)
	slow := newVanillaCharacter(t, store, "TestSlow", core.Energy(1), false)

	fastCard := b.CreateCard(fast, core.PlayerOne)
	_, err := b.Cards.MoveCard(fastCard.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	slowCard := b.CreateCard(slow, core.PlayerOne)
	_, err = b.Cards.MoveCard(slowCard.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	b.Players[core.PlayerOne].CurrentEnergy = 5

	data := invalidation.ComputeLegalCards(b, core.PlayerOne)
	require.Contains(t, data.Playable, fastCard.Id)
	require.Contains(t, data.Playable, slowCard.Id)
	require.Contains(t, data.FastPlayable, fastCard.Id)
	require.NotContains(t, data.FastPlayable, slowCard.Id)
}

// TestCacheGetComputesLazilyOnFirstUse grounds §4.9: the cache computes on
// first Get rather than requiring an explicit warmup call.
func TestCacheGetComputesLazilyOnFirstUse(t *testing.T) {
	store := carddef.NewStore()
	b := battle.New(store, 1)
	cache := invalidation.NewCache()

	cheap := newVanillaCharacter(t, store, "TestCheap", core.Energy(1), false)
	card := b.CreateCard(cheap, core.PlayerOne)
	_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	b.Players[core.PlayerOne].CurrentEnergy = 3

	data := cache.Get(b, core.PlayerOne)
	require.Contains(t, data.Playable, card.Id)
}

// TestCacheDrainRecomputesOnSubscribedFlag grounds §4.9's
// subscription-flag dispatch: a published invalidation recomputes the
// cache, and a newly-played-to-hand card becomes visible after Drain.
func TestCacheDrainRecomputesOnSubscribedFlag(t *testing.T) {
	store := carddef.NewStore()
	b := battle.New(store, 1)
	cache := invalidation.NewCache()
	b.Players[core.PlayerOne].CurrentEnergy = 5

	initial := cache.Get(b, core.PlayerOne)
	require.Empty(t, initial.Playable)

	cheap := newVanillaCharacter(t, store, "TestCheap", core.Energy(1), false)
	card := b.CreateCard(cheap, core.PlayerOne)
	_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagHandChanged, Player: core.PlayerOne})

	cache.Drain(b)
	after := cache.Get(b, core.PlayerOne)
	require.Contains(t, after.Playable, card.Id)
}
