package effects_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/effects"
	"github.com/stretchr/testify/require"
)

func newVanillaCharacter(t *testing.T, store *carddef.Store, name string) carddef.BattleCardIdentity {
	t.Helper()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     name,
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(2),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)
	return identity
}

// TestDissolveResolves grounds scenario S1: a fast Dissolve moves its
// target to the target's owner's void.
func TestDissolveResolves(t *testing.T) {
	store := carddef.NewStore()
	identity := newVanillaCharacter(t, store, "TestVanillaCharacter")
	b := battle.New(store, 1)

	enemy := b.CreateCard(identity, core.PlayerTwo)
	_, err := b.Cards.MoveCard(enemy.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)

	dissolve, err := store.Register(&carddef.CardDefinition{
		Name:     "TestDissolve",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
		IsFast:   true,
	})
	require.NoError(t, err)
	dissolveCard := b.CreateCard(dissolve, core.PlayerOne)

	effect := ability.Standard{Inner: ability.DissolveCharacter{Target: ability.Enemy{Card: ability.CharacterCard{}}}}
	targets := battle.StandardTargets{Target: battle.CharacterTarget{Target: enemy.ObjectIdOf()}}

	err = effects.Apply(b, dissolveCard.Id, effect, targets)
	require.NoError(t, err)

	require.Equal(t, 0, b.Cards.Count(core.PlayerTwo, core.ZoneBattlefield))
	require.Equal(t, 1, b.Cards.Count(core.PlayerTwo, core.ZoneVoid))
}

// TestDissolveSkipsStaleTarget grounds §7's StaleTarget recovery: a target
// whose object ID no longer matches is silently skipped rather than
// erroring.
func TestDissolveSkipsStaleTarget(t *testing.T) {
	store := carddef.NewStore()
	identity := newVanillaCharacter(t, store, "TestVanillaCharacter")
	b := battle.New(store, 1)

	enemy := b.CreateCard(identity, core.PlayerTwo)
	_, err := b.Cards.MoveCard(enemy.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)
	stale := enemy.ObjectIdOf()
	// Moving again bumps the object id, invalidating the stored target.
	_, err = b.Cards.MoveCard(enemy.Id, core.ZoneHand, core.PlayerTwo)
	require.NoError(t, err)

	effect := ability.Standard{Inner: ability.DissolveCharacter{Target: ability.Enemy{Card: ability.CharacterCard{}}}}
	targets := battle.StandardTargets{Target: battle.CharacterTarget{Target: stale}}

	err = effects.Apply(b, enemy.Id, effect, targets)
	require.NoError(t, err)
	require.Equal(t, 0, b.Cards.Count(core.PlayerTwo, core.ZoneVoid))
}

// TestDrawTriggersHandSizeExcess grounds scenario S3.
func TestDrawTriggersHandSizeExcess(t *testing.T) {
	store := carddef.NewStore()
	identity := newVanillaCharacter(t, store, "Filler")
	b := battle.New(store, 1)

	for i := 0; i < 9; i++ {
		card := b.CreateCard(identity, core.PlayerOne)
		_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
		require.NoError(t, err)
	}
	deckCard := b.CreateCard(identity, core.PlayerOne)
	_ = deckCard // already in ZoneDeck by construction

	startEnergy := b.Players[core.PlayerOne].CurrentEnergy
	err := effects.DrawN(b, core.PlayerOne, 1)
	require.NoError(t, err)

	require.Equal(t, 10, b.Cards.Count(core.PlayerOne, core.ZoneHand))
	require.Equal(t, startEnergy+1, b.Players[core.PlayerOne].CurrentEnergy)
}

// TestMaterializeRespectsBattlefieldLimit grounds scenario S4.
func TestMaterializeRespectsBattlefieldLimit(t *testing.T) {
	store := carddef.NewStore()
	identity := newVanillaCharacter(t, store, "Filler")
	b := battle.New(store, 1)

	for i := 0; i < effects.BattlefieldLimit; i++ {
		card := b.CreateCard(identity, core.PlayerOne)
		_, err := b.Cards.MoveCard(card.Id, core.ZoneBattlefield, core.PlayerOne)
		require.NoError(t, err)
	}

	ninth := b.CreateCard(identity, core.PlayerOne)
	_, err := b.Cards.MoveCard(ninth.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	effect := ability.Standard{Inner: ability.MaterializeCharacter{Target: ability.This{}}}
	err = effects.Apply(b, ninth.Id, effect, nil)
	require.NoError(t, err)

	require.Equal(t, effects.BattlefieldLimit, b.Cards.Count(core.PlayerOne, core.ZoneBattlefield))
	require.Equal(t, 1, b.Cards.Count(core.PlayerOne, core.ZoneVoid))
}

// TestGainPointsEndsGameAtThreshold grounds §3's win-threshold rule.
func TestGainPointsEndsGameAtThreshold(t *testing.T) {
	store := carddef.NewStore()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestScoringEvent",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	b := battle.New(store, 1)
	b.Status = battle.StatusPlaying
	b.PointsToWin = core.Points(5)
	b.Players[core.PlayerOne].Points = core.Points(3)
	card := b.CreateCard(identity, core.PlayerOne)

	effect := ability.Standard{Inner: ability.GainPoints{Amount: core.Points(2)}}
	err = effects.Apply(b, card.Id, effect, nil)
	require.NoError(t, err)

	require.True(t, b.IsGameOver())
	require.NotNil(t, b.Winner)
	require.Equal(t, core.PlayerOne, *b.Winner)
}

// TestReturnToHandAutoTargetsSoleEnemyCharacter grounds scenario S5: when
// no explicit target was ever stored (the zero-value battle.EffectTargets
// internal/ai/uct.EnumerateActions deliberately produces), a
// single-candidate Enemy{CharacterCard{}} predicate still resolves by
// auto-targeting the one legal character instead of silently skipping.
func TestReturnToHandAutoTargetsSoleEnemyCharacter(t *testing.T) {
	store := carddef.NewStore()
	identity := newVanillaCharacter(t, store, "TestVanillaCharacter")
	b := battle.New(store, 1)

	enemy := b.CreateCard(identity, core.PlayerTwo)
	_, err := b.Cards.MoveCard(enemy.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)

	source, err := store.Register(&carddef.CardDefinition{
		Name:     "TestReturnEvent",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	sourceCard := b.CreateCard(source, core.PlayerOne)

	effect := ability.Standard{Inner: ability.ReturnToHand{Target: ability.Enemy{Card: ability.CharacterCard{}}}}
	err = effects.Apply(b, sourceCard.Id, effect, nil)
	require.NoError(t, err)

	require.Equal(t, 0, b.Cards.Count(core.PlayerTwo, core.ZoneBattlefield))
	require.Equal(t, 1, b.Cards.Count(core.PlayerTwo, core.ZoneHand))
}

// TestReturnToHandSkipsAmbiguousAutoTarget grounds the flip side of S5: two
// candidate characters is a real choice, not a default, so an unresolved
// target still falls back to §7's StaleTarget silent skip.
func TestReturnToHandSkipsAmbiguousAutoTarget(t *testing.T) {
	store := carddef.NewStore()
	identity := newVanillaCharacter(t, store, "TestVanillaCharacter")
	b := battle.New(store, 1)

	first := b.CreateCard(identity, core.PlayerTwo)
	_, err := b.Cards.MoveCard(first.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)
	second := b.CreateCard(identity, core.PlayerTwo)
	_, err = b.Cards.MoveCard(second.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)

	source, err := store.Register(&carddef.CardDefinition{
		Name:     "TestReturnEvent",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	sourceCard := b.CreateCard(source, core.PlayerOne)

	effect := ability.Standard{Inner: ability.ReturnToHand{Target: ability.Enemy{Card: ability.CharacterCard{}}}}
	err = effects.Apply(b, sourceCard.Id, effect, nil)
	require.NoError(t, err)

	require.Equal(t, 2, b.Cards.Count(core.PlayerTwo, core.ZoneBattlefield))
	require.Equal(t, 0, b.Cards.Count(core.PlayerTwo, core.ZoneHand))
}

func TestReclaimBanishesSourceAfterUse(t *testing.T) {
	store := carddef.NewStore()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestReclaimEvent",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	b := battle.New(store, 1)
	card := b.CreateCard(identity, core.PlayerOne)
	_, err = b.Cards.MoveCard(card.Id, core.ZoneVoid, core.PlayerOne)
	require.NoError(t, err)

	effect := ability.Standard{Inner: ability.ReclaimFromVoid{}}
	err = effects.Apply(b, card.Id, effect, nil)
	require.NoError(t, err)

	require.Equal(t, 1, b.Cards.Count(core.PlayerOne, core.ZoneBanished))
	instance, ok := b.Cards.Get(card.Id)
	require.True(t, ok)
	require.True(t, instance.AbilityState(0).ReclaimUsed)
}
