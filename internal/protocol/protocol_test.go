package protocol_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/dreamtides/rules-engine/internal/protocol"
	"github.com/stretchr/testify/require"
)

func newBattle(t *testing.T) (*battle.BattleState, *carddef.Store) {
	t.Helper()
	store := carddef.NewStore()
	b := battle.New(store, 1)
	b.Status = battle.StatusPlaying
	b.Turn.Phase = battle.PhaseMain
	return b, store
}

// TestComputeMainPhaseOffersEndTurn grounds §4.7: the active player in
// Main phase with an empty stack sees Standard{Primary: PrimaryEndTurn}.
func TestComputeMainPhaseOffersEndTurn(t *testing.T) {
	b, _ := newBattle(t)
	cache := invalidation.NewCache()

	legal := protocol.Compute(b, core.PlayerOne, cache)
	std, ok := legal.(protocol.Standard)
	require.True(t, ok)
	require.Equal(t, protocol.PrimaryEndTurn, std.Primary)
	require.False(t, std.FastOnly)
}

// TestComputeOpponentHasNoActionsInMainPhase grounds §4.7: the
// non-active player sees NoActionsInCurrentPhase outside their own window.
func TestComputeOpponentHasNoActionsInMainPhase(t *testing.T) {
	b, _ := newBattle(t)
	cache := invalidation.NewCache()

	legal := protocol.Compute(b, core.PlayerTwo, cache)
	require.IsType(t, protocol.NoActionsInCurrentPhase{}, legal)
}

// TestPlayCardThenPassPriorityResolvesDissolve grounds scenario S1
// end-to-end through PerformAction: playing a fast Dissolve event passes
// priority to the opponent; passing priority resolves it, moving the
// targeted enemy character to void.
func TestPlayCardThenPassPriorityResolvesDissolve(t *testing.T) {
	b, store := newBattle(t)
	cache := invalidation.NewCache()

	character, err := store.Register(&carddef.CardDefinition{
		Name:     "TestVanillaCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(2),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)
	enemy := b.CreateCard(character, core.PlayerTwo)
	_, err = b.Cards.MoveCard(enemy.Id, core.ZoneBattlefield, core.PlayerTwo)
	require.NoError(t, err)

	dissolveEffect := ability.Standard{Inner: ability.DissolveCharacter{Target: ability.Enemy{Card: ability.CharacterCard{}}}}
	dissolve, err := store.Register(&carddef.CardDefinition{
		Name:     "TestDissolve",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
		IsFast:   true,
		Abilities: []ability.Ability{
			ability.EventAbility{Effect: dissolveEffect},
		},
	})
	require.NoError(t, err)
	dissolveCard := b.CreateCard(dissolve, core.PlayerOne)
	_, err = b.Cards.MoveCard(dissolveCard.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	b.Players[core.PlayerOne].CurrentEnergy = 5

	targets := battle.StandardTargets{Target: battle.CharacterTarget{Target: enemy.ObjectIdOf()}}
	err = protocol.PerformAction(b, cache, core.PlayerOne, protocol.PlayCardAction{
		Card:    core.HandCardId{ID: dissolveCard.Id},
		Targets: targets,
	})
	require.NoError(t, err)
	require.NotNil(t, b.StackPriority)
	require.Equal(t, core.PlayerTwo, *b.StackPriority)
	require.Equal(t, 1, len(b.Cards.Stack()))

	err = protocol.PerformAction(b, cache, core.PlayerTwo, protocol.PassPriorityAction{})
	require.NoError(t, err)

	require.Equal(t, 0, len(b.Cards.Stack()))
	require.Equal(t, 0, b.Cards.Count(core.PlayerTwo, core.ZoneBattlefield))
	require.Equal(t, 1, b.Cards.Count(core.PlayerTwo, core.ZoneVoid))
	require.Nil(t, b.StackPriority)
}

// TestPerformActionRejectsUnaffordableCard grounds §6/§7: IllegalAction is
// returned rather than mutating state when the player can't pay.
func TestPerformActionRejectsUnaffordableCard(t *testing.T) {
	b, store := newBattle(t)
	cache := invalidation.NewCache()

	expensive, err := store.Register(&carddef.CardDefinition{
		Name:     "TestExpensiveCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(9),
		Spark:    core.Spark(3),
	})
	require.NoError(t, err)
	card := b.CreateCard(expensive, core.PlayerOne)
	_, err = b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	b.Players[core.PlayerOne].CurrentEnergy = 1

	err = protocol.PerformAction(b, cache, core.PlayerOne, protocol.PlayCardAction{
		Card: core.HandCardId{ID: card.Id},
	})
	require.Error(t, err)
	require.Equal(t, 0, len(b.Cards.Stack()))
}

// TestEndTurnThenStartNextTurnAutoAdvancesToMain grounds §4.7's turn/phase
// state machine: StartNextTurn skips straight through the new active
// player's Judgment/Dreamwell/Draw phases to Main.
func TestEndTurnThenStartNextTurnAutoAdvancesToMain(t *testing.T) {
	b, store := newBattle(t)
	cache := invalidation.NewCache()

	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestFillerCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	deckCard := b.CreateCard(identity, core.PlayerTwo)
	_ = deckCard

	err = protocol.PerformAction(b, cache, core.PlayerOne, protocol.EndTurnAction{})
	require.NoError(t, err)
	require.Equal(t, battle.PhaseEnding, b.Turn.Phase)
	require.Equal(t, core.PlayerOne, b.Turn.ActivePlayer)

	err = protocol.PerformAction(b, cache, core.PlayerTwo, protocol.StartNextTurnAction{})
	require.NoError(t, err)
	require.Equal(t, battle.PhaseMain, b.Turn.Phase)
	require.Equal(t, core.PlayerTwo, b.Turn.ActivePlayer)
	require.Equal(t, 1, b.Cards.Count(core.PlayerTwo, core.ZoneHand))
}
