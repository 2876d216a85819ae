package protocol_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/dreamtides/rules-engine/internal/protocol"
	"github.com/stretchr/testify/require"
)

// TestDreamscatterDrawsPerExtraEnergyPaid grounds scenario S2: the user has
// 10 energy, plays a one-cost Dreamscatter-like event paying 2 extra
// energy, and expects total spend of cost+2 and two cards drawn once the
// event resolves.
func TestDreamscatterDrawsPerExtraEnergyPaid(t *testing.T) {
	b, store := newBattle(t)
	cache := invalidation.NewCache()

	filler, err := store.Register(&carddef.CardDefinition{
		Name:     "TestFillerCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		b.CreateCard(filler, core.PlayerOne) // lands in deck by construction
	}

	dreamscatterEffect := ability.Standard{Inner: ability.DrawCardsForEachExtraEnergyPaid{}}
	dreamscatter, err := store.Register(&carddef.CardDefinition{
		Name:     "TestDreamscatter",
		CardType: carddef.TypeEvent,
		Cost:     core.Energy(1),
		Abilities: []ability.Ability{
			ability.EventAbility{Effect: dreamscatterEffect},
		},
	})
	require.NoError(t, err)
	card := b.CreateCard(dreamscatter, core.PlayerOne)
	_, err = b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)
	b.Players[core.PlayerOne].CurrentEnergy = 10

	err = protocol.PerformAction(b, cache, core.PlayerOne, protocol.PlayCardAction{
		Card:      core.HandCardId{ID: card.Id},
		ExtraPaid: core.Energy(2),
	})
	require.NoError(t, err)
	require.Equal(t, core.Energy(7), b.Players[core.PlayerOne].CurrentEnergy)

	err = protocol.PerformAction(b, cache, core.PlayerTwo, protocol.PassPriorityAction{})
	require.NoError(t, err)

	require.Equal(t, 0, len(b.Cards.Stack()))
	require.Equal(t, 2, b.Cards.Count(core.PlayerOne, core.ZoneHand))
	_, hasPrompt := b.FrontPrompt()
	require.False(t, hasPrompt)
}

// TestRoundLimitEndsBattleAsDraw grounds scenario S7: once the round
// counter exceeds the 25-round limit, the battle ends with no winner,
// checked automatically after every PerformAction call.
func TestRoundLimitEndsBattleAsDraw(t *testing.T) {
	b, store := newBattle(t)
	cache := invalidation.NewCache()

	filler, err := store.Register(&carddef.CardDefinition{
		Name:     "TestFillerCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(1),
	})
	require.NoError(t, err)
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for i := 0; i < 200; i++ {
			b.CreateCard(filler, player)
		}
	}

	active := core.PlayerOne
	for round := 0; round < 60 && !b.IsGameOver(); round++ {
		other := active.Opponent()
		require.NoError(t, protocol.PerformAction(b, cache, active, protocol.EndTurnAction{}))
		if b.IsGameOver() {
			break
		}
		require.NoError(t, protocol.PerformAction(b, cache, other, protocol.StartNextTurnAction{}))
		active = other
	}

	require.True(t, b.IsGameOver())
	require.Nil(t, b.Winner)
}
