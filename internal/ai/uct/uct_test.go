package uct_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/ai/uct"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/stretchr/testify/require"
)

func newSearchableBattle(t *testing.T) *battle.BattleState {
	t.Helper()
	store := carddef.NewStore()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestSearchCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(1),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)

	b := battle.New(store, 7)
	b.Status = battle.StatusPlaying
	b.Turn.Phase = battle.PhaseMain

	for i := 0; i < 3; i++ {
		card := b.CreateCard(identity, core.PlayerOne)
		_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
		require.NoError(t, err)
	}
	b.Players[core.PlayerOne].CurrentEnergy = core.Energy(5)

	return b
}

// TestSearchReturnsALegalAction grounds §4.10's top-level contract: search
// returns one of the actions EnumerateActions would offer the acting
// player, not an arbitrary value.
func TestSearchReturnsALegalAction(t *testing.T) {
	b := newSearchableBattle(t)
	config := uct.Config{Iterations: 32, ExplorationConstant: 1.4, MaxPlayoutActions: 20}

	action := uct.Search(b, core.PlayerOne, config)
	require.NotNil(t, action)
	require.Contains(t, uct.EnumerateActions(b, core.PlayerOne, invalidation.NewCache()), action)
}

// TestSearchFromSavedSurvivesNarrowing exercises the scenario S6 flow:
// running search once, telling the saved tree which action was taken, then
// calling SearchFromSaved again. It checks only that the second search
// completes and returns an action; the visit counts carried over from the
// first search are not asserted.
func TestSearchFromSavedSurvivesNarrowing(t *testing.T) {
	b := newSearchableBattle(t)
	config := uct.Config{Iterations: 64, ExplorationConstant: 1.4, MaxPlayoutActions: 20}

	action := uct.Search(b, core.PlayerOne, config)
	require.NotNil(t, action)

	uct.OnActionPerformed(action)

	// A second search from the (possibly narrowed) saved tree must still
	// terminate and return a legal-shaped action rather than panicking on a
	// stale or empty saved tree.
	second := uct.SearchFromSaved(b, core.PlayerOne, config)
	require.NotNil(t, second)
}
