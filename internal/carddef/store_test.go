package carddef_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/stretchr/testify/require"
)

func TestStoreRegisterAndLookup(t *testing.T) {
	store := carddef.NewStore()

	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestVanillaCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(2),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)
	require.Equal(t, carddef.BattleCardIdentity(0), identity)

	def, ok := store.Lookup(identity)
	require.True(t, ok)
	require.Equal(t, "TestVanillaCharacter", def.Name)
	require.True(t, def.IsCharacter())

	byName, ok := store.LookupByName("TestVanillaCharacter")
	require.True(t, ok)
	require.Same(t, def, byName)
}

func TestStoreRejectsDuplicateNames(t *testing.T) {
	store := carddef.NewStore()
	_, err := store.Register(&carddef.CardDefinition{Name: "Dup"})
	require.NoError(t, err)
	_, err = store.Register(&carddef.CardDefinition{Name: "Dup"})
	require.Error(t, err)
}

func TestStoreLookupMissingIdentity(t *testing.T) {
	store := carddef.NewStore()
	_, ok := store.Lookup(carddef.BattleCardIdentity(42))
	require.False(t, ok)
}
