package commands_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/commands"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/stretchr/testify/require"
)

func newCommandTestBattle(t *testing.T) (*battle.BattleState, carddef.BattleCardIdentity) {
	t.Helper()
	store := carddef.NewStore()
	identity, err := store.Register(&carddef.CardDefinition{
		Name:     "TestCommandCharacter",
		CardType: carddef.TypeCharacter,
		Cost:     core.Energy(1),
		Spark:    core.Spark(1),
	})
	require.NoError(t, err)
	return battle.New(store, 1), identity
}

func TestDiffEmitsCreateCardForNewlyVisibleCard(t *testing.T) {
	b, identity := newCommandTestBattle(t)
	before := commands.Capture(b)

	card := b.CreateCard(identity, core.PlayerOne)
	_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	cmds := commands.Diff(before, b)
	require.Contains(t, cmds, commands.CreateCard{Card: card.Id, Owner: core.PlayerOne, Zone: core.ZoneHand, Position: 0})
}

func TestDiffEmitsMoveCardForZoneChange(t *testing.T) {
	b, identity := newCommandTestBattle(t)
	card := b.CreateCard(identity, core.PlayerOne)
	_, err := b.Cards.MoveCard(card.Id, core.ZoneHand, core.PlayerOne)
	require.NoError(t, err)

	before := commands.Capture(b)
	_, err = b.Cards.MoveCard(card.Id, core.ZoneBattlefield, core.PlayerOne)
	require.NoError(t, err)

	cmds := commands.Diff(before, b)
	require.Contains(t, cmds, commands.MoveCard{Card: card.Id, Zone: core.ZoneBattlefield, Position: 0})
}

func TestDiffEmitsUpdatePlayerUiOnEnergyChange(t *testing.T) {
	b, _ := newCommandTestBattle(t)
	before := commands.Capture(b)

	b.Players[core.PlayerOne].CurrentEnergy += core.Energy(3)

	cmds := commands.Diff(before, b)
	require.Contains(t, cmds, commands.UpdatePlayerUi{
		Player: core.PlayerOne,
		Energy: b.Players[core.PlayerOne].CurrentEnergy,
		Points: b.Players[core.PlayerOne].Points,
	})
}

func TestDiffEmitsDisplayPromptForFrontPrompt(t *testing.T) {
	b, _ := newCommandTestBattle(t)
	before := commands.Capture(b)

	b.PushPrompt(battle.Prompt{Player: core.PlayerOne, Type: battle.ChooseEnergyValue{Minimum: 0, Maximum: 2}})

	cmds := commands.Diff(before, b)
	require.Contains(t, cmds, commands.DisplayPrompt{Player: core.PlayerOne, Label: "choose_energy_value"})
}
