package effects

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
)

// ResolveTop pops the top stack item and resolves it completely: applies
// its effect against its stored targets, then moves the underlying card (if
// any) to its post-resolution zone — Void for events, Battlefield for
// characters — per §4.7's stack-resolution protocol. Returns the
// controller who should receive priority next: the item's controller if
// the stack is still non-empty afterward, otherwise false.
func ResolveTop(b *battle.BattleState) (core.PlayerName, bool, error) {
	item, ok := b.PopStack()
	if !ok {
		return 0, false, nil
	}

	if err := ApplyWithPayment(b, item.SourceCard, item.Effect, item.Targets, item.Payment); err != nil {
		return 0, false, err
	}

	if cardItem, isCard := item.Id.(battle.CardStackItemId); isCard {
		if err := resolveCardPostResolution(b, cardItem.Card.CardID(), item.Controller); err != nil {
			return 0, false, err
		}
	}

	if !b.StackEmpty() {
		return item.Controller, true, nil
	}
	return 0, false, nil
}

// resolveCardPostResolution moves a stack card to Void (events) or
// Battlefield (characters), unless its effect already relocated it away
// from the stack zone (e.g. a Banish-from-stack counter-effect).
func resolveCardPostResolution(b *battle.BattleState, cardId core.CardId, controller core.PlayerName) error {
	zone, _, ok := b.Cards.Zone(cardId)
	if !ok || zone != core.ZoneStack {
		return nil // already moved elsewhere by its own effect
	}

	def, ok := b.Definition(cardId)
	if !ok {
		return nil
	}

	if def.CardType == carddef.TypeCharacter {
		return materializeOnto(b, cardId, controller)
	}

	_, err := b.Cards.MoveCard(cardId, core.ZoneVoid, controller)
	return err
}

// CheckRoundLimit ends the battle as a double defeat once the round
// counter passes RoundLimit (§4.8, S7).
func CheckRoundLimit(b *battle.BattleState) {
	if b.Turn.RoundNumber() > RoundLimit && !b.IsGameOver() {
		b.EndGame(nil)
	}
}

// CheckPointsVictory ends the battle once a player's points reach
// PointsToWin (§3). If both players somehow cross the threshold in the
// same check (e.g. a symmetric effect), the higher total wins; an exact
// tie is a draw.
func CheckPointsVictory(b *battle.BattleState) {
	if b.IsGameOver() {
		return
	}
	one := b.Players[core.PlayerOne].Points
	two := b.Players[core.PlayerTwo].Points
	oneWon := one >= b.PointsToWin
	twoWon := two >= b.PointsToWin
	switch {
	case oneWon && twoWon && one == two:
		b.EndGame(nil)
	case oneWon && (!twoWon || one > two):
		winner := core.PlayerOne
		b.EndGame(&winner)
	case twoWon:
		winner := core.PlayerTwo
		b.EndGame(&winner)
	}
}
