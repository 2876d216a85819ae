package protocol

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/engineerr"
)

// performPromptResponse consumes the front prompt and applies the player's
// answer (§3). Today the only producer of a prompt is Foresee's
// SelectDeckCardOrder (internal/effects.applyForesee); the remaining prompt
// kinds are validated and popped for forward compatibility with future
// abilities that need to pause mid-resolution for a choice, but have no
// producer yet and so need no further handling here.
func performPromptResponse(b *battle.BattleState, player core.PlayerName, a RespondToPromptAction) error {
	prompt, ok := b.PopPrompt()
	if !ok {
		return engineerr.PromptMismatch("no prompt is currently active")
	}

	switch t := prompt.Type.(type) {
	case battle.SelectDeckCardOrder:
		return applyDeckOrderResponse(b, prompt.Player, t, a.DeckOrder)
	case battle.ChooseCharacter, battle.ChooseStackCard, battle.ChooseVoidCard,
		battle.ChooseEnergyValue, battle.ModalEffectChoice:
		return nil
	default:
		return engineerr.PromptMismatch("unrecognized prompt type")
	}
}

// applyDeckOrderResponse reorders the top of player's deck to match order,
// translating each response ObjectId back to its stable CardId via the
// prompt's own Cards list (order is itself a permutation of object IDs, not
// card IDs, since that is what the wire response carries).
func applyDeckOrderResponse(b *battle.BattleState, player core.PlayerName, prompt battle.SelectDeckCardOrder, order []core.CardObjectId) error {
	if len(order) != len(prompt.Cards) {
		return engineerr.PromptMismatch("deck order response has the wrong number of cards")
	}

	cardIds := make([]core.CardId, 0, len(order))
	for _, target := range order {
		if !b.Cards.TargetValid(target) {
			continue // stale target: silently dropped, §7
		}
		cardIds = append(cardIds, target.Card)
	}
	if len(cardIds) != len(prompt.Cards) {
		return nil // one or more targets went stale; leave the deck order unchanged
	}
	return b.Cards.ReorderTopOfZone(player, core.ZoneDeck, cardIds)
}
