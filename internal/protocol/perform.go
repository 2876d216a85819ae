package protocol

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/effects"
	"github.com/dreamtides/rules-engine/internal/engineerr"
	"github.com/dreamtides/rules-engine/internal/evaluator"
	"github.com/dreamtides/rules-engine/internal/invalidation"
)

// PerformAction validates action against the current legal-action set for
// player and, if legal, applies it (§6: "legal actions are the only
// accepted inputs; illegal actions fail deterministically"). On success it
// drains triggers, applies the effects of the triggers that fired, and
// drains invalidations so the next Compute call sees up-to-date derived
// state.
func PerformAction(b *battle.BattleState, cache *invalidation.Cache, player core.PlayerName, action GameAction) error {
	if err := validateLegal(b, cache, player, action); err != nil {
		return err
	}

	var err error
	switch a := action.(type) {
	case PlayCardAction:
		err = performPlayCard(b, player, a)
	case ActivateAbilityAction:
		err = performActivateAbility(b, player, a)
	case PassPriorityAction:
		err = performPassPriority(b, player)
	case EndTurnAction:
		err = performEndTurn(b, player)
	case StartNextTurnAction:
		err = performStartNextTurn(b, player)
	case RespondToPromptAction:
		err = performPromptResponse(b, player, a)
	case DebugAction, PanelNavigationAction:
		err = nil
	default:
		err = engineerr.IllegalAction("unrecognized action kind")
	}
	if err != nil {
		return err
	}

	evaluator.ProcessTriggers(b)
	pending := b.PendingEffects
	b.PendingEffects = nil
	for _, p := range pending {
		if err := effects.Apply(b, p.Source, p.Effect, p.Targets); err != nil {
			return err
		}
	}
	cache.Drain(b)
	effects.CheckPointsVictory(b)
	effects.CheckRoundLimit(b)
	return nil
}

func validateLegal(b *battle.BattleState, cache *invalidation.Cache, player core.PlayerName, action GameAction) error {
	legal := Compute(b, player, cache)

	switch a := action.(type) {
	case PlayCardAction:
		std, ok := legal.(Standard)
		if !ok || !containsCard(std.PlayableFromHand, a.Card.CardID()) {
			return engineerr.IllegalAction("card is not legally playable from hand")
		}
	case ActivateAbilityAction:
		if _, ok := legal.(Standard); !ok {
			return engineerr.IllegalAction("no activated abilities are legal right now")
		}
	case PassPriorityAction:
		std, ok := legal.(Standard)
		if !ok || std.Primary != PrimaryPassPriority {
			return engineerr.IllegalAction("pass priority is not legal right now")
		}
	case EndTurnAction:
		std, ok := legal.(Standard)
		if !ok || std.Primary != PrimaryEndTurn {
			return engineerr.IllegalAction("end turn is not legal right now")
		}
	case StartNextTurnAction:
		std, ok := legal.(Standard)
		if !ok || std.Primary != PrimaryStartNextTurn {
			return engineerr.IllegalAction("start next turn is not legal right now")
		}
	case RespondToPromptAction:
		return validatePromptResponse(legal, a)
	case DebugAction, PanelNavigationAction:
		return nil
	default:
		return engineerr.IllegalAction("unrecognized action kind")
	}
	return nil
}

func validatePromptResponse(legal LegalActions, a RespondToPromptAction) error {
	switch p := legal.(type) {
	case SelectCharacterPrompt:
		if a.Character == nil || !containsTarget(p.Valid, *a.Character) {
			return engineerr.PromptMismatch("response does not match the active character prompt")
		}
	case SelectStackCardPrompt:
		if a.StackCard == nil || !containsTarget(p.Valid, *a.StackCard) {
			return engineerr.PromptMismatch("response does not match the active stack-card prompt")
		}
	case SelectVoidCardPrompt:
		for _, target := range a.VoidCards {
			if !containsTarget(p.Valid, target) {
				return engineerr.PromptMismatch("response includes a void card outside the active prompt")
			}
		}
	case SelectPromptChoicePrompt:
		if a.Choice < 0 || a.Choice >= p.ChoiceCount {
			return engineerr.PromptMismatch("choice index out of range for the active prompt")
		}
	case SelectEnergyValuePrompt:
		if int(a.EnergyValue) < p.Minimum || int(a.EnergyValue) > p.Maximum {
			return engineerr.PromptMismatch("energy value out of range for the active prompt")
		}
	case SelectDeckOrderPrompt:
		if len(a.DeckOrder) != len(p.Cards) {
			return engineerr.PromptMismatch("deck order response has the wrong number of cards")
		}
	default:
		return engineerr.PromptMismatch("no prompt is currently active")
	}
	return nil
}

func containsCard(cards []core.CardId, target core.CardId) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

func containsTarget(targets []core.CardObjectId, target core.CardObjectId) bool {
	for _, t := range targets {
		if t == target {
			return true
		}
	}
	return false
}
