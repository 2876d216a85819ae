package protocol

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/effects"
	"github.com/dreamtides/rules-engine/internal/engineerr"
	"github.com/dreamtides/rules-engine/internal/evaluator"
)

// performPlayCard implements §4.7 step 1: the card moves to the shared
// stack, payment is collected, and priority passes to the opponent of its
// controller.
func performPlayCard(b *battle.BattleState, player core.PlayerName, a PlayCardAction) error {
	cardId := a.Card.CardID()
	def, ok := b.Definition(cardId)
	if !ok {
		return engineerr.IllegalAction("card definition not found")
	}

	baseCost := evaluator.EffectiveCost(b, cardId)
	total := baseCost + a.ExtraPaid
	if total > b.Players[player].CurrentEnergy {
		return engineerr.IllegalAction("insufficient energy to play this card")
	}

	effect := cardPlayEffect(def, a.ModalIndex)

	change, err := b.PushStack(battle.StackItem{
		Id:         battle.CardStackItemId{Card: core.StackCardId{ID: cardId}},
		Controller: player,
		Targets:    a.Targets,
		SourceCard: cardId,
		Effect:     effect,
		Payment:    battle.PaymentContext{BaseCost: baseCost, ExtraPaid: a.ExtraPaid},
	})
	if err != nil {
		return err
	}
	_ = change

	effects.SpendEnergy(b, player, total)
	b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerPlayedCard), Source: cardId, HasSource: true})
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagStackChanged, Player: player})
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagHandChanged, Player: player})

	opponent := player.Opponent()
	b.StackPriority = &opponent
	return nil
}

// cardPlayEffect returns the effect a played card resolves for: an event
// card's EventAbility effect (selecting a Modal branch if modalIndex names
// one), or an implicit self-materialization for a character card, applied
// when the stack item resolves. resolveCardPostResolution
// (internal/effects) then moves any card still on the stack after Apply
// to its post-resolution zone.
func cardPlayEffect(def *carddef.CardDefinition, modalIndex int) ability.Effect {
	if def.IsCharacter() {
		return ability.Standard{Inner: ability.MaterializeCharacter{Target: ability.This{}}}
	}
	for _, a := range def.Abilities {
		event, ok := a.(ability.EventAbility)
		if !ok {
			continue
		}
		if modal, ok := event.Effect.(ability.Modal); ok {
			if modalIndex >= 0 && modalIndex < len(modal.Choices) {
				return modal.Choices[modalIndex]
			}
		}
		return event.Effect
	}
	return ability.List{}
}

func performActivateAbility(b *battle.BattleState, player core.PlayerName, a ActivateAbilityAction) error {
	for _, instance := range b.ActivatedAbility {
		if instance.Id != a.Ability {
			continue
		}
		switch cost := instance.Cost.(type) {
		case ability.EnergyCost:
			effects.SpendEnergy(b, player, cost.Amount)
		case ability.BanishFromVoidCost:
			// The UI supplies which void card to banish via a.Targets when
			// the cost itself requires a target; a costless activation
			// (e.g. one already tied to the source card's own reclaim
			// state) needs nothing further here.
		case ability.NoCost:
		}

		opponent := player.Opponent()
		b.StackPriority = &opponent
		_, err := b.PushStack(battle.StackItem{
			Id:         battle.ActivatedAbilityStackItemId{Ability: a.Ability},
			Controller: player,
			Targets:    a.Targets,
			SourceCard: a.Ability.Card,
			Effect:     instance.Effect,
		})
		if err == nil {
			b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagStackChanged, Player: player})
		}
		return err
	}
	return engineerr.IllegalAction("no such activated ability instance")
}
