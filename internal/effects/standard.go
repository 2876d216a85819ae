package effects

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/evaluator"
)

func applyStandard(b *battle.BattleState, source core.CardId, effect ability.StandardEffect, targets battle.EffectTargets, payment battle.PaymentContext) error {
	switch eff := effect.(type) {
	case ability.DissolveCharacter:
		return applyDissolve(b, source, eff, targets)
	case ability.MaterializeCharacter:
		return applyMaterialize(b, source, eff, targets)
	case ability.BanishCharacterEffect:
		return applyBanish(b, source, eff, targets)
	case ability.AbandonCharacter:
		return applyAbandon(b, source, eff, targets)
	case ability.ReturnToHand:
		return applyReturnToHand(b, source, eff, targets)
	case ability.DrawCards:
		controller, _ := evaluator.Controller(b, source)
		return DrawN(b, controller, eff.Count)
	case ability.DiscardCards:
		return applyDiscard(b, source, eff)
	case ability.GainEnergy:
		controller, _ := evaluator.Controller(b, source)
		GainEnergy(b, controller, eff.Amount)
		return nil
	case ability.DoubleYourEnergy:
		controller, _ := evaluator.Controller(b, source)
		return applyDoubleEnergy(b, controller)
	case ability.GainTwiceThatMuchEnergyInstead:
		controller, _ := evaluator.Controller(b, source)
		return applyDoubleEnergy(b, controller)
	case ability.GainSpark:
		return applyGainSpark(b, source, eff, targets)
	case ability.GainPoints:
		controller, _ := evaluator.Controller(b, source)
		player := b.Players[controller]
		player.Points = core.SatAddPoints(player.Points, int(eff.Amount))
		CheckPointsVictory(b)
		return nil
	case ability.Foresee:
		controller, _ := evaluator.Controller(b, source)
		return applyForesee(b, controller, eff.Count)
	case ability.PreventDissolve:
		return applyPreventDissolve(b, source, eff, targets)
	case ability.ReclaimFromVoid:
		return applyReclaim(b, source)
	case ability.GainEnergyForEach:
		return applyGainEnergyForEach(b, source, eff)
	case ability.DrawCardsForEachExtraEnergyPaid:
		controller, _ := evaluator.Controller(b, source)
		return DrawN(b, controller, int(payment.ExtraPaid))
	default:
		return nil
	}
}

func applyDissolve(b *battle.BattleState, source core.CardId, eff ability.DissolveCharacter, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil // StaleTarget: silently skip
	}
	if evaluator.CannotBeDissolved(b, cardId) {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	owner := instance.Owner
	_, err := b.Cards.MoveCard(cardId, core.ZoneVoid, owner)
	if err == nil {
		b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerDissolved), Source: cardId, HasSource: true})
		publishBattlefieldChanged(b, owner)
		publishVoidChanged(b, owner)
	}
	return err
}

// publishBattlefieldChanged notifies C9 that owner's battlefield changed,
// invalidating both owner's own cache entry and (per the original
// can_play.rs dispatch) the opponent's, since opponent-battlefield-aware
// static abilities can change what the opponent may legally play.
func publishBattlefieldChanged(b *battle.BattleState, owner core.PlayerName) {
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagOwnBattlefieldChanged, Player: owner})
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagOpponentBattlefieldChanged, Player: owner.Opponent()})
}

func publishVoidChanged(b *battle.BattleState, owner core.PlayerName) {
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagOwnVoidChanged, Player: owner})
}

func applyMaterialize(b *battle.BattleState, source core.CardId, eff ability.MaterializeCharacter, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	if err := materializeOnto(b, cardId, instance.Owner); err != nil {
		return err
	}
	b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerMaterialized), Source: cardId, HasSource: true})
	publishBattlefieldChanged(b, instance.Owner)
	return nil
}

// materializeOnto moves cardId onto owner's battlefield, enforcing the
// battlefield-size limit (§4.8, S4): if owner is already at BattlefieldLimit,
// the new arrival is immediately sent to owner's void instead of staying
// in play. A future richer implementation may instead open an abandonment
// prompt letting the player choose which character to lose; the spec
// permits either ("or an abandonment prompt preceded it").
func materializeOnto(b *battle.BattleState, cardId core.CardId, owner core.PlayerName) error {
	if b.Cards.Count(owner, core.ZoneBattlefield) >= BattlefieldLimit {
		_, err := b.Cards.MoveCard(cardId, core.ZoneVoid, owner)
		return err
	}
	_, err := b.Cards.MoveCard(cardId, core.ZoneBattlefield, owner)
	return err
}

func applyBanish(b *battle.BattleState, source core.CardId, eff ability.BanishCharacterEffect, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	owner := instance.Owner
	_, err := b.Cards.MoveCard(cardId, core.ZoneBanished, owner)
	if err == nil {
		publishBattlefieldChanged(b, owner)
	}
	return err
}

func applyAbandon(b *battle.BattleState, source core.CardId, eff ability.AbandonCharacter, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	owner := instance.Owner
	_, err := b.Cards.MoveCard(cardId, core.ZoneVoid, owner)
	if err == nil {
		publishBattlefieldChanged(b, owner)
		publishVoidChanged(b, owner)
	}
	return err
}

func applyReturnToHand(b *battle.BattleState, source core.CardId, eff ability.ReturnToHand, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	owner := instance.Owner
	_, err := b.Cards.MoveCard(cardId, core.ZoneHand, owner)
	if err == nil {
		publishBattlefieldChanged(b, owner)
		b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagHandChanged, Player: owner})
	}
	return err
}

func applyDiscard(b *battle.BattleState, source core.CardId, eff ability.DiscardCards) error {
	controller, _ := evaluator.Controller(b, source)
	hand := b.Cards.InZone(controller, core.ZoneHand)
	count := eff.Count
	if count > len(hand) {
		count = len(hand)
	}
	for i := 0; i < count; i++ {
		if _, err := b.Cards.MoveCard(hand[i], core.ZoneVoid, controller); err != nil {
			return err
		}
	}
	if count > 0 {
		publishVoidChanged(b, controller)
		b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagHandChanged, Player: controller})
	}
	return nil
}

func applyGainSpark(b *battle.BattleState, source core.CardId, eff ability.GainSpark, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	instance.SparkBonus = core.SatAddSpark(instance.SparkBonus, int(eff.Amount))
	return nil
}

func applyPreventDissolve(b *battle.BattleState, source core.CardId, eff ability.PreventDissolve, targets battle.EffectTargets) error {
	cardId, ok := resolveTarget(b, source, eff.Target, targets)
	if !ok {
		return nil
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return nil
	}
	instance.PreventDissolve = true
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagPreventDissolveToggled, Player: instance.Controller})
	return nil
}

// ClearEndOfTurnStatus resets every runtime status scoped to "until end of
// turn" for player: the PreventDissolve status of player's battlefield
// cards and any pending energy doubling. internal/protocol calls this for
// both players when the active player ends their turn (§4.7 turn/phase
// machine).
func ClearEndOfTurnStatus(b *battle.BattleState, player core.PlayerName) {
	for _, cardId := range b.Cards.InZone(player, core.ZoneBattlefield) {
		if instance, ok := b.Cards.Get(cardId); ok {
			instance.PreventDissolve = false
		}
	}
	b.Players[player].PendingDoubleEnergy = false
}

func applyReclaim(b *battle.BattleState, source core.CardId) error {
	instance, ok := b.Cards.Get(source)
	if !ok {
		return nil
	}
	state := instance.AbilityState(0)
	state.ReclaimUsed = true
	owner := instance.Owner
	_, err := b.Cards.MoveCard(source, core.ZoneBanished, owner)
	if err == nil {
		publishVoidChanged(b, owner)
	}
	return err
}

func applyGainEnergyForEach(b *battle.BattleState, source core.CardId, eff ability.GainEnergyForEach) error {
	ctxSource := evaluator.CardSource(b, source)
	controller, _ := evaluator.Controller(b, source)
	count := 0
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for _, zone := range []core.Zone{core.ZoneBattlefield, core.ZoneHand, core.ZoneVoid} {
			for _, cardId := range b.Cards.InZone(player, zone) {
				if evaluator.Matches(b, ctxSource, eff.Predicate, cardId) {
					count++
				}
			}
		}
	}
	GainEnergy(b, controller, core.Energy(count)*eff.Amount)
	return nil
}
