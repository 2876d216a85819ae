package evaluator

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

// activeStaticAbilities returns every StaticAbility currently in effect,
// paired with the EffectSource of the card printing it. Only battlefield
// cards contribute static abilities; this is recomputed from scratch on
// every call (§4.9: "evaluated on demand... never cached incorrectly
// across state changes").
func activeStaticAbilities(b *battle.BattleState) []struct {
	Source EffectSource
	Static ability.StaticAbility
} {
	var result []struct {
		Source EffectSource
		Static ability.StaticAbility
	}
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for _, cardId := range b.Cards.InZone(player, core.ZoneBattlefield) {
			def, ok := b.Definition(cardId)
			if !ok {
				continue
			}
			for _, a := range def.Abilities {
				staticCard, ok := a.(ability.StaticAbilityCard)
				if !ok {
					continue
				}
				result = append(result, struct {
					Source EffectSource
					Static ability.StaticAbility
				}{Source: CardSource(b, cardId), Static: staticCard.Ability})
			}
		}
	}
	return result
}

// EffectiveCost returns cardId's energy cost after every active
// CostReduction static ability that matches it has been applied, in the
// order the abilities were found (§4.9 pull model).
func EffectiveCost(b *battle.BattleState, cardId core.CardId) core.Energy {
	def, ok := b.Definition(cardId)
	if !ok {
		return 0
	}
	cost := def.Cost
	for _, entry := range activeStaticAbilities(b) {
		reduction, ok := entry.Static.(ability.CostReduction)
		if !ok {
			continue
		}
		if Matches(b, entry.Source, reduction.Matches, cardId) {
			cost = core.SatAddEnergy(cost, -int(reduction.Amount))
		}
	}
	return cost
}

// EffectiveSpark returns cardId's spark after permanent bonuses
// (CardInstance.SparkBonus, accumulated by Kindle-style effects) and every
// active SparkModifier static ability that matches it.
func EffectiveSpark(b *battle.BattleState, cardId core.CardId) core.Spark {
	def, ok := b.Definition(cardId)
	if !ok {
		return 0
	}
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return def.Spark
	}
	spark := core.SatAddSpark(def.Spark, int(instance.SparkBonus))
	for _, entry := range activeStaticAbilities(b) {
		modifier, ok := entry.Static.(ability.SparkModifier)
		if !ok {
			continue
		}
		if Matches(b, entry.Source, modifier.Matches, cardId) {
			spark = core.SatAddSpark(spark, int(modifier.Amount))
		}
	}
	return spark
}

// CannotBeDissolved reports whether any active CannotBeDissolved static
// ability, or a runtime PreventDissolve status, currently protects cardId.
func CannotBeDissolved(b *battle.BattleState, cardId core.CardId) bool {
	if instance, ok := b.Cards.Get(cardId); ok && instance.PreventDissolve {
		return true
	}
	for _, entry := range activeStaticAbilities(b) {
		protect, ok := entry.Static.(ability.CannotBeDissolved)
		if !ok {
			continue
		}
		if Matches(b, entry.Source, protect.Matches, cardId) {
			return true
		}
	}
	return false
}
