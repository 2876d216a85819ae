package evaluator

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
)

// Matches implements §4.6's predicate-matching semantics exactly.
func Matches(b *battle.BattleState, source EffectSource, predicate ability.Predicate, cardId core.CardId) bool {
	controller, ok := Controller(b, cardId)
	if !ok {
		return false
	}

	switch p := predicate.(type) {
	case ability.Enemy:
		if controller != source.Controller.Opponent() {
			return false
		}
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.Another:
		if controller != source.Controller {
			return false
		}
		if source.HasCard && source.Card == cardId {
			return false
		}
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.Your:
		if controller != source.Controller {
			return false
		}
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.Any:
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.AnyOther:
		if source.HasCard && source.Card == cardId {
			return false
		}
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.YourVoid:
		if controller != source.Controller {
			return false
		}
		zone, _, ok := b.Cards.Zone(cardId)
		if !ok || zone != core.ZoneVoid {
			return false
		}
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.EnemyVoid:
		if controller != source.Controller.Opponent() {
			return false
		}
		zone, _, ok := b.Cards.Zone(cardId)
		if !ok || zone != core.ZoneVoid {
			return false
		}
		return matchesCardPredicate(b, p.Card, cardId)
	case ability.This:
		return source.HasCard && source.Card == cardId
	default:
		// That/It/Them resolve against contextual state threaded in by the
		// effect applier (internal/effects), which substitutes a concrete
		// CardId before calling Matches; reaching this default case means
		// the caller passed one of those variants directly, which is a
		// programming error in the applier, not a rules question.
		return false
	}
}

func matchesCardPredicate(b *battle.BattleState, predicate ability.CardPredicate, cardId core.CardId) bool {
	def, ok := b.Definition(cardId)
	if !ok {
		return false
	}

	switch p := predicate.(type) {
	case ability.AnyCard:
		return true
	case ability.CharacterCard:
		return def.CardType == carddef.TypeCharacter
	case ability.EventCard:
		return def.CardType == carddef.TypeEvent
	case ability.CharacterType:
		return def.CardType == carddef.TypeCharacter && def.Subtype == p.Subtype
	case ability.NotCharacterType:
		return def.CardType == carddef.TypeCharacter && def.Subtype != p.Subtype
	case ability.CostCompare:
		return p.Op.Compare(int(def.Cost), p.Value)
	case ability.SparkCompare:
		instance, ok := b.Cards.Get(cardId)
		if !ok {
			return false
		}
		effectiveSpark := int(def.Spark) + int(instance.SparkBonus)
		return p.Op.Compare(effectiveSpark, p.Value)
	case ability.HasMaterializedAbility:
		for _, a := range def.Abilities {
			if triggered, ok := a.(ability.TriggeredAbility); ok && triggered.Event == ability.TriggerMaterialized {
				return true
			}
		}
		return false
	default:
		return false
	}
}
