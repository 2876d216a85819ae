package evaluator

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

// CharacterTargetingFlags narrows an otherwise-legal set of character
// targets for a specific effect kind, letting static abilities like Aegis
// exclude themselves from some effects but not others (§4.6).
type CharacterTargetingFlags struct {
	ForDissolve bool
}

// LegalCharacterTargets returns every battlefield character matching
// predicate, as (CardId, ObjectId) pairs, excluding any character a static
// ability currently protects from this targeting flag set.
func LegalCharacterTargets(b *battle.BattleState, source EffectSource, predicate ability.Predicate, flags CharacterTargetingFlags) []core.CardObjectId {
	var result []core.CardObjectId
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for _, cardId := range b.Cards.InZone(player, core.ZoneBattlefield) {
			if !Matches(b, source, predicate, cardId) {
				continue
			}
			if flags.ForDissolve && CannotBeDissolved(b, cardId) {
				continue
			}
			instance, ok := b.Cards.Get(cardId)
			if !ok {
				continue
			}
			result = append(result, instance.ObjectIdOf())
		}
	}
	return result
}

// LegalStackTargets returns every stack card matching predicate.
func LegalStackTargets(b *battle.BattleState, source EffectSource, predicate ability.Predicate) []core.CardObjectId {
	var result []core.CardObjectId
	for _, cardId := range b.Cards.Stack() {
		if !Matches(b, source, predicate, cardId) {
			continue
		}
		instance, ok := b.Cards.Get(cardId)
		if !ok {
			continue
		}
		result = append(result, instance.ObjectIdOf())
	}
	return result
}

// LegalVoidTargets returns every void card belonging to player matching
// predicate.
func LegalVoidTargets(b *battle.BattleState, source EffectSource, predicate ability.Predicate, player core.PlayerName) []core.CardObjectId {
	var result []core.CardObjectId
	for _, cardId := range b.Cards.InZone(player, core.ZoneVoid) {
		if !Matches(b, source, predicate, cardId) {
			continue
		}
		instance, ok := b.Cards.Get(cardId)
		if !ok {
			continue
		}
		result = append(result, instance.ObjectIdOf())
	}
	return result
}
