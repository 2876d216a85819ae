// Package evaluator implements the ability evaluator (C6): predicate
// matching, triggered-ability firing, static-ability evaluation, and
// targeting queries. It depends on internal/battle and internal/ability but
// is never imported by either, so battle mutators can publish raw events
// (internal/battle's PendingTriggerEvent/Invalidation) without creating an
// import cycle back into this package.
package evaluator

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

// EffectSource identifies what produced the effect or predicate currently
// being evaluated: a controller, and optionally the specific card that is
// the source (some sources, like "this game's 25-round limit", have no
// card).
type EffectSource struct {
	Controller core.PlayerName
	Card       core.CardId
	HasCard    bool
}

// CardSource builds an EffectSource for a card-backed effect.
func CardSource(b *battle.BattleState, cardId core.CardId) EffectSource {
	instance, _ := b.Cards.Get(cardId)
	controller := core.PlayerOne
	if instance != nil {
		controller = instance.Controller
	}
	return EffectSource{Controller: controller, Card: cardId, HasCard: true}
}

// Controller returns the current controller of cardId.
func Controller(b *battle.BattleState, cardId core.CardId) (core.PlayerName, bool) {
	instance, ok := b.Cards.Get(cardId)
	if !ok {
		return 0, false
	}
	return instance.Controller, true
}

// CardTypeOf returns the carddef.CardType of cardId, as an int to avoid
// this package importing carddef solely for one enum (callers that already
// import carddef can compare against carddef.TypeCharacter/TypeEvent).
func CardTypeOf(b *battle.BattleState, cardId core.CardId) (int, bool) {
	def, ok := b.Definition(cardId)
	if !ok {
		return 0, false
	}
	return int(def.CardType), true
}
