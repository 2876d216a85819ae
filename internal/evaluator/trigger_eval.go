package evaluator

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

// ProcessTriggers drains every PendingTriggerEvent queued by C4/C8 mutators
// since the last call and, for each, fires matching TriggeredAbilitys in
// the deterministic order required by §4.6, §5, and Testable Property #9:
// controller (active player first), then the order the card entered play
// (battlefield insertion order), then ability index within the card. A
// trigger whose Condition evaluates false at firing time is discarded
// silently (§4.6). Matching triggers are appended to b.PendingEffects,
// which internal/protocol.PerformAction drains and applies through
// internal/effects.
func ProcessTriggers(b *battle.BattleState) {
	events := b.DrainTriggerEvents()
	for _, event := range events {
		fireOne(b, ability.TriggerEvent(event.Event), event.Source, event.HasSource)
	}
}

// fireOne matches event against every battlefield card's TriggeredAbilitys.
// When the event has a causing card (triggerSource/hasSource), a card's
// ability only fires if triggerSource satisfies the ability's Predicate
// scope relative to the ability's owning card (ported from
// trigger_matches in the original's trigger_predicates.rs: a trigger_card_id
// is checked against an owning_card_id/owning_card_controller pair, not
// matched indiscriminately). A nil Predicate defaults to This{} — "this
// card's own occurrence of Event" — since that is what unscoped keyword
// triggers (Materialized, Dissolved, ...) mean on a card. Events with no
// single causing card (hasSource false) skip this scoping and fire for
// every matching ability, as before.
func fireOne(b *battle.BattleState, event ability.TriggerEvent, triggerSource core.CardId, hasSource bool) {
	active := b.Turn.ActivePlayer
	order := []core.PlayerName{active, active.Opponent()}

	for _, player := range order {
		for _, cardId := range b.Cards.InZone(player, core.ZoneBattlefield) {
			def, ok := b.Definition(cardId)
			if !ok {
				continue
			}
			for _, a := range def.Abilities {
				triggered, ok := a.(ability.TriggeredAbility)
				if !ok || triggered.Event != event {
					continue
				}
				if hasSource && !matchesTriggerScope(b, cardId, player, triggered.Predicate, triggerSource) {
					continue
				}
				ctx := ability.ConditionContext{SourceController: player}
				if triggered.Condition != nil && !triggered.Condition(ctx) {
					continue // condition false at firing time: discard silently
				}
				b.PendingEffects = append(b.PendingEffects, battle.PendingEffect{
					Source: cardId,
					Effect: triggered.Effect,
				})
			}
		}
	}
}

// matchesTriggerScope decides whether triggerSource (the card whose state
// change produced the event) satisfies owningCard's TriggeredAbility scope.
// A nil predicate is self-only, matching the original's unpredicated
// Keywords triggers (Materialized/Dissolved/...) exactly.
func matchesTriggerScope(b *battle.BattleState, owningCard core.CardId, owningController core.PlayerName, predicate ability.Predicate, triggerSource core.CardId) bool {
	if predicate == nil {
		predicate = ability.This{}
	}
	source := EffectSource{Controller: owningController, Card: owningCard, HasCard: true}
	return Matches(b, source, predicate, triggerSource)
}
