package ability

import "github.com/dreamtides/rules-engine/internal/core"

// Ability is the closed sum of the five ability shapes a card can carry
// (§3). Every card's AbilityList (internal/carddef) is a slice of these.
type Ability interface {
	ability()
}

// EventAbility is the effect a played event card resolves for.
type EventAbility struct{ Effect Effect }

// StaticAbilityCard is a card-level static ability. Named with a "Card"
// suffix to avoid colliding with the StaticAbility interface it wraps.
type StaticAbilityCard struct{ Ability StaticAbility }

// ActivatedAbility can be played from the battlefield for an additional
// cost, independent of the card's own turn-based restrictions.
type ActivatedAbility struct {
	Cost   Cost
	Effect Effect
	Fast   bool
}

// TriggeredAbility fires its Effect whenever Event occurs and, if present,
// Condition evaluates true at firing time (§4.6: "a trigger whose condition
// evaluates false at firing time is discarded silently").
//
// Predicate scopes which card's occurrence of Event this ability cares
// about, relative to the card that owns the ability. A nil Predicate is the
// overwhelmingly common case (card text like "Materialized: draw a card"
// means this card's own materialization) and is treated as This{}: the
// ability fires only when the owning card itself caused the event. Set
// Predicate to Another, Your, Enemy, Any, or AnyOther to scope the trigger
// to other cards instead (e.g. "Whenever you materialize another
// character..."). Events with no single causing card (turn-phase
// boundaries) ignore Predicate and fire unconditionally.
type TriggeredAbility struct {
	Event     TriggerEvent
	Effect    Effect
	Condition func(ConditionContext) bool
	Predicate Predicate
}

// NamedAbility is a reusable, pre-registered ability referenced by name
// rather than inlined (keyword abilities like Aegis).
type NamedAbility struct{ Name string }

func (EventAbility) ability()      {}
func (StaticAbilityCard) ability() {}
func (ActivatedAbility) ability()  {}
func (TriggeredAbility) ability()  {}
func (NamedAbility) ability()      {}

// AbilityId identifies an ActivatedAbility instance on a specific card, for
// StackItemId's ActivatedAbility variant (§3).
type AbilityId struct {
	Card  core.CardId
	Index int
}
