package battle

import "github.com/dreamtides/rules-engine/internal/core"

// ActionRecord is one entry in the action history: an external action and
// the turn it was applied on, kept for determinism auditing and for the
// "action application order matches the order of received actions"
// guarantee (§5).
type ActionRecord struct {
	Player core.PlayerName
	Turn   core.TurnId
	Label  string
}

// TurnRecord summarizes a completed turn for turn_history (§4.3).
type TurnRecord struct {
	Turn         core.TurnId
	ActivePlayer core.PlayerName
}

// RequestContext carries logging knobs through a single perform_action call
// (§4.3: "request_context (logging knobs)") without the battle package
// depending on internal/enginelog.
type RequestContext struct {
	RequestId string
	Verbose   bool
}

// InvalidationFlag names one reason C9's CanPlayCardsData cache might need
// recomputing (§4.9). Defined in this package (rather than internal/
// invalidation) so that internal/battle's mutators can publish flags
// without importing the cache package, avoiding an import cycle.
type InvalidationFlag int

const (
	FlagEnergyChanged InvalidationFlag = iota
	FlagHandChanged
	FlagOwnBattlefieldChanged
	FlagOpponentBattlefieldChanged
	FlagStackChanged
	FlagOwnVoidChanged
	FlagPreventDissolveToggled
)

// Invalidation is one published cache-invalidation event, naming which
// player's state changed (for per-player flags) alongside the flag.
type Invalidation struct {
	Flag   InvalidationFlag
	Player core.PlayerName
}

// PendingTriggerEvent is a raw zone-change or state-change notification
// queued by a C4/C8 mutator for C6 (internal/evaluator) to match against
// registered TriggeredAbilitys and turn into stack items or pending
// effects. Kept as plain data here (rather than already-matched triggers)
// so internal/battle does not need to import internal/ability's evaluation
// logic or internal/evaluator.
//
// Source identifies the specific card whose state change caused this event
// (the card that materialized, was dissolved, was played, etc.), and
// HasSource is false for events with no single causing card (a turn-phase
// boundary like EndOfYourTurn, Judgment, or Dreamwell). C6 uses Source to
// scope a TriggeredAbility to the card(s) its Predicate names, rather than
// firing for every battlefield card whose Event matches.
type PendingTriggerEvent struct {
	Event     int // ability.TriggerEvent value, stored as int to avoid cycle; see BattleState.DrainTriggerEvents
	Source    core.CardId
	HasSource bool
}

// RecordAction appends to the action history.
func (b *BattleState) RecordAction(record ActionRecord) {
	b.ActionHistory = append(b.ActionHistory, record)
}

// RecordTurn appends to the turn history.
func (b *BattleState) RecordTurn(record TurnRecord) {
	b.TurnHistory = append(b.TurnHistory, record)
}

// PublishInvalidation queues an invalidation event for C9 to consume on its
// next DrainInvalidations call (§4.9: "every state mutator must explicitly
// publish its invalidation; the cache never self-invalidates").
func (b *BattleState) PublishInvalidation(inv Invalidation) {
	b.PendingInvalidations = append(b.PendingInvalidations, inv)
}

// DrainInvalidations returns and clears the queued invalidations.
func (b *BattleState) DrainInvalidations() []Invalidation {
	drained := b.PendingInvalidations
	b.PendingInvalidations = nil
	return drained
}

// QueueTriggerEvent enqueues a raw trigger candidate for C6 to match.
func (b *BattleState) QueueTriggerEvent(event PendingTriggerEvent) {
	b.PendingTriggerEvents = append(b.PendingTriggerEvents, event)
}

// DrainTriggerEvents returns and clears the queued trigger candidates.
func (b *BattleState) DrainTriggerEvents() []PendingTriggerEvent {
	drained := b.PendingTriggerEvents
	b.PendingTriggerEvents = nil
	return drained
}
