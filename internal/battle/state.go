// Package battle implements the battle state aggregate (C3) and the
// zone/identity manager (C4): the root mutable state of a single battle,
// plus every operation that keeps its invariants intact (§3 Invariants).
package battle

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
)

// Status is the battle's overall lifecycle state (§3).
type Status int

const (
	StatusSetup Status = iota
	StatusPlaying
	StatusGameOver
)

// PendingEffect is a deferred effect awaiting application, either because
// it was queued by a trigger or because a List effect spawned it (§3, §4.8).
type PendingEffect struct {
	Source  core.CardId
	Effect  ability.Effect
	Targets EffectTargets
}

// ActivatedAbilityInstance records that a card's activated ability exists
// and is available to be played, keyed by (card, index) via ability.AbilityId.
type ActivatedAbilityInstance struct {
	Id     ability.AbilityId
	Cost   ability.Cost
	Effect ability.Effect
	Fast   bool
}

// BattleState is the root aggregate (§3, §4.3).
type BattleState struct {
	Store   *carddef.Store
	Cards   *AllCards
	Players map[core.PlayerName]*PlayerState

	Status        Status
	Winner        *core.PlayerName
	StackPriority *core.PlayerName
	Turn          TurnState

	Seed uint64
	Rng  *Rng

	// PointsToWin is the configured victory threshold (§3: "a battle ends
	// when a player's points cross the configured win threshold"). Neither
	// spec.md nor the retrieved original_source names a concrete value, so
	// this is an explicit, overridable field rather than a hardcoded
	// constant; see DESIGN.md's Open Question resolutions.
	PointsToWin core.Points

	StackItems       []StackItem
	Prompts          []Prompt
	PendingEffects   []PendingEffect
	ActivatedAbility []ActivatedAbilityInstance
	Dreamwell        *DreamwellData

	ActionHistory []ActionRecord
	TurnHistory   []TurnRecord
	Request       RequestContext

	PendingInvalidations []Invalidation
	PendingTriggerEvents []PendingTriggerEvent

	// CardIdentity maps each CardId to the definition identity it was
	// constructed from, duplicated here (alongside CardInstance.Identity)
	// so property queries can go straight from an id to a *CardDefinition
	// via Store without walking through Cards when only the identity is
	// needed.
	CardIdentity map[core.CardId]carddef.BattleCardIdentity
}

// New constructs a fresh battle in Setup status with the given store and
// seed. Callers populate decks via AllCards.CreateCard and then transition
// Status to Playing once setup completes.
func New(store *carddef.Store, seed uint64) *BattleState {
	b := &BattleState{
		Store: store,
		Cards: NewAllCards(),
		Players: map[core.PlayerName]*PlayerState{
			core.PlayerOne: newPlayerState(PlayerTypeAgent),
			core.PlayerTwo: newPlayerState(PlayerTypeAgent),
		},
		Status: StatusSetup,
		Turn: TurnState{
			ActivePlayer: core.PlayerOne,
			Phase:        PhaseJudgment,
			TurnId:       1,
		},
		Seed:         seed,
		Rng:          NewRng(seed),
		PointsToWin:  core.Points(25),
		Dreamwell:    NewDreamwellData(),
		CardIdentity: make(map[core.CardId]carddef.BattleCardIdentity),
	}
	return b
}

// CreateCard creates a new card instance from identity, owned by owner,
// and records its identity mapping.
func (b *BattleState) CreateCard(identity carddef.BattleCardIdentity, owner core.PlayerName) *CardInstance {
	instance := b.Cards.CreateCard(identity, owner)
	b.CardIdentity[instance.Id] = identity
	return instance
}

// Definition returns the CardDefinition backing id, if any.
func (b *BattleState) Definition(id core.CardId) (*carddef.CardDefinition, bool) {
	instance, ok := b.Cards.Get(id)
	if !ok {
		return nil, false
	}
	return b.Store.Lookup(instance.Identity)
}

// IsGameOver reports whether the battle has concluded.
func (b *BattleState) IsGameOver() bool {
	return b.Status == StatusGameOver
}

// EndGame transitions the battle to GameOver with the given winner, or nil
// for a draw (S7's 25-round double defeat).
func (b *BattleState) EndGame(winner *core.PlayerName) {
	b.Status = StatusGameOver
	b.Winner = winner
}

// Clone returns a deep, independent copy of the entire battle state,
// sharing the card-definition store by reference (§4.2, §4.3, §5: clones
// must be cheap enough for thousands of MCTS playouts per second and must
// share the immutable store rather than copying it).
func (b *BattleState) Clone() *BattleState {
	clone := &BattleState{
		Store:        b.Store,
		Cards:        b.Cards.Clone(),
		Players:      make(map[core.PlayerName]*PlayerState, len(b.Players)),
		Status:       b.Status,
		Turn:         b.Turn,
		Seed:         b.Seed,
		Rng:          b.Rng.Clone(),
		PointsToWin:  b.PointsToWin,
		Dreamwell:    b.Dreamwell.Clone(),
		CardIdentity: make(map[core.CardId]carddef.BattleCardIdentity, len(b.CardIdentity)),
	}
	if b.Winner != nil {
		w := *b.Winner
		clone.Winner = &w
	}
	if b.StackPriority != nil {
		p := *b.StackPriority
		clone.StackPriority = &p
	}
	for player, state := range b.Players {
		clone.Players[player] = state.Clone()
	}
	for id, identity := range b.CardIdentity {
		clone.CardIdentity[id] = identity
	}
	clone.StackItems = append([]StackItem(nil), b.StackItems...)
	clone.Prompts = append([]Prompt(nil), b.Prompts...)
	clone.PendingEffects = append([]PendingEffect(nil), b.PendingEffects...)
	clone.ActivatedAbility = append([]ActivatedAbilityInstance(nil), b.ActivatedAbility...)
	clone.ActionHistory = append([]ActionRecord(nil), b.ActionHistory...)
	clone.TurnHistory = append([]TurnRecord(nil), b.TurnHistory...)
	clone.Request = b.Request
	clone.PendingInvalidations = append([]Invalidation(nil), b.PendingInvalidations...)
	clone.PendingTriggerEvents = append([]PendingTriggerEvent(nil), b.PendingTriggerEvents...)
	return clone
}
