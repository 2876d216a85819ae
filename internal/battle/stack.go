package battle

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/core"
)

// StackItemId is a closed sum identifying what produced a stack entry: a
// played card, or an activated ability (§3).
type StackItemId interface {
	stackItemId()
}

// CardStackItemId names the StackCardId of a played card on the stack.
type CardStackItemId struct{ Card core.StackCardId }

// ActivatedAbilityStackItemId names an activated ability instance on the
// stack.
type ActivatedAbilityStackItemId struct{ Ability ability.AbilityId }

func (CardStackItemId) stackItemId()             {}
func (ActivatedAbilityStackItemId) stackItemId() {}

// StandardEffectTarget is the resolved-target payload attached to a stack
// item or pending effect (§3).
type StandardEffectTarget interface {
	standardEffectTarget()
}

// CharacterTarget targets a single battlefield character.
type CharacterTarget struct{ Target core.CardObjectId }

// StackCardTarget targets a single stack card (e.g. Counter effects).
type StackCardTarget struct{ Target core.CardObjectId }

// VoidCardSetTarget targets an ordered set of void cards.
type VoidCardSetTarget struct{ Targets []core.CardObjectId }

func (CharacterTarget) standardEffectTarget()  {}
func (StackCardTarget) standardEffectTarget()  {}
func (VoidCardSetTarget) standardEffectTarget() {}

// EffectTargets is the closed sum of how a resolved target set is shaped:
// a single standard target, or a queue of optional targets consumed in
// sequence by a List effect. A nil entry in the EffectList queue means "a
// target was supplied but became invalid before resolution" (§3).
type EffectTargets interface {
	effectTargets()
}

// StandardTargets wraps a single resolved target.
type StandardTargets struct{ Target StandardEffectTarget }

// EffectListTargets is an ordered queue of optional per-element targets.
type EffectListTargets struct{ Targets []StandardEffectTarget } // nil element = invalidated

func (StandardTargets) effectTargets()   {}
func (EffectListTargets) effectTargets() {}

// PaymentContext records what was actually paid to put a stack item into
// play, beyond the card's printed cost — grounds effects like Dreamscatter
// (S2) that key off the amount of extra energy spent. See SPEC_FULL.md
// Supplemented Features ("Stack-card state").
type PaymentContext struct {
	BaseCost core.Energy
	ExtraPaid core.Energy
}

// StackItem is an entry on the shared LIFO stack (§3).
type StackItem struct {
	Id              StackItemId
	Controller      core.PlayerName
	Targets         EffectTargets
	AdditionalCosts []core.Energy
	ModalChoice     int
	Payment         PaymentContext
	SourceCard      core.CardId
	Effect          ability.Effect
}

// PushStack pushes item onto the shared stack and, if its source is a
// card, moves that card's instance into the shared stack zone so that
// AllCards' invariants (exactly one zone, monotonic object IDs) continue to
// hold for it while it awaits resolution.
func (b *BattleState) PushStack(item StackItem) (ZoneChange, error) {
	var change ZoneChange
	if _, isCard := item.Id.(CardStackItemId); isCard {
		var err error
		change, err = b.Cards.MoveCard(item.SourceCard, core.ZoneStack, item.Controller)
		if err != nil {
			return ZoneChange{}, err
		}
	}
	b.StackItems = append(b.StackItems, item)
	return change, nil
}

// PeekStack returns the top stack item without removing it.
func (b *BattleState) PeekStack() (StackItem, bool) {
	if len(b.StackItems) == 0 {
		return StackItem{}, false
	}
	return b.StackItems[len(b.StackItems)-1], true
}

// PopStack removes and returns the top stack item (LIFO, invariant 3).
func (b *BattleState) PopStack() (StackItem, bool) {
	if len(b.StackItems) == 0 {
		return StackItem{}, false
	}
	item := b.StackItems[len(b.StackItems)-1]
	b.StackItems = b.StackItems[:len(b.StackItems)-1]
	return item, true
}

// StackEmpty reports whether the stack has no pending items.
func (b *BattleState) StackEmpty() bool {
	return len(b.StackItems) == 0
}
