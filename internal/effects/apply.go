// Package effects implements the effect applier (C8): a closed-world
// switch over ability.StandardEffect that mutates a battle.BattleState,
// re-validating targets, enqueueing further effects, and opening prompts
// exactly as §4.8 describes.
package effects

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/evaluator"
)

// HandSizeLimit is the hand size beyond which drawing a card also grants
// the drawing player one energy (§4.8, S3).
const HandSizeLimit = 9

// BattlefieldLimit is the number of characters a player's battlefield may
// hold before a further materialization forces an abandonment (§4.8, S4).
const BattlefieldLimit = 8

// RoundLimit is the hard turn limit that ends a battle as a double defeat
// once exceeded (§4.8, S7).
const RoundLimit = 25

// Apply resolves effect, attributed to source, against the already-chosen
// targets. It is the applier's only public entry point for effects that
// don't depend on what was paid to put their source on the stack; use
// ApplyWithPayment for those (e.g. Dreamscatter, S2).
func Apply(b *battle.BattleState, source core.CardId, effect ability.Effect, targets battle.EffectTargets) error {
	return applyEffect(b, source, effect, targets, battle.PaymentContext{})
}

// ApplyWithPayment is Apply, additionally passing payment through to any
// effect that reads it at resolution time (§4.8: counts are taken at
// resolution time, not at play time).
func ApplyWithPayment(b *battle.BattleState, source core.CardId, effect ability.Effect, targets battle.EffectTargets, payment battle.PaymentContext) error {
	return applyEffect(b, source, effect, targets, payment)
}

func applyEffect(b *battle.BattleState, source core.CardId, effect ability.Effect, targets battle.EffectTargets, payment battle.PaymentContext) error {
	switch e := effect.(type) {
	case ability.Standard:
		return applyStandard(b, source, e.Inner, targets, payment)
	case ability.WithOptions:
		if e.Condition != nil {
			controller, _ := evaluator.Controller(b, source)
			if !e.Condition(ability.ConditionContext{SourceController: controller}) {
				return nil
			}
		}
		return applyEffect(b, source, e.Inner, targets, payment)
	case ability.List:
		for _, inner := range e.Elements {
			if err := applyEffect(b, source, inner, targets, payment); err != nil {
				return err
			}
		}
		return nil
	case ability.Modal:
		return fmt.Errorf("effects: modal effect reached apply undecided; internal/protocol must resolve the choice first")
	default:
		return fmt.Errorf("effects: unknown effect kind %T", effect)
	}
}

// resolveTarget extracts the single stored (CardId, ObjectId) target from
// targets, falling back to source itself when predicate is This{} (no
// selection was ever needed). When no usable target was stored at all
// (§4.10's EnumerateActions deliberately enumerates actions with
// zero-value Targets rather than one action per candidate target), it
// falls back to auto-targeting: if predicate matches exactly one
// battlefield character, that character is used without ever having been
// explicitly selected (S5 — "auto-target" a single legal character).
// Reports false when the stored target is stale (§4.4 target validity
// rule) or no target can be determined at all — the caller must then
// silently skip the effect (§7 StaleTarget).
func resolveTarget(b *battle.BattleState, source core.CardId, predicate ability.Predicate, targets battle.EffectTargets) (core.CardId, bool) {
	if _, isThis := predicate.(ability.This); isThis {
		_, ok := b.Cards.Get(source)
		return source, ok
	}

	if st, ok := targets.(battle.StandardTargets); ok {
		var target core.CardObjectId
		switch t := st.Target.(type) {
		case battle.CharacterTarget:
			target = t.Target
		case battle.StackCardTarget:
			target = t.Target
		}
		if target != (core.CardObjectId{}) {
			if !b.Cards.TargetValid(target) {
				return 0, false
			}
			return target.Card, true
		}
	}

	return autoTargetCharacter(b, source, predicate)
}

// autoTargetCharacter resolves predicate against the battlefield without
// an explicit selection, succeeding only when exactly one character
// matches — an ambiguous or empty candidate set still requires a real
// choice and is left to the caller's prompt/skip handling.
func autoTargetCharacter(b *battle.BattleState, source core.CardId, predicate ability.Predicate) (core.CardId, bool) {
	candidates := evaluator.LegalCharacterTargets(b, evaluator.CardSource(b, source), predicate, evaluator.CharacterTargetingFlags{})
	if len(candidates) != 1 {
		return 0, false
	}
	return candidates[0].Card, true
}

// resolveVoidSet extracts the stored ordered void-card target set.
func resolveVoidSet(b *battle.BattleState, targets battle.EffectTargets) []core.CardId {
	st, ok := targets.(battle.StandardTargets)
	if !ok {
		return nil
	}
	set, ok := st.Target.(battle.VoidCardSetTarget)
	if !ok {
		return nil
	}
	var result []core.CardId
	for _, target := range set.Targets {
		if b.Cards.TargetValid(target) {
			result = append(result, target.Card)
		}
	}
	return result
}
