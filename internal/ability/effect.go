package ability

import "github.com/dreamtides/rules-engine/internal/core"

// StandardEffect is the closed sum covering every concrete card effect. The
// Rust original enumerates roughly seventy variants; this module implements
// the subset exercised by the spec's named scenarios (S1-S7), the glossary
// terms (Kindle, Foresee, Reclaim), and the numeric edge cases in §4.8, and
// is structured so that adding another variant means adding one more type
// plus one more arm in internal/effects's applier switch — never an
// interface method, since that would force every existing variant to grow
// a new method.
type StandardEffect interface {
	standardEffect()
}

// DissolveCharacter moves a targeted character to its owner's void. The
// "fast Dissolve" scenario (S1) is this effect played as a fast event.
type DissolveCharacter struct{ Target Predicate }

// MaterializeCharacter puts a character onto the controller's battlefield
// from hand, deck, or void.
type MaterializeCharacter struct{ Target Predicate }

// BanishCharacterEffect permanently removes a targeted character from play.
type BanishCharacterEffect struct{ Target Predicate }

// AbandonCharacter moves one of the controller's own characters to their
// void (used by the battlefield-excess rule, §4.8).
type AbandonCharacter struct{ Target Predicate }

// ReturnToHand moves a targeted character from the battlefield back to its
// owner's hand (S5).
type ReturnToHand struct{ Target Predicate }

// DrawCards draws Count cards for the controller.
type DrawCards struct{ Count int }

// DiscardCards discards Count cards from the controller's hand; this is the
// effect behind the `{-cards(n:2)}` directive.
type DiscardCards struct{ Count int }

// GainEnergy grants the controller a flat amount of energy.
type GainEnergy struct{ Amount core.Energy }

// DoubleYourEnergy is a replacement effect: the next energy gain this turn
// is doubled instead of applied directly (§4.8, §9 open question #2).
type DoubleYourEnergy struct{}

// GainTwiceThatMuchEnergyInstead rewrites a pending energy-gain amount to
// twice its value; when two such effects resolve in the same step the
// engine uses last-writer-wins, per §9's open question resolution recorded
// in DESIGN.md.
type GainTwiceThatMuchEnergyInstead struct{}

// GainSpark adds permanent spark to a targeted character. Kindle N from the
// glossary is GainSpark{Target: This{}, Amount: N}.
type GainSpark struct {
	Target Predicate
	Amount core.Spark
}

// GainPoints grants the controller victory points.
type GainPoints struct{ Amount core.Points }

// Foresee looks at the top N cards of the controller's deck and opens a
// SelectDeckCardOrder prompt to reorder them (glossary "Foresee N").
type Foresee struct{ Count int }

// PreventDissolve grants a character immunity to Dissolve effects until the
// end of the turn (glossary "Aegis" is the general status; this effect
// grants it scoped to Dissolve specifically).
type PreventDissolve struct{ Target Predicate }

// ReclaimFromVoid marks the source card's one-shot Reclaim permission as
// used and banishes the card (glossary "Reclaim"). Legal-action
// computation lists hand cards only, so a card in the void is never
// offered for play.
type ReclaimFromVoid struct{}

// GainEnergyForEach grants energy equal to Amount times the number of cards
// matching Predicate, counted at resolution time (§4.8: "for each X counts
// are taken at effect-resolution time, not at play time").
type GainEnergyForEach struct {
	Amount    core.Energy
	Predicate Predicate
}

// DrawCardsForEachExtraEnergyPaid draws one card for every unit of energy
// the controller paid beyond the source card's printed cost (the
// "Dreamscatter" mechanic, S2). The count is read from the resolving stack
// item's recorded payment, not fixed at parse time, mirroring
// GainEnergyForEach's resolution-time counting.
type DrawCardsForEachExtraEnergyPaid struct{}

func (DissolveCharacter) standardEffect()              {}
func (MaterializeCharacter) standardEffect()            {}
func (BanishCharacterEffect) standardEffect()           {}
func (AbandonCharacter) standardEffect()                {}
func (ReturnToHand) standardEffect()                    {}
func (DrawCards) standardEffect()                       {}
func (DiscardCards) standardEffect()                    {}
func (GainEnergy) standardEffect()                      {}
func (DoubleYourEnergy) standardEffect()                {}
func (GainTwiceThatMuchEnergyInstead) standardEffect()  {}
func (GainSpark) standardEffect()                       {}
func (GainPoints) standardEffect()                      {}
func (Foresee) standardEffect()                         {}
func (PreventDissolve) standardEffect()                 {}
func (ReclaimFromVoid) standardEffect()                 {}
func (GainEnergyForEach) standardEffect()                {}
func (DrawCardsForEachExtraEnergyPaid) standardEffect()   {}

// Effect is the effect tree: a leaf StandardEffect, or one of the three
// composite forms (§3).
type Effect interface {
	effect()
}

// Standard wraps a single leaf StandardEffect.
type Standard struct{ Inner StandardEffect }

// WithOptions gates an inner effect behind an optional condition and/or an
// optional trigger cost; if the controlling player declines the cost, the
// whole effect is skipped (§4.8).
type WithOptions struct {
	Inner       Effect
	Optional    bool
	Condition   func(ConditionContext) bool
	TriggerCost Cost
}

// List applies every element effect in order.
type List struct{ Elements []Effect }

// Modal offers the controller a choice among several effects, applying
// only the chosen one.
type Modal struct{ Choices []Effect }

func (Standard) effect()    {}
func (WithOptions) effect() {}
func (List) effect()        {}
func (Modal) effect()       {}

// ConditionContext is the minimal read-only view a WithOptions condition
// function needs. It is defined here (rather than importing internal/battle)
// to avoid a dependency cycle; internal/effects supplies a concrete value
// satisfying whatever the condition closures captured at parse time.
type ConditionContext struct {
	SourceController core.PlayerName
}
