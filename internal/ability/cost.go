package ability

import "github.com/dreamtides/rules-engine/internal/core"

// Cost is a closed sum of the ways an activated ability or optional trigger
// can demand payment beyond a card's printed energy cost.
type Cost interface {
	cost()
}

// EnergyCost requires paying additional energy.
type EnergyCost struct{ Amount core.Energy }

// NoCost requires nothing; used for always-on triggered effects gated only
// by a condition.
type NoCost struct{}

// BanishFromVoidCost requires banishing a card from the controller's void
// (grounds Reclaim, see SPEC_FULL.md Supplemented Features).
type BanishFromVoidCost struct{}

func (EnergyCost) cost()        {}
func (NoCost) cost()            {}
func (BanishFromVoidCost) cost() {}
