package ability

import "github.com/dreamtides/rules-engine/internal/core"

// StaticAbility is a closed sum of continuous effects evaluated on demand
// by property queries (§4.6, §4.9) — never cached across state changes.
type StaticAbility interface {
	staticAbility()
}

// CostReduction reduces the energy cost of matching cards by Amount.
type CostReduction struct {
	Matches Predicate
	Amount  core.Energy
}

// SparkModifier adds Amount to the spark of matching characters.
type SparkModifier struct {
	Matches Predicate
	Amount  core.Spark
}

// CannotBeDissolved grants matching characters immunity to Dissolve
// effects for as long as the static ability's source remains in play.
type CannotBeDissolved struct {
	Matches Predicate
}

func (CostReduction) staticAbility()      {}
func (SparkModifier) staticAbility()      {}
func (CannotBeDissolved) staticAbility()  {}
