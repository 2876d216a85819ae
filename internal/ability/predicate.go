package ability

// Predicate selects a set of cards relative to an effect's source. It is a
// closed sum: the only implementations live in this file, each carrying an
// unexported marker method so that no other package can add a variant
// without changing this one (§9 Polymorphism — "tagged sum types, never via
// open inheritance").
type Predicate interface {
	predicate()
}

// This refers to the source card itself.
type This struct{}

// That refers to a card referenced earlier in the same effect's context
// (e.g. the card just discarded).
type That struct{}

// It refers to the most recently established implicit subject.
type It struct{}

// Them refers to a previously selected group of cards.
type Them struct{}

// Your matches cards the source's controller controls.
type Your struct{ Card CardPredicate }

// Enemy matches cards controlled by the source controller's opponent.
type Enemy struct{ Card CardPredicate }

// Another matches cards the controller controls other than the source
// itself.
type Another struct{ Card CardPredicate }

// Any matches any card regardless of controller.
type Any struct{ Card CardPredicate }

// AnyOther matches any card other than the source, regardless of
// controller.
type AnyOther struct{ Card CardPredicate }

// YourVoid matches cards in the controller's void.
type YourVoid struct{ Card CardPredicate }

// EnemyVoid matches cards in the opponent's void.
type EnemyVoid struct{ Card CardPredicate }

func (This) predicate()     {}
func (That) predicate()     {}
func (It) predicate()       {}
func (Them) predicate()     {}
func (Your) predicate()     {}
func (Enemy) predicate()    {}
func (Another) predicate()  {}
func (Any) predicate()      {}
func (AnyOther) predicate() {}
func (YourVoid) predicate() {}
func (EnemyVoid) predicate() {}

// Operator compares a numeric card property (cost, spark) against a
// reference value.
type Operator int

const (
	OpExactly Operator = iota
	OpOrMore
	OpOrLess
	OpHigherBy
	OpLowerBy
)

// CardPredicate filters a single card by type, subtype, cost, or spark. It
// is a closed sum in the same sense as Predicate.
type CardPredicate interface {
	cardPredicate()
}

// AnyCard matches every card.
type AnyCard struct{}

// CharacterCard matches cards whose type is Character.
type CharacterCard struct{}

// EventCard matches cards whose type is Event.
type EventCard struct{}

// CharacterType matches characters of a specific subtype (figment).
type CharacterType struct{ Subtype string }

// NotCharacterType matches characters whose subtype differs from the given
// one.
type NotCharacterType struct{ Subtype string }

// CostCompare matches cards whose energy cost compares to Value using Op.
type CostCompare struct {
	Op    Operator
	Value int
}

// SparkCompare matches characters whose spark compares to Value using Op.
type SparkCompare struct {
	Op    Operator
	Value int
}

// HasMaterializedAbility matches characters that have a triggered ability
// keyed to the Materialized event.
type HasMaterializedAbility struct{}

func (AnyCard) cardPredicate()                {}
func (CharacterCard) cardPredicate()          {}
func (EventCard) cardPredicate()              {}
func (CharacterType) cardPredicate()          {}
func (NotCharacterType) cardPredicate()       {}
func (CostCompare) cardPredicate()            {}
func (SparkCompare) cardPredicate()           {}
func (HasMaterializedAbility) cardPredicate() {}

// Compare applies Op to (actual, reference).
func (op Operator) Compare(actual, reference int) bool {
	switch op {
	case OpExactly:
		return actual == reference
	case OpOrMore:
		return actual >= reference
	case OpOrLess:
		return actual <= reference
	case OpHigherBy:
		return actual > reference
	case OpLowerBy:
		return actual < reference
	default:
		return false
	}
}
