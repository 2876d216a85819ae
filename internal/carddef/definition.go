// Package carddef implements the card definition store (C2): immutable card
// data plus pre-parsed ability lists, keyed by a dense opaque identity.
package carddef

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/core"
)

// CardType distinguishes the two printed card types.
type CardType int

const (
	TypeCharacter CardType = iota
	TypeEvent
)

// BattleCardIdentity is an opaque, dense index into the Store. Two cards
// sharing an identity are behaviorally indistinguishable; the identity
// itself carries no meaning beyond array position (content-addressing, if
// wanted, lives one layer up in internal/content).
type BattleCardIdentity int

// CardDefinition is the immutable, parsed data backing every card instance
// sharing this identity.
type CardDefinition struct {
	Identity   BattleCardIdentity
	Name       string
	CardType   CardType
	Subtype    string
	Cost       core.Energy
	Spark      core.Spark
	IsFast     bool
	RulesText  string
	Abilities  []ability.Ability
}

// IsCharacter reports whether this definition prints a character card.
func (d *CardDefinition) IsCharacter() bool { return d.CardType == TypeCharacter }
