// Package core defines the small, closed-sum vocabulary shared by every
// other package in the engine: stable card identity, per-zone object
// identity, player names, zones, and the distinct numeric resource types.
// Nothing in this package depends on battle state, ability data, or any
// other higher-level package.
package core

import "fmt"

// CardId is the stable integer identity of a card within a single battle.
// It is assigned once, at battle construction, and never changes as the
// card moves between zones.
type CardId int

// ObjectId is stamped on a card every time it enters a new zone. It
// increases monotonically over the lifetime of a battle and is the basis
// for stale-target validation: a target recorded as (CardId, ObjectId) is
// valid only while the card's current object ID still matches.
type ObjectId int

// CardIdType is implemented by every zone-scoped card identifier wrapper.
// Converting between wrappers is only legal through an actual zone move
// performed by the zone manager (internal/battle); nothing in this
// interface allows a caller to manufacture a wrapper out of thin air.
type CardIdType interface {
	CardID() CardId
}

// HandCardId identifies a card currently in a player's hand.
type HandCardId struct{ ID CardId }

// DeckCardId identifies a card currently in a player's deck.
type DeckCardId struct{ ID CardId }

// VoidCardId identifies a card currently in a player's void (discard pile).
type VoidCardId struct{ ID CardId }

// StackCardId identifies a card currently on the shared stack.
type StackCardId struct{ ID CardId }

// CharacterId identifies a card currently on the battlefield. Battlefield
// cards in Dreamtides are always characters, so the wrapper is named after
// the zone's occupant rather than the zone itself, matching the glossary.
type CharacterId struct{ ID CardId }

// BanishedCardId identifies a card that has been permanently removed from
// play via a Banish effect.
type BanishedCardId struct{ ID CardId }

func (h HandCardId) CardID() CardId      { return h.ID }
func (d DeckCardId) CardID() CardId      { return d.ID }
func (v VoidCardId) CardID() CardId      { return v.ID }
func (s StackCardId) CardID() CardId     { return s.ID }
func (c CharacterId) CardID() CardId     { return c.ID }
func (b BanishedCardId) CardID() CardId  { return b.ID }

func (h HandCardId) String() string     { return fmt.Sprintf("H%d", h.ID) }
func (d DeckCardId) String() string     { return fmt.Sprintf("D%d", d.ID) }
func (v VoidCardId) String() string     { return fmt.Sprintf("V%d", v.ID) }
func (s StackCardId) String() string    { return fmt.Sprintf("S%d", s.ID) }
func (c CharacterId) String() string    { return fmt.Sprintf("C%d", c.ID) }
func (b BanishedCardId) String() string { return fmt.Sprintf("B%d", b.ID) }

// CardObjectId is a (CardId, ObjectId) pair recorded whenever a target is
// selected. It remains in targeting/effect data after the card has moved
// on, so that resolution-time validation (§4.4 target validity rule) can
// detect staleness.
type CardObjectId struct {
	Card   CardId
	Object ObjectId
}

func (c CardObjectId) String() string {
	return fmt.Sprintf("%d@%d", c.Card, c.Object)
}
