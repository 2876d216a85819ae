package battle

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/engineerr"
)

// AllCards is the zone/identity manager (C4): per-player per-zone
// containers with fast membership/insert/remove, plus the shared stack and
// the monotonic object-ID counter. Every zone transition in the engine goes
// through MoveCard so that invariant 2 (object IDs strictly increase) and
// invariant 1 (every card in exactly one zone) cannot be violated by a
// caller forgetting a step.
type AllCards struct {
	cards        map[core.CardId]*CardInstance
	zones        map[core.PlayerName]map[core.Zone][]core.CardId
	stack        []core.CardId // LIFO: index 0 is the bottom, last element is the top
	nextCardId   core.CardId
	nextObjectId core.ObjectId
}

// NewAllCards constructs an empty zone manager.
func NewAllCards() *AllCards {
	ac := &AllCards{
		cards: make(map[core.CardId]*CardInstance),
		zones: make(map[core.PlayerName]map[core.Zone][]core.CardId),
	}
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		ac.zones[player] = make(map[core.Zone][]core.CardId)
	}
	return ac
}

// CreateCard assigns a fresh CardId to a new card instance owned by owner,
// starting in ZoneDeck, and returns it. Called once per battle during
// construction (§3 Lifecycle: "Cards are created once per battle").
func (ac *AllCards) CreateCard(identity carddef.BattleCardIdentity, owner core.PlayerName) *CardInstance {
	id := ac.nextCardId
	ac.nextCardId++
	instance := newCardInstance(id, identity, owner)
	instance.ObjectId = ac.nextObjectId
	ac.nextObjectId++
	ac.cards[id] = instance
	ac.zones[owner][core.ZoneDeck] = append(ac.zones[owner][core.ZoneDeck], id)
	return instance
}

// Get returns the instance for id.
func (ac *AllCards) Get(id core.CardId) (*CardInstance, bool) {
	c, ok := ac.cards[id]
	return c, ok
}

// MustGet panics if id is not found; used deep in effect application where
// the caller has already validated the id via a target lookup and a miss
// indicates an engine bug rather than player input.
func (ac *AllCards) MustGet(id core.CardId) *CardInstance {
	c, ok := ac.cards[id]
	if !ok {
		panic(engineerr.InvariantViolation(fmt.Sprintf("card %v missing from every zone", id), nil))
	}
	return c
}

// Zone returns the zone and controller currently holding id.
func (ac *AllCards) Zone(id core.CardId) (core.Zone, core.PlayerName, bool) {
	c, ok := ac.cards[id]
	if !ok {
		return 0, 0, false
	}
	return c.Zone, c.Controller, true
}

// InZone returns the cards in player's instance of zone, in insertion
// order (deterministic iteration, §4.4). Cards on the shared stack are not
// held in any player's zone, so this returns nothing for ZoneStack; use
// Stack instead.
func (ac *AllCards) InZone(player core.PlayerName, zone core.Zone) []core.CardId {
	return append([]core.CardId(nil), ac.zones[player][zone]...)
}

// Stack returns the shared stack bottom-to-top (top is last).
func (ac *AllCards) Stack() []core.CardId {
	return append([]core.CardId(nil), ac.stack...)
}

// StackTop returns the top stack entry, if any.
func (ac *AllCards) StackTop() (core.CardId, bool) {
	if len(ac.stack) == 0 {
		return 0, false
	}
	return ac.stack[len(ac.stack)-1], true
}

func (ac *AllCards) removeFrom(player core.PlayerName, zone core.Zone, id core.CardId) {
	if zone == core.ZoneStack {
		ac.removeFromStack(id)
		return
	}
	slice := ac.zones[player][zone]
	for i, existing := range slice {
		if existing == id {
			ac.zones[player][zone] = append(slice[:i], slice[i+1:]...)
			return
		}
	}
}

func (ac *AllCards) removeFromStack(id core.CardId) {
	for i, existing := range ac.stack {
		if existing == id {
			ac.stack = append(ac.stack[:i], ac.stack[i+1:]...)
			return
		}
	}
}

func (ac *AllCards) insertInto(player core.PlayerName, zone core.Zone, id core.CardId) {
	if zone == core.ZoneStack {
		ac.stack = append(ac.stack, id)
		return
	}
	ac.zones[player][zone] = append(ac.zones[player][zone], id)
}

// ZoneChange describes the side effects of a single MoveCard call, used by
// the orchestrating effect applier to requeue triggers (C6) and publish
// invalidations (C9) without the zone manager itself depending on those
// packages.
type ZoneChange struct {
	Card          core.CardId
	FromZone      core.Zone
	ToZone        core.Zone
	FromPlayer    core.PlayerName
	ToPlayer      core.PlayerName
	NewObjectId   core.ObjectId
}

// MoveCard implements the move operation contract of §4.4: remove from the
// old container, stamp a fresh object ID, insert into the new container.
// newController lets a move also transfer control (e.g. MaterializeCharacter
// played by one player's effect onto the caster's own battlefield, or a
// future GainControl effect); pass the card's current controller to leave
// control unchanged.
func (ac *AllCards) MoveCard(id core.CardId, toZone core.Zone, newController core.PlayerName) (ZoneChange, error) {
	instance, ok := ac.cards[id]
	if !ok {
		return ZoneChange{}, engineerr.InvariantViolation(fmt.Sprintf("move_card: card %v missing from every zone", id), nil)
	}

	fromZone := instance.Zone
	fromPlayer := instance.Controller

	ac.removeFrom(fromPlayer, fromZone, id)

	objectId := ac.nextObjectId
	ac.nextObjectId++

	instance.Zone = toZone
	instance.Controller = newController
	instance.ObjectId = objectId

	ac.insertInto(newController, toZone, id)

	return ZoneChange{
		Card:        id,
		FromZone:    fromZone,
		ToZone:      toZone,
		FromPlayer:  fromPlayer,
		ToPlayer:    newController,
		NewObjectId: objectId,
	}, nil
}

// TargetValid implements the target validity rule of §4.4: a stored
// (CardId, ObjectId) target is valid iff the card still exists and its
// current object ID equals the stored one.
func (ac *AllCards) TargetValid(target core.CardObjectId) bool {
	instance, ok := ac.cards[target.Card]
	if !ok {
		return false
	}
	return instance.ObjectId == target.Object
}

// Clone returns a deep copy of the zone manager, sharing no mutable state
// with the original (§4.3, §5: clones must be cheap and independent).
func (ac *AllCards) Clone() *AllCards {
	clone := &AllCards{
		cards:        make(map[core.CardId]*CardInstance, len(ac.cards)),
		zones:        make(map[core.PlayerName]map[core.Zone][]core.CardId, len(ac.zones)),
		stack:        append([]core.CardId(nil), ac.stack...),
		nextCardId:   ac.nextCardId,
		nextObjectId: ac.nextObjectId,
	}
	for id, instance := range ac.cards {
		clone.cards[id] = instance.Clone()
	}
	for player, zoneMap := range ac.zones {
		clone.zones[player] = make(map[core.Zone][]core.CardId, len(zoneMap))
		for zone, ids := range zoneMap {
			clone.zones[player][zone] = append([]core.CardId(nil), ids...)
		}
	}
	return clone
}

// Count returns the number of cards in player's instance of zone.
func (ac *AllCards) Count(player core.PlayerName, zone core.Zone) int {
	return len(ac.zones[player][zone])
}

// ReorderTopOfZone replaces the top len(order) entries of player's
// instance of zone with order, bottom-to-top, validating that order is a
// permutation of the cards currently there (Foresee's deck-reorder prompt
// response). No object IDs change: reordering is not a zone move.
func (ac *AllCards) ReorderTopOfZone(player core.PlayerName, zone core.Zone, order []core.CardId) error {
	slice := ac.zones[player][zone]
	if len(order) > len(slice) {
		return engineerr.IllegalAction("reorder: more cards supplied than are in the zone")
	}
	start := len(slice) - len(order)
	existing := make(map[core.CardId]bool, len(order))
	for _, id := range slice[start:] {
		existing[id] = true
	}
	for _, id := range order {
		if !existing[id] {
			return engineerr.IllegalAction("reorder: supplied card is not among the top cards of the zone")
		}
		existing[id] = false
	}
	copy(slice[start:], order)
	return nil
}

// ShuffleZone permutes player's instance of zone in place using rng
// (§4.8's deck-reshuffle rule, §5 ordering guarantees).
func (ac *AllCards) ShuffleZone(player core.PlayerName, zone core.Zone, rng *Rng) {
	slice := ac.zones[player][zone]
	rng.Shuffle(len(slice), func(i, j int) {
		slice[i], slice[j] = slice[j], slice[i]
	})
}
