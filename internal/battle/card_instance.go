package battle

import (
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/core"
)

// AbilityInstanceState holds per-card, per-ability mutable flags that do
// not belong in the immutable CardDefinition — e.g. whether this card's
// one-shot Reclaim permission has already been used.
type AbilityInstanceState struct {
	ReclaimUsed bool
}

// CardInstance is one concrete card within a battle: a stable CardId bound
// to an immutable CardDefinition via Identity, plus the mutable state that
// changes as the card moves around (zone, object ID, controller, permanent
// spark bonuses, per-ability flags).
type CardInstance struct {
	Id         core.CardId
	Identity   carddef.BattleCardIdentity
	Owner      core.PlayerName
	Controller core.PlayerName
	Zone       core.Zone
	ObjectId   core.ObjectId
	SparkBonus core.Spark
	Abilities  map[int]*AbilityInstanceState

	// PreventDissolve is a runtime status granted by effects like
	// PreventDissolve (§4.8's Aegis-scoped protection); it lasts until the
	// end of the current turn, when internal/effects.ClearEndOfTurnStatus
	// clears it for both players' battlefield cards.
	PreventDissolve bool
}

func newCardInstance(id core.CardId, identity carddef.BattleCardIdentity, owner core.PlayerName) *CardInstance {
	return &CardInstance{
		Id:         id,
		Identity:   identity,
		Owner:      owner,
		Controller: owner,
		Zone:       core.ZoneDeck,
		Abilities:  make(map[int]*AbilityInstanceState),
	}
}

// AbilityState returns (creating if necessary) the mutable state for the
// ability at index.
func (c *CardInstance) AbilityState(index int) *AbilityInstanceState {
	state, ok := c.Abilities[index]
	if !ok {
		state = &AbilityInstanceState{}
		c.Abilities[index] = state
	}
	return state
}

// ObjectIdOf returns the (CardId, ObjectId) pair identifying this
// instance's current occupancy of its zone, for use as a stored target.
func (c *CardInstance) ObjectIdOf() core.CardObjectId {
	return core.CardObjectId{Card: c.Id, Object: c.ObjectId}
}

// Clone returns a deep copy suitable for a BattleState clone (§4.3, §5):
// cheap enough to run thousands of times per second for MCTS playouts.
func (c *CardInstance) Clone() *CardInstance {
	clone := *c
	clone.Abilities = make(map[int]*AbilityInstanceState, len(c.Abilities))
	for k, v := range c.Abilities {
		state := *v
		clone.Abilities[k] = &state
	}
	return &clone
}
