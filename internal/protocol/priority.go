package protocol

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/effects"
)

// performPassPriority implements §4.7 step 2: the top stack item resolves,
// and priority either returns to the just-resolved item's controller (if
// the stack is still non-empty) or clears to None.
func performPassPriority(b *battle.BattleState, player core.PlayerName) error {
	if b.StackEmpty() {
		b.StackPriority = nil
		return nil
	}

	controller, stillNonEmpty, err := effects.ResolveTop(b)
	if err != nil {
		return err
	}
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagStackChanged, Player: player})

	if stillNonEmpty {
		b.StackPriority = &controller
	} else {
		b.StackPriority = nil
	}
	return nil
}
