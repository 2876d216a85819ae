package protocol

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/effects"
)

// performEndTurn moves the active player's Main phase to Ending, firing
// end-of-turn triggers and clearing "until end of turn" statuses (§4.7
// turn/phase state machine).
func performEndTurn(b *battle.BattleState, player core.PlayerName) error {
	effects.ClearEndOfTurnStatus(b, player)
	effects.ClearEndOfTurnStatus(b, player.Opponent())
	b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerEndOfYourTurn)})
	b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerEndOfEnemyTurn)})
	b.Turn.AdvancePhase()
	return nil
}

// performStartNextTurn is played by the non-active player once the active
// player's Ending phase completes with no further response. It advances
// through the next player's Judgment, Dreamwell, and Draw phases
// automatically (none of them offer a player decision) and stops at Main.
func performStartNextTurn(b *battle.BattleState, player core.PlayerName) error {
	b.Turn.AdvancePhase() // Ending -> next player's Judgment
	runAutoPhases(b)
	return nil
}

func runAutoPhases(b *battle.BattleState) {
	for {
		switch b.Turn.Phase {
		case battle.PhaseJudgment:
			b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerJudgment)})
			b.Turn.AdvancePhase()
		case battle.PhaseDreamwell:
			runDreamwellPhase(b)
			b.Turn.AdvancePhase()
		case battle.PhaseDraw:
			effects.DrawN(b, b.Turn.ActivePlayer, 1)
			b.Turn.AdvancePhase()
		default:
			return
		}
	}
}

// runDreamwellPhase produces the active player's next Dreamwell energy
// (SPEC_FULL.md's Supplemented Features, grounded on original_source's
// dreamwell_data.rs). A Dreamwell card's optional Effect is not resolved
// here: §4.8's applier keys every effect off a concrete source CardId, and
// Dreamwell cards carry no card identity of their own — a future revision
// would mint a synthetic source identity for this purpose.
func runDreamwellPhase(b *battle.BattleState) {
	card, ok := b.Dreamwell.Next(b.Turn.ActivePlayer)
	if !ok {
		return
	}
	effects.GainEnergy(b, b.Turn.ActivePlayer, card.EnergyProduced)
	b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerDreamwell)})
}
