package battle

import "github.com/dreamtides/rules-engine/internal/core"

// Phase is one of the five turn phases (§4.3, §4.7), replacing the
// teacher's Magic-the-Gathering beginning/precombat/combat/postcombat/
// ending sequence: Dreamtides has no creature-combat step.
type Phase int

const (
	PhaseJudgment Phase = iota
	PhaseDreamwell
	PhaseDraw
	PhaseMain
	PhaseEnding
)

func (p Phase) String() string {
	switch p {
	case PhaseJudgment:
		return "Judgment"
	case PhaseDreamwell:
		return "Dreamwell"
	case PhaseDraw:
		return "Draw"
	case PhaseMain:
		return "Main"
	case PhaseEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// phaseOrder is the fixed cycle: Judgment -> Dreamwell -> Draw -> Main ->
// Ending -> next player's Judgment (§4.7).
var phaseOrder = []Phase{PhaseJudgment, PhaseDreamwell, PhaseDraw, PhaseMain, PhaseEnding}

// TurnState tracks whose turn it is, which phase is active, and the turn
// counter used by the 25-round hard limit (§4.8, S7).
type TurnState struct {
	ActivePlayer core.PlayerName
	Phase        Phase
	TurnId       core.TurnId
}

// AdvancePhase moves to the next phase, wrapping to the next player's
// Judgment phase and incrementing TurnId when Ending completes. Returns the
// new active player for convenience.
func (t *TurnState) AdvancePhase() core.PlayerName {
	currentIndex := 0
	for i, phase := range phaseOrder {
		if phase == t.Phase {
			currentIndex = i
			break
		}
	}
	if currentIndex == len(phaseOrder)-1 {
		t.ActivePlayer = t.ActivePlayer.Opponent()
		t.Phase = phaseOrder[0]
		t.TurnId++
	} else {
		t.Phase = phaseOrder[currentIndex+1]
	}
	return t.ActivePlayer
}

// RoundNumber reports the 1-indexed full-round count, for the 25-round
// draw rule (§4.8, S7): a round completes once both players have taken a
// turn, i.e. every time PlayerOne returns to Judgment.
func (t *TurnState) RoundNumber() int {
	return (int(t.TurnId) + 1) / 2
}
