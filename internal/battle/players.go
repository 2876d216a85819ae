package battle

import "github.com/dreamtides/rules-engine/internal/core"

// PlayerType distinguishes a human-controlled seat from an AI-controlled
// one, mirroring the teacher's player-kind distinction but without any
// network-session concept (out of scope, see SPEC_FULL.md).
type PlayerType int

const (
	PlayerTypeHuman PlayerType = iota
	PlayerTypeAgent
)

// QuestState tracks the player's progress toward whatever victory
// condition the surrounding game mode defines; the core engine only needs
// to persist it opaquely through clones (§4.3 names it without defining
// its shape further).
type QuestState struct {
	Data map[string]int
}

// PlayerState is one player's mutable data (§4.3).
type PlayerState struct {
	PlayerType     PlayerType
	Points         core.Points
	SparkBonus     core.Spark
	CurrentEnergy  core.Energy
	ProducedEnergy core.Energy
	QuestState     QuestState
	Passed         bool

	// PendingDoubleEnergy records that a DoubleYourEnergy or
	// GainTwiceThatMuchEnergyInstead effect has resolved and the player's
	// next energy gain this turn should be doubled (§4.8, §9 open
	// question #2; internal/effects.GainEnergy consumes this flag).
	PendingDoubleEnergy bool
}

func newPlayerState(kind PlayerType) *PlayerState {
	return &PlayerState{
		PlayerType: kind,
		QuestState: QuestState{Data: make(map[string]int)},
	}
}

// Clone returns a deep copy.
func (p *PlayerState) Clone() *PlayerState {
	clone := *p
	clone.QuestState.Data = make(map[string]int, len(p.QuestState.Data))
	for k, v := range p.QuestState.Data {
		clone.QuestState.Data[k] = v
	}
	return &clone
}
