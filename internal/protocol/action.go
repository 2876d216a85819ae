// Package protocol implements the action protocol (C7): legal-action
// computation, priority discipline, and stack resolution, grounded
// directly on original_source/rules_engine/src/battle_queries/src/
// legal_action_queries/legal_actions.rs and the priority protocol in §4.7.
package protocol

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

// GameAction is the closed sum perform_action accepts (§6): battle
// actions, debug actions, and panel-navigation actions. Only this package
// defines implementations.
type GameAction interface {
	gameAction()
}

// PlayCardAction plays card from hand, with optional pre-chosen targets
// (supplied when the UI already knows them) and any extra energy paid
// beyond the printed cost (grounds Dreamscatter, S2).
type PlayCardAction struct {
	Card       core.HandCardId
	Targets    battle.EffectTargets
	ExtraPaid  core.Energy
	ModalIndex int
}

// ActivateAbilityAction activates a battlefield character's activated
// ability.
type ActivateAbilityAction struct {
	Ability ability.AbilityId
	Targets battle.EffectTargets
}

// PassPriorityAction passes priority, resolving the top stack item if the
// holder of priority chose to let it resolve (§4.7 step 2).
type PassPriorityAction struct{}

// EndTurnAction ends the active player's main phase.
type EndTurnAction struct{}

// StartNextTurnAction is played by the non-active player once the active
// player's Ending phase completes without further response.
type StartNextTurnAction struct{}

// RespondToPromptAction answers whatever prompt is at the front of the
// queue; which variant is legal is determined by the prompt's PromptType.
type RespondToPromptAction struct {
	Character  *core.CardObjectId
	StackCard  *core.CardObjectId
	VoidCards  []core.CardObjectId
	Choice     int
	EnergyValue core.Energy
	DeckOrder  []core.CardObjectId
}

// DebugAction performs an engine-level debugging mutation (e.g. forcing a
// draw), never exposed to a human player's normal legal-action set.
type DebugAction struct{ Label string }

// PanelNavigationAction switches the requesting client's UI panel; it
// never mutates battle state.
type PanelNavigationAction struct{ Panel string }

func (PlayCardAction) gameAction()         {}
func (ActivateAbilityAction) gameAction()  {}
func (PassPriorityAction) gameAction()     {}
func (EndTurnAction) gameAction()          {}
func (StartNextTurnAction) gameAction()    {}
func (RespondToPromptAction) gameAction()  {}
func (DebugAction) gameAction()            {}
func (PanelNavigationAction) gameAction()  {}
