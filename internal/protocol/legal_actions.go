package protocol

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
)

// LegalActions is the closed sum compute returns (§4.7). Only this
// package defines implementations.
type LegalActions interface {
	legalActions()
}

// NoActionsGameOver is returned once the battle has ended.
type NoActionsGameOver struct{}

// NoActionsOpponentPrompt is returned when a prompt is open for the
// opponent.
type NoActionsOpponentPrompt struct{}

// SelectCharacterPrompt is returned when this player must choose a
// character from Valid.
type SelectCharacterPrompt struct{ Valid []core.CardObjectId }

// SelectStackCardPrompt is returned when this player must choose a stack
// card from Valid.
type SelectStackCardPrompt struct{ Valid []core.CardObjectId }

// SelectVoidCardPrompt is returned when this player must choose a void
// card from Valid.
type SelectVoidCardPrompt struct{ Valid []core.CardObjectId }

// SelectPromptChoicePrompt is returned when this player must pick one of
// ChoiceCount modal options.
type SelectPromptChoicePrompt struct{ ChoiceCount int }

// SelectEnergyValuePrompt is returned when this player must choose an
// integer energy amount in [Minimum, Maximum].
type SelectEnergyValuePrompt struct {
	Minimum int
	Maximum int
}

// SelectDeckOrderPrompt is returned when this player must reorder Cards
// (Foresee).
type SelectDeckOrderPrompt struct{ Cards []core.CardObjectId }

// NoActionsOpponentPriority is returned when the opponent currently holds
// stack priority.
type NoActionsOpponentPriority struct{}

// PrimaryLegalAction names the non-card action available alongside
// whatever cards are legally playable from hand (§4.7).
type PrimaryLegalAction int

const (
	PrimaryPassPriority PrimaryLegalAction = iota
	PrimaryEndTurn
	PrimaryStartNextTurn
)

// Standard is returned during normal play: a primary action plus the set
// of hand cards this player may currently play.
type Standard struct {
	Primary         PrimaryLegalAction
	FastOnly        bool
	PlayableFromHand []core.CardId
}

// NoActionsInCurrentPhase is returned whenever none of the above apply
// (e.g. this player's Ending phase with nothing left to do).
type NoActionsInCurrentPhase struct{}

func (NoActionsGameOver) legalActions()        {}
func (NoActionsOpponentPrompt) legalActions()  {}
func (SelectCharacterPrompt) legalActions()    {}
func (SelectStackCardPrompt) legalActions()    {}
func (SelectVoidCardPrompt) legalActions()     {}
func (SelectPromptChoicePrompt) legalActions() {}
func (SelectEnergyValuePrompt) legalActions()  {}
func (SelectDeckOrderPrompt) legalActions()    {}
func (NoActionsOpponentPriority) legalActions() {}
func (Standard) legalActions()                 {}
func (NoActionsInCurrentPhase) legalActions()  {}

// Compute implements §4.7's legal-action algorithm exactly, grounded on
// legal_actions.rs's compute function.
func Compute(b *battle.BattleState, player core.PlayerName, cache *invalidation.Cache) LegalActions {
	if b.IsGameOver() {
		return NoActionsGameOver{}
	}

	if prompt, ok := b.FrontPrompt(); ok {
		if prompt.Player != player {
			return NoActionsOpponentPrompt{}
		}
		return legalActionsForPrompt(prompt)
	}

	if b.StackPriority != nil {
		if *b.StackPriority == player {
			return standardLegalActions(b, player, PrimaryPassPriority, true, cache)
		}
		return NoActionsOpponentPriority{}
	}

	if b.Turn.ActivePlayer == player && b.Turn.Phase == battle.PhaseMain {
		return standardLegalActions(b, player, PrimaryEndTurn, false, cache)
	}

	if b.Turn.ActivePlayer != player && b.Turn.Phase == battle.PhaseEnding {
		return standardLegalActions(b, player, PrimaryStartNextTurn, true, cache)
	}

	return NoActionsInCurrentPhase{}
}

func legalActionsForPrompt(prompt battle.Prompt) LegalActions {
	switch t := prompt.Type.(type) {
	case battle.ChooseCharacter:
		return SelectCharacterPrompt{Valid: t.Valid}
	case battle.ChooseStackCard:
		return SelectStackCardPrompt{Valid: t.Valid}
	case battle.ChooseVoidCard:
		return SelectVoidCardPrompt{Valid: t.Valid}
	case battle.ChooseEnergyValue:
		return SelectEnergyValuePrompt{Minimum: t.Minimum, Maximum: t.Maximum}
	case battle.ModalEffectChoice:
		return SelectPromptChoicePrompt{ChoiceCount: t.Count}
	case battle.SelectDeckCardOrder:
		return SelectDeckOrderPrompt{Cards: t.Cards}
	default:
		return NoActionsInCurrentPhase{}
	}
}

func standardLegalActions(b *battle.BattleState, player core.PlayerName, primary PrimaryLegalAction, fastOnly bool, cache *invalidation.Cache) LegalActions {
	data := cache.Get(b, player)
	playable := data.Playable
	if fastOnly {
		playable = data.FastPlayable
	}
	return Standard{Primary: primary, FastOnly: fastOnly, PlayableFromHand: playable}
}
