package uct

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/dreamtides/rules-engine/internal/protocol"
)

// ActingPlayer reports which player currently has a decision to make in
// b, if any (neither player may have one, e.g. mid-resolution between
// passes). Search and playout both need this since protocol.LegalActions
// is computed per-player rather than naming whose turn it is to act.
func ActingPlayer(b *battle.BattleState, cache *invalidation.Cache) (core.PlayerName, bool) {
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		switch protocol.Compute(b, player, cache).(type) {
		case protocol.NoActionsGameOver, protocol.NoActionsOpponentPrompt,
			protocol.NoActionsOpponentPriority, protocol.NoActionsInCurrentPhase:
			continue
		default:
			return player, true
		}
	}
	return 0, false
}

// EnumerateActions expands player's current protocol.LegalActions into the
// concrete GameAction values the search tree can branch on. This is a
// layer above C7's legal-action API (which describes a decision shape to
// a UI, e.g. "pick one of these void cards") rather than an action list;
// no equivalent enumeration exists in the retrieved original_source
// (uct_search.rs, which would drive this in the Rust engine, isn't in the
// retrieved pack), so it is built fresh here, grounded on §4.10's
// requirement that "edges from a node correspond to legal actions from the
// battle state represented by that node."
//
// Target selection is not expanded into one action per legal target: every
// PlayCardAction/ActivateAbilityAction enumerated here carries zero-value
// Targets. An effect that strictly requires a target silently no-ops via
// §7's StaleTarget/SkipEffect recovery rather than being mis-resolved. A
// fuller implementation would enumerate one action per (card, target)
// pair; deferred as a known simplification (see DESIGN.md).
func EnumerateActions(b *battle.BattleState, player core.PlayerName, cache *invalidation.Cache) []protocol.GameAction {
	switch legal := protocol.Compute(b, player, cache).(type) {
	case protocol.Standard:
		actions := make([]protocol.GameAction, 0, len(legal.PlayableFromHand)+1)
		for _, cardId := range legal.PlayableFromHand {
			actions = append(actions, protocol.PlayCardAction{Card: core.HandCardId{ID: cardId}})
		}
		switch legal.Primary {
		case protocol.PrimaryPassPriority:
			actions = append(actions, protocol.PassPriorityAction{})
		case protocol.PrimaryEndTurn:
			actions = append(actions, protocol.EndTurnAction{})
		case protocol.PrimaryStartNextTurn:
			actions = append(actions, protocol.StartNextTurnAction{})
		}
		return actions
	case protocol.SelectCharacterPrompt:
		actions := make([]protocol.GameAction, 0, len(legal.Valid))
		for _, target := range legal.Valid {
			t := target
			actions = append(actions, protocol.RespondToPromptAction{Character: &t})
		}
		return actions
	case protocol.SelectStackCardPrompt:
		actions := make([]protocol.GameAction, 0, len(legal.Valid))
		for _, target := range legal.Valid {
			t := target
			actions = append(actions, protocol.RespondToPromptAction{StackCard: &t})
		}
		return actions
	case protocol.SelectVoidCardPrompt:
		// No-selection is always a legal response shape for this prompt
		// kind in this module (reclaim-style void prompts have no required
		// minimum here); a richer enumeration would add one action per
		// non-empty subset of legal.Valid.
		return []protocol.GameAction{protocol.RespondToPromptAction{}}
	case protocol.SelectPromptChoicePrompt:
		actions := make([]protocol.GameAction, 0, legal.ChoiceCount)
		for i := 0; i < legal.ChoiceCount; i++ {
			actions = append(actions, protocol.RespondToPromptAction{Choice: i})
		}
		return actions
	case protocol.SelectEnergyValuePrompt:
		actions := make([]protocol.GameAction, 0, legal.Maximum-legal.Minimum+1)
		for v := legal.Minimum; v <= legal.Maximum; v++ {
			actions = append(actions, protocol.RespondToPromptAction{EnergyValue: core.Energy(v)})
		}
		return actions
	case protocol.SelectDeckOrderPrompt:
		return []protocol.GameAction{protocol.RespondToPromptAction{DeckOrder: legal.Cards}}
	default:
		return nil
	}
}
