// Package commands implements the renderer command stream builder (C11):
// after each externally driven mutation, it diffs a "before" snapshot
// against the current battle state and emits an ordered, deterministic
// list of renderer commands (§4.11). No equivalent module is present in
// the retrieved original_source, so the command shapes follow §4.11's
// list directly; the underlying idea — building an ordered list of
// typed events describing a state transition for a remote UI to consume
// — is grounded on the teacher's GameNotification/emitNotification
// pattern in mage_engine.go, generalized from a single stringly-typed
// event struct into a closed sum of concrete command types, matching
// the closed-sum idiom this module already uses for GameAction and
// Ability.
package commands

import "github.com/dreamtides/rules-engine/internal/core"

// Command is the closed sum of renderer commands (§4.11). Only this
// package defines implementations.
type Command interface {
	command()
}

// CreateCard instructs the renderer to materialize a card it has not
// shown before, in zone at position (index within that zone, bottom to
// top / first to last).
type CreateCard struct {
	Card     core.CardId
	Owner    core.PlayerName
	Zone     core.Zone
	Position int
}

// MoveCard instructs the renderer to animate an already-known card to a
// new zone and position.
type MoveCard struct {
	Card     core.CardId
	Zone     core.Zone
	Position int
}

// DisplayPrompt instructs the renderer to surface a prompt to the named
// player; Valid enumerates the object IDs the player may legally choose,
// when the prompt kind constrains choices that way.
type DisplayPrompt struct {
	Player core.PlayerName
	Label  string
	Valid  []core.CardObjectId
}

// UpdatePlayerUi instructs the renderer to refresh a player's energy and
// score display.
type UpdatePlayerUi struct {
	Player core.PlayerName
	Energy core.Energy
	Points core.Points
}

// PlaySound instructs the renderer to play a named sound effect; Name is
// an opaque renderer-side sound identifier, not resolved by this package.
type PlaySound struct {
	Name string
}

// Preview instructs the renderer to briefly show a future-state
// animation frame (e.g. a card about to resolve) without committing to
// it as the current state; the commands it carries describe that frame
// the same way the top-level stream does.
type Preview struct {
	Commands []Command
}

func (CreateCard) command()      {}
func (MoveCard) command()        {}
func (DisplayPrompt) command()   {}
func (UpdatePlayerUi) command()  {}
func (PlaySound) command()       {}
func (Preview) command()         {}
