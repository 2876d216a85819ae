package commands

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

var allZones = [...]core.Zone{
	core.ZoneDeck, core.ZoneHand, core.ZoneBattlefield,
	core.ZoneStack, core.ZoneVoid, core.ZoneBanished,
}
var allPlayers = [...]core.PlayerName{core.PlayerOne, core.PlayerTwo}

type cardLocation struct {
	owner    core.PlayerName
	zone     core.Zone
	position int
}

// Snapshot is a "before" capture of everything the command builder diffs
// against: every card's zone/position and every player's energy/points
// display fields. Capture one before an externally driven mutation and
// diff it against the state afterward.
type Snapshot struct {
	locations map[core.CardId]cardLocation
	energy    map[core.PlayerName]core.Energy
	points    map[core.PlayerName]core.Points
}

// Capture builds a Snapshot of b's current zone contents and per-player
// UI fields.
func Capture(b *battle.BattleState) Snapshot {
	snap := Snapshot{
		locations: make(map[core.CardId]cardLocation),
		energy:    make(map[core.PlayerName]core.Energy),
		points:    make(map[core.PlayerName]core.Points),
	}
	for _, player := range allPlayers {
		for _, zone := range allZones {
			if zone == core.ZoneStack {
				continue
			}
			for i, id := range b.Cards.InZone(player, zone) {
				snap.locations[id] = cardLocation{owner: player, zone: zone, position: i}
			}
		}
		snap.energy[player] = b.Players[player].CurrentEnergy
		snap.points[player] = b.Players[player].Points
	}
	for i, id := range b.Cards.Stack() {
		zone, controller, ok := b.Cards.Zone(id)
		if !ok {
			continue
		}
		_ = zone
		snap.locations[id] = cardLocation{owner: controller, zone: core.ZoneStack, position: i}
	}
	return snap
}

// Diff compares before against b's current state and returns the
// ordered list of renderer commands needed to bring a client showing
// before up to date with b, per §4.11: a card with no prior recorded
// location is a CreateCard, a card whose zone, owner or position changed is
// a MoveCard, and a changed energy/points value is an UpdatePlayerUi. The
// current front prompt, if any, becomes a DisplayPrompt; prompts are not
// part of the Snapshot, so a prompt that was already pending before is
// emitted again on every Diff until it is answered. Iteration order is
// fixed (players, then zones, in declaration order) so the same state
// transition always yields the same command sequence, per §4.11's
// determinism requirement.
func Diff(before Snapshot, b *battle.BattleState) []Command {
	after := Capture(b)
	var cmds []Command

	for _, player := range allPlayers {
		for _, zone := range allZones {
			ids := b.Cards.InZone(player, zone)
			if zone == core.ZoneStack {
				continue
			}
			for position, id := range ids {
				prior, known := before.locations[id]
				switch {
				case !known:
					cmds = append(cmds, CreateCard{Card: id, Owner: player, Zone: zone, Position: position})
				case prior.zone != zone || prior.owner != player || prior.position != position:
					cmds = append(cmds, MoveCard{Card: id, Zone: zone, Position: position})
				}
			}
		}
	}
	for position, id := range b.Cards.Stack() {
		prior, known := before.locations[id]
		loc := after.locations[id]
		switch {
		case !known:
			cmds = append(cmds, CreateCard{Card: id, Owner: loc.owner, Zone: core.ZoneStack, Position: position})
		case prior.zone != core.ZoneStack || prior.position != position:
			cmds = append(cmds, MoveCard{Card: id, Zone: core.ZoneStack, Position: position})
		}
	}

	if prompt, ok := b.FrontPrompt(); ok {
		cmds = append(cmds, DisplayPrompt{Player: prompt.Player, Label: promptLabel(prompt.Type), Valid: promptValid(prompt.Type)})
	}

	for _, player := range allPlayers {
		if before.energy[player] != after.energy[player] || before.points[player] != after.points[player] {
			cmds = append(cmds, UpdatePlayerUi{Player: player, Energy: after.energy[player], Points: after.points[player]})
		}
	}

	return cmds
}

func promptLabel(t battle.PromptType) string {
	switch t.(type) {
	case battle.ChooseCharacter:
		return "choose_character"
	case battle.ChooseStackCard:
		return "choose_stack_card"
	case battle.ChooseVoidCard:
		return "choose_void_card"
	case battle.ChooseEnergyValue:
		return "choose_energy_value"
	case battle.ModalEffectChoice:
		return "modal_effect_choice"
	case battle.SelectDeckCardOrder:
		return "select_deck_card_order"
	default:
		return "unknown_prompt"
	}
}

func promptValid(t battle.PromptType) []core.CardObjectId {
	switch p := t.(type) {
	case battle.ChooseCharacter:
		return p.Valid
	case battle.ChooseStackCard:
		return p.Valid
	case battle.ChooseVoidCard:
		return p.Valid
	case battle.SelectDeckCardOrder:
		return p.Cards
	default:
		return nil
	}
}
