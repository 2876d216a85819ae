package battle

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/core"
)

// DreamwellCard is one entry in a player's Dreamwell: a shared auxiliary
// deck iterated during the Dreamwell phase, each card producing energy and
// optionally applying an effect (SPEC_FULL.md Supplemented Features,
// grounded on original_source's battle_cards/dreamwell_data.rs).
type DreamwellCard struct {
	EnergyProduced core.Energy
	Effect         ability.Effect // nil if this card only produces energy
}

// DreamwellData holds each player's Dreamwell deck and draw cursor.
type DreamwellData struct {
	Cards  map[core.PlayerName][]DreamwellCard
	Cursor map[core.PlayerName]int
}

// NewDreamwellData constructs an empty Dreamwell for both players.
func NewDreamwellData() *DreamwellData {
	return &DreamwellData{
		Cards:  make(map[core.PlayerName][]DreamwellCard),
		Cursor: make(map[core.PlayerName]int),
	}
}

// Next returns player's next Dreamwell card and advances their cursor,
// wrapping around to the start once exhausted (an auxiliary deck is never
// "empty" the way a draw deck can be).
func (d *DreamwellData) Next(player core.PlayerName) (DreamwellCard, bool) {
	cards := d.Cards[player]
	if len(cards) == 0 {
		return DreamwellCard{}, false
	}
	cursor := d.Cursor[player]
	card := cards[cursor%len(cards)]
	d.Cursor[player] = (cursor + 1) % len(cards)
	return card, true
}

// Clone returns a deep copy.
func (d *DreamwellData) Clone() *DreamwellData {
	clone := NewDreamwellData()
	for player, cards := range d.Cards {
		clone.Cards[player] = append([]DreamwellCard(nil), cards...)
	}
	for player, cursor := range d.Cursor {
		clone.Cursor[player] = cursor
	}
	return clone
}
