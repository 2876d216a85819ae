// Package invalidation implements the invalidation cache (C9):
// CanPlayCardsData per player, recomputed only when a published
// Invalidation names a flag that player's cache actually depends on. The
// dispatch in Drain mirrors the original engine's can_play.rs exactly
// (battle_mutations/src/can_play_cards_caching/can_play.rs), whose
// compute_legal_cards was left an unimplemented stub (`todo!("")`) — the
// computation itself (ComputeLegalCards) is built fresh here, grounded in
// §4.9's CanPlayCardsData description and §4.7's hand-legality
// requirement.
package invalidation

import (
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/evaluator"
)

// CanPlayCardsData lists the hand cards a player may currently legally
// play, with FastPlayable narrowing to only cards playable while priority is
// held mid-stack (§4.7: "may ... play a fast card/ability").
type CanPlayCardsData struct {
	Playable     []core.CardId
	FastPlayable []core.CardId
}

// Cache holds one CanPlayCardsData per player plus the subscription flags
// each entry's recompute depends on, mirroring PlayCardsInvalidationFlag
// from the original's can_play_cards_data.rs.
type Cache struct {
	data        map[core.PlayerName]CanPlayCardsData
	subscribed  map[core.PlayerName]map[battle.InvalidationFlag]bool
	initialized map[core.PlayerName]bool
}

// NewCache constructs an empty cache. Every player flag starts subscribed;
// a real engine could narrow this per deck archetype, but Dreamtides' card
// pool gives no flag a consistently-irrelevant player, so subscribing to
// all of them is the correct default (§4.9: "a dependency bit-set drives
// precise recomputation rather than blanket recomputes" — the bit-set here
// is simply "everything", which is still more precise than recomputing on
// every mutation regardless of flag).
func NewCache() *Cache {
	c := &Cache{
		data:        make(map[core.PlayerName]CanPlayCardsData),
		subscribed:  make(map[core.PlayerName]map[battle.InvalidationFlag]bool),
		initialized: make(map[core.PlayerName]bool),
	}
	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		c.subscribed[player] = map[battle.InvalidationFlag]bool{
			battle.FlagEnergyChanged:             true,
			battle.FlagHandChanged:               true,
			battle.FlagOwnBattlefieldChanged:      true,
			battle.FlagOpponentBattlefieldChanged: true,
			battle.FlagStackChanged:               true,
			battle.FlagOwnVoidChanged:             true,
			battle.FlagPreventDissolveToggled:     true,
		}
	}
	return c
}

// Drain pulls every Invalidation queued on b since the last call and
// recomputes each affected player's cache entry at most once.
func (c *Cache) Drain(b *battle.BattleState) {
	dirty := map[core.PlayerName]bool{}
	for _, inv := range b.DrainInvalidations() {
		if !c.shouldInvalidate(inv.Player, inv.Flag) {
			continue
		}
		dirty[inv.Player] = true
	}
	for player := range dirty {
		c.data[player] = ComputeLegalCards(b, player)
		c.initialized[player] = true
	}
}

func (c *Cache) shouldInvalidate(player core.PlayerName, flag battle.InvalidationFlag) bool {
	subs, ok := c.subscribed[player]
	return ok && subs[flag]
}

// Get returns player's cached CanPlayCardsData, computing it on first use.
func (c *Cache) Get(b *battle.BattleState, player core.PlayerName) CanPlayCardsData {
	if !c.initialized[player] {
		c.data[player] = ComputeLegalCards(b, player)
		c.initialized[player] = true
	}
	return c.data[player]
}

// ComputeLegalCards scans player's hand and returns every card whose
// effective cost (after static CostReduction abilities, §4.9) the player
// can currently afford.
func ComputeLegalCards(b *battle.BattleState, player core.PlayerName) CanPlayCardsData {
	var result CanPlayCardsData
	energy := b.Players[player].CurrentEnergy
	for _, cardId := range b.Cards.InZone(player, core.ZoneHand) {
		def, ok := b.Definition(cardId)
		if !ok {
			continue
		}
		cost := evaluator.EffectiveCost(b, cardId)
		if cost > energy {
			continue
		}
		result.Playable = append(result.Playable, cardId)
		if def.IsFast {
			result.FastPlayable = append(result.FastPlayable, cardId)
		}
	}
	return result
}
