package effects

import (
	"github.com/dreamtides/rules-engine/internal/ability"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
)

// GainEnergy grants player the given amount of energy directly, applying
// whatever DoubleYourEnergy/GainTwiceThatMuchEnergyInstead replacement is
// currently pending for them (§4.8, §9 open question #2): the last such
// replacement queued before this call wins, per DESIGN.md's resolution.
func GainEnergy(b *battle.BattleState, player core.PlayerName, amount core.Energy) {
	state := b.Players[player]
	if state.PendingDoubleEnergy {
		amount *= 2
		state.PendingDoubleEnergy = false
	}
	state.CurrentEnergy = core.SatAddEnergy(state.CurrentEnergy, int(amount))
	if amount > 0 {
		b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerGainedEnergy)})
	}
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagEnergyChanged, Player: player})
}

// SpendEnergy deducts amount from player's current energy, saturating at
// zero, and publishes the same FlagEnergyChanged invalidation GainEnergy
// does. Kept separate from GainEnergy so a DoubleYourEnergy replacement
// never misapplies to a payment.
func SpendEnergy(b *battle.BattleState, player core.PlayerName, amount core.Energy) {
	state := b.Players[player]
	state.CurrentEnergy = core.SatAddEnergy(state.CurrentEnergy, -int(amount))
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagEnergyChanged, Player: player})
}

func applyDoubleEnergy(b *battle.BattleState, player core.PlayerName) error {
	b.Players[player].PendingDoubleEnergy = true
	return nil
}

// DrawN draws count cards for player, reshuffling their void back into
// their deck if it runs dry mid-draw (§4.8: "drawing more cards than
// remain in the deck shuffles the deck's original definition back into the
// deck... never produces duplicates of in-play cards" — satisfied here by
// recycling the player's own void rather than manufacturing new instances).
func DrawN(b *battle.BattleState, player core.PlayerName, count int) error {
	for i := 0; i < count; i++ {
		if err := drawOne(b, player); err != nil {
			return err
		}
	}
	return nil
}

func drawOne(b *battle.BattleState, player core.PlayerName) error {
	deck := b.Cards.InZone(player, core.ZoneDeck)
	if len(deck) == 0 {
		reshuffleVoidIntoDeck(b, player)
		deck = b.Cards.InZone(player, core.ZoneDeck)
		if len(deck) == 0 {
			return nil // no cards left anywhere: draw is a silent no-op
		}
	}

	top := deck[len(deck)-1]
	if _, err := b.Cards.MoveCard(top, core.ZoneHand, player); err != nil {
		return err
	}
	b.QueueTriggerEvent(battle.PendingTriggerEvent{Event: int(ability.TriggerDrewCard), Source: top, HasSource: true})
	b.PublishInvalidation(battle.Invalidation{Flag: battle.FlagHandChanged, Player: player})

	if b.Cards.Count(player, core.ZoneHand) > HandSizeLimit {
		GainEnergy(b, player, 1)
	}
	return nil
}

func reshuffleVoidIntoDeck(b *battle.BattleState, player core.PlayerName) {
	void := b.Cards.InZone(player, core.ZoneVoid)
	for _, cardId := range void {
		if _, err := b.Cards.MoveCard(cardId, core.ZoneDeck, player); err != nil {
			return
		}
	}
	b.Cards.ShuffleZone(player, core.ZoneDeck, b.Rng)
}

// applyForesee opens a SelectDeckCardOrder prompt over the top count cards
// of the controller's deck (glossary "Foresee N"); internal/protocol
// resolves the prompt response by reordering those cards in AllCards.
func applyForesee(b *battle.BattleState, player core.PlayerName, count int) error {
	deck := b.Cards.InZone(player, core.ZoneDeck)
	if count > len(deck) {
		count = len(deck)
	}
	top := deck[len(deck)-count:]
	var targets []core.CardObjectId
	for _, cardId := range top {
		if instance, ok := b.Cards.Get(cardId); ok {
			targets = append(targets, instance.ObjectIdOf())
		}
	}
	b.PushPrompt(battle.Prompt{
		Player: player,
		Type:   battle.SelectDeckCardOrder{Cards: targets},
	})
	return nil
}
