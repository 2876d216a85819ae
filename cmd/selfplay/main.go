// Command selfplay runs two UCT1 search agents against each other to
// completion, logging each action taken. Grounded on the Concurrency &
// Resource Model's "cross-battle parallelism" note that AI simulations
// run against their own BattleState, and on the teacher's cmd/server
// pattern of a flag-configured main that wires a logger before doing
// anything else.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dreamtides/rules-engine/internal/ai/uct"
	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/carddef"
	"github.com/dreamtides/rules-engine/internal/commands"
	"github.com/dreamtides/rules-engine/internal/content"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/enginelog"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/dreamtides/rules-engine/internal/protocol"
	"go.uber.org/zap"
)

func main() {
	tablePath := flag.String("cards", "", "path to a card content table; a small built-in deck is used if omitted")
	iterations := flag.Int("iterations", 200, "UCT1 iterations per decision")
	seed := flag.Uint64("seed", 1, "battle RNG seed")
	flag.Parse()

	logger, err := enginelog.New(enginelog.Config{Level: "info", Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, identities, err := buildStore(*tablePath)
	if err != nil {
		logger.Fatal("failed to build card store", zap.Error(err))
	}

	b := newSelfPlayBattle(store, identities, *seed)
	config := uct.Config{Iterations: *iterations, ExplorationConstant: 1.4142135623730951, MaxPlayoutActions: 200}
	cache := invalidation.NewCache()

	logger.Info("starting self-play battle", enginelog.Battle(*seed))

	for step := 0; !b.IsGameOver() && step < 10_000; step++ {
		player, ok := uct.ActingPlayer(b, cache)
		if !ok {
			break
		}

		before := commands.Capture(b)
		action := uct.SearchFromSaved(b, player, config)
		if err := protocol.PerformAction(b, cache, player, action); err != nil {
			logger.Warn("action rejected", enginelog.Player(player), zap.Error(err))
			continue
		}
		uct.OnActionPerformed(action)

		for _, cmd := range commands.Diff(before, b) {
			logger.Debug("command", zap.String("type", fmt.Sprintf("%T", cmd)))
		}
		logger.Info("action performed", enginelog.Player(player), enginelog.ActionType(fmt.Sprintf("%T", action)))
	}

	if winner := b.Winner; winner != nil {
		logger.Info("battle complete", enginelog.Player(*winner))
	} else {
		logger.Info("battle complete", zap.String("result", "draw"))
	}
}

func buildStore(tablePath string) (*carddef.Store, []carddef.BattleCardIdentity, error) {
	store := carddef.NewStore()
	if tablePath == "" {
		return store, builtinDeck(store), nil
	}

	table, err := content.Load(tablePath)
	if err != nil {
		return nil, nil, err
	}
	registered, err := content.Register(store, table)
	if err != nil {
		return nil, nil, err
	}
	identities := make([]carddef.BattleCardIdentity, 0, len(registered))
	for _, identity := range registered {
		identities = append(identities, identity)
	}
	return store, identities, nil
}

// builtinDeck registers three vanilla characters and one event so
// selfplay can run without a content table on disk.
func builtinDeck(store *carddef.Store) []carddef.BattleCardIdentity {
	identities := make([]carddef.BattleCardIdentity, 0, 4)
	characters := []struct {
		name  string
		cost  core.Energy
		spark core.Spark
	}{
		{"Selfplay Character One", 1, 1},
		{"Selfplay Character Two", 2, 2},
		{"Selfplay Character Three", 3, 3},
	}
	for _, c := range characters {
		identity, _ := store.Register(&carddef.CardDefinition{
			Name: c.name, CardType: carddef.TypeCharacter, Cost: c.cost, Spark: c.spark,
		})
		identities = append(identities, identity)
	}
	event, _ := store.Register(&carddef.CardDefinition{
		Name: "Selfplay Event", CardType: carddef.TypeEvent, Cost: core.Energy(1), IsFast: true,
	})
	identities = append(identities, event)
	return identities
}

func newSelfPlayBattle(store *carddef.Store, identities []carddef.BattleCardIdentity, seed uint64) *battle.BattleState {
	b := battle.New(store, seed)
	b.Status = battle.StatusPlaying
	b.Turn.Phase = battle.PhaseMain

	for _, player := range []core.PlayerName{core.PlayerOne, core.PlayerTwo} {
		for i := 0; i < 20; i++ {
			identity := identities[i%len(identities)]
			card := b.CreateCard(identity, player)
			if i < 5 {
				b.Cards.MoveCard(card.Id, core.ZoneHand, player)
			}
		}
		b.Players[player].CurrentEnergy = core.Energy(5)
	}
	return b
}
