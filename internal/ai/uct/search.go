package uct

import (
	"math"
	"math/rand/v2"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/dreamtides/rules-engine/internal/core"
	"github.com/dreamtides/rules-engine/internal/invalidation"
	"github.com/dreamtides/rules-engine/internal/protocol"
)

// Config bounds a single search call (§4.10's "budget (iterations or
// time)" and UCB1's exploration constant c).
type Config struct {
	Iterations int
	// ExplorationConstant is c in reward/visits + c*sqrt(ln(parentVisits)/visits).
	ExplorationConstant float64
	// MaxPlayoutActions bounds simulate's random playout, standing in for
	// §4.10's "bounded by turn limit" (effects.RoundLimit already ends any
	// real battle by then; this is a tighter per-simulation budget so a
	// single playout cannot dominate an iteration's cost).
	MaxPlayoutActions int
}

// DefaultConfig returns reasonable defaults: 1000 iterations, UCB1's
// textbook c = sqrt(2), and a playout bound generous enough to reach a
// terminal state in the vast majority of simulated games.
func DefaultConfig() Config {
	return Config{
		Iterations:          1000,
		ExplorationConstant: math.Sqrt2,
		MaxPlayoutActions:   200,
	}
}

// Search runs UCT1 search from scratch (no persistent subtree available)
// and returns the root's highest-visit-count child action, grounded on
// persistent_tree.rs's search_from_empty.
func Search(initial *battle.BattleState, player core.PlayerName, config Config) protocol.GameAction {
	tree := newTree()
	root := tree.addNode(newNode(initial, player))
	runIterations(tree, root, config)
	onSearchCompleted(tree, root)
	return bestAction(tree, root)
}

// SearchFromSaved runs search reusing the process-wide saved tree whenever
// one exists, falling back to a fresh search from initial otherwise. It
// does not check that the saved root's state or player matches initial and
// player; the saved tree is only kept in step with the real game through
// OnActionPerformed. Grounded on persistent_tree.rs's search_from_saved.
func SearchFromSaved(initial *battle.BattleState, player core.PlayerName, config Config) protocol.GameAction {
	if saved, ok := getSavedTree(); ok {
		runIterations(saved.tree, saved.root, config)
		onSearchCompleted(saved.tree, saved.root)
		return bestAction(saved.tree, saved.root)
	}
	return Search(initial, player, config)
}

func runIterations(tree *Tree, root NodeIndex, config Config) {
	for i := 0; i < config.Iterations; i++ {
		leaf := selectAndExpand(tree, root, config)
		terminalState := simulate(tree.node(leaf).State, config)
		backpropagate(tree, pathTo(tree, root, leaf), terminalState)
	}
}

// selectAndExpand descends from root via UCB1 while the current node is
// fully expanded and non-terminal, then expands one untried action from
// the node it stops at and returns the new child (or the stopping node
// itself, if terminal). Grounded on §4.10 steps 1-2.
func selectAndExpand(tree *Tree, root NodeIndex, config Config) NodeIndex {
	current := root
	for {
		node := tree.node(current)
		if node.Terminal {
			return current
		}
		if len(node.Untried) > 0 {
			return expand(tree, current)
		}
		current = selectChildUCB1(tree, current, config.ExplorationConstant)
	}
}

func expand(tree *Tree, parent NodeIndex) NodeIndex {
	node := tree.node(parent)
	action := node.Untried[0]
	node.Untried = node.Untried[1:]

	childState := node.State.Clone()
	_ = protocol.PerformAction(childState, node.Cache, node.Player, action)

	childPlayer, ok := ActingPlayer(childState, node.Cache)
	if !ok {
		childPlayer = node.Player
	}
	child := newNode(childState, childPlayer)
	childIdx := tree.addNode(child)
	tree.addEdge(parent, action, childIdx)
	return childIdx
}

func selectChildUCB1(tree *Tree, parent NodeIndex, c float64) NodeIndex {
	parentVisits := tree.node(parent).VisitCount
	best := noNode
	bestScore := math.Inf(-1)
	for _, edge := range tree.childEdges(parent) {
		child := tree.node(edge.Target)
		if child.VisitCount == 0 {
			return edge.Target
		}
		exploit := child.TotalReward / float64(child.VisitCount)
		explore := c * math.Sqrt(math.Log(float64(parentVisits))/float64(child.VisitCount))
		if score := exploit + explore; score > bestScore {
			bestScore = score
			best = edge.Target
		}
	}
	return best
}

// simulate runs a uniformly-random playout from state (cloned first, so
// the node's own stored state is left untouched) until a terminal state
// or config.MaxPlayoutActions is reached, and returns the resulting
// state for backpropagate to score from each path node's own perspective.
func simulate(state *battle.BattleState, config Config) *battle.BattleState {
	s := state.Clone()
	cache := invalidation.NewCache()
	for i := 0; i < config.MaxPlayoutActions && !s.IsGameOver(); i++ {
		actor, ok := ActingPlayer(s, cache)
		if !ok {
			break
		}
		actions := EnumerateActions(s, actor, cache)
		if len(actions) == 0 {
			break
		}
		action := actions[rand.IntN(len(actions))]
		if err := protocol.PerformAction(s, cache, actor, action); err != nil {
			break
		}
	}
	return s
}

// backpropagate adds each path node's own-perspective outcome of
// terminalState to its running statistics (§4.10 step 4: "from the acting
// player's perspective at each level").
func backpropagate(tree *Tree, path []NodeIndex, terminalState *battle.BattleState) {
	for _, idx := range path {
		node := tree.node(idx)
		node.VisitCount++
		node.TotalReward += outcomeFor(terminalState, node.Player)
	}
}

func pathTo(tree *Tree, root, target NodeIndex) []NodeIndex {
	// Nodes are created in traversal order and every non-root node has
	// exactly one parent edge; a reverse linear scan reconstructs the
	// unique root-to-target path cheaply without maintaining a separate
	// parent index alongside the arena.
	if root == target {
		return []NodeIndex{root}
	}
	parent := make(map[NodeIndex]NodeIndex, len(tree.nodes))
	for p := range tree.edges {
		for _, e := range tree.edges[p] {
			parent[e.Target] = NodeIndex(p)
		}
	}
	path := []NodeIndex{target}
	for path[len(path)-1] != root {
		next, ok := parent[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, next)
	}
	// reverse into root-first order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// bestAction returns the action of root's highest-visit-count child
// (§4.10: "the corpus uses visit count").
func bestAction(tree *Tree, root NodeIndex) protocol.GameAction {
	var best protocol.GameAction
	bestVisits := -1
	for _, edge := range tree.childEdges(root) {
		if visits := tree.node(edge.Target).VisitCount; visits > bestVisits {
			bestVisits = visits
			best = edge.Action
		}
	}
	return best
}

// outcomeFor scores terminalState in [0, 1] from player's perspective: 1
// for a win, 0 for a loss, 0.5 for a draw; an unresolved (playout-bound
// cutoff) state falls back to a points-differential heuristic, 0.5 plus
// the clamped differential over 20. No evaluation function is specified by
// spec.md or present in the retrieved original_source (uct_search.rs is
// absent from the pack), so this heuristic is built fresh; its only
// hard requirement is the zero-sum symmetry outcomeFor(s, A) == 1 -
// outcomeFor(s, B) that selectChildUCB1 and backpropagate both rely on.
func outcomeFor(state *battle.BattleState, player core.PlayerName) float64 {
	if state.IsGameOver() {
		switch {
		case state.Winner == nil:
			return 0.5
		case *state.Winner == player:
			return 1.0
		default:
			return 0.0
		}
	}
	mine := float64(state.Players[player].Points)
	theirs := float64(state.Players[player.Opponent()].Points)
	diff := mine - theirs
	const scale = 10.0
	if diff > scale {
		diff = scale
	} else if diff < -scale {
		diff = -scale
	}
	return 0.5 + diff/(2*scale)
}
