package uct

import (
	"sync"

	"github.com/dreamtides/rules-engine/internal/protocol"
)

// savedTree holds one search tree produced by a prior Search/SearchFromSaved
// call so that a later call against a successor state can continue
// accumulating statistics in the subtree it already explored, instead of
// throwing the whole tree away after every real move. Grounded on
// persistent_tree.rs's SEARCH_GRAPH: OnceLock<Mutex<Option<GraphWithRoot>>>,
// adapted to a package-level *sync.Mutex since Go has no OnceLock
// equivalent in the pack's dependency surface.
type savedTree struct {
	tree *Tree
	root NodeIndex
}

var (
	savedMu    sync.Mutex
	savedState *savedTree
)

func getSavedTree() (*savedTree, bool) {
	savedMu.Lock()
	defer savedMu.Unlock()
	return savedState, savedState != nil
}

func onSearchCompleted(tree *Tree, root NodeIndex) {
	savedMu.Lock()
	defer savedMu.Unlock()
	savedState = &savedTree{tree: tree, root: root}
}

// OnActionPerformed narrows the saved tree to the subtree reachable after
// action, the way persistent_tree.rs's on_action_performed keeps search
// results across a real move: if the current saved root has an edge tagged
// with action, that edge's target becomes the new saved root (with
// everything unreachable from it discarded); otherwise the saved tree no
// longer describes the game and is cleared, forcing the next call to start
// fresh.
func OnActionPerformed(action protocol.GameAction) {
	savedMu.Lock()
	defer savedMu.Unlock()
	if savedState == nil {
		return
	}
	edge, ok := savedState.tree.findChild(savedState.root, action)
	if !ok {
		savedState = nil
		return
	}
	savedState.tree = extractSubtree(savedState.tree, edge.Target)
	savedState.root = 0
}

// extractSubtree copies the portion of src reachable from newRoot into a
// fresh Tree, relabeling indices so the new tree's root is 0. Grounded on
// persistent_tree.rs's extract_subtree, which performs the same structural
// copy over a petgraph graph; simpler here because each Node already owns
// its own BattleState, so there is no per-node replay to redo once the
// subtree is relocated.
func extractSubtree(src *Tree, newRoot NodeIndex) *Tree {
	dst := newTree()
	remap := make(map[NodeIndex]NodeIndex)

	var copyNode func(old NodeIndex) NodeIndex
	copyNode = func(old NodeIndex) NodeIndex {
		if idx, ok := remap[old]; ok {
			return idx
		}
		idx := dst.addNode(*src.node(old))
		remap[old] = idx
		for _, edge := range src.childEdges(old) {
			childIdx := copyNode(edge.Target)
			dst.addEdge(idx, edge.Action, childIdx)
		}
		return idx
	}
	copyNode(newRoot)
	return dst
}
