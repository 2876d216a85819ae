package uct

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT rendering of tree rooted at root to w, for
// offline inspection of a completed search. Limited to nodes within 3 edges
// of root and labeled with each node's average reward, grounded on
// log_search_results.rs's graph_for_logging (which applies the same depth-3
// bound and per-decimal reward label over its petgraph graph).
func (t *Tree) WriteDOT(w io.Writer, root NodeIndex) error {
	type queued struct {
		idx   NodeIndex
		depth int
	}

	if _, err := fmt.Fprintln(w, "digraph search {"); err != nil {
		return err
	}

	visited := map[NodeIndex]bool{root: true}
	queue := []queued{{root, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		node := t.node(cur.idx)
		if _, err := fmt.Fprintf(w, "  %d [label=\"%s\"];\n", cur.idx, nodeLabel(node)); err != nil {
			return err
		}
		if cur.depth >= 3 {
			continue
		}
		for _, edge := range t.childEdges(cur.idx) {
			if _, err := fmt.Fprintf(w, "  %d -> %d [label=%q];\n", cur.idx, edge.Target, actionLabel(edge)); err != nil {
				return err
			}
			if !visited[edge.Target] {
				visited[edge.Target] = true
				queue = append(queue, queued{edge.Target, cur.depth + 1})
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func nodeLabel(node *Node) string {
	reward := 0.0
	if node.VisitCount > 0 {
		reward = node.TotalReward / float64(node.VisitCount)
	}
	player := "P1"
	if node.Player == 1 {
		player = "P2"
	}
	return fmt.Sprintf("%s@%.1f (n=%d)", player, reward, node.VisitCount)
}

func actionLabel(edge Edge) string {
	return fmt.Sprintf("%T", edge.Action)
}

// SearchStats summarizes a completed search for logging, standing in for
// log_results_diagram's debug-level summary of the chosen action and its
// reward.
type SearchStats struct {
	Iterations     int
	RootVisits     int
	ChildrenTried  int
	BestAction     string
	BestActionRate float64
}

// Stats computes a SearchStats summary of the search tree rooted at root.
func (t *Tree) Stats(root NodeIndex) SearchStats {
	rootNode := t.node(root)
	stats := SearchStats{
		Iterations:    rootNode.VisitCount,
		RootVisits:    rootNode.VisitCount,
		ChildrenTried: len(t.childEdges(root)),
	}
	bestVisits := -1
	for _, edge := range t.childEdges(root) {
		child := t.node(edge.Target)
		if child.VisitCount > bestVisits {
			bestVisits = child.VisitCount
			stats.BestAction = fmt.Sprintf("%T", edge.Action)
			if child.VisitCount > 0 {
				stats.BestActionRate = child.TotalReward / float64(child.VisitCount)
			}
		}
	}
	return stats
}
