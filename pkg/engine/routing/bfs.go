package routing

import (
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// BreadthFirstSearch expands locations in the order they were discovered.
type BreadthFirstSearch struct {
	graph  *da.Graph
	metric costfunction.Metric

	numExpanded int
	numReached  int
}

func NewBreadthFirstSearch(graph *da.Graph, metric costfunction.Metric) *BreadthFirstSearch {
	return &BreadthFirstSearch{graph: graph, metric: metric}
}

func (bs *BreadthFirstSearch) ShortestPathSearch(start, goal da.Location) (*da.CostState, bool) {
	st := newSearchState(start, newQueueFrontier())
	ex := newExpander(bs.graph, bs.metric, start, goal, nil)

	for st.frontier.Len() > 0 {
		loc, _ := st.frontier.Pop()
		if ex.Expand(loc, st) {
			break
		}
	}

	bs.numExpanded = st.expanded
	bs.numReached = st.NumReached()
	return st.result(goal)
}

func (bs *BreadthFirstSearch) NumExpanded() int {
	return bs.numExpanded
}

func (bs *BreadthFirstSearch) NumReached() int {
	return bs.numReached
}
