package routing

import (
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// AStarSearch expands the frontier location with the lowest heuristic
// (estimated remaining cost plus cost so far).
type AStarSearch struct {
	graph  *da.Graph
	metric costfunction.Metric
	config HeuristicConfig

	numExpanded int
	numReached  int
}

func NewAStarSearch(graph *da.Graph, metric costfunction.Metric, config HeuristicConfig) *AStarSearch {
	return &AStarSearch{graph: graph, metric: metric, config: config}
}

func (as *AStarSearch) ShortestPathSearch(start, goal da.Location) (*da.CostState, bool) {
	st := newSearchState(start, newPriorityFrontier())
	estimator := NewHeuristicEstimator(as.graph, as.metric, goal, as.config)
	ex := newExpander(as.graph, as.metric, start, goal, estimator)

	for st.frontier.Len() > 0 {
		loc, _ := st.frontier.Pop()
		if ex.Expand(loc, st) {
			break
		}
	}

	as.numExpanded = st.expanded
	as.numReached = st.NumReached()
	return st.result(goal)
}

func (as *AStarSearch) NumExpanded() int {
	return as.numExpanded
}

func (as *AStarSearch) NumReached() int {
	return as.numReached
}
