package routing

import (
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// IterativeDeepeningSearch runs depth limited searches with bound 1, 2, ... maxDepth
// and returns the first route found.
type IterativeDeepeningSearch struct {
	graph    *da.Graph
	metric   costfunction.Metric
	maxDepth int

	numExpanded int
	numReached  int
	depth       int
}

func NewIterativeDeepeningSearch(graph *da.Graph, metric costfunction.Metric, maxDepth int) *IterativeDeepeningSearch {
	return &IterativeDeepeningSearch{graph: graph, metric: metric, maxDepth: maxDepth}
}

func (is *IterativeDeepeningSearch) ShortestPathSearch(start, goal da.Location) (*da.CostState, bool) {
	is.numExpanded = 0
	is.numReached = 0
	is.depth = 0

	for k := 1; k <= is.maxDepth; k++ {
		dls := NewDepthLimitedSearch(is.graph, is.metric, k)
		cs, found := dls.ShortestPathSearch(start, goal)
		is.numExpanded += dls.NumExpanded()
		is.numReached = dls.NumReached()
		is.depth = k
		if found {
			return cs, true
		}
		if !dls.Cutoff() {
			// nothing was held back by the bound, so deeper bounds repeat the same exhausted search
			break
		}
	}
	return nil, false
}

func (is *IterativeDeepeningSearch) NumExpanded() int {
	return is.numExpanded
}

// NumReached reports the locations reached by the deepest iteration only.
func (is *IterativeDeepeningSearch) NumReached() int {
	return is.numReached
}

// Depth returns the last depth bound tried.
func (is *IterativeDeepeningSearch) Depth() int {
	return is.depth
}
