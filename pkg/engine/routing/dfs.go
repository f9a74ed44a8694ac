package routing

import (
	"math"

	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// DepthFirstSearch expands the most recently discovered location first. With a depth
// bound k it only expands locations reached over fewer than k segments.
type DepthFirstSearch struct {
	graph      *da.Graph
	metric     costfunction.Metric
	depthBound int

	numExpanded int
	numReached  int
	cutoff      bool
}

func NewDepthFirstSearch(graph *da.Graph, metric costfunction.Metric) *DepthFirstSearch {
	return NewDepthLimitedSearch(graph, metric, math.MaxInt)
}

func NewDepthLimitedSearch(graph *da.Graph, metric costfunction.Metric, depthBound int) *DepthFirstSearch {
	return &DepthFirstSearch{graph: graph, metric: metric, depthBound: depthBound}
}

func (ds *DepthFirstSearch) ShortestPathSearch(start, goal da.Location) (*da.CostState, bool) {
	st := newSearchState(start, newStackFrontier())
	ex := newExpander(ds.graph, ds.metric, start, goal, nil)
	ds.cutoff = false

	for st.frontier.Len() > 0 {
		loc, _ := st.frontier.Pop()
		cs := st.states[loc]
		if cs.GetSegments() >= ds.depthBound {
			ds.cutoff = true
			continue
		}
		if ex.Expand(loc, st) {
			break
		}
	}

	ds.numExpanded = st.expanded
	ds.numReached = st.NumReached()
	return st.result(goal)
}

func (ds *DepthFirstSearch) NumExpanded() int {
	return ds.numExpanded
}

// Cutoff reports whether the last search left some location unexpanded because of the depth bound.
func (ds *DepthFirstSearch) Cutoff() bool {
	return ds.cutoff
}

func (ds *DepthFirstSearch) NumReached() int {
	return ds.numReached
}
