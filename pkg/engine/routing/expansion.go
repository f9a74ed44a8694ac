package routing

import (
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// SearchState is everything one search run owns: the cost state of every reached
// location, the frontier and whether the goal has been reached.
type SearchState struct {
	states   map[da.Location]*da.CostState
	frontier Frontier
	found    bool
	expanded int
}

func newSearchState(start da.Location, frontier Frontier) *SearchState {
	st := &SearchState{
		states:   make(map[da.Location]*da.CostState),
		frontier: frontier,
	}
	startState := da.NewStartState(start)
	st.states[start] = startState
	st.frontier.Push(start, startState)
	return st
}

func (st *SearchState) GetState(loc da.Location) (*da.CostState, bool) {
	cs, ok := st.states[loc]
	return cs, ok
}

func (st *SearchState) IsFound() bool {
	return st.found
}

func (st *SearchState) NumReached() int {
	return len(st.states)
}

func (st *SearchState) result(goal da.Location) (*da.CostState, bool) {
	if !st.found {
		return nil, false
	}
	return st.states[goal], true
}

// expander is the neighbor expansion shared by every search strategy.
type expander struct {
	graph     *da.Graph
	metric    costfunction.Metric
	start     da.Location
	goal      da.Location
	estimator *HeuristicEstimator
}

func newExpander(graph *da.Graph, metric costfunction.Metric, start, goal da.Location,
	estimator *HeuristicEstimator) *expander {
	return &expander{
		graph:     graph,
		metric:    metric,
		start:     start,
		goal:      goal,
		estimator: estimator,
	}
}

// Expand relaxes every passable arc out of loc. It returns true as soon as the goal
// is reached, leaving the remaining arcs of loc unexamined.
// A location whose cost improves is not pushed to the frontier again.
func (e *expander) Expand(loc da.Location, st *SearchState) bool {
	cur := st.states[loc]
	st.expanded++

	for _, arc := range e.graph.GetArcs(loc) {
		next := arc.GetHead()
		cand, ok := Compute(cur, arc)
		if !ok {
			continue
		}

		if next == e.goal {
			st.states[next] = cand
			st.found = true
			return true
		}

		if next == e.start {
			// the origin keeps its all-zero state
			continue
		}

		stored, seen := st.states[next]
		if !seen {
			st.states[next] = cand
			e.scoreHeuristic(loc, next, st)
			st.frontier.Push(next, cand)
			continue
		}

		if e.metric.Cost(cand)+EPS < e.metric.Cost(stored) {
			st.states[next] = cand
		}
		if e.scoreHeuristic(loc, next, st) {
			if rp, ok := st.frontier.(reprioritizer); ok {
				rp.Reprioritize(next, st.states[next].GetHeuristic())
			}
		}
	}
	return false
}

// scoreHeuristic sets the heuristic of next to estimated remaining cost plus cost so far.
func (e *expander) scoreHeuristic(parent, next da.Location, st *SearchState) bool {
	if e.estimator == nil {
		return false
	}
	cs := st.states[next]
	h := e.estimator.Estimate(next, parent, st.states).Add(e.metric.Cost(cs))
	cs.SetHeuristic(h)
	return true
}
