package routing

import (
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// Router finds a route from start to goal. It returns the goal's cost state,
// or false when the frontier is exhausted without reaching goal.
type Router interface {
	ShortestPathSearch(start, goal da.Location) (*da.CostState, bool)
	NumExpanded() int
	NumReached() int
}

// Frontier holds the discovered but not yet expanded locations of one search.
type Frontier interface {
	Push(loc da.Location, cs *da.CostState)
	Pop() (da.Location, bool)
	Len() int
}

// reprioritizer is implemented by frontiers ordered by heuristic, which must
// hear about estimates that change while a location waits in the frontier.
type reprioritizer interface {
	Reprioritize(loc da.Location, h da.Estimate)
}
