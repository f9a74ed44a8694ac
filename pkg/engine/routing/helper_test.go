package routing

import (
	"fmt"
	"testing"

	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testSegment struct {
	u, v    da.Location
	length  float64
	speed   int
	highway string
}

func buildGraph(segments []testSegment, coords map[da.Location]geo.Coordinate) *da.Graph {
	b := da.NewGraphBuilder()
	for _, s := range segments {
		b.AddSegment(s.u, s.v, da.NewRoadSegment(s.length, s.speed, s.highway))
	}
	for loc, c := range coords {
		b.SetCoordinate(loc, c)
	}
	return b.Build()
}

// linearGraph is A-B-C plus a separate D-E component.
func linearGraph() *da.Graph {
	return buildGraph([]testSegment{
		{"A", "B", 10, 60, "I-1"},
		{"B", "C", 20, 60, "I-1"},
		{"D", "E", 5, 30, "Local"},
	}, nil)
}

func gridName(i, j int) da.Location {
	return da.Location(fmt.Sprintf("r%dc%d", i, j))
}

// gridGraph is an n x n grid with varied lengths and speed limits and coordinates on every node.
func gridGraph(n int) *da.Graph {
	speeds := []int{30, 45, 55, 65}
	segments := make([]testSegment, 0, 2*n*n)
	coords := make(map[da.Location]geo.Coordinate, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			coords[gridName(i, j)] = geo.NewCoordinate(39+float64(i)*0.1, -86+float64(j)*0.1)
			if j+1 < n {
				segments = append(segments, testSegment{gridName(i, j), gridName(i, j+1),
					float64(5 + (i*7+j*3)%5), speeds[(i+j)%len(speeds)], fmt.Sprintf("H-%d", i)})
			}
			if i+1 < n {
				segments = append(segments, testSegment{gridName(i, j), gridName(i+1, j),
					float64(5 + (i*3+j*5)%7), speeds[(i*2+j)%len(speeds)], fmt.Sprintf("V-%d", j)})
			}
		}
	}
	return buildGraph(segments, coords)
}

func newTestEngine(g *da.Graph) *RoutingEngine {
	return NewRoutingEngine(g, zap.NewNop(), 10000)
}

// assertValidRoute checks that cs describes a walk over passable arcs from start to goal
// and that its accumulated metrics agree with the segments it records.
func assertValidRoute(t *testing.T, g *da.Graph, cs *da.CostState, start, goal da.Location) {
	t.Helper()
	path := cs.GetPath()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assert.Equal(t, len(path)-1, cs.GetSegments())

	legs := cs.GetLegs()
	require.Len(t, legs, len(path)-1)

	var dist, time, scenic float64
	for i, seg := range legs {
		require.True(t, seg.IsPassable())
		assert.Containsf(t, g.GetArcs(path[i]), da.NewArc(path[i+1], seg),
			"segment %d is not an arc %s -> %s", i, path[i], path[i+1])
		dist += seg.GetLength()
		time += seg.GetTravelTime()
		if seg.IsHighway() {
			scenic += seg.GetLength()
		}
	}
	assert.InDelta(t, dist, cs.GetDistance(), 1e-6)
	assert.InDelta(t, time, cs.GetTime(), 1e-6)
	assert.InDelta(t, scenic, cs.GetScenic(), 1e-6)
}

func allRouters(g *da.Graph, metric costfunction.Metric) map[Algorithm]Router {
	return map[Algorithm]Router{
		BFS:   NewBreadthFirstSearch(g, metric),
		DFS:   NewDepthFirstSearch(g, metric),
		IDS:   NewIterativeDeepeningSearch(g, metric, 10000),
		ASTAR: NewAStarSearch(g, metric, NewHeuristicConfig(g)),
	}
}
