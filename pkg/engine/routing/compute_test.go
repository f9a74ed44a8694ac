package routing

import (
	"testing"

	da "github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRejectsImpassable(t *testing.T) {
	cur := da.NewStartState("X")
	testCases := []struct {
		name    string
		segment da.RoadSegment
	}{
		{name: "zero speed limit", segment: da.NewRoadSegment(12, 0, "I-9")},
		{name: "zero length", segment: da.NewRoadSegment(0, 65, "I-9")},
		{name: "both missing", segment: da.NewRoadSegment(0, 0, "")},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cs, ok := Compute(cur, da.NewArc("Y", tt.segment))
			assert.False(t, ok)
			assert.Nil(t, cs)
		})
	}
}

func TestComputeAccumulates(t *testing.T) {
	first := da.NewRoadSegment(10, 60, "I-0")
	cur := da.NewCostState(10, 10, 1, 10, []da.Location{"A", "B"}, []da.RoadSegment{first})

	testCases := []struct {
		name       string
		segment    da.RoadSegment
		wantDist   float64
		wantTime   float64
		wantScenic float64
	}{
		{name: "highway", segment: da.NewRoadSegment(20, 60, "I-1"), wantDist: 30, wantTime: 30, wantScenic: 30},
		{name: "threshold counts as highway", segment: da.NewRoadSegment(11, 55, "I-2"), wantDist: 21, wantTime: 22, wantScenic: 21},
		{name: "slow road", segment: da.NewRoadSegment(7, 35, "Main"), wantDist: 17, wantTime: 22, wantScenic: 10},
		{name: "rounded time", segment: da.NewRoadSegment(1, 45, ""), wantDist: 11, wantTime: 11.33, wantScenic: 10},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Compute(cur, da.NewArc("C", tt.segment))
			require.True(t, ok)

			assert.InDelta(t, tt.wantDist, next.GetDistance(), 1e-9)
			assert.InDelta(t, tt.wantTime, next.GetTime(), 1e-9)
			assert.Equal(t, 2, next.GetSegments())
			assert.InDelta(t, tt.wantScenic, next.GetScenic(), 1e-9)
			assert.Equal(t, []da.Location{"A", "B", "C"}, next.GetPath())
			assert.Equal(t, da.Location("C"), next.GetLocation())
			assert.Equal(t, []da.RoadSegment{first, tt.segment}, next.GetLegs())

			// monotone in every metric
			assert.GreaterOrEqual(t, next.GetDistance(), cur.GetDistance())
			assert.GreaterOrEqual(t, next.GetTime(), cur.GetTime())
			assert.GreaterOrEqual(t, next.GetSegments(), cur.GetSegments())
			assert.GreaterOrEqual(t, next.GetScenic(), cur.GetScenic())
		})
	}

	// inputs untouched
	assert.Equal(t, []da.Location{"A", "B"}, cur.GetPath())
	assert.Equal(t, []da.RoadSegment{first}, cur.GetLegs())
	assert.Equal(t, 10.0, cur.GetDistance())
	assert.Equal(t, 1, cur.GetSegments())
}

func TestComputePathsDoNotAlias(t *testing.T) {
	path := make([]da.Location, 2, 8)
	path[0], path[1] = "A", "B"
	legs := make([]da.RoadSegment, 1, 8)
	legs[0] = da.NewRoadSegment(1, 30, "AB")
	cur := da.NewCostState(1, 1, 1, 0, path, legs)

	toC := da.NewRoadSegment(1, 30, "BC")
	toD := da.NewRoadSegment(2, 30, "BD")
	c1, ok := Compute(cur, da.NewArc("C", toC))
	require.True(t, ok)
	c2, ok := Compute(cur, da.NewArc("D", toD))
	require.True(t, ok)

	assert.Equal(t, []da.Location{"A", "B", "C"}, c1.GetPath())
	assert.Equal(t, []da.Location{"A", "B", "D"}, c2.GetPath())
	assert.Equal(t, []da.RoadSegment{legs[0], toC}, c1.GetLegs())
	assert.Equal(t, []da.RoadSegment{legs[0], toD}, c2.GetLegs())
}
