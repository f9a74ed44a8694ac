package routing

import (
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
)

// Compute derives the cost state of arc's head when reached from cur through arc.
// It returns false for an impassable segment. cur is never modified.
func Compute(cur *da.CostState, arc da.Arc) (*da.CostState, bool) {
	segment := arc.GetSegment()
	if !segment.IsPassable() {
		return nil, false
	}

	scenic := cur.GetScenic()
	if segment.IsHighway() {
		scenic += segment.GetLength()
	}

	curPath := cur.GetPath()
	path := make([]da.Location, len(curPath), len(curPath)+1)
	copy(path, curPath)
	path = append(path, arc.GetHead())

	curLegs := cur.GetLegs()
	legs := make([]da.RoadSegment, len(curLegs), len(curLegs)+1)
	copy(legs, curLegs)
	legs = append(legs, segment)

	return da.NewCostState(
		cur.GetDistance()+segment.GetLength(),
		cur.GetTime()+segment.GetTravelTime(),
		cur.GetSegments()+1,
		scenic,
		path,
		legs,
	), true
}
