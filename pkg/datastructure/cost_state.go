package datastructure

// CostState is the accumulated cost of reaching one location along path during a single search.
type CostState struct {
	distance  float64 // miles
	time      float64 // minutes
	segments  int
	scenic    float64 // miles driven on segments with speed limit >= 55
	path      []Location
	legs      []RoadSegment // legs[i] is the segment driven from path[i] to path[i+1]
	heuristic Estimate
}

func NewCostState(distance, time float64, segments int, scenic float64, path []Location,
	legs []RoadSegment) *CostState {
	return &CostState{
		distance: distance,
		time:     time,
		segments: segments,
		scenic:   scenic,
		path:     path,
		legs:     legs,
	}
}

// NewStartState returns the all-zero state of the search origin.
func NewStartState(start Location) *CostState {
	return &CostState{
		path:      []Location{start},
		heuristic: NewEstimate(0),
	}
}

func (cs *CostState) GetDistance() float64 {
	return cs.distance
}

func (cs *CostState) GetTime() float64 {
	return cs.time
}

func (cs *CostState) GetSegments() int {
	return cs.segments
}

func (cs *CostState) GetScenic() float64 {
	return cs.scenic
}

// GetPath returns the locations from the search origin to this one. The slice must not be modified.
func (cs *CostState) GetPath() []Location {
	return cs.path
}

// GetLegs returns the segments driven along the path, one fewer than the path locations.
// The slice must not be modified.
func (cs *CostState) GetLegs() []RoadSegment {
	return cs.legs
}

func (cs *CostState) GetLocation() Location {
	return cs.path[len(cs.path)-1]
}

func (cs *CostState) GetHeuristic() Estimate {
	return cs.heuristic
}

func (cs *CostState) SetHeuristic(h Estimate) {
	cs.heuristic = h
}
