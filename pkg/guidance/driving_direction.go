package guidance

import (
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
)

// DrivingDirection is one leg of a route: drive to To along Highway.
type DrivingDirection struct {
	To      datastructure.Location `json:"to"`
	Highway string                 `json:"highway"`
	Length  float64                `json:"length"` // miles
	Time    float64                `json:"time"`   // minutes
}

type DirectionBuilder struct {
	graph Graph
}

func NewDirectionBuilder(graph Graph) *DirectionBuilder {
	return &DirectionBuilder{graph: graph}
}

// GetDrivingDirections turns a found route into one direction per segment driven.
func (db *DirectionBuilder) GetDrivingDirections(cs *datastructure.CostState) []DrivingDirection {
	path := cs.GetPath()
	legs := cs.GetLegs()
	directions := make([]DrivingDirection, 0, len(legs))
	for i, segment := range legs {
		directions = append(directions, DrivingDirection{
			To:      path[i+1],
			Highway: segment.GetHighway(),
			Length:  segment.GetLength(),
			Time:    segment.GetTravelTime(),
		})
	}
	return directions
}

// GetPathCoordinates returns the coordinates of the path locations that have them, in path order.
func (db *DirectionBuilder) GetPathCoordinates(cs *datastructure.CostState) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(cs.GetPath()))
	for _, loc := range cs.GetPath() {
		if c, ok := db.graph.GetCoordinate(loc); ok {
			coords = append(coords, c)
		}
	}
	return coords
}
