package datastructure

import (
	"sort"

	"github.com/lintang-b-s/citypath/pkg"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"github.com/lintang-b-s/citypath/pkg/util"
)

// Location is a named node of the road network (a city or junction).
type Location string

// RoadSegment holds the attributes of one undirected road between two locations.
// A zero length or speed limit marks a gap in the source data; such a segment is impassable.
type RoadSegment struct {
	length     float64 // miles
	speedLimit int     // mph
	highway    string
}

func NewRoadSegment(length float64, speedLimit int, highway string) RoadSegment {
	return RoadSegment{
		length:     length,
		speedLimit: speedLimit,
		highway:    highway,
	}
}

func (s RoadSegment) GetLength() float64 {
	return s.length
}

func (s RoadSegment) GetSpeedLimit() int {
	return s.speedLimit
}

func (s RoadSegment) GetHighway() string {
	return s.highway
}

func (s RoadSegment) IsPassable() bool {
	return s.length > 0 && s.speedLimit > 0
}

func (s RoadSegment) IsHighway() bool {
	return s.speedLimit >= pkg.HIGHWAY_SPEED_LIMIT
}

// GetTravelTime returns minutes needed at the speed limit, rounded to 2 decimals.
// Only meaningful for passable segments.
func (s RoadSegment) GetTravelTime() float64 {
	return util.RoundFloat(pkg.MINUTES_PER_HOUR*s.length/float64(s.speedLimit), pkg.TIME_PRECISION)
}

// Arc is one entry of a location's adjacency list.
type Arc struct {
	head    Location
	segment RoadSegment
}

func NewArc(head Location, segment RoadSegment) Arc {
	return Arc{head: head, segment: segment}
}

func (a Arc) GetHead() Location {
	return a.head
}

func (a Arc) GetSegment() RoadSegment {
	return a.segment
}

// Graph is the immutable road network. Every segment is stored in both directions
// with identical attributes, in the order the segments were added.
type Graph struct {
	adjacency   map[Location][]Arc
	coordinates map[Location]geo.Coordinate

	maxSpeedLimit int
	maxLength     float64
	numSegments   int
}

func (g *Graph) NumberOfLocations() int {
	return len(g.adjacency)
}

func (g *Graph) NumberOfSegments() int {
	return g.numSegments
}

// HasLocation reports whether loc is an endpoint of at least one segment.
func (g *Graph) HasLocation(loc Location) bool {
	_, ok := g.adjacency[loc]
	return ok
}

// GetArcs returns the adjacency list of loc. The returned slice must not be modified.
func (g *Graph) GetArcs(loc Location) []Arc {
	return g.adjacency[loc]
}

func (g *Graph) GetCoordinate(loc Location) (geo.Coordinate, bool) {
	c, ok := g.coordinates[loc]
	return c, ok
}

func (g *Graph) NumberOfCoordinates() int {
	return len(g.coordinates)
}

// ForCoordinates calls handle for every location with known coordinates, in name order.
func (g *Graph) ForCoordinates(handle func(loc Location, c geo.Coordinate)) {
	locs := make([]Location, 0, len(g.coordinates))
	for loc := range g.coordinates {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i] < locs[j] })
	for _, loc := range locs {
		handle(loc, g.coordinates[loc])
	}
}

// GetMaxSpeedLimit returns the highest speed limit recorded on any segment.
func (g *Graph) GetMaxSpeedLimit() int {
	return g.maxSpeedLimit
}

// GetMaxLength returns the longest single segment length recorded.
func (g *Graph) GetMaxLength() float64 {
	return g.maxLength
}

// GraphBuilder accumulates segments and coordinates and produces a Graph once.
type GraphBuilder struct {
	adjacency   map[Location][]Arc
	coordinates map[Location]geo.Coordinate

	maxSpeedLimit int
	maxLength     float64
	numSegments   int
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		adjacency:   make(map[Location][]Arc),
		coordinates: make(map[Location]geo.Coordinate),
	}
}

// AddSegment inserts u->v and v->u with the same attributes.
func (b *GraphBuilder) AddSegment(u, v Location, segment RoadSegment) {
	b.maxSpeedLimit = util.Max(b.maxSpeedLimit, segment.speedLimit)
	b.maxLength = util.Max(b.maxLength, segment.length)

	b.adjacency[u] = append(b.adjacency[u], NewArc(v, segment))
	b.adjacency[v] = append(b.adjacency[v], NewArc(u, segment))
	b.numSegments++
}

func (b *GraphBuilder) SetCoordinate(loc Location, c geo.Coordinate) {
	b.coordinates[loc] = c
}

// Build hands the accumulated data to a new Graph. The builder is reset afterwards,
// so later additions never leak into a graph that is already in use.
func (b *GraphBuilder) Build() *Graph {
	g := &Graph{
		adjacency:     b.adjacency,
		coordinates:   b.coordinates,
		maxSpeedLimit: b.maxSpeedLimit,
		maxLength:     b.maxLength,
		numSegments:   b.numSegments,
	}
	*b = *NewGraphBuilder()
	return g
}
