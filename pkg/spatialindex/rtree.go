package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes the locations that have known coordinates.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.Location]
}

type NearestLocation struct {
	Location   datastructure.Location `json:"location"`
	Coordinate geo.Coordinate         `json:"coordinate"`
	DistanceKm float64                `json:"distance_km"`
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Location]
	return &Rtree{
		tr: &tr,
	}
}

// Build inserts every location of graph that has coordinates as a point.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	graph.ForCoordinates(func(loc datastructure.Location, c geo.Coordinate) {
		p := [2]float64{c.Lon, c.Lat}
		rt.tr.Insert(p, p, loc)
	})
	log.Info("R-tree spatial index built.", zap.Int("locations", rt.tr.Len()))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius returns the locations within radius km of (qLat, qLon), nearest first.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []NearestLocation {
	minLat, minLon, maxLat, maxLon := geo.BoundingBox(qLat, qLon, radius)

	results := make([]NearestLocation, 0, 10)
	rt.tr.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
		func(min, max [2]float64, data datastructure.Location) bool {
			d := geo.CalculateHaversineDistance(qLat, qLon, min[1], min[0])
			if d <= radius {
				results = append(results, newNearestLocation(data, min, d))
			}
			return true
		})
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results
}

// Nearest returns the location closest to (qLat, qLon), or false for an empty index.
func (rt *Rtree) Nearest(qLat, qLon float64) (NearestLocation, bool) {
	var (
		seed  NearestLocation
		found bool
	)
	// box distance in degrees only bounds the search, the haversine radius of the
	// first candidate is then scanned in full
	rt.tr.Nearby(
		rtree.BoxDist[float64, datastructure.Location]([2]float64{qLon, qLat}, [2]float64{qLon, qLat}, nil),
		func(min, max [2]float64, data datastructure.Location, dist float64) bool {
			seed = newNearestLocation(data, min, geo.CalculateHaversineDistance(qLat, qLon, min[1], min[0]))
			found = true
			return false
		})
	if !found {
		return NearestLocation{}, false
	}

	if within := rt.SearchWithinRadius(qLat, qLon, seed.DistanceKm); len(within) > 0 {
		return within[0], true
	}
	return seed, true
}

func newNearestLocation(loc datastructure.Location, p [2]float64, d float64) NearestLocation {
	return NearestLocation{
		Location:   loc,
		Coordinate: geo.NewCoordinate(p[1], p[0]),
		DistanceKm: d,
	}
}
