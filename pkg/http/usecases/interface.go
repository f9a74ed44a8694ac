package usecases

import (
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/engine/routing"
	"github.com/lintang-b-s/citypath/pkg/spatialindex"
)

type RoutingEngine interface {
	FindRoute(start, end datastructure.Location, metric costfunction.Metric,
		algorithm routing.Algorithm) (*datastructure.CostState, bool, error)
	GetGraph() *datastructure.Graph
}

type SpatialIndex interface {
	Nearest(qLat, qLon float64) (spatialindex.NearestLocation, bool)
}
