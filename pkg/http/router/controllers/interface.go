package controllers

import (
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"github.com/lintang-b-s/citypath/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(req usecases.RouteRequest) (*usecases.Route, error)
	NearestLocation(lat, lon float64) (datastructure.Location, geo.Coordinate, float64, error)
}
