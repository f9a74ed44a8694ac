package controllers

import (
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"github.com/lintang-b-s/citypath/pkg/guidance"
	"github.com/lintang-b-s/citypath/pkg/http/usecases"
)

type nearestRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type shortestPathResponse struct {
	Found      bool                        `json:"found"`
	Message    string                      `json:"message,omitempty"`
	Distance   float64                     `json:"distance"`
	Time       float64                     `json:"time"`
	Segments   int                         `json:"segments"`
	Scenic     float64                     `json:"scenic"`
	Path       []datastructure.Location    `json:"path"`
	Polyline   string                      `json:"polyline"`
	Directions []guidance.DrivingDirection `json:"directions"`
	Summary    string                      `json:"summary,omitempty"`
}

func NewShortestPathResponse(req usecases.RouteRequest, route *usecases.Route) shortestPathResponse {
	if !route.Found {
		return shortestPathResponse{
			Found:      false,
			Message:    req.NoPathMessage(),
			Path:       []datastructure.Location{},
			Directions: []guidance.DrivingDirection{},
		}
	}
	return shortestPathResponse{
		Found:      true,
		Distance:   route.Summary.Distance,
		Time:       route.Summary.Time,
		Segments:   route.Summary.Segments,
		Scenic:     route.Summary.Scenic,
		Path:       route.Summary.Path,
		Polyline:   route.Polyline,
		Directions: route.Directions,
		Summary:    route.Summary.MachineReadable(),
	}
}

type nearestResponse struct {
	Location   datastructure.Location `json:"location"`
	Coordinate geo.Coordinate         `json:"coordinate"`
	DistanceKm float64                `json:"distance_km"`
}

func NewNearestResponse(loc datastructure.Location, coord geo.Coordinate, dist float64) nearestResponse {
	return nearestResponse{
		Location:   loc,
		Coordinate: coord,
		DistanceKm: dist,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
