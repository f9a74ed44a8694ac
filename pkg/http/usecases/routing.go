package usecases

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/citypath/pkg/concurrent"
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/engine/routing"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"github.com/lintang-b-s/citypath/pkg/guidance"
	"github.com/lintang-b-s/citypath/pkg/util"
	"go.uber.org/zap"
)

const (
	MessageInvalidMetric    = "Invalid routing option!\nIt must be one of the [distance,time,scenic,segment]"
	MessageInvalidAlgorithm = "Invalid routing algorithm!\nIt must be one of the [bfs,dfs,ids,astar]"
	MessageUnknownLocation  = "Please check whether the start city and/or end city is correct."
	MessageSameLocation     = "You are already at your destination."
)

var ErrNoNearbyLocation = errors.New("no location with coordinates")

type RouteRequest struct {
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
	Metric    string `json:"metric" validate:"required,oneof=distance time segment scenic"`
	Algorithm string `json:"algorithm" validate:"required,oneof=bfs dfs ids astar"`
}

// Route is the outcome of one route request. Found is false when the search exhausted its frontier.
type Route struct {
	Found      bool
	Summary    guidance.Summary
	Directions []guidance.DrivingDirection
	Polyline   string
}

// NoPathMessage is the user facing text for an exhausted search.
func (req RouteRequest) NoPathMessage() string {
	return fmt.Sprintf("No path found between start city %s and end city %s", req.Start, req.End)
}

// RequestValidator checks route requests before any graph is loaded.
type RequestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &RequestValidator{validate: validate, trans: trans}
}

// ValidateRequest reports a bad metric or algorithm name before any graph work is done.
func (rv *RequestValidator) ValidateRequest(req RouteRequest) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return util.WrapErrorf(err, util.ErrBadParamInput, "validation error: %v", err)
	}

	// fields are reported in declaration order, so an invalid metric wins over an invalid algorithm
	for _, fe := range verrs {
		switch fe.Field() {
		case "Metric":
			return util.WrapErrorf(routing.ErrInvalidMetric, util.ErrBadParamInput, MessageInvalidMetric)
		case "Algorithm":
			return util.WrapErrorf(routing.ErrInvalidAlgorithm, util.ErrBadParamInput, MessageInvalidAlgorithm)
		}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(rv.trans))
	}
	return util.WrapErrorf(err, util.ErrBadParamInput, "validation error: %s", strings.Join(msgs, ", "))
}

type RoutingService struct {
	*RequestValidator
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex) *RoutingService {
	return &RoutingService{
		RequestValidator: NewRequestValidator(),
		log:              log,
		engine:           engine,
		spatialIndex:     spatialIndex,
	}
}

func (rs *RoutingService) ShortestPath(req RouteRequest) (*Route, error) {
	if err := rs.ValidateRequest(req); err != nil {
		return nil, err
	}

	metric, _ := costfunction.ParseMetric(req.Metric)
	algorithm, _ := routing.ParseAlgorithm(req.Algorithm)

	cs, found, err := rs.engine.FindRoute(datastructure.Location(req.Start), datastructure.Location(req.End),
		metric, algorithm)
	if err != nil {
		return nil, userError(err)
	}
	if !found {
		rs.log.Info("no path found", zap.String("start", req.Start), zap.String("end", req.End),
			zap.String("metric", req.Metric), zap.String("algorithm", req.Algorithm))
		return &Route{Found: false}, nil
	}

	db := guidance.NewDirectionBuilder(rs.engine.GetGraph())
	return &Route{
		Found:      true,
		Summary:    guidance.NewSummary(cs),
		Directions: db.GetDrivingDirections(cs),
		Polyline:   geo.PolylineFromCoords(db.GetPathCoordinates(cs)),
	}, nil
}

func (rs *RoutingService) NearestLocation(lat, lon float64) (datastructure.Location, geo.Coordinate, float64, error) {
	if rs.spatialIndex == nil {
		return "", geo.Coordinate{}, 0, util.WrapErrorf(ErrNoNearbyLocation, util.ErrNotFound, "spatial index is not available")
	}
	nearest, ok := rs.spatialIndex.Nearest(lat, lon)
	if !ok {
		return "", geo.Coordinate{}, 0, util.WrapErrorf(ErrNoNearbyLocation, util.ErrNotFound,
			"no location with coordinates near %f,%f", lat, lon)
	}
	return nearest.Location, nearest.Coordinate, nearest.DistanceKm, nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, routing.ErrUnknownLocation):
		return util.WrapErrorf(err, util.ErrNotFound, MessageUnknownLocation)
	case errors.Is(err, routing.ErrSameLocation):
		return util.WrapErrorf(err, util.ErrBadParamInput, MessageSameLocation)
	case errors.Is(err, routing.ErrInvalidMetric):
		return util.WrapErrorf(err, util.ErrBadParamInput, MessageInvalidMetric)
	case errors.Is(err, routing.ErrInvalidAlgorithm):
		return util.WrapErrorf(err, util.ErrBadParamInput, MessageInvalidAlgorithm)
	default:
		return err
	}
}

// BatchResult pairs a request with its route or the error it produced.
type BatchResult struct {
	Request RouteRequest
	Route   *Route
	Err     error
}

// BatchShortestPath answers every request on numWorkers goroutines. Each request runs its
// own search over the shared graph; results keep the order of reqs.
func (rs *RoutingService) BatchShortestPath(reqs []RouteRequest, numWorkers int) []BatchResult {
	results := concurrent.Map(numWorkers, reqs, func(req RouteRequest) BatchResult {
		route, err := rs.ShortestPath(req)
		return BatchResult{Request: req, Route: route, Err: err}
	})
	rs.log.Info("batch finished", zap.Int("queries", len(reqs)), zap.Int("workers", numWorkers))
	return results
}
