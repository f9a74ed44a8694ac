package routing

import (
	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/util"
	"go.uber.org/zap"
)

type RoutingEngine struct {
	graph           *da.Graph
	logger          *zap.Logger
	maxDepth        int
	heuristicConfig HeuristicConfig
}

// NewRoutingEngine builds an engine over an immutable graph. maxDepth is the
// ceiling of the iterative deepening bound.
func NewRoutingEngine(graph *da.Graph, logger *zap.Logger, maxDepth int) *RoutingEngine {
	return &RoutingEngine{
		graph:           graph,
		logger:          logger,
		maxDepth:        maxDepth,
		heuristicConfig: NewHeuristicConfig(graph),
	}
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

// NewRouter returns a fresh single-use search of the given algorithm.
func (re *RoutingEngine) NewRouter(algorithm Algorithm, metric costfunction.Metric) (Router, error) {
	if _, err := costfunction.ParseMetric(string(metric)); err != nil {
		return nil, util.WrapErrorf(ErrInvalidMetric, util.ErrBadParamInput, "invalid routing option %q", metric)
	}

	switch algorithm {
	case BFS:
		return NewBreadthFirstSearch(re.graph, metric), nil
	case DFS:
		return NewDepthFirstSearch(re.graph, metric), nil
	case IDS:
		return NewIterativeDeepeningSearch(re.graph, metric, re.maxDepth), nil
	case ASTAR:
		return NewAStarSearch(re.graph, metric, re.heuristicConfig), nil
	default:
		return nil, util.WrapErrorf(ErrInvalidAlgorithm, util.ErrBadParamInput, "invalid routing algorithm %q", algorithm)
	}
}

// FindRoute searches a route from start to end. Unknown locations and start == end are
// reported as errors before any search; an exhausted search returns (nil, false, nil).
func (re *RoutingEngine) FindRoute(start, end da.Location, metric costfunction.Metric,
	algorithm Algorithm) (*da.CostState, bool, error) {
	router, err := re.NewRouter(algorithm, metric)
	if err != nil {
		return nil, false, err
	}

	if !re.graph.HasLocation(start) || !re.graph.HasLocation(end) {
		return nil, false, util.WrapErrorf(ErrUnknownLocation, util.ErrNotFound,
			"unknown start %q or end %q location", start, end)
	}
	if start == end {
		return nil, false, util.WrapErrorf(ErrSameLocation, util.ErrBadParamInput,
			"start and end location are both %q", start)
	}

	cs, found := router.ShortestPathSearch(start, end)
	re.logger.Debug("route search finished",
		zap.String("algorithm", string(algorithm)),
		zap.String("metric", metric.String()),
		zap.String("start", string(start)),
		zap.String("end", string(end)),
		zap.Bool("found", found),
		zap.Int("expanded", router.NumExpanded()),
		zap.Int("reached", router.NumReached()))
	return cs, found, nil
}
