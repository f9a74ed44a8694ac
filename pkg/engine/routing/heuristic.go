package routing

import (
	"math"

	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
)

// HeuristicConfig carries the network-wide maxima used to turn a straight-line
// distance into an estimate of the active metric.
type HeuristicConfig struct {
	MaxSpeedLimit float64 // mph
	MaxLength     float64 // miles, longest single segment
}

func NewHeuristicConfig(graph *da.Graph) HeuristicConfig {
	return HeuristicConfig{
		MaxSpeedLimit: float64(graph.GetMaxSpeedLimit()),
		MaxLength:     graph.GetMaxLength(),
	}
}

// HeuristicEstimator estimates the remaining cost from a location to the goal.
// The estimate is not guaranteed admissible: the coordinate fallbacks and the
// metric scaling are approximations, so A* may return a non-optimal route.
type HeuristicEstimator struct {
	graph     *da.Graph
	metric    costfunction.Metric
	config    HeuristicConfig
	goalCoord geo.Coordinate
	goalKnown bool
}

func NewHeuristicEstimator(graph *da.Graph, metric costfunction.Metric, goal da.Location,
	config HeuristicConfig) *HeuristicEstimator {
	goalCoord, goalKnown := graph.GetCoordinate(goal)
	return &HeuristicEstimator{
		graph:     graph,
		metric:    metric,
		config:    config,
		goalCoord: goalCoord,
		goalKnown: goalKnown,
	}
}

// Estimate returns the estimated remaining cost from loc, reached from parent, to the goal.
// states must hold the cost states of loc and parent.
//
// The straight-line distance comes from, in order: loc's own coordinates; the parent's
// coordinates corrected by the cost of the parent->loc step; the first neighbor of loc
// with coordinates, corrected by the cost of the loc->neighbor step. Without any of
// these, or without goal coordinates, the estimate is unbounded.
func (h *HeuristicEstimator) Estimate(loc, parent da.Location, states map[da.Location]*da.CostState) da.Estimate {
	return h.straightLine(loc, parent, states).Map(h.scale)
}

func (h *HeuristicEstimator) straightLine(loc, parent da.Location, states map[da.Location]*da.CostState) da.Estimate {
	if !h.goalKnown {
		return da.UnboundedEstimate()
	}

	if c, ok := h.graph.GetCoordinate(loc); ok {
		return da.NewEstimate(geo.GreatCircleMiles(c, h.goalCoord))
	}

	locState := states[loc]
	if c, ok := h.graph.GetCoordinate(parent); ok {
		if parentState, ok := states[parent]; ok && locState != nil {
			delta := h.metric.Cost(locState) - h.metric.Cost(parentState)
			return da.NewEstimate(geo.GreatCircleMiles(c, h.goalCoord) - delta)
		}
	}

	if locState == nil {
		return da.UnboundedEstimate()
	}
	// one level only: neighbors of neighbors are never consulted
	for _, arc := range h.graph.GetArcs(loc) {
		c, ok := h.graph.GetCoordinate(arc.GetHead())
		if !ok {
			continue
		}
		viaNeighbor, ok := Compute(locState, arc)
		if !ok {
			continue
		}
		delta := h.metric.Cost(viaNeighbor) - h.metric.Cost(locState)
		return da.NewEstimate(geo.GreatCircleMiles(c, h.goalCoord) + delta)
	}
	return da.UnboundedEstimate()
}

func (h *HeuristicEstimator) scale(raw float64) float64 {
	switch h.metric {
	case costfunction.TIME:
		if h.config.MaxSpeedLimit <= 0 {
			return raw
		}
		return raw / h.config.MaxSpeedLimit
	case costfunction.SEGMENT:
		if h.config.MaxLength <= 0 {
			return raw
		}
		return math.Trunc(raw / h.config.MaxLength)
	case costfunction.SCENIC:
		return raw / 2
	default:
		return raw
	}
}
