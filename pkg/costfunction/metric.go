package costfunction

import (
	"errors"

	"github.com/lintang-b-s/citypath/pkg/datastructure"
)

// Metric is the optimization target of a route search.
type Metric string

const (
	DISTANCE Metric = "distance"
	TIME     Metric = "time"
	SEGMENT  Metric = "segment"
	SCENIC   Metric = "scenic"
)

var ErrUnknownMetric = errors.New("unknown routing option")

func Metrics() []Metric {
	return []Metric{DISTANCE, TIME, SCENIC, SEGMENT}
}

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case DISTANCE, TIME, SEGMENT, SCENIC:
		return m, nil
	default:
		return "", ErrUnknownMetric
	}
}

// Cost returns the accumulated value of cs under m.
func (m Metric) Cost(cs *datastructure.CostState) float64 {
	switch m {
	case TIME:
		return cs.GetTime()
	case SEGMENT:
		return float64(cs.GetSegments())
	case SCENIC:
		return cs.GetScenic()
	default:
		return cs.GetDistance()
	}
}

func (m Metric) String() string {
	return string(m)
}
