package datastructure

import "strconv"

// Estimate is a heuristic cost that may be unbounded, meaning no estimate could be made.
// An unbounded estimate orders after every bounded one. The zero value is unbounded.
type Estimate struct {
	value   float64
	bounded bool
}

func NewEstimate(value float64) Estimate {
	return Estimate{value: value, bounded: true}
}

func UnboundedEstimate() Estimate {
	return Estimate{}
}

func (e Estimate) IsBounded() bool {
	return e.bounded
}

// GetValue returns the estimate and whether it is bounded.
func (e Estimate) GetValue() (float64, bool) {
	return e.value, e.bounded
}

// Add returns e shifted by c. Unbounded stays unbounded.
func (e Estimate) Add(c float64) Estimate {
	if !e.bounded {
		return e
	}
	return NewEstimate(e.value + c)
}

// Map applies f to a bounded estimate.
func (e Estimate) Map(f func(float64) float64) Estimate {
	if !e.bounded {
		return e
	}
	return NewEstimate(f(e.value))
}

func (e Estimate) Less(o Estimate) bool {
	if !e.bounded {
		return false
	}
	if !o.bounded {
		return true
	}
	return e.value < o.value
}

func (e Estimate) String() string {
	if !e.bounded {
		return "unbounded"
	}
	return strconv.FormatFloat(e.value, 'f', -1, 64)
}
