package routing

import "errors"

// Algorithm selects the frontier policy of a route search.
type Algorithm string

const (
	BFS   Algorithm = "bfs"
	DFS   Algorithm = "dfs"
	IDS   Algorithm = "ids"
	ASTAR Algorithm = "astar"
)

const (
	// relaxation tolerance for accumulated floating point costs
	EPS = 1e-9
)

var (
	ErrInvalidMetric    = errors.New("invalid routing option")
	ErrInvalidAlgorithm = errors.New("invalid routing algorithm")
	ErrUnknownLocation  = errors.New("unknown location")
	ErrSameLocation     = errors.New("start and end location are the same")
)

func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, IDS, ASTAR}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case BFS, DFS, IDS, ASTAR:
		return a, nil
	default:
		return "", ErrInvalidAlgorithm
	}
}
