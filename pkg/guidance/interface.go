package guidance

import (
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
)

type Graph interface {
	GetCoordinate(loc datastructure.Location) (geo.Coordinate, bool)
}
