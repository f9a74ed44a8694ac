package guidance

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lintang-b-s/citypath/pkg"
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/util"
)

// Summary holds the totals of a found route.
type Summary struct {
	Distance float64                  `json:"distance"` // miles
	Time     float64                  `json:"time"`     // minutes
	Segments int                      `json:"segments"`
	Scenic   float64                  `json:"scenic"` // highway miles
	Path     []datastructure.Location `json:"path"`
}

func NewSummary(cs *datastructure.CostState) Summary {
	return Summary{
		Distance: cs.GetDistance(),
		Time:     util.RoundFloat(cs.GetTime(), pkg.TIME_PRECISION),
		Segments: cs.GetSegments(),
		Scenic:   cs.GetScenic(),
		Path:     cs.GetPath(),
	}
}

// FormatTotalTime prints minutes, switching to hours and minutes from one hour on.
func (s Summary) FormatTotalTime() string {
	if s.Time < pkg.MINUTES_PER_HOUR {
		return fmt.Sprintf("%s mins.", util.FormatFloat(s.Time))
	}
	hours := math.Floor(s.Time / pkg.MINUTES_PER_HOUR)
	mins := util.RoundFloat(math.Mod(s.Time, pkg.MINUTES_PER_HOUR), pkg.TIME_PRECISION)
	return fmt.Sprintf("%s hour %s mins.", util.FormatFloat(hours), util.FormatFloat(mins))
}

// MachineReadable returns "<distance> <hours> <path...>".
func (s Summary) MachineReadable() string {
	parts := make([]string, 0, len(s.Path)+2)
	parts = append(parts, util.FormatFloat(s.Distance),
		util.FormatFloat(util.RoundFloat(s.Time/pkg.MINUTES_PER_HOUR, pkg.HOURS_PRECISION)))
	for _, loc := range s.Path {
		parts = append(parts, string(loc))
	}
	return strings.Join(parts, " ")
}

func WriteDirections(w io.Writer, directions []DrivingDirection) error {
	for _, d := range directions {
		if _, err := fmt.Fprintf(w, "Go to %s on %s highway for %s miles.\nEstimated time is: %s mins.\n",
			d.To, d.Highway, util.FormatFloat(d.Length), util.FormatFloat(d.Time)); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport prints the turn-by-turn directions, the totals and the machine-readable line.
func WriteReport(w io.Writer, directions []DrivingDirection, s Summary) error {
	if err := WriteDirections(w, directions); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Your destination has been reached.\n"+
		"The total time is: %s\n"+
		"Total number of turns (segments): %d\n"+
		"Distance spent on highways: %s\n"+
		"The total distance is: %s miles.\n"+
		"%s\n",
		s.FormatTotalTime(), s.Segments, util.FormatFloat(s.Scenic), util.FormatFloat(s.Distance),
		s.MachineReadable())
	return err
}
