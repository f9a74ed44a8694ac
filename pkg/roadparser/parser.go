package roadparser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/geo"
	"go.uber.org/zap"
)

const maxLineSize = 1 << 20

// ParseStats counts what a reader did with its input lines.
type ParseStats struct {
	Lines      int
	Accepted   int
	Skipped    int
	Impassable int
}

type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	return &Parser{log: log}
}

// Parse builds the road graph from a segment file and an optional coordinate file.
// Files ending in .bz2 are decompressed on the fly.
func (p *Parser) Parse(segmentsPath, gpsPath string) (*datastructure.Graph, error) {
	builder := datastructure.NewGraphBuilder()

	p.log.Info("Reading road segments...", zap.String("segmentsPath", segmentsPath))
	sf, err := openInput(segmentsPath)
	if err != nil {
		return nil, err
	}
	defer sf.Close()

	segStats, err := ReadRoadSegments(sf, builder)
	if err != nil {
		return nil, fmt.Errorf("reading road segments %s: %w", segmentsPath, err)
	}
	p.log.Info("Road segments read",
		zap.Int("segments", segStats.Accepted),
		zap.Int("impassable", segStats.Impassable),
		zap.Int("skippedLines", segStats.Skipped))

	if gpsPath != "" {
		p.log.Info("Reading city coordinates...", zap.String("gpsPath", gpsPath))
		gf, err := openInput(gpsPath)
		if err != nil {
			return nil, err
		}
		defer gf.Close()

		gpsStats, err := ReadCityGPS(gf, builder)
		if err != nil {
			return nil, fmt.Errorf("reading city coordinates %s: %w", gpsPath, err)
		}
		p.log.Info("City coordinates read",
			zap.Int("coordinates", gpsStats.Accepted),
			zap.Int("skippedLines", gpsStats.Skipped))
	}

	g := builder.Build()
	p.log.Info("Road graph built",
		zap.Int("locations", g.NumberOfLocations()),
		zap.Int("segments", g.NumberOfSegments()),
		zap.Int("coordinates", g.NumberOfCoordinates()),
		zap.Int("maxSpeedLimit", g.GetMaxSpeedLimit()),
		zap.Float64("maxLength", g.GetMaxLength()))
	return g, nil
}

type bzipReadCloser struct {
	*bzip2.Reader
	f *os.File
}

func (b bzipReadCloser) Close() error {
	b.Reader.Close()
	return b.f.Close()
}

func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".bz2") {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening bzip2 stream %s: %w", path, err)
	}
	return bzipReadCloser{Reader: bz, f: f}, nil
}

// ReadRoadSegments reads lines of the form
//
//	<from> <to> <length miles> <speed limit mph> <highway name>
//
// Missing or malformed length and speed limit become 0, which marks the segment impassable.
// Lines with fewer than two locations are skipped.
func ReadRoadSegments(r io.Reader, builder *datastructure.GraphBuilder) (ParseStats, error) {
	var stats ParseStats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		stats.Lines++
		ff := strings.Fields(sc.Text())
		if len(ff) < 2 {
			stats.Skipped++
			continue
		}

		var (
			length     float64
			speedLimit int
			highway    string
		)
		if len(ff) > 2 {
			length = parseLength(ff[2])
		}
		if len(ff) > 3 {
			speedLimit = parseSpeedLimit(ff[3])
		}
		if len(ff) > 4 {
			highway = strings.Join(ff[4:], " ")
		}

		segment := datastructure.NewRoadSegment(length, speedLimit, highway)
		if !segment.IsPassable() {
			stats.Impassable++
		}
		builder.AddSegment(datastructure.Location(ff[0]), datastructure.Location(ff[1]), segment)
		stats.Accepted++
	}
	return stats, sc.Err()
}

// ReadCityGPS reads lines of the form
//
//	<location> <latitude> <longitude>
//
// Lines that do not carry two valid numbers are skipped; the location simply has no coordinates.
func ReadCityGPS(r io.Reader, builder *datastructure.GraphBuilder) (ParseStats, error) {
	var stats ParseStats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		stats.Lines++
		ff := strings.Fields(sc.Text())
		if len(ff) < 3 {
			stats.Skipped++
			continue
		}
		lat, err := strconv.ParseFloat(ff[1], 64)
		if err != nil || lat < -90 || lat > 90 {
			stats.Skipped++
			continue
		}
		lon, err := strconv.ParseFloat(ff[2], 64)
		if err != nil || lon < -180 || lon > 180 {
			stats.Skipped++
			continue
		}
		builder.SetCoordinate(datastructure.Location(ff[0]), geo.NewCoordinate(lat, lon))
		stats.Accepted++
	}
	return stats, sc.Err()
}

func parseLength(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseSpeedLimit(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		if v < 0 {
			return 0
		}
		return v
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}
