package roadparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const segmentsFixture = `A B 10 60 I-1
B C 20 60 I-1
C E 5  US 31
X Y 7 0 broken
Y Z 45 50 County Road 9
lonely
`

const gpsFixture = `A 39.1 -86.5
B 39.2 -86.4
C bad -86.3
Q 40.0
`

func TestReadRoadSegments(t *testing.T) {
	b := datastructure.NewGraphBuilder()
	stats, err := ReadRoadSegments(strings.NewReader(segmentsFixture), b)
	require.NoError(t, err)
	assert.Equal(t, ParseStats{Lines: 6, Accepted: 5, Skipped: 1, Impassable: 2}, stats)

	g := b.Build()
	assert.Equal(t, 7, g.NumberOfLocations())
	assert.Equal(t, 60, g.GetMaxSpeedLimit())
	assert.Equal(t, 45.0, g.GetMaxLength())

	arcs := g.GetArcs("A")
	require.Len(t, arcs, 1)
	assert.Equal(t, datastructure.NewRoadSegment(10, 60, "I-1"), arcs[0].GetSegment())

	// "C E 5  US 31": speed limit field holds "US", so the segment is impassable
	// and the highway name keeps the remaining words.
	ce := g.GetArcs("E")
	require.Len(t, ce, 1)
	assert.False(t, ce[0].GetSegment().IsPassable())
	assert.Equal(t, "31", ce[0].GetSegment().GetHighway())

	yz := g.GetArcs("Z")
	require.Len(t, yz, 1)
	assert.Equal(t, "County Road 9", yz[0].GetSegment().GetHighway())
	assert.True(t, yz[0].GetSegment().IsPassable())
}

func TestReadCityGPS(t *testing.T) {
	b := datastructure.NewGraphBuilder()
	stats, err := ReadCityGPS(strings.NewReader(gpsFixture), b)
	require.NoError(t, err)
	assert.Equal(t, ParseStats{Lines: 4, Accepted: 2, Skipped: 2}, stats)

	g := b.Build()
	c, ok := g.GetCoordinate("A")
	require.True(t, ok)
	assert.Equal(t, 39.1, c.Lat)
	assert.Equal(t, -86.5, c.Lon)
	_, ok = g.GetCoordinate("C")
	assert.False(t, ok)
}

func TestParseSpeedLimitAndLength(t *testing.T) {
	assert.Equal(t, 55, parseSpeedLimit("55"))
	assert.Equal(t, 45, parseSpeedLimit("45.0"))
	assert.Equal(t, 0, parseSpeedLimit(""))
	assert.Equal(t, 0, parseSpeedLimit("-5"))
	assert.Equal(t, 12.5, parseLength("12.5"))
	assert.Equal(t, 0.0, parseLength("NaN"))
	assert.Equal(t, 0.0, parseLength("x"))
}

func writeBzip2(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	_, err = bz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, bz.Close())
}

func TestParserParseFiles(t *testing.T) {
	dir := t.TempDir()
	segmentsPath := filepath.Join(dir, "road-segments.txt.bz2")
	gpsPath := filepath.Join(dir, "city-gps.txt")
	writeBzip2(t, segmentsPath, segmentsFixture)
	require.NoError(t, os.WriteFile(gpsPath, []byte(gpsFixture), 0644))

	g, err := NewParser(zap.NewNop()).Parse(segmentsPath, gpsPath)
	require.NoError(t, err)
	assert.True(t, g.HasLocation("C"))
	_, ok := g.GetCoordinate("B")
	assert.True(t, ok)

	_, err = NewParser(zap.NewNop()).Parse(filepath.Join(dir, "missing.txt"), "")
	assert.Error(t, err)
}
