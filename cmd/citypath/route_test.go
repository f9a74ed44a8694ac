package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/citypath/pkg/http/usecases"
	"github.com/lintang-b-s/citypath/pkg/util"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSegments = `Bloomington,_Indiana Martinsville,_Indiana 30 45 IN_37
Martinsville,_Indiana Indianapolis,_Indiana 26 65 IN_37
Martinsville,_Indiana Indianapolis,_Indiana 20 0 Closed_Road
Gary,_Indiana Hammond,_Indiana 8 55 I-90
`

const testGPS = `Bloomington,_Indiana 39.165325 -86.5263857
Indianapolis,_Indiana 39.7683765 -86.1580423
`

func setupData(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	segments := filepath.Join(dir, "road-segments.txt")
	gps := filepath.Join(dir, "city-gps.txt")
	require.NoError(t, os.WriteFile(segments, []byte(testSegments), 0o644))
	require.NoError(t, os.WriteFile(gps, []byte(testGPS), 0o644))

	util.SetConfigDefaults()
	viper.Set("ROAD_SEGMENTS_PATH", segments)
	viper.Set("CITY_GPS_PATH", gps)
	viper.Set("LOG_LEVEL", "error")
	t.Cleanup(viper.Reset)
}

func TestRunRouteReport(t *testing.T) {
	setupData(t)

	var out bytes.Buffer
	err := runRoute(&out, "Bloomington,_Indiana", "Indianapolis,_Indiana", "distance", "astar")
	require.NoError(t, err)

	assert.Equal(t, "Go to Martinsville,_Indiana on IN_37 highway for 30 miles.\n"+
		"Estimated time is: 40 mins.\n"+
		"Go to Indianapolis,_Indiana on IN_37 highway for 26 miles.\n"+
		"Estimated time is: 24 mins.\n"+
		"Your destination has been reached.\n"+
		"The total time is: 1 hour 4 mins.\n"+
		"Total number of turns (segments): 2\n"+
		"Distance spent on highways: 26\n"+
		"The total distance is: 56 miles.\n"+
		"56 1.0667 Bloomington,_Indiana Martinsville,_Indiana Indianapolis,_Indiana\n", out.String())
}

func TestRunRouteMessages(t *testing.T) {
	setupData(t)

	testCases := []struct {
		name                          string
		start, end, metric, algorithm string
		want                          string
		wantErr                       bool
	}{
		{
			name: "invalid metric", start: "Gary,_Indiana", end: "Hammond,_Indiana",
			metric: "cheapest", algorithm: "bfs", want: usecases.MessageInvalidMetric, wantErr: true,
		},
		{
			name: "invalid algorithm", start: "Gary,_Indiana", end: "Hammond,_Indiana",
			metric: "time", algorithm: "ucs", want: usecases.MessageInvalidAlgorithm, wantErr: true,
		},
		{
			name: "unknown city", start: "Gary,_Indiana", end: "Springfield",
			metric: "time", algorithm: "bfs", want: usecases.MessageUnknownLocation, wantErr: true,
		},
		{
			name: "same city", start: "Gary,_Indiana", end: "Gary,_Indiana",
			metric: "time", algorithm: "dfs", want: usecases.MessageSameLocation, wantErr: true,
		},
		{
			name: "no path", start: "Gary,_Indiana", end: "Bloomington,_Indiana",
			metric: "segment", algorithm: "ids",
			want: "No path found between start city Gary,_Indiana and end city Bloomington,_Indiana",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runRoute(&out, tt.start, tt.end, tt.metric, tt.algorithm)
			if tt.wantErr {
				assert.ErrorIs(t, err, errConfiguration)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestRunBatch(t *testing.T) {
	setupData(t)

	queries := "# start end metric algorithm\n" +
		"Bloomington,_Indiana Indianapolis,_Indiana time bfs\n" +
		"\n" +
		"Gary,_Indiana Hammond,_Indiana scenic dfs\n" +
		"Gary,_Indiana Indianapolis,_Indiana distance astar\n" +
		"Gary,_Indiana Hammond,_Indiana cheapest bfs\n"

	var out bytes.Buffer
	require.NoError(t, runBatch(strings.NewReader(queries), &out, 2))
	assert.Equal(t, "56 1.0667 Bloomington,_Indiana Martinsville,_Indiana Indianapolis,_Indiana\n"+
		"8 0.1455 Gary,_Indiana Hammond,_Indiana\n"+
		"No path found between start city Gary,_Indiana and end city Indianapolis,_Indiana\n"+
		"Invalid routing option! It must be one of the [distance,time,scenic,segment]\n", out.String())
}

func TestReadQueriesRejectsShortLine(t *testing.T) {
	_, err := readQueries(strings.NewReader("Gary,_Indiana Hammond,_Indiana time\n"))
	assert.Error(t, err)
}
