package routing

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/citypath/pkg/costfunction"
	da "github.com/lintang-b-s/citypath/pkg/datastructure"
	"github.com/lintang-b-s/citypath/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoute(t *testing.T) {
	re := newTestEngine(linearGraph())

	for _, algorithm := range Algorithms() {
		cs, found, err := re.FindRoute("A", "C", costfunction.DISTANCE, algorithm)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []da.Location{"A", "B", "C"}, cs.GetPath())

		cs, found, err = re.FindRoute("A", "E", costfunction.TIME, algorithm)
		require.NoError(t, err, "no path is not an error")
		assert.False(t, found)
		assert.Nil(t, cs)
	}
}

func TestFindRouteConfigurationErrors(t *testing.T) {
	re := newTestEngine(linearGraph())

	testCases := []struct {
		name      string
		start     da.Location
		end       da.Location
		metric    costfunction.Metric
		algorithm Algorithm
		wantErr   error
		wantCode  error
	}{
		{name: "unknown start", start: "Nowhere", end: "C", metric: costfunction.DISTANCE, algorithm: BFS,
			wantErr: ErrUnknownLocation, wantCode: util.ErrNotFound},
		{name: "unknown end", start: "A", end: "Nowhere", metric: costfunction.DISTANCE, algorithm: ASTAR,
			wantErr: ErrUnknownLocation, wantCode: util.ErrNotFound},
		{name: "same location", start: "B", end: "B", metric: costfunction.SEGMENT, algorithm: IDS,
			wantErr: ErrSameLocation, wantCode: util.ErrBadParamInput},
		{name: "bad algorithm", start: "A", end: "C", metric: costfunction.DISTANCE, algorithm: "dijkstra",
			wantErr: ErrInvalidAlgorithm, wantCode: util.ErrBadParamInput},
		{name: "bad metric", start: "A", end: "C", metric: "fastest", algorithm: DFS,
			wantErr: ErrInvalidMetric, wantCode: util.ErrBadParamInput},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cs, found, err := re.FindRoute(tt.start, tt.end, tt.metric, tt.algorithm)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
			assert.False(t, found)
			assert.Nil(t, cs)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAlgorithm("BFS")
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)
}
