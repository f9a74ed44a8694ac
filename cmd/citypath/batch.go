package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lintang-b-s/citypath/pkg/engine/routing"
	"github.com/lintang-b-s/citypath/pkg/http/usecases"
	"github.com/lintang-b-s/citypath/pkg/logger"
	"github.com/lintang-b-s/citypath/pkg/roadparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newBatchCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch QUERIES_FILE",
		Short: "Answer many route queries, one per line: START END METRIC ALGORITHM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening queries %s: %w", args[0], err)
			}
			defer f.Close()
			return runBatch(f, cmd.OutOrStdout(), workers)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent searches")
	return cmd
}

func readQueries(r io.Reader) ([]usecases.RouteRequest, error) {
	var reqs []usecases.RouteRequest
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ff := strings.Fields(sc.Text())
		if len(ff) == 0 || strings.HasPrefix(ff[0], "#") {
			continue
		}
		if len(ff) != 4 {
			return nil, fmt.Errorf("query %q: want START END METRIC ALGORITHM", sc.Text())
		}
		reqs = append(reqs, usecases.RouteRequest{Start: ff[0], End: ff[1], Metric: ff[2], Algorithm: ff[3]})
	}
	return reqs, sc.Err()
}

// runBatch prints one line per query: the machine-readable route line or the user message.
func runBatch(in io.Reader, w io.Writer, workers int) error {
	reqs, err := readQueries(in)
	if err != nil {
		return err
	}

	log, err := logger.New()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	graph, err := roadparser.NewParser(log).Parse(viper.GetString("ROAD_SEGMENTS_PATH"), viper.GetString("CITY_GPS_PATH"))
	if err != nil {
		log.Error("failed to load road network", zap.Error(err))
		return err
	}

	engine := routing.NewRoutingEngine(graph, log, viper.GetInt("IDS_MAX_DEPTH"))
	results := usecases.NewRoutingService(log, engine, nil).BatchShortestPath(reqs, workers)

	bw := bufio.NewWriter(w)
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintln(bw, strings.ReplaceAll(res.Err.Error(), "\n", " "))
		case !res.Route.Found:
			fmt.Fprintln(bw, res.Request.NoPathMessage())
		default:
			fmt.Fprintln(bw, res.Route.Summary.MachineReadable())
		}
	}
	return bw.Flush()
}
