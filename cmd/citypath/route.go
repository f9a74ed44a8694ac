package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lintang-b-s/citypath/pkg/engine/routing"
	"github.com/lintang-b-s/citypath/pkg/guidance"
	"github.com/lintang-b-s/citypath/pkg/http/usecases"
	"github.com/lintang-b-s/citypath/pkg/logger"
	"github.com/lintang-b-s/citypath/pkg/roadparser"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errConfiguration = errors.New("configuration error")

// runRoute prints either the route report or a single user message. Configuration
// errors are printed and then returned so the process exits with status 1.
func runRoute(w io.Writer, start, end, metric, algorithm string) error {
	req := usecases.RouteRequest{Start: start, End: end, Metric: metric, Algorithm: algorithm}

	if err := usecases.NewRequestValidator().ValidateRequest(req); err != nil {
		fmt.Fprintln(w, err.Error())
		return errConfiguration
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
	route, err := usecases.NewRoutingService(log, engine, nil).ShortestPath(req)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return errConfiguration
	}
	if !route.Found {
		fmt.Fprintln(w, req.NoPathMessage())
		return nil
	}
	return guidance.WriteReport(w, route.Directions, route.Summary)
}
