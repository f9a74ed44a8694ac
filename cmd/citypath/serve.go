package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/citypath/pkg/engine/routing"
	"github.com/lintang-b-s/citypath/pkg/http"
	"github.com/lintang-b-s/citypath/pkg/http/usecases"
	"github.com/lintang-b-s/citypath/pkg/logger"
	"github.com/lintang-b-s/citypath/pkg/roadparser"
	"github.com/lintang-b-s/citypath/pkg/spatialindex"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var useRateLimit bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, useRateLimit)
		},
	}

	cmd.Flags().Int("port", 0, "HTTP port (default 6060)")
	cmd.Flags().BoolVar(&useRateLimit, "rate-limit", true, "enable the request rate limiter")
	_ = viper.BindPFlag("API_PORT", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(ctx context.Context, useRateLimit bool) error {
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

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, log)

	engine := routing.NewRoutingEngine(graph, log, viper.GetInt("IDS_MAX_DEPTH"))
	routingService := usecases.NewRoutingService(log, engine, rtree)

	err = http.NewServer(log).Serve(ctx, useRateLimit, routingService)
	log.Info("citypath server stopped", zap.Error(err))
	return err
}
