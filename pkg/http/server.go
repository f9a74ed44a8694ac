package http

import (
	"context"

	http_router "github.com/lintang-b-s/citypath/pkg/http/router"
	"github.com/lintang-b-s/citypath/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/citypath/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Serve blocks until ctx is cancelled or the listener fails.
func (s *Server) Serve(
	ctx context.Context,
	useRateLimit bool,
	routingService controllers.RoutingService,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	api := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(gctx, config, useRateLimit, routingService)
	})

	return g.Wait()
}
