// Command clubhouse-api serves the training schedule and Thai calendar API
package main

import (
	"context"
	"os/signal"
	"syscall"

	"clubhouse/internal/platform/config"
	"clubhouse/internal/platform/logger"
	phttp "clubhouse/internal/platform/net/http"
	"clubhouse/internal/platform/store"

	"clubhouse/internal/services/api"
)

func main() {
	// service scoped config for HTTP and modules (CLUB_API_*)
	root := config.New()
	apiCfg := root.Prefix("CLUB_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// postgres only when SERVICE_PGSQL_DBURL is set, memory otherwise
	st, err := store.Open(ctx, store.ConfigFrom("clubhouse-api", pgCfg), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CLUB_API_API_PORT and friends)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
