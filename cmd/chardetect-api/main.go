// Command chardetect-api serves chardet-compatible detection over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chardetcompat/internal/core/version"
	"chardetcompat/internal/modkit"
	"chardetcompat/internal/modkit/httpkit"
	"chardetcompat/internal/platform/config"
	"chardetcompat/internal/platform/logger"
	phttp "chardetcompat/internal/platform/net/http"
	"chardetcompat/internal/platform/net/middleware"

	detectmod "chardetcompat/internal/services/detect/module"

	"github.com/go-chi/chi/v5"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT) with the shared middleware stack
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults(middleware.Options{
			Timeout:     apiCfg.MayDuration("TIMEOUT", 30*time.Second),
			MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 0),
			Slow:        time.Duration(apiCfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
			CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		})...)
	})

	dm := detectmod.New(modkit.Deps{Cfg: root, Log: l}, detectmod.Options{})
	httpkit.MountAPIV1(srv.Router(), nil, dm.MountRoutes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().
		Str("version", version.String()).
		Str("addr", srv.Addr()).
		Int64("max_body_bytes", dm.Options().MaxBodyBytes).
		Msg("chardetect-api starting")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
