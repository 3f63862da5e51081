package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"company-lookup/internal/config"
	"company-lookup/internal/fileio"
	"company-lookup/internal/lookup/service"
	serverhttp "company-lookup/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	registry, err := fileio.LoadRegistry(cfg.RegistryFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.RegistryFile).Msg("load registry")
	}
	bureau, err := fileio.LoadBureau(cfg.BureauFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.BureauFile).Msg("load bureau")
	}
	logger.Info().
		Int("registry_records", len(registry)).
		Int("bureau_records", len(bureau)).
		Msg("reference data loaded")

	svc := service.NewLookup(registry, bureau)
	r := serverhttp.NewRouter(cfg, logger, svc)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
