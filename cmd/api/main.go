package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"lounge_finder/internal/adapters/catalog"
	"lounge_finder/internal/adapters/gemini"
	server "lounge_finder/internal/adapters/http_server"
	"lounge_finder/internal/adapters/observability"
	"lounge_finder/internal/app"
	"lounge_finder/internal/shared"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("catalog load failed")
	}

	gen, err := gemini.NewGenerator(cfg.GenerationEnabled(), cfg.GeminiBase, cfg.GeminiKey, cfg.GeminiModel, cfg.GeminiRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}
	log.Info().
		Bool("generation", cfg.GenerationEnabled()).
		Str("model", cfg.GeminiModel).
		Int("lounges", cfg.LoungeCount).
		Msg("search pipeline ready")

	// deps
	src := catalog.NewGenerator(cat, cfg.LoungeCount, nil)
	svc := app.NewSearchService(src, gen, cfg.GenerationTimeout)

	// http
	srv := server.New(cfg.GenerationTimeout + 10*time.Second)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	servers := []*http.Server{httpSrv}
	if ms := observability.NewMetricsServer(cfg.MetricsAddr, reg); ms != nil {
		servers = append(servers, ms)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			log.Info().Str("addr", s.Addr).Msg("listening")
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Str("addr", s.Addr).Msg("shutdown failed")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("stopped")
}
