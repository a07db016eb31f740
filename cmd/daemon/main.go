package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/artwork"
	"github.com/linernotes/liner/internal/cache"
	"github.com/linernotes/liner/internal/config"
	"github.com/linernotes/liner/internal/domain"
	"github.com/linernotes/liner/internal/engine"
	"github.com/linernotes/liner/internal/gateway"
	"github.com/linernotes/liner/internal/provider"
	"github.com/linernotes/liner/internal/session"
)

// AppOptions is the full dependency graph of the daemon. Tests validate it
// with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		newLogger,
		config.New,
		newCache,
		session.NewRegistry,
		engine.NewEngine,
		gateway.NewHandler,

		fx.Annotate(newProvider, fx.As(new(domain.ContentProvider))),
		fx.Annotate(artwork.NewHTTPFetcher, fx.As(new(domain.ArtworkFetcher))),
		fx.Annotate(artwork.NewDominantExtractor, fx.As(new(domain.ColorExtractor))),

		// The sink is consumed both concretely (stream subscriptions) and
		// through the render interface.
		gateway.NewMemorySink,
		func(s *gateway.MemorySink) domain.RenderSink { return s },
	),

	fx.Invoke(registerServer),
)

func main() {
	app := fx.New(AppOptions)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newProvider(logger *zap.Logger, cfg *config.Config) *provider.Client {
	return provider.NewClient(logger, cfg.ProviderBaseURL)
}

func newCache(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Config) (*cache.Store, error) {
	store, err := cache.Open(logger, cfg.CachePath, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

// registerServer binds the API to the configured address and sweeps the
// provider cache hourly while the daemon runs.
func registerServer(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Config, handler *gateway.Handler, store *cache.Store) {
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.ListenAddr)
			if err != nil {
				return err
			}
			logger.Info("daemon listening", zap.String("addr", ln.Addr().String()))

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", zap.Error(err))
				}
			}()

			go func() {
				ticker := time.NewTicker(time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-sweepCtx.Done():
						return
					case <-ticker.C:
						if _, err := store.Sweep(sweepCtx); err != nil {
							logger.Warn("cache sweep failed", zap.Error(err))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopSweep()
			return srv.Shutdown(ctx)
		},
	})
}
