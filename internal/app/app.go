package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/cache"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres/comment"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres/profile"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres/term"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/auth"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/config"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
	commentsvc "github.com/heartmarshall/ai-arabic-dictionary/internal/service/comment"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/dictionary"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/moderation"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/transport/middleware"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/transport/rest"
)

// searchCache is what both the dictionary and moderation services need
// from the cache: reads for one, invalidation for the other.
type searchCache interface {
	GetOrLoad(ctx context.Context, query string, limit int, load cache.LoadFunc) ([]domain.Term, error)
	Invalidate(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, wires the services and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, ApplicationName("server"))
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	m := metrics.New()

	var (
		search      searchCache = cache.Nop{}
		cacheHealth pinger
	)
	if cfg.Cache.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Cache, m)
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		defer closeRedis(rdb, logger)

		sc := cache.NewSearchCache(rdb, cfg.Cache.TTL, cfg.Cache.Prefix, m, logger)
		search, cacheHealth = sc, sc
		logger.Info("search cache enabled", slog.String("addr", cfg.Cache.Addr))
	} else {
		logger.Info("search cache disabled")
	}

	// Repositories.
	termRepo := term.New(pool)
	suggestionRepo := suggestion.New(pool)
	commentRepo := comment.New(pool)
	profileRepo := profile.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	dictService := dictionary.NewService(logger, termRepo, suggestionRepo, search, txm, cfg.Search)
	moderationService := moderation.NewService(logger, termRepo, suggestionRepo, search, m, cfg.Moderation)
	commentService := commentsvc.NewService(logger, commentRepo, termRepo)

	gate := auth.NewGate(auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience), profileRepo, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.Routes{
		Health:     rest.NewHealthHandler(pool, cacheHealth, Version),
		Dictionary: rest.NewDictionaryHandler(dictService, commentService, logger),
		Admin:      rest.NewAdminHandler(moderationService, logger),
		Metrics:    m.Handler(),
		WriteLimit: limiter.Limit(cfg.RateLimit.WritesPerMinute),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(gate, logger),
		middleware.Metrics(m),
	)(mux)

	return serve(ctx, newHTTPServer(cfg.Server, handler), cfg.Server, logger)
}

func newHTTPServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// serve runs srv until ctx is done or the listener fails, then drains
// in-flight requests for at most ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

func closeRedis(rdb *redis.Client, logger *slog.Logger) {
	if err := rdb.Close(); err != nil {
		logger.Warn("close redis", slog.String("error", err.Error()))
	}
}
