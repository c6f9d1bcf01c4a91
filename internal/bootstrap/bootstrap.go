// Package bootstrap builds the service graph from configuration. The server
// and the CLI share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/iggarsaudev/career-hub/internal/adapter/repository"
	"github.com/iggarsaudev/career-hub/internal/adapter/storage"
	"github.com/iggarsaudev/career-hub/internal/auth"
	"github.com/iggarsaudev/career-hub/internal/config"
	"github.com/iggarsaudev/career-hub/internal/infrastructure/migration"
	"github.com/iggarsaudev/career-hub/internal/logging"
	"github.com/iggarsaudev/career-hub/internal/qr"
	"github.com/iggarsaudev/career-hub/internal/usecase"
	"github.com/iggarsaudev/career-hub/pkg/contentapi"
	"github.com/iggarsaudev/career-hub/pkg/health"
	infra "github.com/iggarsaudev/career-hub/pkg/infrastructure"
)

// test seam
var connectPool = infra.NewPool

type Services struct {
	Config    config.Config
	Log       logging.Logger
	Pool      *pgxpool.Pool
	Source    usecase.ContentSource
	Store     usecase.Store
	Generator *usecase.Generator
	Site      *usecase.Site
	Readiness *health.Service
}

// NewLogger returns the JSON logger at the configured level.
func NewLogger(level string) *logging.SlogLogger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		l = slog.LevelInfo
	}
	return logging.NewJSON(os.Stderr, l)
}

// Build connects what cfg selects. Migrations run whenever Postgres is used.
func Build(ctx context.Context, cfg config.Config, log logging.Logger) (*Services, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Services{Config: cfg, Log: log}

	var checkers []health.Checker
	if cfg.NeedsDatabase() {
		pool, err := connectPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		s.Pool = pool
		if err := migration.RunMigrations(ctx, pool); err != nil {
			s.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		checkers = append(checkers, health.NewPostgresChecker(pool))
	}

	switch cfg.ContentSource {
	case config.SourcePostgres:
		s.Source = repository.NewContentRepo(s.Pool)
	case config.SourceAPI:
		// zero timeout selects the client default
		s.Source = contentapi.NewClient(cfg.ContentAPIURL, 0)
	case config.SourceFile:
		s.Source = repository.NewFileRepo(cfg.ContentFile)
	}

	store, err := newStore(ctx, cfg, s.Pool)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Store = store

	renderer := infra.NewChromedpRenderer(infra.MustHTMLRenderer(), cfg.ChromePath, cfg.RenderTimeout())
	s.Generator = usecase.NewGenerator(s.Source, qr.NewGenerator(cfg.PortfolioURLDefault), renderer, store, log, usecase.GeneratorOptions{
		RenderAttempts: cfg.RenderAttempts,
		RenderBackoff:  cfg.RenderBackoff(),
		AvatarFallback: cfg.AvatarFallback,
	})
	s.Site = usecase.NewSite(s.Source)
	s.Readiness = health.NewService(checkers...)
	return s, nil
}

func newStore(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (usecase.Store, error) {
	switch cfg.CVStore {
	case config.StoreMemory:
		return storage.NewMemoryStore(), nil
	case config.StoreFS:
		if err := os.MkdirAll(cfg.CVStoreDir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		return storage.NewFSStore(cfg.CVStoreDir), nil
	case config.StoreS3:
		return storage.NewS3Store(ctx, storage.S3Config{
			Bucket:       cfg.S3.Bucket,
			Prefix:       cfg.S3.Prefix,
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
	case config.StorePostgres:
		return storage.NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown CV_STORE %q", cfg.CVStore)
	}
}

// Auth builds the admin login. A plain ADMIN_PASSWORD is hashed here so the
// cleartext is not kept around.
func Auth(cfg config.Config) (*auth.Service, *auth.Tokens, error) {
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 && cfg.AdminPassword != "" {
		var err error
		hash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	return auth.NewService(cfg.AdminEmail, hash, tokens), tokens, nil
}

func (s *Services) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
