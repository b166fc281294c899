package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fastwrite/internal/assets"
	"fastwrite/internal/config"
	"fastwrite/internal/database"
	"fastwrite/internal/events"
	"fastwrite/internal/llm/client"
	"fastwrite/internal/repositories"
	"fastwrite/internal/services"
	"fastwrite/internal/utils"
)

// App struct
type App struct {
	ctx       context.Context
	cfg       *config.Config
	sessionID string

	Catalog   services.ModelCatalogService
	Form      services.FormService
	Results   services.ResultService
	Sources   *services.SourceService
	Navigator *events.LogNavigator

	keysOnce sync.Once
	keys     *services.KeyringService
	keysErr  error

	db         *gorm.DB
	sessions   repositories.SessionRepository
	dbClose    func() error
	redisClose func() error
}

// NewApp creates a new App application struct
func NewApp(cfg *config.Config, sessionID string) *App {
	return &App{cfg: cfg, sessionID: sessionID}
}

// startup opens storage and wires the services. The keyring is opened on first use.
func (a *App) startup(ctx context.Context) error {
	a.ctx = events.WithSession(ctx, a.sessionID)

	catalog, err := services.NewModelCatalogService(assets.ModelsData)
	if err != nil {
		return err
	}
	a.Catalog = catalog

	db, err := database.Init(database.Config{
		Path:     a.cfg.Database.Path,
		LogLevel: logger.Warn,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db
	if sqlDB, err := db.DB(); err != nil {
		log.Error().Err(err).Msg("failed to get sql.DB")
	} else {
		a.dbClose = sqlDB.Close
	}

	sessions, err := a.sessionRepository()
	if err != nil {
		return err
	}
	a.sessions = sessions

	svc := services.NewServices(db, sessions, catalog, a.sessionID)
	svc.Startup(a.ctx)
	a.Form = svc.Forms
	a.Results = svc.Results
	a.Sources = svc.Sources
	a.Navigator = &events.LogNavigator{}
	return nil
}

func (a *App) sessionRepository() (repositories.SessionRepository, error) {
	ttl := a.cfg.Session.TTL
	switch a.cfg.Session.Backend {
	case config.BackendMemory:
		return repositories.NewMemorySessionRepository(ttl), nil
	case config.BackendRedis:
		rdb := repositories.NewRedisClient(a.cfg.Session.RedisURL)
		if err := rdb.Ping(a.ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		a.redisClose = rdb.Close
		return repositories.NewRedisSessionRepository(rdb, ttl), nil
	case config.BackendDatabase, "":
		return repositories.NewDatabaseSessionRepository(a.db, ttl), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", a.cfg.Session.Backend)
	}
}

// ClearSession drops the stored form snapshot of the current session.
func (a *App) ClearSession() error {
	return a.sessions.Delete(a.ctx, a.sessionID)
}

// Keys opens the credential store described by the keyring config.
func (a *App) Keys() (*services.KeyringService, error) {
	a.keysOnce.Do(func() {
		kc := services.KeyringConfig{
			Backend:      a.cfg.Keyring.Backend,
			ServiceName:  a.cfg.Keyring.Service,
			FileDir:      a.cfg.Keyring.FileDir,
			FilePassword: a.cfg.Keyring.FilePassword,
		}
		if strings.TrimSpace(kc.FileDir) == "" {
			if dir, err := utils.AppDir(); err == nil {
				kc.FileDir = filepath.Join(dir, "keyring")
			}
		}
		ring, err := services.OpenKeyring(kc)
		if err != nil {
			a.keysErr = err
			return
		}
		a.keys = services.NewKeyringService(ring)
	})
	return a.keys, a.keysErr
}

// Submissions builds the orchestrator against the configured endpoint.
func (a *App) Submissions() (*services.SubmissionService, error) {
	keys, err := a.Keys()
	if err != nil {
		return nil, err
	}
	return services.NewSubmissionService(services.SubmissionDeps{
		Form:        a.Form,
		Credentials: keys,
		Client:      client.NewHTTPClient(a.cfg.API.Endpoint, &http.Client{}),
		Results:     a.Results,
		Navigator:   a.Navigator,
		Emitter:     events.LogEmitter{},
	}, services.SubmissionConfig{Timeout: a.cfg.API.Timeout}), nil
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.redisClose != nil {
		if err := a.redisClose(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
		a.redisClose = nil
	}

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		} else {
			log.Debug().Msg("database closed")
		}
		a.dbClose = nil
	}
}
