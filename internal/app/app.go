package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/riskibarqy/team-roster/internal/config"
	"github.com/riskibarqy/team-roster/internal/domain/group"
	"github.com/riskibarqy/team-roster/internal/domain/player"
	"github.com/riskibarqy/team-roster/internal/domain/team"
	"github.com/riskibarqy/team-roster/internal/infrastructure/kvstore/bolt"
	"github.com/riskibarqy/team-roster/internal/infrastructure/kvstore/memory"
	"github.com/riskibarqy/team-roster/internal/infrastructure/kvstore/sqlite"
	cacherepo "github.com/riskibarqy/team-roster/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/team-roster/internal/infrastructure/repository/kv"
	"github.com/riskibarqy/team-roster/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/team-roster/internal/platform/cache"
	"github.com/riskibarqy/team-roster/internal/platform/kvstore"
	"github.com/riskibarqy/team-roster/internal/platform/logging"
	"github.com/riskibarqy/team-roster/internal/platform/resilience"
	"github.com/riskibarqy/team-roster/internal/usecase"
)

// App is the wired HTTP server together with the store it owns.
type App struct {
	Server *http.Server

	closeStore func() error
}

// Repositories are the roster repositories over one store, optionally
// behind the read cache.
type Repositories struct {
	Groups  group.Repository
	Players player.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	teams, err := team.NewSet(cfg.RosterTeams)
	if err != nil {
		return nil, fmt.Errorf("build team set: %w", err)
	}

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("store opened", "driver", cfg.StoreDriver, "path", cfg.StorePath)

	repos := NewRepositories(store, cfg)
	provider := team.StaticProvider(teams)

	groupSvc := usecase.NewGroupService(repos.Groups, repos.Players, provider, cfg.SummaryWorkers, logger.Named("groups"))
	playerSvc := usecase.NewPlayerService(repos.Groups, repos.Players, provider, logger.Named("players"))

	handler := httpapi.NewHandler(groupSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		closeStore: closeStore,
	}, nil
}

// Close releases the store. Call it after the server has shut down.
func (a *App) Close(context.Context) error {
	if a == nil || a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

// OpenStore opens the key-value store selected by cfg.StoreDriver.
func OpenStore(cfg config.Config) (kvstore.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		return memory.NewStore(), func() error { return nil }, nil
	case config.StoreBolt:
		if err := ensureParentDir(cfg.StorePath); err != nil {
			return nil, nil, err
		}
		store, err := bolt.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return store, store.Close, nil
	case config.StoreSQLite:
		if err := ensureParentDir(cfg.StorePath); err != nil {
			return nil, nil, err
		}
		var opts []sqlite.Option
		if !cfg.StoreMigrateOnStart {
			opts = append(opts, sqlite.WithoutMigrations())
		}
		store, err := sqlite.Open(cfg.StorePath, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// NewRepositories wires the group and player repositories over store with a
// shared per-group lock table. With the cache enabled, group removal
// cascades through the cached player repository so the roster entry is
// dropped too.
func NewRepositories(store kvstore.Store, cfg config.Config) Repositories {
	locks := &resilience.KeyedMutex{}
	kvPlayers := kv.NewPlayerRepository(store, locks)

	if !cfg.CacheEnabled {
		return Repositories{
			Groups:  kv.NewGroupRepository(store, kvPlayers, locks),
			Players: kvPlayers,
		}
	}

	readCache := basecache.NewStore(cfg.CacheTTL)
	cachedPlayers := cacherepo.NewPlayerRepository(kvPlayers, readCache)
	kvGroups := kv.NewGroupRepository(store, cachedPlayers, locks)

	return Repositories{
		Groups:  cacherepo.NewGroupRepository(kvGroups, readCache),
		Players: cachedPlayers,
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory %q: %w", dir, err)
	}
	return nil
}
