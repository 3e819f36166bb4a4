// Command api serves the Campulse student API.
//
//	@title						Campulse API
//	@version					1.0
//	@description				Session, planner, opportunity board and tutor directory for students.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campulse/campulse-api/docs"
	"github.com/campulse/campulse-api/internal/api"
	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/core/service"
	"github.com/campulse/campulse-api/internal/infrastructure/db/memory"
	"github.com/campulse/campulse-api/internal/infrastructure/db/mongo"
	"github.com/campulse/campulse-api/internal/infrastructure/db/redis"
	"github.com/campulse/campulse-api/internal/infrastructure/db/seed"
	"github.com/campulse/campulse-api/internal/infrastructure/persist"
	"github.com/campulse/campulse-api/internal/infrastructure/queue"
	"github.com/campulse/campulse-api/internal/pkg/config"
	"github.com/campulse/campulse-api/internal/pkg/latency"
	"github.com/campulse/campulse-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "campulse-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- External stores ---
	var db *mongodriver.Database
	if cfg.NeedsMongo() {
		client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		db = database
		log.Info().Str("db", cfg.Mongo.Database).Msg("mongodb connected")
	}

	var rdb *goredis.Client
	if cfg.NeedsRedis() {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	// --- Repositories ---
	delay := latency.New(cfg.MockLatency)

	var kv ports.KeyValueStore
	switch cfg.SessionStore {
	case config.StorageRedis:
		kv = redis.NewKVStore(rdb, "campulse:")
	case config.StorageMongo:
		kv = mongo.NewKVStore(db)
	default:
		kv = memory.NewKVStore()
	}

	var bookmarks ports.BookmarkStore
	if cfg.BookmarkStore == config.StorageRedis {
		bookmarks = redis.NewBookmarkStore(rdb)
	} else {
		bookmarks = memory.NewBookmarkStore()
	}

	tasks, opps, tutors, err := buildCollections(ctx, cfg, db)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := service.NewAuthService(
		persist.NewCredentialRepository(kv),
		persist.NewSessionStore(kv),
		cfg.JWTSecret,
		cfg.TokenTTL,
		delay,
		logger.Component("auth"),
	)
	authService.Restore(ctx)

	opportunityService := service.NewOpportunityService(opps, bookmarks, delay, logger.Component("opportunities"))

	dispatcher := queue.NewDispatcher(cfg.DispatchWorkers, opportunityService, logger.Component("bookmarks"))
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Auth:          authService,
		Tasks:         service.NewTaskService(tasks, delay, logger.Component("tasks")),
		Opportunities: opportunityService,
		Tutors:        service.NewTutorService(tutors, delay),
		Bookmarks:     dispatcher,
		Mongo:         db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		Log:           log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("storage", cfg.Storage).
			Str("session_store", cfg.SessionStore).
			Str("bookmark_store", cfg.BookmarkStore).
			Dur("mock_latency", cfg.MockLatency).
			Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if shutdownErr := dispatcher.Shutdown(context.Background()); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("bookmark dispatcher shutdown")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	// Runs after the HTTP server stops so no new toggles can arrive.
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("bookmark dispatcher shutdown")
	}
	return nil
}

// buildCollections picks the task, opportunity and tutor repositories for
// cfg.Storage and seeds them with the demo records when SEED_DATA is on.
func buildCollections(ctx context.Context, cfg *config.Config, db *mongodriver.Database) (
	ports.TaskRepository, ports.OpportunityRepository, ports.TutorRepository, error,
) {
	var (
		tasks  []domain.Task
		opps   []domain.Opportunity
		tutors []domain.Tutor
	)
	if cfg.SeedData {
		tasks, opps, tutors = seed.Tasks(time.Now()), seed.Opportunities(), seed.Tutors()
	}

	if cfg.Storage != config.StorageMongo {
		return memory.NewTaskRepository(tasks...),
			memory.NewOpportunityRepository(opps...),
			memory.NewTutorRepository(tutors...),
			nil
	}

	taskRepo := mongo.NewTaskRepository(db)
	oppRepo := mongo.NewOpportunityRepository(db)
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("task indexes: %w", err)
	}
	if err := oppRepo.EnsureIndexes(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("opportunity indexes: %w", err)
	}
	if err := mongo.Seed(ctx, db, tasks, opps, tutors); err != nil {
		return nil, nil, nil, err
	}
	return taskRepo, oppRepo, mongo.NewTutorRepository(db), nil
}
