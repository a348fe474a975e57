package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/deliveryease/dispatch/algorithm"
	"github.com/deliveryease/dispatch/api"
	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/dispatch"
	"github.com/deliveryease/dispatch/geocode"
	"github.com/deliveryease/dispatch/routecache"
	"github.com/deliveryease/dispatch/util"
	"github.com/deliveryease/dispatch/worker"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	poolConfig, err := pgxpool.ParseConfig(config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse db config")
	}

	// 连接池参数
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	log.Info().
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Msg("database connection pool configured")

	runDBMigration(config.MigrationURL, config.DBSource)

	store := db.NewStore(connPool)

	if config.RedisAddress == "" {
		log.Fatal().Msg("REDIS_ADDRESS is not configured")
	}
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	}

	// 路线缓存（同时验证 Redis 连接）
	routeCache, err := routecache.NewCache(config.RedisAddress, config.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to redis")
	}
	log.Info().Str("redis_address", config.RedisAddress).Msg("redis connection verified")

	depot := algorithm.Location{
		Latitude:  config.DepotLatitude,
		Longitude: config.DepotLongitude,
	}
	optimizerConfig := algorithm.DefaultOptimizerConfig()
	optimizerConfig.AvgSpeedKmh = config.AverageSpeedKmh
	optimizerConfig.FuelPriceCentsPerL = config.FuelPriceCentsPerLiter

	planner := routecache.NewPlanner(store, routeCache, depot, optimizerConfig)
	geocoder := geocode.NewClient(config.GeocoderBaseURL, config.GeocoderTimeout)

	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)
	events := worker.NewEventsAdapter(taskDistributor)

	former := dispatch.NewFormer(store, geocoder, events, config.BatchMaxWeightKg)
	merger := dispatch.NewMerger(store, events, config.MergeRadiusKm)
	assigner := dispatch.NewAssigner(store, events, config.BatchMinAssignWeightKg, config.ServiceDayBoundaryHour)
	pipeline := dispatch.NewPipeline(former, merger, assigner)
	tracker := dispatch.NewTracker(store, planner, events)

	waitGroup, ctx := errgroup.WithContext(ctx)

	runTaskProcessor(ctx, waitGroup, redisOpt, store, planner, pipeline)
	runDispatchScheduler(ctx, waitGroup, config, pipeline)
	runGinServer(ctx, waitGroup, config, store, planner, tracker, taskDistributor)
	runDBMetricsCollector(ctx, waitGroup, connPool)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// runTaskProcessor 启动 asynq worker，处理路线优化、调度和通知任务
func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	planner dispatch.RoutePlanner,
	pipeline worker.DispatchPipeline,
) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, planner, pipeline)
	log.Info().Msg("start task processor")

	waitGroup.Go(func() error {
		return taskProcessor.Start()
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")
		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})
}

// runDispatchScheduler 启动周期性调度管线
func runDispatchScheduler(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	pipeline *dispatch.Pipeline,
) {
	scheduler := dispatch.NewScheduler(pipeline, config.DispatchInterval, config.ServiceDayBoundaryHour)

	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start dispatch scheduler")
	}
	log.Info().
		Dur("interval", config.DispatchInterval).
		Int("boundary_hour", config.ServiceDayBoundaryHour).
		Msg("start dispatch scheduler")

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown dispatch scheduler")
		scheduler.Stop()
		log.Info().Msg("dispatch scheduler is stopped")
		return nil
	})
}

func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	planner dispatch.RoutePlanner,
	tracker *dispatch.Tracker,
	taskDistributor worker.TaskDistributor,
) {
	server, err := api.NewServer(config, store, planner, tracker, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	httpServer := &http.Server{
		Addr:              config.HTTPServerAddress,
		Handler:           server.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)
		err = httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		// 给予10秒时间完成正在处理的请求
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}

// runDBMetricsCollector 周期性刷新连接池指标
func runDBMetricsCollector(
	ctx context.Context,
	waitGroup *errgroup.Group,
	connPool *pgxpool.Pool,
) {
	waitGroup.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				stat := connPool.Stat()
				api.UpdateDBMetrics(int(stat.AcquiredConns()), int(stat.IdleConns()))
			}
		}
	})
}
