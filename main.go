package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexora/lexora-backend/api"
	"github.com/lexora/lexora-backend/infra"
	"github.com/lexora/lexora-backend/repositories"
	"github.com/lexora/lexora-backend/usecases"
	"github.com/lexora/lexora-backend/utils"
)

type AppConfiguration struct {
	env           string
	port          string
	loggingFormat string
	pgConfig      infra.PgConfig
}

func loadConfiguration() AppConfiguration {
	return AppConfiguration{
		env:           utils.GetStringEnv("ENV", "development"),
		port:          utils.GetStringEnv("PORT", "8080"),
		loggingFormat: utils.GetStringEnv("LOGGING_FORMAT", "text"),
		pgConfig: infra.PgConfig{
			ConnectionString:   utils.GetStringEnv("PG_CONNECTION_STRING", ""),
			Database:           utils.GetStringEnv("PG_DATABASE", "lexora"),
			Hostname:           utils.GetStringEnv("PG_HOSTNAME", "localhost"),
			Password:           utils.GetStringEnv("PG_PASSWORD", ""),
			Port:               utils.GetStringEnv("PG_PORT", "5432"),
			User:               utils.GetStringEnv("PG_USER", "postgres"),
			MaxPoolConnections: utils.GetIntEnv("PG_MAX_POOL_SIZE", 20),
			SslMode:            utils.GetStringEnv("PG_SSL_MODE", "prefer"),
		},
	}
}

func runServer(ctx context.Context, conf AppConfiguration) error {
	logger := utils.LoggerFromContext(ctx)

	pool, err := infra.NewPostgresConnectionPool(ctx, conf.pgConfig)
	if err != nil {
		return fmt.Errorf("error creating postgres connection pool: %w", err)
	}
	defer pool.Close()

	uc := usecases.NewUsecases(usecases.Repositories{
		ExecutorGetter:     repositories.NewExecutorGetter(pool),
		LexoraDbRepository: repositories.NewLexoraDbRepository(),
	})

	router := initRouter(ctx, conf)
	api.AddRoutes(router, uc)

	server := &http.Server{
		Addr:    ":" + conf.port,
		Handler: router,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", conf.port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the api", "error", err)
		}
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the api server")
	flag.Parse()

	conf := loadConfiguration()
	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(conf.pgConfig.GetConnectionString(), logger); err != nil {
			log.Fatalf("error running migrations: %v", err)
		}
	}
	if *shouldRunServer {
		if err := runServer(ctx, conf); err != nil {
			log.Fatalf("error running server: %v", err)
		}
	}
}
