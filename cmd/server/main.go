package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skycast/weather-widget/config"
	"skycast/weather-widget/internal/api/v1/handlers"
	"skycast/weather-widget/internal/db/lookuplog"
	"skycast/weather-widget/internal/lookup"
	"skycast/weather-widget/internal/openweather"
	"skycast/weather-widget/internal/session"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	// The lookup log is optional: without a database the widget still works,
	// lookups are just not recorded.
	var lookupRepo lookuplog.Repository
	if conf.DBHost != "" {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		lookupRepo = lookuplog.NewRepository(db)
	}

	sessionStore := session.NewMemoryStore(conf.SessionTTL)
	memory := session.NewMemory(sessionStore)

	gateway := openweather.NewClient(conf.OpenWeatherAPIKey, conf.OpenWeatherBaseURL)

	events := handlers.NewEventStream()

	lookupService := lookup.NewService(
		gateway,
		lookup.NewNormalizer(),
		memory,
		events,
		lookupRepo,
	)

	handler := handlers.NewWeatherHandler(lookupService, memory, events, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.Lookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
