package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	healthHandler "github.com/m04kA/TravelAgency-BackOffice/internal/api/handlers/health"
	"github.com/m04kA/TravelAgency-BackOffice/internal/api/middleware"
	"github.com/m04kA/TravelAgency-BackOffice/internal/app"
	"github.com/m04kA/TravelAgency-BackOffice/internal/config"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/database"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/schema"
	authScreen "github.com/m04kA/TravelAgency-BackOffice/internal/screens/auth"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TravelAgency-BackOffice...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных под учётной записью из конфигурации
	provider := database.NewProvider(cfg.Database, metricsCollector, log)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(),
		time.Duration(cfg.Database.ConnectTimeout+5)*time.Second)
	err = provider.Connect(connectCtx, cfg.Database.User, cfg.Database.Password)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer provider.Close()

	// Применяем миграции
	if cfg.Database.ApplyMigrations {
		if err := schema.Apply(context.Background(), provider.Get().SQL(), log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Собираем сервисы и экраны; выгрузка отчётов подключается слоем представления
	application := app.New(app.Deps{
		DB:         provider.Get(),
		Verifier:   provider,
		ReportsDir: cfg.Reports.OutputDir,
		Logger:     log,
	})

	unsubscribe := application.Login.State().Subscribe(func(st viewstate.State[authScreen.Welcome]) {
		if st.Status == viewstate.Content {
			log.Info("User signed in: type=%s, name=%s", st.Data.UserType, st.Data.UserName)
		}
	})
	defer unsubscribe()

	// Настраиваем роутер служебного сервера
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	health := healthHandler.NewHandler(provider, log)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting ops server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	application.Session.Clear()
	log.Info("Server stopped gracefully")
}
