package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/work-suite-api/internal/auth"
	"github.com/work-suite-api/internal/config"
	"github.com/work-suite-api/internal/database"
	"github.com/work-suite-api/internal/handler"
	"github.com/work-suite-api/internal/notify"
	"github.com/work-suite-api/internal/realtime"
	"github.com/work-suite-api/internal/repository"
	"github.com/work-suite-api/internal/scheduler"
	"github.com/work-suite-api/internal/service"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations and exit")
	flag.Parse()

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env необязателен, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", slog.Any("error", err))
	}

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	if *migrateOnly {
		logger.Info("migrations applied")
		return
	}

	// Доставка событий: WebSocket комнаты и, если настроен, FCM
	hub := realtime.NewHub(logger)
	publishers := notify.MultiPublisher{hub}
	if cfg.Firebase.CredentialsFile != "" {
		fcm, err := notify.NewFCMPublisher(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("failed to init firebase messaging", slog.Any("error", err))
			os.Exit(1)
		}
		publishers = append(publishers, fcm)
	}
	notifier := notify.NewNotifier(publishers, logger)

	// Инициализация репозиториев
	tx := repository.NewTransactor(db)
	taskRepo := repository.NewTaskRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	assignRepo := repository.NewAssignmentRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	clientRepo := repository.NewClientRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Инициализация сервисов
	assignments := service.NewAssignmentService(tx, taskRepo, empRepo, assignRepo)
	taskService := service.NewTaskService(tx, taskRepo, projectRepo, assignments, notifier)
	projectService := service.NewProjectService(tx, projectRepo, clientRepo, taskRepo, assignments, notifier)
	clientService := service.NewClientService(tx, clientRepo, projectRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	attendanceService := service.NewAttendanceService(tx, attendanceRepo, empRepo, time.Now)
	empService := service.NewEmployeeService(empRepo)

	// Без JWT_SECRET API работает без авторизации
	var verifier auth.Verifier
	if cfg.Auth.Enabled() {
		verifier = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	} else {
		logger.Warn("JWT_SECRET is not set, authorization is disabled")
	}

	// Инициализация хендлеров
	origins := cfg.Server.AllowedOrigins()
	handlers := handler.Handlers{
		Task:         handler.NewTaskHandler(taskService, empService, logger),
		Project:      handler.NewProjectHandler(projectService, logger),
		Client:       handler.NewClientHandler(clientService, logger),
		Notification: handler.NewNotificationHandler(notificationService, logger),
		Attendance:   handler.NewAttendanceHandler(attendanceService, logger),
		System:       handler.NewSystemHandler(sqlDB, logger),
		Live:         realtime.NewHandler(hub, origins, logger),
	}

	// Настройка роутера
	router := handler.NewRouter(handlers, verifier, origins, logger)
	httpHandler := router.Setup()

	// Фоновые задачи
	digest := scheduler.NewAttendanceDigest(attendanceService, notificationService, time.Now, logger)
	if err := digest.Start(cfg.Scheduler.AttendanceDigestCron); err != nil {
		logger.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		digest.Stop(ctx)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
