package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anhtong/guild-api/internal/config"
	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/handler"
	"github.com/anhtong/guild-api/internal/jobs"
	"github.com/anhtong/guild-api/internal/middleware"
	"github.com/anhtong/guild-api/internal/repository"
	"github.com/anhtong/guild-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		EventRepo:  eventRepo,
		SignupRepo: signupRepo,
	})

	eventsService := service.NewEventsService(service.EventsServiceConfig{
		EventRepo:  eventRepo,
		TeamRepo:   teamRepo,
		SignupRepo: signupRepo,
	})

	teamsService := service.NewTeamsService(service.TeamsServiceConfig{
		TeamRepo:  teamRepo,
		EventRepo: eventRepo,
		UserRepo:  userRepo,
	})

	usersService := service.NewUsersService(userRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)

	// Seed regional admin accounts on boot when a password is configured.
	if cfg.Seed.AdminPassword != "" {
		seeder := service.NewSeeder(userRepo)
		created, err := seeder.SeedAdmins(ctx, cfg.Seed.AdminPassword)
		if err != nil {
			slog.Error("failed to seed admins", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, username := range created {
			slog.Info("seeded admin account", slog.String("username", username))
		}
	}

	// Initialize background jobs
	if cfg.Jobs.WeeklyEventsEnabled {
		weeklyCreator := jobs.NewWeeklyEventCreator(eventsService, cfg.Jobs.WeeklyEventInterval)
		weeklyCreator.Start()
		defer weeklyCreator.Stop()
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	eventsHandler := handler.NewEventsHandler(eventsService)
	teamsHandler := handler.NewTeamsHandler(teamsService)
	usersHandler := handler.NewUsersHandler(usersService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	// Create router and register routes
	mux := http.NewServeMux()

	authMiddleware := middleware.Auth()
	adminMiddleware := func(h http.Handler) http.Handler {
		return middleware.Chain(h, middleware.Auth(), middleware.RequireAdmin())
	}

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/discord/signup", authHandler.DiscordSignup)
	mux.Handle("GET /auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Event endpoints
	mux.HandleFunc("POST /events/auto-create-weekly", eventsHandler.AutoCreateWeekly)
	mux.HandleFunc("GET /events/current/{region}", eventsHandler.CurrentByRegion)
	mux.Handle("GET /events", authMiddleware(http.HandlerFunc(eventsHandler.List)))
	mux.Handle("GET /events/current", authMiddleware(http.HandlerFunc(eventsHandler.Current)))
	mux.Handle("GET /events/{id}", authMiddleware(http.HandlerFunc(eventsHandler.Get)))
	mux.Handle("POST /events/create", adminMiddleware(http.HandlerFunc(eventsHandler.Create)))
	mux.Handle("POST /events/create-weekly", adminMiddleware(http.HandlerFunc(eventsHandler.CreateWeekly)))

	// Team endpoints
	mux.Handle("GET /teams/event/{eventId}", authMiddleware(http.HandlerFunc(teamsHandler.ListByEvent)))
	mux.Handle("GET /teams/{id}", authMiddleware(http.HandlerFunc(teamsHandler.Get)))
	mux.Handle("POST /teams", adminMiddleware(http.HandlerFunc(teamsHandler.Create)))
	mux.Handle("PUT /teams/{id}", adminMiddleware(http.HandlerFunc(teamsHandler.Update)))
	mux.Handle("DELETE /teams/{id}", adminMiddleware(http.HandlerFunc(teamsHandler.Delete)))
	mux.Handle("POST /teams/{id}/members", adminMiddleware(http.HandlerFunc(teamsHandler.AddMember)))
	mux.Handle("DELETE /teams/{id}/members/{userId}", adminMiddleware(http.HandlerFunc(teamsHandler.RemoveMember)))

	// User endpoints
	mux.Handle("GET /users", adminMiddleware(http.HandlerFunc(usersHandler.List)))
	mux.Handle("GET /users/{id}", authMiddleware(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("PUT /users/{id}", authMiddleware(http.HandlerFunc(usersHandler.Update)))
	mux.Handle("DELETE /users/{id}", adminMiddleware(http.HandlerFunc(usersHandler.Delete)))

	// Scheduled notification endpoints
	mux.HandleFunc("GET /schedule/region/{region}", scheduleHandler.ListByRegion)
	mux.Handle("GET /schedule", adminMiddleware(http.HandlerFunc(scheduleHandler.List)))
	mux.Handle("POST /schedule", adminMiddleware(http.HandlerFunc(scheduleHandler.Create)))
	mux.Handle("PUT /schedule/{id}", adminMiddleware(http.HandlerFunc(scheduleHandler.Update)))
	mux.Handle("DELETE /schedule/{id}", adminMiddleware(http.HandlerFunc(scheduleHandler.Delete)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
