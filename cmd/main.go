// @title Tennis Tracker Backend API
// @version 1.0
// @description Backend API for recording tennis matches and per-opponent statistics

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"TENNIS-TRACKER_BACK-END/internal/config"
	"TENNIS-TRACKER_BACK-END/internal/handlers"
	"TENNIS-TRACKER_BACK-END/internal/middleware"
	"TENNIS-TRACKER_BACK-END/internal/migrations"
	"TENNIS-TRACKER_BACK-END/internal/repository"
	"TENNIS-TRACKER_BACK-END/internal/routes"
)

func main() {
	// Refuses to start without JWT_SECRET: serving traffic without session
	// integrity is worse than not serving at all.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := cfg.GetDSN()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "tennis-tracker-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Ping and migrate at boot
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
		if err := migrations.Run(ctx, dsn); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	// --- Repositories and handlers ---

	userRepo := repository.NewPostgresUserRepository(pool)
	matchRepo := repository.NewPostgresMatchRepository(pool)

	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	matchesHandler := handlers.NewMatchesHandler(matchRepo)
	opponentsHandler := handlers.NewOpponentsHandler(matchRepo)
	healthHandler := handlers.NewHealthHandler(pool)

	// Setup all routes
	routes.SetupRoutes(authHandler, matchesHandler, opponentsHandler, healthHandler, cfg)

	// --- HTTP Server + Graceful Shutdown ---

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with request logging and CORS
	handler := c.Handler(middleware.RequestLogger(http.DefaultServeMux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
