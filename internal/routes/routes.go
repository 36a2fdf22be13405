package routes

import (
	"net/http"

	"TENNIS-TRACKER_BACK-END/internal/config"
	"TENNIS-TRACKER_BACK-END/internal/handlers"
	"TENNIS-TRACKER_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	matchesHandler *handlers.MatchesHandler,
	opponentsHandler *handlers.OpponentsHandler,
	healthHandler *handlers.HealthHandler,
	cfg *config.Config,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/signup", authHandler.Signup)
	http.HandleFunc("/login", authHandler.Login)
	http.HandleFunc("/logout", authHandler.Logout)
	http.HandleFunc("/me", middleware.AuthMiddleware(authHandler.Me, &cfg.JWT))

	// Match routes (collection and detail share a dispatcher)
	http.HandleFunc("/matches", middleware.AuthMiddleware(matchesHandler.Matches, &cfg.JWT))
	http.HandleFunc("/matches/", middleware.AuthMiddleware(matchesHandler.Matches, &cfg.JWT))

	// Opponent statistics
	http.HandleFunc("/opponents/summary", middleware.AuthMiddleware(opponentsHandler.Summary, &cfg.JWT))

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Tennis tracker backend is running."))
}
