package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/squareone-app/backend/internal/auth"
	"github.com/squareone-app/backend/internal/config"
	"github.com/squareone-app/backend/internal/middleware"
	"github.com/squareone-app/backend/internal/observability"
	"github.com/squareone-app/backend/internal/service"
	"github.com/squareone-app/backend/internal/storage/sqlite"
	"github.com/squareone-app/backend/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.SQLiteDBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)
	metrics := observability.NewMetrics()

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	service.NewAuthService(authenticator, jwtManager).Routes(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(jwtManager))
	service.NewLedgerService(store).Routes(protected)

	handler := middleware.Logging(middleware.CORS(metrics.Instrument("api", router)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Server starting", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
