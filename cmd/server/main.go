package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"socialcopilot/internal/common"
	"socialcopilot/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	app, err := di.InitializeApplication(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer func() { _ = app.Logger.Sync() }()

	if !common.JWTSecretConfigured() {
		app.Logger.Warn("JWT_SECRET is not set, session tokens are signed with an empty key")
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Public auth endpoints
	api.HandleFunc("/auth/signup", app.AuthHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", app.AuthHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", app.AuthHandler.Logout).Methods("POST")

	// Everything else requires a valid session
	protected := api.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware)

	protected.HandleFunc("/auth/me", app.AuthHandler.Me).Methods("GET")

	protected.HandleFunc("/generate", app.GenerationHandler.Generate).Methods("POST")

	protected.HandleFunc("/posts", app.PostHandler.List).Methods("GET")
	protected.HandleFunc("/posts", app.PostHandler.Create).Methods("POST")
	protected.HandleFunc("/posts/{id}/status", app.PostHandler.UpdateStatus).Methods("PATCH")
	protected.HandleFunc("/posts/{id}/metrics", app.PostHandler.UpdateMetrics).Methods("PATCH")
	protected.HandleFunc("/posts/{id}", app.PostHandler.Delete).Methods("DELETE")

	protected.HandleFunc("/profile", app.ProfileHandler.Get).Methods("GET")
	protected.HandleFunc("/profile", app.ProfileHandler.Save).Methods("POST")

	protected.HandleFunc("/templates", app.TemplateHandler.List).Methods("GET")
	protected.HandleFunc("/templates", app.TemplateHandler.Create).Methods("POST")
	protected.HandleFunc("/templates/{id}", app.TemplateHandler.Delete).Methods("DELETE")

	addr := app.Config.Server.Host + ":" + app.Config.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	app.Logger.Info("server listening",
		zap.String("addr", addr),
		zap.String("environment", app.Config.Server.Environment),
		zap.String("llm_provider", app.Config.LLM.Provider),
	)
	if err := server.ListenAndServe(); err != nil {
		app.Logger.Fatal("server stopped", zap.Error(err))
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
