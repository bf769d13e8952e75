// Package server provides the HTTP REST API for the decision matrix
// service: auth, data sync, vote submission, aggregated results, report
// export and the AI assistant.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edivaldojuniordev/matrizcognis/internal/assistant"
	"github.com/edivaldojuniordev/matrizcognis/internal/config"
	"github.com/edivaldojuniordev/matrizcognis/internal/db"
	"github.com/edivaldojuniordev/matrizcognis/internal/llm"
	"github.com/edivaldojuniordev/matrizcognis/internal/server/middleware"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	GeminiKey   string
	RosterPath  string
}

// Server is the HTTP server and its wired services.
type Server struct {
	httpServer  *http.Server
	store       Store
	roster      *config.Roster
	jwtService  *JWTService
	authHandler *AuthHandler
	assistant   AssistantService
	validator   *validator.Validate
	llmClient   llm.Client
	closeStore  func()
}

// New builds a production server: connects Postgres, ensures the schema,
// bootstraps the initial admin, and wires the Gemini-backed assistant
// when an API key is configured.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	roster, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		database.Close()
		return nil, err
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, err
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, err
	}

	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			database.Close()
			return nil, fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
		}
		hash, err := passwordConfig.HashPassword(password)
		if err != nil {
			database.Close()
			return nil, err
		}
		if err := database.BootstrapAdmin(ctx, "Administrador Chefe", email, hash); err != nil {
			database.Close()
			return nil, err
		}
	}

	var (
		asst      AssistantService
		llmClient llm.Client
	)
	if cfg.GeminiKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create assistant client: %w", err)
		}
		llmClient = client
		asst = assistant.New(client, roster.OfficialMembers(), roster.Criteria)
	}

	s := newServer(database, roster, NewJWTService(jwtConfig), passwordConfig, asst)
	s.llmClient = llmClient
	s.closeStore = database.Close
	s.httpServer.Addr = fmt.Sprintf(":%d", cfg.Port)
	return s, nil
}

// newServer wires handlers and routes over injected dependencies.
// Tests call this directly with fakes.
func newServer(store Store, roster *config.Roster, jwtService *JWTService, passwordConfig *config.PasswordConfig, asst AssistantService) *Server {
	s := &Server{
		store:      store,
		roster:     roster,
		jwtService: jwtService,
		assistant:  asst,
		validator:  validator.New(),
	}
	s.authHandler = NewAuthHandler(NewUserService(store, passwordConfig), jwtService)

	auth := middleware.Auth(jwtService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	mux.Handle("POST /api/admin/register", auth(middleware.RequireAdmin(http.HandlerFunc(s.authHandler.RegisterAdmin))))

	mux.Handle("GET /api/data", auth(http.HandlerFunc(s.handleSnapshot)))
	mux.Handle("GET /api/data/{key}", auth(http.HandlerFunc(s.handleGetData)))
	mux.Handle("POST /api/data/{key}", auth(http.HandlerFunc(s.handleSetData)))

	mux.Handle("POST /api/votes", auth(http.HandlerFunc(s.handleSubmitVote)))
	mux.Handle("DELETE /api/votes", auth(http.HandlerFunc(s.handleClearVote)))
	mux.Handle("GET /api/results", auth(http.HandlerFunc(s.handleResults)))
	mux.Handle("GET /api/report", auth(http.HandlerFunc(s.handleReport)))
	mux.Handle("GET /api/report/doc", auth(http.HandlerFunc(s.handleReportDoc)))

	mux.Handle("POST /api/assistant/chat", auth(http.HandlerFunc(s.handleAssistantChat)))
	mux.Handle("POST /api/assistant/score", auth(http.HandlerFunc(s.handleAssistantScore)))
	mux.Handle("POST /api/assistant/analyze", auth(http.HandlerFunc(s.handleAssistantAnalyze)))

	s.httpServer = &http.Server{
		Handler:      withLogging(withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler exposes the routed handler stack, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func jsonError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
