// Package server provides the HTTP REST API for the innovation ecosystem
// directory.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/innovation-zone/ecosystem-api/internal/config"
	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/llm"
	"github.com/innovation-zone/ecosystem-api/internal/pathway"
	"github.com/innovation-zone/ecosystem-api/internal/server/middleware"
	"github.com/innovation-zone/ecosystem-api/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	llmClient      llm.Client
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	userService    *UserService
	authHandler    *AuthHandler
	pathwayService *PathwayService
	allowedOrigin  string
}

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	GeminiAPIKey  string
	AllowedOrigin string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:            database,
		allowedOrigin: cfg.AllowedOrigin,
	}
	if s.allowedOrigin == "" {
		s.allowedOrigin = "*"
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// AI recommendations stay disabled when no key is configured; the
	// pathway service falls back to the deterministic matcher.
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.llmClient = client
	} else {
		log.Println("GEMINI_API_KEY not set, AI recommendations disabled")
	}
	s.pathwayService = NewPathwayService(database, pathway.NewAdvisor(s.llmClient))

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI recommendation calls can run long
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Organization endpoints
	mux.HandleFunc("GET /api/organizations", s.handleListOrganizations)
	mux.HandleFunc("POST /api/organizations", s.handleCreateOrganization)
	mux.HandleFunc("GET /api/organizations/{id}", s.handleGetOrganization)
	mux.HandleFunc("PUT /api/organizations/{id}", s.handleUpdateOrganization)
	mux.HandleFunc("DELETE /api/organizations/{id}", s.handleDeleteOrganization)

	// Program endpoints
	mux.HandleFunc("GET /api/programs", s.handleListPrograms)
	mux.HandleFunc("POST /api/programs", s.handleCreateProgram)
	mux.HandleFunc("POST /api/programs/categorize", s.handleCategorizePrograms)
	mux.HandleFunc("GET /api/programs/{id}", s.handleGetProgram)
	mux.HandleFunc("PUT /api/programs/{id}", s.handleUpdateProgram)
	mux.HandleFunc("DELETE /api/programs/{id}", s.handleDeleteProgram)
	mux.HandleFunc("POST /api/programs/{id}/categorize", s.handleCategorizeProgram)

	// Event endpoints
	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)

	// Grant endpoints
	mux.HandleFunc("GET /api/grants", s.handleListGrants)
	mux.HandleFunc("POST /api/grants", s.handleCreateGrant)
	mux.HandleFunc("GET /api/grants/{id}", s.handleGetGrant)
	mux.HandleFunc("PUT /api/grants/{id}", s.handleUpdateGrant)
	mux.HandleFunc("DELETE /api/grants/{id}", s.handleDeleteGrant)

	// Mentor endpoints
	mux.HandleFunc("GET /api/mentors", s.handleListMentors)
	mux.HandleFunc("POST /api/mentors", s.handleCreateMentor)
	mux.HandleFunc("GET /api/mentors/{id}", s.handleGetMentor)
	mux.HandleFunc("PUT /api/mentors/{id}", s.handleUpdateMentor)
	mux.HandleFunc("DELETE /api/mentors/{id}", s.handleDeleteMentor)

	// Pathway endpoints
	mux.HandleFunc("GET /api/pathways", s.handleListPathways)
	mux.HandleFunc("POST /api/pathways", s.handleCreatePathway)
	mux.HandleFunc("POST /api/pathways/query", s.handlePathwayQuery)
	mux.HandleFunc("GET /api/pathways/{id}", s.handleGetPathway)
	mux.HandleFunc("PUT /api/pathways/{id}", s.handleUpdatePathway)
	mux.HandleFunc("DELETE /api/pathways/{id}", s.handleDeletePathway)

	// Search log endpoints
	mux.HandleFunc("POST /api/search/log", s.handleLogSearch)
	mux.HandleFunc("GET /api/search/logs", s.handleListSearchLogs)

	// Auth endpoints
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)

	// Authenticated user endpoints
	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("GET /api/users/me", requireAuth(http.HandlerFunc(s.handleGetCurrentUser)))
	mux.Handle("PUT /api/users/me", requireAuth(http.HandlerFunc(s.handleUpdateCurrentUser)))
	mux.Handle("PUT /api/users/me/password", requireAuth(http.HandlerFunc(s.handleUpdatePassword)))

	return mux
}

// Start begins listening for requests
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleRoot returns basic API identification
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Innovation Zone Ecosystem API",
		"version": "1.0.0",
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is client-controlled.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
