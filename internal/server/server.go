// Package server provides the HTTP REST API for the CV tailor.
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

	"github.com/jonathan/cv-tailor/internal/gaps"
	"github.com/jonathan/cv-tailor/internal/letter"
	"github.com/jonathan/cv-tailor/internal/ollama"
)

// Config holds server configuration.
type Config struct {
	Addr        string
	Ollama      ollama.Config
	DatabaseURL string
	UseBrowser  bool
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	llm         ollama.Client
	analyzer    *gaps.Analyzer
	letters     *letter.Generator
	model       string
	databaseURL string
	useBrowser  bool
}

// New creates a server instance. The Ollama backend is only contacted when
// a gap analysis endpoint is hit, so construction never fails on it.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = ollama.DefaultConfig().Model
	}
	llm := ollama.NewClient(cfg.Ollama)

	s := &Server{
		llm:         llm,
		analyzer:    gaps.NewAnalyzer(llm),
		letters:     letter.NewGenerator(),
		model:       cfg.Ollama.Model,
		databaseURL: cfg.DatabaseURL,
		useBrowser:  cfg.UseBrowser,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.router())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // gap analyses wait on the model
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("POST /api/tailor", s.handleTailor)
	mux.HandleFunc("POST /api/gaps", s.handleGaps)
	mux.HandleFunc("POST /api/letter", s.handleLetter)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Start begins listening and blocks until an interrupt, then shuts down
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
	return nil
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth reports server and model-backend health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	backend := "up"
	if err := s.llm.Ping(r.Context()); err != nil {
		backend = "down"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "ollama": backend})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
