package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"

	"codeberg.org/snonux/phoneword/internal/dictionary"
	"codeberg.org/snonux/phoneword/internal/generator"
)

// DefaultAddress matches the address the frontend expects in development
const DefaultAddress = "127.0.0.1:9090"

// Config holds the HTTP settings
type Config struct {
	Address        string
	AllowedOrigins []string
}

// HealthResult is the body of GET /api/health
type HealthResult struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Uptime  string `json:"uptime"`
}

// Server serves generated words for a loaded dictionary
type Server struct {
	dict    *dictionary.Dictionary
	cfg     Config
	logger  *log.Logger
	started time.Time
}

// New creates a server. The dictionary must be fully loaded; it is shared
// read-only by all requests.
func New(dict *dictionary.Dictionary, cfg Config, logger *log.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if logger == nil {
		logger = log.New(log.Writer(), "", log.LstdFlags)
	}
	return &Server{
		dict:    dict,
		cfg:     cfg,
		logger:  logger,
		started: time.Now(),
	}
}

// Handler returns the routed handler wrapped in the CORS policy
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/{number}", s.handleWords)
	mux.HandleFunc("GET /api/{number}", s.handleWords)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpSrv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Serve(ln)
	}()

	s.logger.Printf("Serving %d dictionary entries on http://%s", s.dict.Entries(), ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Printf("Stopping..")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	// Numbers must fit an unsigned 32-bit integer
	if _, err := strconv.ParseUint(number, 10, 32); err != nil {
		s.logger.Printf("Bad request: %s", number)
		s.writeJSON(w, http.StatusBadRequest, []string{})
		return
	}

	words, err := generator.Generate(number, s.dict.Text())
	if err != nil {
		s.logger.Printf("Failed to generate: %s, error: %v", number, err)
		s.writeJSON(w, http.StatusInternalServerError, []string{})
		return
	}

	s.logger.Printf("Requested: %s", number)
	s.writeJSON(w, http.StatusOK, words)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResult{
		Status:  "ok",
		Entries: s.dict.Entries(),
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("Failed to write response: %v", err)
	}
}
