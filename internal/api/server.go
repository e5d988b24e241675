package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"marquee/internal/logging"
	"marquee/internal/store"
)

// Server serves the read API over HTTP.
type Server struct {
	bind    string
	logger  *slog.Logger
	service *MovieService
	dbPath  string

	listener net.Listener
	server   *http.Server
}

// NewServer wires the read API over a store. bind must be a host:port.
func NewServer(bind string, st *store.Store, logger *slog.Logger) (*Server, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, errors.New("bind address is required")
	}
	if st == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		bind:    bind,
		logger:  logger.With(logging.String("component", "api-server")),
		service: NewMovieService(st),
		dbPath:  st.Path(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/movies", srv.handleMovies)
	mux.HandleFunc("/api/movies/", srv.handleMovieSubtree)
	mux.HandleFunc("/api/screenings", srv.handleScreenings)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler exposes the route table (used in tests).
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving and returns immediately. The server shuts down when
// ctx ends.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound address after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", DatabasePath: s.dbPath})
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	opts := listOptionsFromQuery(r)
	payload, err := s.service.ListMovies(r.Context(), opts)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// handleMovieSubtree serves /api/movies/{id} and /api/movies/{id}/screenings.
func (s *Server) handleMovieSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/movies/")
	idStr, tail, _ := strings.Cut(rest, "/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		s.writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	switch tail {
	case "":
		movie, err := s.service.GetMovie(r.Context(), id)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if movie == nil {
			s.writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		s.writeJSON(w, http.StatusOK, movie)
	case "screenings":
		opts := listOptionsFromQuery(r)
		opts.MovieID = id
		payload, err := s.service.ListScreenings(r.Context(), opts)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, payload)
	default:
		s.writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleScreenings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	opts := listOptionsFromQuery(r)
	payload, err := s.service.ListScreenings(r.Context(), opts)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func listOptionsFromQuery(r *http.Request) ListOptions {
	query := r.URL.Query()
	opts := ListOptions{
		Cinema:   strings.TrimSpace(query.Get("cinema")),
		FromDate: strings.TrimSpace(query.Get("from")),
		ToDate:   strings.TrimSpace(query.Get("to")),
	}
	opts.Days, _ = strconv.Atoi(query.Get("days"))
	opts.Limit, _ = strconv.Atoi(query.Get("limit"))
	opts.Offset, _ = strconv.Atoi(query.Get("offset"))
	if value := strings.TrimSpace(query.Get("movie_id")); value != "" {
		opts.MovieID, _ = strconv.ParseInt(value, 10, 64)
	}
	return opts
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	encoder := json.NewEncoder(w)
	// Responses carry Chinese text; keep it readable on the wire.
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
