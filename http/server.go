// Package http provides the HTTP surface over the outlet store and the
// query resolver.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wkleong/outletmap"
	"golang.org/x/time/rate"
)

// ShutdownTimeout is the grace period for in-flight requests on Close.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP server exposing outlet reads and the chat query
// endpoint. Both are thin adapters: the store and the resolver carry all
// semantics.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router
	logger *slog.Logger

	// Addr is the bind address, e.g. ":8080". Set before Open.
	Addr string

	// Outlets serves the read path.
	Outlets outletmap.OutletService

	// Resolver answers chat queries over the current outlet snapshot.
	Resolver *outletmap.Resolver

	// chatLimiter bounds the chat endpoint, which may reach a paid
	// generative backend.
	chatLimiter *rate.Limiter
}

// NewServer creates a new Server with routes registered.
func NewServer(logger *slog.Logger, chatRPS float64) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:      chi.NewRouter(),
		logger:      logger,
		chatLimiter: rate.NewLimiter(rate.Limit(chatRPS), int(chatRPS)+1),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors)

	s.router.Get("/", s.handleRoot)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/outlets", s.handleListOutlets)
		r.Get("/outlets/{id}", s.handleGetOutlet)
		r.Post("/chat/query", s.handleChatQuery)
	})

	return s
}

// ServeHTTP dispatches to the router. Exposed so tests can drive the
// server without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe binds the listener and serves until Close is called.
// Returns nil on graceful shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.server = &http.Server{Handler: s.router}

	s.logger.Info("http server listening", "addr", ln.Addr().String())

	if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "outletmap API"})
}

func (s *Server) handleListOutlets(w http.ResponseWriter, r *http.Request) {
	filter := outletmap.OutletFilter{}
	if location := r.URL.Query().Get("location"); location != "" {
		filter.Location = &location
	}

	outlets, err := s.Outlets.FindOutlets(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if outlets == nil {
		outlets = []*outletmap.Outlet{}
	}

	writeJSON(w, http.StatusOK, outlets)
}

func (s *Server) handleGetOutlet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, outletmap.Errorf(outletmap.EINVALID, "invalid outlet ID"))
		return
	}

	outlet, err := s.Outlets.FindOutletByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outlet)
}

// chatQueryRequest is the chat endpoint's request body.
type chatQueryRequest struct {
	Message string `json:"message"`
}

// chatQueryResponse is the chat endpoint's response body.
type chatQueryResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChatQuery(w http.ResponseWriter, r *http.Request) {
	if !s.chatLimiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests. Please slow down."})
		return
	}

	var req chatQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, outletmap.Errorf(outletmap.EINVALID, "invalid request body"))
		return
	}

	// Each query reads its own snapshot; the resolver never mutates it.
	outlets, err := s.Outlets.FindOutlets(r.Context(), outletmap.OutletFilter{})
	if err != nil {
		writeError(w, err)
		return
	}

	answer := s.Resolver.Answer(r.Context(), req.Message, outlets)
	writeJSON(w, http.StatusOK, chatQueryResponse{Response: answer})
}

// cors applies the permissive CORS policy the frontend expects.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// codeStatus maps application error codes to HTTP status codes.
var codeStatus = map[string]int{
	outletmap.ECONFLICT:    http.StatusConflict,
	outletmap.EINVALID:     http.StatusBadRequest,
	outletmap.ENOTFOUND:    http.StatusNotFound,
	outletmap.ETIMEOUT:     http.StatusGatewayTimeout,
	outletmap.EUNAVAILABLE: http.StatusServiceUnavailable,
	outletmap.EINTERNAL:    http.StatusInternalServerError,
}

func writeError(w http.ResponseWriter, err error) {
	status, ok := codeStatus[outletmap.ErrorCode(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": outletmap.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
