// Package httpapi exposes alias search and management over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AntonioJCosta/nickurl/internal/coalesce"
	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"go.uber.org/zap"
)

const listMessage = "No query specified; returning all aliases"

// reply is a rendered response, cached by the coalescer and replayed to
// every caller sharing its key.
type reply struct {
	status   int
	location string
	body     any
}

type aliasRequest struct {
	Alias   string `json:"alias"`
	Pattern string `json:"pattern"`
}

type listResponse struct {
	Aliases []alias.Record `json:"aliases"`
	Message string         `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server routes HTTP requests to the resolution and management services.
type Server struct {
	resolver  ports.AliasResolutionService
	manager   ports.AliasManagementService
	coalescer *coalesce.Coalescer[reply]
	logger    *zap.Logger
}

// NewServer creates a Server. It panics if resolver or manager is nil. A
// non-positive window selects coalesce.DefaultWindow; a nil logger disables
// logging.
func NewServer(
	resolver ports.AliasResolutionService,
	manager ports.AliasManagementService,
	window time.Duration,
	logger *zap.Logger,
) *Server {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if manager == nil {
		panic("manager cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		resolver:  resolver,
		manager:   manager,
		coalescer: coalesce.New[reply](window),
		logger:    logger,
	}
}

// Handler returns the routed handler wrapped in request-id, access-log and
// panic-recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("POST /alias", s.handleCreate)
	mux.HandleFunc("PUT /alias/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /alias/{id}", s.handleDelete)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s.withRequestID(s.withAccessLog(s.withRecovery(mux)))
}

// SweepCache drops stale coalescer entries and returns how many were removed.
func (s *Server) SweepCache() int {
	return s.coalescer.Sweep()
}

// RunSweeper calls SweepCache every interval until ctx is done. A
// non-positive interval returns immediately.
func (s *Server) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.SweepCache(); n > 0 {
				s.logger.Debug("swept coalescer cache", zap.Int("removed", n))
			}
		}
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	ctx := context.WithoutCancel(r.Context())

	rep := s.coalescer.Coalesce("search_"+q, func() reply {
		if q == "" {
			records, err := s.manager.List(ctx)
			if err != nil {
				s.logger.Error("listing aliases failed", zap.Error(err))
				return reply{status: http.StatusInternalServerError, body: errorResponse{Error: "could not list aliases"}}
			}
			return reply{status: http.StatusOK, body: listResponse{Aliases: records, Message: listMessage}}
		}
		res := s.resolver.Lookup(ctx, q)
		s.logger.Info("redirecting query",
			zap.String("query", q),
			zap.String("url", res.URL),
			zap.String("outcome", string(res.Outcome)))
		return reply{status: http.StatusFound, location: res.URL}
	})
	s.write(w, r, rep)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req aliasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad json"})
		return
	}
	ctx := context.WithoutCancel(r.Context())

	rep := s.coalescer.Coalesce("add_alias_"+req.Alias, func() reply {
		return reply{status: http.StatusOK, body: s.manager.Create(ctx, req.Alias, req.Pattern)}
	})
	s.write(w, r, rep)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	var req aliasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad json"})
		return
	}
	ctx := context.WithoutCancel(r.Context())

	key := fmt.Sprintf("update_alias_%d_%q_%q", id, req.Alias, req.Pattern)
	rep := s.coalescer.Coalesce(key, func() reply {
		return reply{status: http.StatusOK, body: s.manager.Update(ctx, id, req.Alias, req.Pattern)}
	})
	s.write(w, r, rep)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	ctx := context.WithoutCancel(r.Context())

	rep := s.coalescer.Coalesce(fmt.Sprintf("remove_alias_%d", id), func() reply {
		return reply{status: http.StatusOK, body: s.manager.Delete(ctx, id)}
	})
	s.write(w, r, rep)
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, rep reply) {
	if rep.location != "" {
		http.Redirect(w, r, rep.location, rep.status)
		return
	}
	writeJSON(w, rep.status, rep.body)
}

func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid alias id " + strconv.Quote(raw))
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
