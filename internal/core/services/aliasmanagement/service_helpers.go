package aliasmanagement

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"github.com/AntonioJCosta/nickurl/internal/core/services/validation"
	"go.uber.org/zap"
)

// validate loads the sibling group of leading and checks candidate against
// it. The caller must hold the group's lock.
func (s *service) validate(ctx context.Context, candidate alias.Record, leading string) (ports.Result, bool) {
	var siblings []alias.Record
	if leading != "" {
		var err error
		siblings, err = s.store.FindSiblings(ctx, leading)
		if err != nil {
			return s.storeFailure("load siblings", candidate, err), false
		}
	}

	if err := validation.Validate(candidate, siblings); err != nil {
		var rejection *validation.Rejection
		if errors.As(err, &rejection) {
			s.logger.Debug("alias rejected",
				zap.String("alias", candidate.Alias),
				zap.Stringer("rule", rejection.Kind))
		}
		return ports.Result{Message: err.Error()}, false
	}
	return ports.Result{}, true
}

func (s *service) storeFailure(op string, candidate alias.Record, err error) ports.Result {
	s.logger.Error("alias store operation failed",
		zap.String("op", op),
		zap.Int64("id", candidate.ID),
		zap.String("alias", candidate.Alias),
		zap.Error(err))
	if errors.Is(err, ports.ErrConstraintViolation) {
		return ports.Result{Message: "The alias could not be saved because it violates a storage constraint"}
	}
	return ports.Result{Message: "An error occurred while saving the alias"}
}

// ensureScheme prefixes https:// to patterns that carry no scheme.
func ensureScheme(pattern string) string {
	if strings.Contains(pattern, "://") {
		return pattern
	}
	return "https://" + pattern
}

// groupLocks hands out one mutex per leading word. Mutexes are never
// released; their number is bounded by the distinct leading words seen.
type groupLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGroupLocks() *groupLocks {
	return &groupLocks{locks: make(map[string]*sync.Mutex)}
}

func (g *groupLocks) lock(word string) (unlock func()) {
	g.mu.Lock()
	m, ok := g.locks[word]
	if !ok {
		m = &sync.Mutex{}
		g.locks[word] = m
	}
	g.mu.Unlock()

	m.Lock()
	return m.Unlock
}
