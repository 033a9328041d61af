package aliasmanagement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"go.uber.org/zap"
)

const successMessage = "Success"

type service struct {
	store  ports.AliasStore
	locks  *groupLocks
	logger *zap.Logger
}

// NewService creates a new alias management service.
// It panics if the aliasStore is nil. A nil logger disables logging.
func NewService(store ports.AliasStore, logger *zap.Logger) ports.AliasManagementService {
	if store == nil {
		panic("aliasStore cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, locks: newGroupLocks(), logger: logger}
}

// Create validates the pair against the aliases sharing its leading word and
// stores it. Validation and insert run under the leading word's lock.
func (s *service) Create(ctx context.Context, aliasPattern, pattern string) ports.Result {
	candidate := alias.Record{Alias: strings.TrimSpace(aliasPattern), Pattern: strings.TrimSpace(pattern)}
	leading := alias.LeadingWord(candidate.Alias)

	unlock := s.locks.lock(leading)
	defer unlock()

	if res, ok := s.validate(ctx, candidate, leading); !ok {
		return res
	}

	id, err := s.store.Insert(ctx, candidate.Alias, ensureScheme(candidate.Pattern))
	if err != nil {
		return s.storeFailure("insert", candidate, err)
	}
	s.logger.Info("alias created", zap.Int64("id", id), zap.String("alias", candidate.Alias))
	return ports.Result{Success: true, Message: successMessage}
}

// Update re-validates the pair against its sibling group, ignoring the record
// being replaced, and rewrites it.
func (s *service) Update(ctx context.Context, id int64, aliasPattern, pattern string) ports.Result {
	if id <= 0 {
		return ports.Result{Message: fmt.Sprintf("Invalid alias id %d", id)}
	}
	candidate := alias.Record{ID: id, Alias: strings.TrimSpace(aliasPattern), Pattern: strings.TrimSpace(pattern)}
	leading := alias.LeadingWord(candidate.Alias)

	unlock := s.locks.lock(leading)
	defer unlock()

	if res, ok := s.validate(ctx, candidate, leading); !ok {
		return res
	}

	if err := s.store.UpdateByID(ctx, id, candidate.Alias, ensureScheme(candidate.Pattern)); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.Result{Message: fmt.Sprintf("No alias with id %d", id)}
		}
		return s.storeFailure("update", candidate, err)
	}
	s.logger.Info("alias updated", zap.Int64("id", id), zap.String("alias", candidate.Alias))
	return ports.Result{Success: true, Message: successMessage}
}

// Delete removes the record with id.
func (s *service) Delete(ctx context.Context, id int64) ports.Result {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.Result{Message: fmt.Sprintf("No alias with id %d", id)}
		}
		s.logger.Error("alias delete failed", zap.Int64("id", id), zap.Error(err))
		return ports.Result{Message: "An error occurred while deleting the alias"}
	}
	s.logger.Info("alias deleted", zap.Int64("id", id))
	return ports.Result{Success: true, Message: successMessage}
}

// List retrieves every stored alias.
func (s *service) List(ctx context.Context) ([]alias.Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	return records, nil
}
