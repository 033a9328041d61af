package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
)

// MemoryAliasStore is an in-memory ports.AliasStore with the same sibling
// semantics as the SQLite store. Safe for concurrent use.
type MemoryAliasStore struct {
	mu      sync.Mutex
	nextID  int64
	records []alias.Record
}

// NewMemoryAliasStore returns a store pre-loaded with records. Records with a
// zero ID are assigned one.
func NewMemoryAliasStore(records ...alias.Record) *MemoryAliasStore {
	s := &MemoryAliasStore{}
	for _, r := range records {
		if r.ID == 0 {
			s.nextID++
			r.ID = s.nextID
		} else if r.ID > s.nextID {
			s.nextID = r.ID
		}
		s.records = append(s.records, r)
	}
	return s
}

func (s *MemoryAliasStore) CreateSchemaIfAbsent(context.Context) error { return nil }

func (s *MemoryAliasStore) Insert(_ context.Context, aliasPattern, pattern string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.records = append(s.records, alias.Record{ID: s.nextID, Alias: aliasPattern, Pattern: pattern})
	return s.nextID, nil
}

func (s *MemoryAliasStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("memory store: delete alias %d: %w", id, ports.ErrNotFound)
}

func (s *MemoryAliasStore) UpdateByID(_ context.Context, id int64, aliasPattern, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records[i].Alias = aliasPattern
			s.records[i].Pattern = pattern
			return nil
		}
	}
	return fmt.Errorf("memory store: update alias %d: %w", id, ports.ErrNotFound)
}

func (s *MemoryAliasStore) ListAll(context.Context) ([]alias.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]alias.Record{}, s.records...), nil
}

func (s *MemoryAliasStore) FindSiblings(_ context.Context, leadingWord string) ([]alias.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	siblings := []alias.Record{}
	for _, r := range s.records {
		if alias.InGroup(r.Alias, leadingWord) {
			siblings = append(siblings, r)
		}
	}
	return siblings, nil
}

func (s *MemoryAliasStore) Close() error { return nil }

var _ ports.AliasStore = (*MemoryAliasStore)(nil)
