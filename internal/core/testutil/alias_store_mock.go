package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
)

// MockAliasStore is a mock implementation of ports.AliasStore for testing.
type MockAliasStore struct {
	CreateSchemaIfAbsentFunc func(ctx context.Context) error
	InsertFunc               func(ctx context.Context, aliasPattern, pattern string) (int64, error)
	DeleteByIDFunc           func(ctx context.Context, id int64) error
	UpdateByIDFunc           func(ctx context.Context, id int64, aliasPattern, pattern string) error
	ListAllFunc              func(ctx context.Context) ([]alias.Record, error)
	FindSiblingsFunc         func(ctx context.Context, leadingWord string) ([]alias.Record, error)
	CloseFunc                func() error
}

func (m *MockAliasStore) CreateSchemaIfAbsent(ctx context.Context) error {
	if m.CreateSchemaIfAbsentFunc != nil {
		return m.CreateSchemaIfAbsentFunc(ctx)
	}
	return nil
}

func (m *MockAliasStore) Insert(ctx context.Context, aliasPattern, pattern string) (int64, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, aliasPattern, pattern)
	}
	return 0, errors.New("MockAliasStore: InsertFunc not implemented")
}

func (m *MockAliasStore) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return errors.New("MockAliasStore: DeleteByIDFunc not implemented")
}

func (m *MockAliasStore) UpdateByID(ctx context.Context, id int64, aliasPattern, pattern string) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, aliasPattern, pattern)
	}
	return errors.New("MockAliasStore: UpdateByIDFunc not implemented")
}

func (m *MockAliasStore) ListAll(ctx context.Context) ([]alias.Record, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("MockAliasStore: ListAllFunc not implemented")
}

func (m *MockAliasStore) FindSiblings(ctx context.Context, leadingWord string) ([]alias.Record, error) {
	if m.FindSiblingsFunc != nil {
		return m.FindSiblingsFunc(ctx, leadingWord)
	}
	return nil, nil // No siblings by default
}

func (m *MockAliasStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.AliasStore = (*MockAliasStore)(nil)
