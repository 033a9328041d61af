package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
)

// MockAliasManagementService is a mock implementation of ports.AliasManagementService.
type MockAliasManagementService struct {
	CreateFunc func(ctx context.Context, aliasPattern, pattern string) ports.Result
	UpdateFunc func(ctx context.Context, id int64, aliasPattern, pattern string) ports.Result
	DeleteFunc func(ctx context.Context, id int64) ports.Result
	ListFunc   func(ctx context.Context) ([]alias.Record, error)
}

func (m *MockAliasManagementService) Create(ctx context.Context, aliasPattern, pattern string) ports.Result {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, aliasPattern, pattern)
	}
	return ports.Result{Message: "MockAliasManagementService: CreateFunc not implemented"}
}

func (m *MockAliasManagementService) Update(ctx context.Context, id int64, aliasPattern, pattern string) ports.Result {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, aliasPattern, pattern)
	}
	return ports.Result{Message: "MockAliasManagementService: UpdateFunc not implemented"}
}

func (m *MockAliasManagementService) Delete(ctx context.Context, id int64) ports.Result {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return ports.Result{Message: "MockAliasManagementService: DeleteFunc not implemented"}
}

func (m *MockAliasManagementService) List(ctx context.Context) ([]alias.Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("MockAliasManagementService: ListFunc not implemented")
}

var _ ports.AliasManagementService = (*MockAliasManagementService)(nil)
