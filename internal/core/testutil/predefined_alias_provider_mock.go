package testutil

import (
	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
)

// MockPredefinedAliasProvider is a mock implementation of ports.PredefinedAliasProvider.
type MockPredefinedAliasProvider struct {
	GetPredefinedAliasesFunc func() ([]alias.Record, error)
}

func (m *MockPredefinedAliasProvider) GetPredefinedAliases() ([]alias.Record, error) {
	if m.GetPredefinedAliasesFunc != nil {
		return m.GetPredefinedAliasesFunc()
	}
	return nil, nil // Default behavior
}

var _ ports.PredefinedAliasProvider = (*MockPredefinedAliasProvider)(nil)
