package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/nickurl/internal/core/ports"
)

// MockURLOpener is a mock implementation of ports.URLOpener.
type MockURLOpener struct {
	OpenFunc func(ctx context.Context, url string) error
}

// Open calls the mock OpenFunc.
func (m *MockURLOpener) Open(ctx context.Context, url string) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, url)
	}
	return errors.New("MockURLOpener.OpenFunc not implemented")
}

var _ ports.URLOpener = (*MockURLOpener)(nil)
