package ports

import (
	"context"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
)

// Result is the outcome of a mutation. Message is "Success" on success and
// a human-readable reason otherwise.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AliasManagementService defines the contract for creating, updating,
// deleting and listing stored aliases.
type AliasManagementService interface {
	// Create validates the pair against its sibling group and stores it.
	Create(ctx context.Context, aliasPattern, pattern string) Result

	// Update re-validates the pair against its sibling group, excluding the
	// record being updated, and rewrites it.
	Update(ctx context.Context, id int64, aliasPattern, pattern string) Result

	// Delete removes the record with id.
	Delete(ctx context.Context, id int64) Result

	// List returns every stored record.
	List(ctx context.Context) ([]alias.Record, error)
}
