package ports

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
)

// Error kinds reported by AliasStore implementations. Implementations wrap
// them with operation context; match with errors.Is.
var (
	ErrSchema              = errors.New("alias store schema error")
	ErrConstraintViolation = errors.New("alias store constraint violation")
	ErrNotFound            = errors.New("alias not found")
)

/*
AliasStore defines the persistence contract for alias records. This is a
driven port, implemented by a repository adapter.

Alias and pattern are opaque strings to the store; token structure is
interpreted only by the validator and resolver. Implementations do not
validate: callers must hold their own critical section around
FindSiblings and the subsequent write.
*/
type AliasStore interface {
	// CreateSchemaIfAbsent creates the alias table if it does not exist.
	CreateSchemaIfAbsent(ctx context.Context) error

	// Insert stores a new record and returns its id.
	Insert(ctx context.Context, aliasPattern, pattern string) (int64, error)

	// DeleteByID removes the record with id. It returns ErrNotFound if no
	// such record exists.
	DeleteByID(ctx context.Context, id int64) error

	// UpdateByID replaces the alias and pattern of the record with id. It
	// returns ErrNotFound if no such record exists.
	UpdateByID(ctx context.Context, id int64, aliasPattern, pattern string) error

	// ListAll returns every record ordered by id.
	ListAll(ctx context.Context) ([]alias.Record, error)

	// FindSiblings returns the records whose alias is exactly leadingWord or
	// starts with leadingWord followed by a space, ordered by id.
	FindSiblings(ctx context.Context, leadingWord string) ([]alias.Record, error)

	// Close releases the underlying connection.
	Close() error
}
