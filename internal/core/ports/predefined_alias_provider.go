package ports

import "github.com/AntonioJCosta/nickurl/internal/core/domain/alias"

// PredefinedAliasProvider defines the interface for sourcing aliases
// from a predefined list, like a seed file.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases loads alias records from a predefined source.
	// Returned records have no ID.
	GetPredefinedAliases() ([]alias.Record, error)
}
