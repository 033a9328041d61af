package ports

import "context"

// Outcome describes how a query was turned into a URL.
type Outcome string

const (
	// OutcomeResolved means a sibling with a matching token count was used.
	OutcomeResolved Outcome = "resolved"
	// OutcomeFallback means the sibling group's catch-all alias was used.
	OutcomeFallback Outcome = "fallback"
	// OutcomeDefault means the query fell through to the default search URL.
	OutcomeDefault Outcome = "default"
)

// Resolution is a resolved URL together with how it was obtained.
type Resolution struct {
	URL     string
	Outcome Outcome
	// AliasID is the id of the alias used, or zero for OutcomeDefault.
	AliasID int64
}

// AliasResolutionService maps free-text queries to destination URLs.
type AliasResolutionService interface {
	// Resolve returns the destination URL for raw. It never fails; unresolvable
	// queries degrade to the default search URL.
	Resolve(ctx context.Context, raw string) string

	// Lookup is Resolve with the resolution details attached.
	Lookup(ctx context.Context, raw string) Resolution
}
