package resolution

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/domain/query"
	"github.com/AntonioJCosta/nickurl/internal/core/domain/token"
	"github.com/AntonioJCosta/nickurl/internal/core/ports"
	"go.uber.org/zap"
)

// DefaultSearchURL is used when no search URL is configured.
const DefaultSearchURL = "https://www.google.com/search"

// ErrFormat reports a pattern that needs more query words than were given.
var ErrFormat = errors.New("not enough query words for pattern")

type service struct {
	store     ports.AliasStore
	searchURL string
	logger    *zap.Logger
}

// NewService creates a new resolution service.
// It panics if store is nil. An empty searchURL selects DefaultSearchURL and
// a nil logger disables logging.
func NewService(store ports.AliasStore, searchURL string, logger *zap.Logger) ports.AliasResolutionService {
	if store == nil {
		panic("aliasStore cannot be nil")
	}
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, searchURL: searchURL, logger: logger}
}

// Resolve implements ports.AliasResolutionService.
func (s *service) Resolve(ctx context.Context, raw string) string {
	return s.Lookup(ctx, raw).URL
}

// Lookup implements ports.AliasResolutionService.
func (s *service) Lookup(ctx context.Context, raw string) ports.Resolution {
	q := query.Parse(raw)
	if q.Empty() {
		return s.fallbackToSearch(nil)
	}

	siblings, err := s.store.FindSiblings(ctx, q.FirstWord)
	if err != nil {
		s.logger.Error("loading sibling aliases failed, using default search",
			zap.String("leading_word", q.FirstWord), zap.Error(err))
		return s.fallbackToSearch(q.Words())
	}
	if len(siblings) == 0 {
		return s.fallbackToSearch(q.Words())
	}

	selected, outcome, ok := selectAlias(siblings, len(q.Rest))
	if !ok {
		return s.fallbackToSearch(q.Words())
	}

	resolved, err := substitute(selected.Pattern, q.Rest)
	if err != nil {
		s.logger.Warn("alias pattern could not be filled, using default search",
			zap.Int64("alias_id", selected.ID),
			zap.String("alias", selected.Alias),
			zap.Int("words", len(q.Rest)),
			zap.Error(err))
		return s.fallbackToSearch(q.Words())
	}
	return ports.Resolution{URL: resolved, Outcome: outcome, AliasID: selected.ID}
}

func (s *service) fallbackToSearch(words []string) ports.Resolution {
	return ports.Resolution{URL: searchURL(s.searchURL, words), Outcome: ports.OutcomeDefault}
}

// selectAlias picks the sibling whose alias has exactly n tokens, or else the
// group's catch-all alias.
func selectAlias(siblings []alias.Record, n int) (alias.Record, ports.Outcome, bool) {
	for _, sib := range siblings {
		if token.Count(sib.Alias) == n {
			return sib, ports.OutcomeResolved, true
		}
	}
	for _, sib := range siblings {
		tokens := token.Tokenize(sib.Alias)
		if len(tokens) > 0 && token.HasCatchAll(tokens) {
			return sib, ports.OutcomeFallback, true
		}
	}
	return alias.Record{}, "", false
}

/*
substitute fills pattern with words. The k-th token in order of occurrence
takes words[k], regardless of the digit inside the token; every occurrence
of that token's text is replaced. A catch-all takes the percent-encoded,
space-joined words from k onward and ends substitution.
*/
func substitute(pattern string, words []string) (string, error) {
	result := pattern
	for k, t := range token.Tokenize(pattern) {
		if t.Kind == token.CatchAll {
			rest := []string{}
			if k < len(words) {
				rest = words[k:]
			}
			return strings.ReplaceAll(result, t.Raw, percentEncode(strings.Join(rest, " "))), nil
		}
		if k >= len(words) {
			return "", fmt.Errorf("%w: token %s at position %d, %d word(s) given", ErrFormat, t.Raw, k, len(words))
		}
		result = strings.ReplaceAll(result, t.Raw, words[k])
	}
	return result, nil
}

// percentEncode escapes s for use inside a URL, encoding spaces as %20 and
// leaving slashes intact.
func percentEncode(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.ReplaceAll(escaped, "%2F", "/")
}

// searchURL builds the default search URL; without words it carries no query.
func searchURL(base string, words []string) string {
	if len(words) == 0 {
		return base
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = url.QueryEscape(w)
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "q=" + strings.Join(escaped, "+")
}
