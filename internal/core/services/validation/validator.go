/*
Package validation decides whether an (alias, pattern) pair may be stored
next to the records already sharing its leading word.

The resolver dispatches on the number of words following the leading word,
so within a sibling group the catch-all alias must be unique and must not
share its token count with another alias.
*/
package validation

import (
	"fmt"
	"sort"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/core/domain/token"
)

// Kind identifies the rule a rejected pair violated.
type Kind int

const (
	EmptyAlias Kind = iota + 1
	CountMismatch
	TokenMismatch
	DuplicateAlias
	MisplacedCatchAll
	DuplicateCatchAllInPattern
	TokenCountCollision
	CatchAllUniquenessViolation
)

var kindNames = map[Kind]string{
	EmptyAlias:                  "empty alias",
	CountMismatch:               "count mismatch",
	TokenMismatch:               "token mismatch",
	DuplicateAlias:              "duplicate alias",
	MisplacedCatchAll:           "misplaced catch-all",
	DuplicateCatchAllInPattern:  "duplicate catch-all in pattern",
	TokenCountCollision:         "token count collision",
	CatchAllUniquenessViolation: "catch-all uniqueness violation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Rejection is returned by Validate when a pair may not be stored. Detail is
// the message shown to the user.
type Rejection struct {
	Kind   Kind
	Detail string
	// Missing is the absolute token count difference for CountMismatch.
	Missing int
}

func (r *Rejection) Error() string {
	return r.Detail
}

func reject(kind Kind, format string, args ...any) *Rejection {
	return &Rejection{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

/*
Validate checks candidate against siblings, the records in its leading
word's group. A non-zero candidate.ID marks an update: the sibling with that
id is ignored. It returns nil when the pair is acceptable and a *Rejection
otherwise.
*/
func Validate(candidate alias.Record, siblings []alias.Record) error {
	leading := alias.LeadingWord(candidate.Alias)
	if leading == "" {
		return reject(EmptyAlias, "Alias cannot be empty.")
	}

	aliasTokens := token.Tokenize(candidate.Alias)
	patternTokens := token.Tokenize(candidate.Pattern)

	if len(aliasTokens) != len(patternTokens) {
		diff := len(patternTokens) - len(aliasTokens)
		if diff < 0 {
			diff = -diff
		}
		r := reject(CountMismatch, "Alias '%s' and pattern '%s' do not match. Expecting %d more token(s).",
			candidate.Alias, candidate.Pattern, diff)
		r.Missing = diff
		return r
	}

	sortedAlias := sortedRaws(aliasTokens)
	sortedPattern := sortedRaws(patternTokens)
	for k := range sortedAlias {
		if sortedAlias[k] != sortedPattern[k] {
			return reject(TokenMismatch, "Alias token '%s' and pattern '%s' do not match. Please check your inputs.",
				sortedAlias[k], sortedPattern[k])
		}
	}

	others := groupOf(excluding(siblings, candidate.ID), leading)
	for _, s := range others {
		if s.Alias == candidate.Alias {
			return reject(DuplicateAlias, "Alias '%s' already exists", candidate.Alias)
		}
	}

	if !token.HasCatchAll(patternTokens) {
		return nil
	}

	if patternTokens[len(patternTokens)-1].Kind != token.CatchAll {
		return reject(MisplacedCatchAll, "The '%s' token must be at the end of the pattern. Please check your inputs.", token.CatchAllRaw)
	}
	if countCatchAll(patternTokens) > 1 {
		return reject(DuplicateCatchAllInPattern, "There can only be one '%s' token in a pattern. Please check your inputs.", token.CatchAllRaw)
	}

	// A second catch-all in the group is reported before any count
	// collision, whatever the candidate's own token count.
	for _, s := range others {
		if token.HasCatchAll(token.Tokenize(s.Alias)) {
			return reject(CatchAllUniquenessViolation,
				"The '%s' token must be unique across all aliases. Please check all '%s' aliases and determine where the '%s' token should be.",
				token.CatchAllRaw, leading, token.CatchAllRaw)
		}
	}
	candidateCount := len(aliasTokens)
	for _, s := range others {
		if token.Count(s.Alias) == candidateCount {
			return reject(TokenCountCollision, "There already exists an alias with %d pattern tokens.", candidateCount)
		}
	}
	return nil
}

func sortedRaws(tokens []token.Token) []string {
	raws := token.Raws(tokens)
	sort.Strings(raws)
	return raws
}

func countCatchAll(tokens []token.Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == token.CatchAll {
			n++
		}
	}
	return n
}

// groupOf keeps the records belonging to word's sibling group.
func groupOf(records []alias.Record, word string) []alias.Record {
	out := make([]alias.Record, 0, len(records))
	for _, r := range records {
		if alias.InGroup(r.Alias, word) {
			out = append(out, r)
		}
	}
	return out
}

// excluding drops the record with id from records. id zero drops nothing.
func excluding(records []alias.Record, id int64) []alias.Record {
	if id == 0 {
		return records
	}
	out := make([]alias.Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
