// Package query holds the parsed form of an incoming search string.
package query

import "strings"

// Query is a whitespace-split search request. FirstWord selects the
// sibling group; Rest feeds the pattern's placeholders.
type Query struct {
	Raw       string
	FirstWord string
	Rest      []string
}

// Parse splits raw on whitespace. An empty or blank raw yields a Query with
// no FirstWord.
func Parse(raw string) Query {
	q := Query{Raw: raw}
	words := strings.Fields(raw)
	if len(words) == 0 {
		return q
	}
	q.FirstWord = words[0]
	q.Rest = words[1:]
	return q
}

// Empty reports whether the query carries no words at all.
func (q Query) Empty() bool {
	return q.FirstWord == ""
}

// Words returns FirstWord followed by Rest.
func (q Query) Words() []string {
	if q.Empty() {
		return nil
	}
	return append([]string{q.FirstWord}, q.Rest...)
}
