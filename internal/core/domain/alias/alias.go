/*
Package alias defines the core domain entity for a stored URL alias.
*/
package alias

import "strings"

/*
Record represents a stored alias: the short command a user types and the
URL pattern it expands to. IDs are assigned by the store; a zero ID means
the record has not been persisted yet.
*/
type Record struct {
	ID      int64  `yaml:"-" json:"id"`
	Alias   string `yaml:"alias" json:"alias"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

// LeadingWord returns the first whitespace-delimited word of s, or "" if s is blank.
func LeadingWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// InGroup reports whether alias belongs to the sibling group of word: it is
// either exactly word, or word followed by a single space and more text.
func InGroup(alias, word string) bool {
	if word == "" {
		return false
	}
	return alias == word || strings.HasPrefix(alias, word+" ")
}
