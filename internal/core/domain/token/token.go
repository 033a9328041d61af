/*
Package token implements the placeholder grammar shared by alias and
pattern strings: `<$N>` with a single digit N binds one query word, and
`<$&>` binds every remaining word.
*/
package token

import "regexp"

// Kind distinguishes the two placeholder forms.
type Kind int

const (
	Positional Kind = iota
	CatchAll
)

func (k Kind) String() string {
	switch k {
	case Positional:
		return "positional"
	case CatchAll:
		return "catch-all"
	default:
		return "unknown"
	}
}

// CatchAllRaw is the surface text of the catch-all token.
const CatchAllRaw = "<$&>"

// Token is a placeholder found in a pattern string. Raw is the exact text,
// e.g. "<$1>".
type Token struct {
	Kind Kind
	Raw  string
}

var tokenRe = regexp.MustCompile(`<\$[0-9&]>`)

// Tokenize returns the tokens of pattern in order of appearance. Repeated
// tokens are reported every time they occur.
func Tokenize(pattern string) []Token {
	matches := tokenRe.FindAllString(pattern, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		kind := Positional
		if m == CatchAllRaw {
			kind = CatchAll
		}
		tokens = append(tokens, Token{Kind: kind, Raw: m})
	}
	return tokens
}

// Count returns the number of tokens in pattern.
func Count(pattern string) int {
	return len(tokenRe.FindAllStringIndex(pattern, -1))
}

// HasCatchAll reports whether any of tokens is a catch-all.
func HasCatchAll(tokens []Token) bool {
	for _, t := range tokens {
		if t.Kind == CatchAll {
			return true
		}
	}
	return false
}

// Raws returns the surface text of each token, preserving order.
func Raws(tokens []Token) []string {
	raws := make([]string, len(tokens))
	for i, t := range tokens {
		raws[i] = t.Raw
	}
	return raws
}
