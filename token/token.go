// Package token defines the lexical tokens produced by the scan engine.
package token

import "strconv"

// Kind represents a token category.
type Kind uint8

const (
	// EOF marks the end of input.
	EOF Kind = iota
	// Keyword is a word in the reserved-word set.
	Keyword
	// Identifier is a name: a letter or underscore followed by
	// letters, digits, or underscores.
	Identifier
	// Symbol is any match that is neither a keyword, a number,
	// nor identifier-shaped.
	Symbol
	// Number is a numeric literal; Token.Num holds the parsed value.
	Number
	// String is a quoted string literal.
	String
)

var kindNames = [...]string{
	EOF:        "EOF",
	Keyword:    "keyword",
	Identifier: "identifier",
	Symbol:     "symbol",
	Number:     "number",
	String:     "string",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsLiteral returns true for kinds that carry a literal value.
func (k Kind) IsLiteral() bool {
	return k == Number || k == String
}

// Token is a single lexical unit with its source position and the
// parsing mode that was active when it was produced.
type Token struct {
	Kind Kind
	Text string
	Num  float64 // parsed value when Kind == Number
	Line int     // 1-based
	Col  int     // 1-based
	Mode string  // active mode at production time, "" = none
}

// keywords is the reserved-word set used by Classify.
var keywords = map[string]bool{
	"if":       true,
	"else":     true,
	"while":    true,
	"for":      true,
	"function": true,
	"return":   true,
	"let":      true,
	"var":      true,
	"const":    true,
	"true":     true,
	"false":    true,
}

// IsKeyword reports whether text is in the reserved-word set.
func IsKeyword(text string) bool {
	return keywords[text]
}

// Keywords returns a copy of the reserved-word set.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	return out
}

// IsIdentifier reports whether text is identifier-shaped:
// a letter or underscore followed by letters, digits, or underscores.
func IsIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Classify infers the kind of a matched text by shape:
// keyword set membership, then numeric parse, then identifier shape,
// falling back to Symbol. For Number the parsed value is returned.
func Classify(text string) (Kind, float64) {
	if keywords[text] {
		return Keyword, 0
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return Number, n
	}
	if IsIdentifier(text) {
		return Identifier, 0
	}
	return Symbol, 0
}

// Make builds a token from matched text at the given position,
// classifying it by shape. Quoted text becomes a String token with
// the quotes stripped.
func Make(text string, line, col int, mode string) Token {
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
		return Token{Kind: String, Text: text[1 : len(text)-1], Line: line, Col: col, Mode: mode}
	}
	kind, num := Classify(text)
	return Token{Kind: kind, Text: text, Num: num, Line: line, Col: col, Mode: mode}
}
