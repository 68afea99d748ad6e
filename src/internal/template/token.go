package template

import "fmt"

// TokenKind distinguishes property references from literal constants.
type TokenKind int

const (
	TokenConstant TokenKind = iota // literal text, emitted verbatim
	TokenProperty                  // reference to a message property
)

func (k TokenKind) String() string {
	switch k {
	case TokenConstant:
		return "constant"
	case TokenProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Token is a single element of a list template.
// Value holds the property name for TokenProperty and the literal for TokenConstant.
type Token struct {
	Kind  TokenKind
	Value string
}

// Property returns a token referencing the named property.
func Property(name string) Token {
	return Token{Kind: TokenProperty, Value: name}
}

// Constant returns a literal token.
func Constant(value string) Token {
	return Token{Kind: TokenConstant, Value: value}
}

// String renders the token as a template statement. Quotes inside Value are not escaped.
func (t Token) String() string {
	switch t.Kind {
	case TokenProperty:
		return `property(name="` + t.Value + `")`
	case TokenConstant:
		return `constant(value="` + t.Value + `")`
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
	}
}
