package template

import "strings"

const tokenSeparator = "\n    "

// Spec is a named list template.
type Spec struct {
	Name   string
	Tokens []Token
}

// NewSpec tokenizes path and names the result.
func NewSpec(name, path string, resolver PropertyResolver) Spec {
	return Spec{Name: name, Tokens: Tokenize(path, resolver)}
}

// String renders the template declaration.
func (s Spec) String() string {
	return Render(s.Name, s.Tokens)
}

// Render produces a list template declaration:
//
//	template(name="<name>" type="list") {
//	    <token>
//	    ...
//	}
//
// The output has no trailing newline and nothing is escaped, so a double quote
// in name or in a token value yields an invalid declaration.
func Render(name string, tokens []Token) string {
	var sb strings.Builder

	sb.WriteString(`template(name="`)
	sb.WriteString(name)
	sb.WriteString(`" type="list") {`)
	sb.WriteString(tokenSeparator)
	for i, token := range tokens {
		if i > 0 {
			sb.WriteString(tokenSeparator)
		}
		sb.WriteString(token.String())
	}
	sb.WriteString("\n}")

	return sb.String()
}

// Generate tokenizes path and renders it as a template named name.
func Generate(name, path string, resolver PropertyResolver) string {
	return Render(name, Tokenize(path, resolver))
}
