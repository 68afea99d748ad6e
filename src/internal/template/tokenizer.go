package template

import "strings"

// Delimiters separate the pieces of a path pattern.
const Delimiters = "/._-"

// PropertyResolver maps a pattern piece to a property name.
type PropertyResolver interface {
	PropertyName(code string) (string, bool)
}

// Split cuts path at every delimiter, keeping the delimiters as separate pieces.
// Pieces are returned untrimmed; empty text between adjacent delimiters is omitted.
func Split(path string) []string {
	var pieces []string

	start := 0
	for i := 0; i < len(path); i++ {
		if strings.IndexByte(Delimiters, path[i]) < 0 {
			continue
		}
		if i > start {
			pieces = append(pieces, path[start:i])
		}
		pieces = append(pieces, path[i:i+1])
		start = i + 1
	}
	if start < len(path) {
		pieces = append(pieces, path[start:])
	}

	return pieces
}

// Tokenize converts a path pattern into an ordered list of tokens.
//
// Every piece produced by Split is trimmed of surrounding whitespace and
// dropped if nothing is left. A piece equal to a known code becomes a
// property reference, anything else (delimiters included) becomes a
// constant. A nil resolver yields constants only.
func Tokenize(path string, resolver PropertyResolver) []Token {
	pieces := Split(path)
	tokens := make([]Token, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		if resolver != nil {
			if name, ok := resolver.PropertyName(piece); ok {
				tokens = append(tokens, Property(name))
				continue
			}
		}
		tokens = append(tokens, Constant(piece))
	}

	return tokens
}
