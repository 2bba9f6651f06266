package twconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/yacobolo/twprefix/internal/prefixer"
)

// Strategy extracts a prefix from config source text
type Strategy struct {
	Name    string
	Extract func(path string, src []byte) (string, error)
}

// Strategies are tried in order; the first success wins
var Strategies = []Strategy{
	{Name: "module", Extract: moduleStrategy},
	{Name: "typed", Extract: typedStrategy},
	{Name: "pattern", Extract: patternStrategy},
}

var errNoPrefix = errors.New("no prefix property")

// moduleStrategy handles plain JavaScript configs. The document must parse as
// JavaScript; the prefix is the first string value of a `prefix:` property.
func moduleStrategy(_ string, src []byte) (string, error) {
	if _, err := js.Parse(parse.NewInputBytes(src), js.Options{}); err != nil {
		return "", fmt.Errorf("parsing config module: %w", err)
	}

	lexer := js.NewLexer(parse.NewInputBytes(src))
	// state 0: looking for the key, 1: saw key, 2: saw colon
	state := 0
	for {
		tt, text := lexer.Next()
		switch tt {
		case js.ErrorToken:
			return "", errNoPrefix
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken:
			continue
		}

		switch {
		case state == 0 && isPrefixKey(tt, text):
			state = 1
		case state == 1 && tt == js.ColonToken:
			state = 2
		case state == 2 && tt == js.StringToken:
			return nonEmpty(unquote(string(text)))
		default:
			state = 0
			if isPrefixKey(tt, text) {
				state = 1
			}
		}
	}
}

func isPrefixKey(tt js.TokenType, text []byte) bool {
	switch tt {
	case js.IdentifierToken:
		return string(text) == "prefix"
	case js.StringToken:
		return unquote(string(text)) == "prefix"
	}
	return false
}

// typedStrategy handles TypeScript configs by walking the syntax tree for a
// `prefix` property with a string value
func typedStrategy(_ string, src []byte) (string, error) {
	root, err := prefixer.Parse(src, prefixer.KindTS)
	if err != nil {
		return "", fmt.Errorf("parsing typed config: %w", err)
	}

	var value *string
	prefixer.Inspect(root, func(n *prefixer.Node, _ []*prefixer.Node) bool {
		if value != nil {
			return false
		}
		if n.Kind != prefixer.NodePair || n.Name != "prefix" {
			return true
		}
		for _, c := range n.Children {
			if c.Role == prefixer.RoleValue && c.Kind == prefixer.NodeString {
				v := c.Str.Value
				value = &v
				return false
			}
		}
		return true
	})

	if value == nil {
		return "", errNoPrefix
	}
	return nonEmpty(*value)
}

var prefixPattern = regexp.MustCompile(`prefix\s*:\s*["']([^"']*)["']`)

// patternStrategy is the last resort for configs neither parser accepts
func patternStrategy(_ string, src []byte) (string, error) {
	m := prefixPattern.FindSubmatch(src)
	if m == nil {
		return "", errNoPrefix
	}
	return nonEmpty(string(m[1]))
}

// unquote strips the surrounding quotes of a JS string token. Prefixes are
// plain identifiers, so escapes are not interpreted.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// nonEmpty treats `prefix: ""` as no prefix
func nonEmpty(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errNoPrefix
	}
	return prefix, nil
}
