package prefixer

import "strings"

// ClassToken is one whitespace-delimited entry of a class list, decomposed as
// variants, markers, base utility and arbitrary value:
//
//	md:hover:!-mt-[3px]
//	|-------||||--||---|
//	 Variant  !- Base Arbitrary
type ClassToken struct {
	Raw       string
	Variant   string // "md:hover:" including the last top-level colon
	Body      string // Raw without Variant
	Important bool   // body starts with "!"
	Negative  bool   // body starts with "-" (after "!")
	Base      string // utility name without markers and arbitrary value
	Arbitrary string // trailing "[...]" attached to Base, kept verbatim

	// ArbitraryVariant is set when the body itself starts with "[": an
	// arbitrary variant or arbitrary property, never prefixed
	ArbitraryVariant bool
}

// ParseToken decomposes a single class token. It never fails; malformed input
// simply yields a token whose Base is not a known utility.
func ParseToken(raw string) ClassToken {
	tok := ClassToken{Raw: raw}

	split := lastTopLevelColon(raw)
	tok.Variant = raw[:split+1]
	tok.Body = raw[split+1:]

	rest := tok.Body
	if strings.HasPrefix(rest, "!") {
		tok.Important = true
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, "-") {
		tok.Negative = true
		rest = rest[1:]
	}

	if strings.HasPrefix(tok.Body, "[") {
		tok.ArbitraryVariant = true
		tok.Base = rest
		return tok
	}

	if open := strings.IndexByte(rest, '['); open > 0 && strings.HasSuffix(rest, "]") {
		tok.Base = rest[:open]
		tok.Arbitrary = rest[open:]
		return tok
	}

	tok.Base = rest
	return tok
}

// lastTopLevelColon returns the index of the last colon outside square
// brackets, or -1. Colons inside arbitrary values such as
// "bg-[url(http://x)]" never split variants from the body.
func lastTopLevelColon(s string) int {
	depth := 0
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// markers renders the important and negative markers in canonical order
func (t ClassToken) markers() string {
	var b strings.Builder
	if t.Important {
		b.WriteByte('!')
	}
	if t.Negative {
		b.WriteByte('-')
	}
	return b.String()
}

// WithPrefix reassembles the token with prefix inserted before Base
func (t ClassToken) WithPrefix(prefix string) string {
	return t.Variant + t.markers() + prefix + t.Base + t.Arbitrary
}
