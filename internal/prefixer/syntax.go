package prefixer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// NodeKind tags the syntax shapes the locator cares about. Everything else is
// NodeOther and only contributes its children.
type NodeKind int

// Node kinds
const (
	NodeOther NodeKind = iota
	NodeString
	NodeTemplate
	NodeCall
	NodeArguments
	NodeObject
	NodePair
	NodeJSXAttribute
)

func (k NodeKind) String() string {
	switch k {
	case NodeString:
		return "string"
	case NodeTemplate:
		return "template"
	case NodeCall:
		return "call"
	case NodeArguments:
		return "arguments"
	case NodeObject:
		return "object"
	case NodePair:
		return "pair"
	case NodeJSXAttribute:
		return "jsx_attribute"
	}
	return "other"
}

// Role names the field a node fills in its parent
type Role string

// Roles used by the locator
const (
	RoleNone  Role = ""
	RoleKey   Role = "key"
	RoleValue Role = "value"
)

// Node is the lowered syntax tree: a tagged union over NodeKind where only the
// fields relevant to Kind are set.
type Node struct {
	Kind     NodeKind
	Start    int
	End      int
	Role     Role
	Name     string     // NodeCall: callee; NodePair: key; NodeJSXAttribute: attribute
	Str      *StringLit // NodeString only
	Children []*Node
}

// StringLit is a string literal as written in the source
type StringLit struct {
	Quote byte
	Raw   string // including quotes
	Value string // decoded value
	JSX   bool   // JSX attribute value: no escape processing
}

// Inspect traverses the tree depth first, calling fn with each node and its
// ancestors (nearest last). Returning false skips the node's children.
func Inspect(root *Node, fn func(n *Node, ancestors []*Node) bool) {
	var stack []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if !fn(n, stack) {
			return
		}
		stack = append(stack, n)
		for _, c := range n.Children {
			walk(c)
		}
		stack = stack[:len(stack)-1]
	}
	if root != nil {
		walk(root)
	}
}

// newStringLit builds a literal from its raw source text
func newStringLit(raw string, jsx bool) *StringLit {
	lit := &StringLit{Raw: raw, JSX: jsx}
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		lit.Quote = raw[0]
		body := raw[1 : len(raw)-1]
		if jsx {
			lit.Value = body
		} else {
			lit.Value = decodeJSString(body)
		}
		return lit
	}
	lit.Value = raw
	return lit
}

// segment is one source unit of a JS string body: a single character or a
// complete escape sequence, with the text it decodes to
type segment struct {
	raw string
	val string
}

// scanJSString splits a JS string body into segments
func scanJSString(body string) []segment {
	segs := make([]segment, 0, len(body))
	for i := 0; i < len(body); {
		if body[i] != '\\' || i+1 == len(body) {
			_, size := utf8.DecodeRuneInString(body[i:])
			segs = append(segs, segment{raw: body[i : i+size], val: body[i : i+size]})
			i += size
			continue
		}
		val, n := decodeEscape(body[i+1:])
		segs = append(segs, segment{raw: body[i : i+1+n], val: val})
		i += 1 + n
	}
	return segs
}

// decodeJSString resolves the escape sequences of a JS string body
func decodeJSString(body string) string {
	if !strings.Contains(body, `\`) {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for _, seg := range scanJSString(body) {
		b.WriteString(seg.val)
	}
	return b.String()
}

// decodeEscape decodes the escape sequence following a backslash. s is never
// empty. It returns the decoded text and the number of bytes consumed.
func decodeEscape(s string) (string, int) {
	switch s[0] {
	case 'n':
		return "\n", 1
	case 't':
		return "\t", 1
	case 'r':
		return "\r", 1
	case 'b':
		return "\b", 1
	case 'f':
		return "\f", 1
	case 'v':
		return "\v", 1
	case '0':
		return "\x00", 1
	case '\r':
		// Line continuation, CRLF form
		if len(s) > 1 && s[1] == '\n' {
			return "", 2
		}
		return "", 1
	case '\n':
		return "", 1
	case 'x':
		if r, n, ok := decodeHex(s[1:], 2); ok {
			return string(r), 1 + n
		}
		return "x", 1
	case 'u':
		r, n, ok := decodeUnicodeEscape(s[1:])
		if !ok {
			return "u", 1
		}
		// \uD83D\uDE00: a surrogate pair spells one astral character
		if utf16.IsSurrogate(r) && strings.HasPrefix(s[1+n:], `\u`) {
			if lo, m, ok := decodeHex(s[1+n+2:], 4); ok {
				if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
					return string(pair), 1 + n + 2 + m
				}
			}
		}
		return string(r), 1 + n
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], size
}

func decodeHex(s string, width int) (rune, int, bool) {
	if len(s) < width {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[:width], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), width, true
}

// decodeUnicodeEscape handles both \uXXXX and \u{X...}
func decodeUnicodeEscape(s string) (rune, int, bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, false
		}
		return rune(v), end + 1, true
	}
	return decodeHex(s, 4)
}

// rewriteJSString re-serializes value into the literal raw, keeping the
// source text of every character and escape sequence the rewrite left in
// place. Tokens are joined with single spaces. When value no longer lines up
// with the literal token for token, the whole value is re-encoded.
func rewriteJSString(raw, value string, quote byte) string {
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return encodeJSString(value, quote)
	}

	tokens := splitTokens(scanJSString(body))
	next := strings.Fields(value)
	if len(tokens) != len(next) {
		return encodeJSString(value, quote)
	}

	out := make([]string, len(next))
	for i, tok := range tokens {
		out[i] = tok.rewrite(next[i], quote)
	}
	return string(quote) + strings.Join(out, " ") + string(quote)
}

// rawToken is a whitespace-delimited run of segments
type rawToken []segment

// splitTokens groups segments into tokens, splitting on segments that decode
// to whitespace the same way strings.Fields splits the decoded value
func splitTokens(segs []segment) []rawToken {
	var tokens []rawToken
	var cur rawToken
	flush := func() {
		if cur.value() != "" {
			tokens = append(tokens, cur)
		}
		cur = nil
	}
	for _, seg := range segs {
		if r, size := utf8.DecodeRuneInString(seg.val); size > 0 && size == len(seg.val) && unicode.IsSpace(r) {
			flush()
			continue
		}
		cur = append(cur, seg)
	}
	flush()
	return tokens
}

func (t rawToken) value() string {
	var b strings.Builder
	for _, seg := range t {
		b.WriteString(seg.val)
	}
	return b.String()
}

// sourceOf concatenates the source text of segs
func sourceOf(segs []segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.raw)
	}
	return b.String()
}

// rewrite turns t into next, keeping the leading and trailing segments the two
// share and encoding only the text in between
func (t rawToken) rewrite(next string, quote byte) string {
	i, head := 0, 0
	for i < len(t) && strings.HasPrefix(next[head:], t[i].val) {
		head += len(t[i].val)
		i++
	}
	j, tail := len(t), 0
	for j > i && strings.HasSuffix(next[head:len(next)-tail], t[j-1].val) {
		tail += len(t[j-1].val)
		j--
	}
	return sourceOf(t[:i]) + encodeJSBody(next[head:len(next)-tail], quote) + sourceOf(t[j:])
}

// encodeJSString serializes value as a JS string literal using quote
func encodeJSString(value string, quote byte) string {
	return string(quote) + encodeJSBody(value, quote) + string(quote)
}

// encodeJSBody escapes value for the inside of a JS string quoted with quote
func encodeJSBody(value string, quote byte) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x2028 || r == 0x2029:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeJSXString serializes value as a JSX attribute string. JSX has no
// backslash escapes, so the quote character becomes an entity.
func encodeJSXString(value string, quote byte) string {
	entity := "&quot;"
	if quote == '\'' {
		entity = "&apos;"
	}
	return string(quote) + strings.ReplaceAll(value, string(quote), entity) + string(quote)
}
