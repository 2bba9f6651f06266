package prefixer

import "strings"

// bareKeywords are single-word utilities that carry no hyphen
var bareKeywords = map[string]bool{
	"flex":      true,
	"grid":      true,
	"block":     true,
	"hidden":    true,
	"inline":    true,
	"absolute":  true,
	"relative":  true,
	"fixed":     true,
	"sticky":    true,
	"static":    true,
	"container": true,
}

// maxPlainWords is how many hyphen-less, colon-less tokens a class list may hold
// before it reads as prose
const maxPlainWords = 5

// LooksLikeClassList decides whether an arbitrary string is plausibly a class
// list rather than prose. It favours recall: the per-token vocabulary check in
// the rewriter is the real authority.
func LooksLikeClassList(s string) bool {
	if len(s) < 2 {
		return false
	}

	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return false
	}

	utilityLike := 0
	plainWords := 0
	for _, tok := range tokens {
		if looksLikeUtilityToken(tok) {
			utilityLike++
		}
		if !strings.ContainsAny(tok, "-:") {
			plainWords++
		}
	}

	if utilityLike == 0 {
		return false
	}
	return plainWords <= maxPlainWords
}

// looksLikeUtilityToken checks the segment after the last variant colon
func looksLikeUtilityToken(tok string) bool {
	body := tok
	if i := strings.LastIndexByte(tok, ':'); i >= 0 {
		body = tok[i+1:]
	}
	return strings.Contains(body, "-") ||
		strings.Contains(body, "[") ||
		bareKeywords[body]
}
