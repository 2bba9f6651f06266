package prefixer

import "strings"

// Rewriter applies, renames or removes a prefix on the utility tokens of a
// class list. All methods are total: the worst case is output equal to input.
type Rewriter struct {
	vocab *Vocabulary
}

// NewRewriter creates a rewriter over the given vocabulary (nil = default)
func NewRewriter(vocab *Vocabulary) *Rewriter {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Rewriter{vocab: vocab}
}

var defaultRewriter = NewRewriter(nil)

// ApplyPrefix prefixes every known utility of s using the default vocabulary
func ApplyPrefix(s, prefix string) string {
	return defaultRewriter.ApplyPrefix(s, prefix)
}

// RenamePrefix swaps oldPrefix for newPrefix using the default vocabulary
func RenamePrefix(s, oldPrefix, newPrefix string) string {
	return defaultRewriter.RenamePrefix(s, oldPrefix, newPrefix)
}

// ApplyPrefix prefixes every known utility token of s. When at least one token
// changes, the result is joined with single spaces; otherwise s is returned
// verbatim.
func (r *Rewriter) ApplyPrefix(s, prefix string) string {
	out, _ := r.applyPrefix(s, prefix)
	return out
}

// RenamePrefix replaces oldPrefix with newPrefix on every prefixed utility
// token. An empty newPrefix removes the prefix; a blank oldPrefix is a no-op.
func (r *Rewriter) RenamePrefix(s, oldPrefix, newPrefix string) string {
	out, _ := r.renamePrefix(s, oldPrefix, newPrefix)
	return out
}

// applyPrefix also reports the family of every rewritten token
func (r *Rewriter) applyPrefix(s, prefix string) (string, []Family) {
	return r.mapTokens(s, func(tok string) (string, Family, bool) {
		return r.prefixToken(tok, prefix)
	})
}

func (r *Rewriter) renamePrefix(s, oldPrefix, newPrefix string) (string, []Family) {
	if strings.TrimSpace(oldPrefix) == "" {
		return s, nil
	}
	return r.mapTokens(s, func(tok string) (string, Family, bool) {
		return r.renameToken(tok, oldPrefix, newPrefix)
	})
}

// mapTokens rewrites s token by token. The whole string is rebuilt atomically
// when anything changed.
func (r *Rewriter) mapTokens(s string, fn func(string) (string, Family, bool)) (string, []Family) {
	tokens := strings.Fields(s)

	var changed []Family
	for i, tok := range tokens {
		out, family, ok := fn(tok)
		if !ok || out == tok {
			continue
		}
		tokens[i] = out
		changed = append(changed, family)
	}

	if len(changed) == 0 {
		return s, nil
	}
	return strings.Join(tokens, " "), changed
}

func (r *Rewriter) prefixToken(raw, prefix string) (string, Family, bool) {
	// Already prefixed, directly or after a variant
	if strings.HasPrefix(raw, prefix) || strings.Contains(raw, ":"+prefix) {
		return raw, "", false
	}

	tok := ParseToken(raw)
	if tok.ArbitraryVariant {
		return raw, "", false
	}
	// Already prefixed behind a marker: "-tw-mt-4", "hover:!tw-font-bold"
	if strings.HasPrefix(tok.Base, prefix) {
		return raw, "", false
	}

	family, ok := r.vocab.Family(tok.Base)
	if !ok {
		return raw, "", false
	}
	return tok.WithPrefix(prefix), family, true
}

func (r *Rewriter) renameToken(raw, oldPrefix, newPrefix string) (string, Family, bool) {
	split := lastTopLevelColon(raw)
	variant, body := raw[:split+1], raw[split+1:]

	var markers string
	if strings.HasPrefix(body, "!") {
		markers, body = "!", body[1:]
	}
	if strings.HasPrefix(body, "-"+oldPrefix) {
		markers, body = markers+"-", body[1:]
	}
	if !strings.HasPrefix(body, oldPrefix) {
		return raw, "", false
	}

	remainder := strings.TrimPrefix(body, oldPrefix)
	rest := ParseToken(remainder)
	// Guard against stripping a coincidental leading substring
	if rest.ArbitraryVariant || rest.Important || rest.Negative || rest.Variant != "" {
		return raw, "", false
	}
	family, ok := r.vocab.Family(rest.Base)
	if !ok {
		return raw, "", false
	}

	return variant + markers + newPrefix + remainder, family, true
}
