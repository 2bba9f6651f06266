package prefixer

import (
	"fmt"
	"sort"
)

// Transform rewrites a class list value. It reports the families of the
// tokens it changed; an unchanged value must be returned verbatim.
type Transform func(value string) (string, []Family)

// Plan produces one edit per candidate whose value changes, sorted by
// descending Start so that applying them in order against the original buffer
// never invalidates a later offset.
func Plan(candidates []Candidate, transform Transform) (*Result, error) {
	result := &Result{
		Families:   make(map[Family]int),
		Candidates: len(candidates),
	}

	for _, c := range candidates {
		if c.Exempt {
			continue
		}
		newValue, families := transform(c.Value)
		if newValue == c.Value {
			continue
		}

		result.Edits = append(result.Edits, Edit{
			Start:   c.Start,
			End:     c.End,
			NewText: serialize(c, newValue),
		})
		result.Changed++
		result.Tokens += len(families)
		for _, f := range families {
			result.Families[f]++
		}
	}

	sort.SliceStable(result.Edits, func(i, j int) bool {
		return result.Edits[i].Start > result.Edits[j].Start
	})

	for i := 1; i < len(result.Edits); i++ {
		// Descending order: each edit must end before the previous one starts
		if result.Edits[i].End > result.Edits[i-1].Start {
			return nil, fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlappingEdits,
				result.Edits[i].Start, result.Edits[i].End,
				result.Edits[i-1].Start, result.Edits[i-1].End)
		}
	}

	return result, nil
}

// serialize re-wraps a rewritten value with the candidate's original quoting
// and, for JS strings, the escape sequences of the tokens it kept
func serialize(c Candidate, value string) string {
	switch {
	case c.Quote == 0:
		return value
	case c.JSX:
		return encodeJSXString(value, c.Quote)
	default:
		return rewriteJSString(c.Raw, value, c.Quote)
	}
}

// Apply applies edits sorted by descending Start to src and returns the new
// buffer. src is not modified.
func Apply(src []byte, edits []Edit) []byte {
	out := append([]byte(nil), src...)
	for _, e := range edits {
		if e.Start < 0 || e.End > len(out) || e.Start > e.End {
			continue
		}
		tail := append([]byte(e.NewText), out[e.End:]...)
		out = append(out[:e.Start], tail...)
	}
	return out
}
