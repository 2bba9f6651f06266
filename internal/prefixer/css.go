package prefixer

import (
	"bytes"
	"errors"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// LocateApply finds the class lists of every @apply directive in a stylesheet:
//
//	.btn { @apply px-4 py-2 hover:bg-blue-700; }
//
// The span runs from the first token after @apply up to the closing ";" or
// "}", surrounding whitespace excluded.
func LocateApply(src []byte) ([]Candidate, error) {
	lexer := css.NewLexer(parse.NewInputBytes(src))

	var out []Candidate
	offset := 0
	inApply := false
	start, end := -1, -1

	flush := func() {
		if inApply && start >= 0 && end > start {
			raw := string(src[start:end])
			out = append(out, Candidate{
				Context: CSSApplyDirective,
				Start:   start,
				End:     end,
				Raw:     raw,
				Value:   raw,
			})
		}
		inApply = false
		start, end = -1, -1
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				line, col := LineColumn(src, offset)
				return nil, &ParseError{Kind: KindCSS, Message: err.Error(), Line: line, Column: col}
			}
			flush()
			break
		}

		tokStart := offset
		offset += len(text)

		if !inApply {
			if tt == css.AtKeywordToken && string(text) == "@apply" {
				inApply = true
			}
			continue
		}

		switch tt {
		case css.SemicolonToken, css.RightBraceToken, css.LeftBraceToken:
			flush()
		case css.WhitespaceToken, css.CommentToken:
			// Only extends the span when followed by more class tokens
		default:
			if start < 0 {
				start = tokStart
			}
			end = offset
		}
	}

	return out, nil
}

// LineColumn converts a byte offset into a 1-based line and column
func LineColumn(src []byte, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	col := offset - bytes.LastIndexByte(before, '\n')
	return line, col
}
