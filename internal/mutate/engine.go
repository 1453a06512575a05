// Package mutate performs idempotent structural insertions into existing
// files at anchor-located insertion points, and batches such insertions so a
// generation request either lands completely or not at all.
package mutate

import (
	"strings"
	"unicode"

	"github.com/moldgen/mold/internal/anchor"
)

// Outcome describes the result of applying one snippet to one anchor.
type Outcome int

const (
	// OutcomeInserted means the snippet was added to the anchor region.
	OutcomeInserted Outcome = iota
	// OutcomeAlreadyPresent means a snippet with the same identity key is
	// already inside the anchor region; the content was left unchanged.
	OutcomeAlreadyPresent
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeAlreadyPresent:
		return "already-present"
	default:
		return "unknown"
	}
}

// Apply inserts snippet into the anchor region of content, keyed by
// identityKey. The function is pure: it returns the new content and never
// touches the filesystem.
//
// Presence is checked only between the anchor's markers, by scanning for a
// line containing identityKey as a whole token. Whitespace differences in a
// previously inserted snippet therefore do not defeat the check, and equal
// keys outside the region (say, in another block) do not suppress insertion.
//
// The snippet is inserted immediately before the end marker, indented like
// the line preceding the end marker. For an empty block the begin marker's
// indentation is copied; templates place markers at entry indentation, so
// inserted lines line up without reformatting.
func Apply(content string, span anchor.Span, snippet, identityKey string) (string, Outcome) {
	lines := strings.Split(content, "\n")

	for i := span.Begin + 1; i < span.End; i++ {
		if containsToken(lines[i], identityKey) {
			return content, OutcomeAlreadyPresent
		}
	}

	indent := blockIndent(lines, span)

	var inserted []string
	for line := range strings.SplitSeq(strings.TrimRight(snippet, "\n"), "\n") {
		if line == "" {
			inserted = append(inserted, "")
			continue
		}
		inserted = append(inserted, indent+strings.TrimSpace(line))
	}

	out := make([]string, 0, len(lines)+len(inserted))
	out = append(out, lines[:span.End]...)
	out = append(out, inserted...)
	out = append(out, lines[span.End:]...)

	return strings.Join(out, "\n"), OutcomeInserted
}

// blockIndent picks the indentation for a new snippet line: copy the line
// immediately preceding the end marker, or the begin marker's own indent
// when the block is empty.
func blockIndent(lines []string, span anchor.Span) string {
	if span.End > span.Begin+1 {
		return leadingWhitespace(lines[span.End-1])
	}
	return leadingWhitespace(lines[span.Begin])
}

// leadingWhitespace returns the leading spaces and tabs of a line.
func leadingWhitespace(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}

// containsToken reports whether line contains key as a whole token. A
// boundary is required only where the key itself starts or ends with an
// identifier rune: "post" matches `post.Register(api)` and `"/post"` but
// not "postgres", while a punctuation-delimited key such as
// `post.Register(` matches `post.Register(api)` directly.
func containsToken(line, key string) bool {
	if key == "" {
		return false
	}
	keyRunes := []rune(key)
	needBefore := isIdentRune(keyRunes[0])
	needAfter := isIdentRune(keyRunes[len(keyRunes)-1])

	for start := 0; ; {
		idx := strings.Index(line[start:], key)
		if idx < 0 {
			return false
		}
		idx += start

		beforeOK := !needBefore || idx == 0 || !isIdentRune(rune(line[idx-1]))
		afterIdx := idx + len(key)
		afterOK := !needAfter || afterIdx >= len(line) || !isIdentRune(rune(line[afterIdx]))
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

// isIdentRune reports whether r can be part of an identifier token.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
