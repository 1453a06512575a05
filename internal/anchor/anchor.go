// Package anchor locates named insertion points in generated source files.
//
// An anchor is a pair of sentinel comment lines placed by the project
// templates:
//
//	// mold:begin <block>
//	...
//	// mold:end <block>
//
// Markers must occupy a whole line (arbitrary leading indentation allowed)
// and must occur exactly once per file. Because a marker is a dedicated
// comment line, matching never has to reason about string literals or the
// syntax of the host language. Non-Go files may use "#" as the comment
// leader instead of "//".
package anchor

import (
	"fmt"
	"strings"
)

// Span is the located region of an anchor inside a file's contents.
// Line indexes are 0-based into the file split on "\n".
type Span struct {
	// Block is the anchor name the span was located for.
	Block string
	// Begin is the line index of the begin marker.
	Begin int
	// End is the line index of the end marker.
	End int
}

// commentLeaders are the accepted comment prefixes for marker lines.
var commentLeaders = []string{"//", "#"}

// isMarker reports whether a trimmed line is the given marker for block.
func isMarker(trimmed, kind, block string) bool {
	for _, leader := range commentLeaders {
		if trimmed == leader+" mold:"+kind+" "+block {
			return true
		}
	}
	return false
}

// BeginMarker returns the canonical begin marker line for a block.
func BeginMarker(block string) string {
	return "// mold:begin " + block
}

// EndMarker returns the canonical end marker line for a block.
func EndMarker(block string) string {
	return "// mold:end " + block
}

// Locate scans content for the marker pair of block and returns its Span.
// Exactly one occurrence of each marker is required: zero yields
// ErrAnchorNotFound, more than one yields ErrAnchorAmbiguous. The locator
// never guesses; a file whose structure drifted from the convention fails
// closed so the user can restore the marker by hand.
func Locate(content, block string) (Span, error) {
	lines := strings.Split(content, "\n")

	begin := -1
	end := -1
	beginCount := 0
	endCount := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case isMarker(trimmed, "begin", block):
			begin = i
			beginCount++
		case isMarker(trimmed, "end", block):
			end = i
			endCount++
		}
	}

	if beginCount > 1 || endCount > 1 {
		return Span{}, fmt.Errorf("%w: block %q (begin=%d, end=%d occurrences)",
			ErrAnchorAmbiguous, block, beginCount, endCount)
	}
	if beginCount == 0 || endCount == 0 {
		return Span{}, fmt.Errorf("%w: block %q", ErrAnchorNotFound, block)
	}
	if end < begin {
		return Span{}, fmt.Errorf("%w: block %q end marker precedes begin marker",
			ErrAnchorNotFound, block)
	}

	return Span{Block: block, Begin: begin, End: end}, nil
}
