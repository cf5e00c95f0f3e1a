// Package marker provides canonical scanning and navigation of inline
// << >> markers.
//
// Marker grammar:
//
//	<<token>>
//
// The token is a run of word characters (letters, digits, underscore)
// with no whitespace; markers never span lines. When delimiter pairs
// nest, only the innermost token survives: an opening << followed by
// anything other than a well-formed token is malformed and simply absent
// from the output, so <<outer_<<inner>>_marker>> yields exactly <<inner>>.
package marker

import "strings"

// Delimiters bounding a marker token.
const (
	OpenDelim  = "<<"
	CloseDelim = ">>"
)

// Marker describes one delimiter-bounded token in a document snapshot.
// Offsets are byte positions into the scanned text; End is exclusive and
// both delimiters are inside the range. Markers are recomputed wholesale
// whenever the text changes, never mutated.
type Marker struct {
	Start int
	End   int
	Inner string
}

// Literal returns the full delimited token text.
func (m Marker) Literal() string {
	return OpenDelim + m.Inner + CloseDelim
}

// Scan locates every well-formed marker in text, ordered ascending by
// start offset. Candidates whose opening delimiter falls inside a code
// region per isInCode are skipped; a nil predicate disables code
// exclusion.
func Scan(text string, isInCode func(offset int) bool) []Marker {
	var out []Marker

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		for _, m := range scanLine(line) {
			start := offset + m.Start
			if isInCode != nil && isInCode(start) {
				continue
			}
			out = append(out, Marker{Start: start, End: offset + m.End, Inner: m.Inner})
		}
		offset += len(line)
	}

	return out
}

// scanLine finds markers within a single line. It walks opening
// delimiters left to right and keeps only those immediately followed by
// a word-character run and a closing delimiter: a nested opener starts a
// fresh candidate, which is how outer (malformed) pairs drop away
// leaving the innermost token.
func scanLine(line string) []Marker {
	var out []Marker

	i := 0
	for {
		open := strings.Index(line[i:], OpenDelim)
		if open < 0 {
			return out
		}
		start := i + open

		end, inner, ok := scanToken(line, start)
		if !ok {
			// Malformed candidate: re-scan from just past this opener so
			// an inner << can still start its own token.
			i = start + 1
			continue
		}

		out = append(out, Marker{Start: start, End: end, Inner: inner})
		i = end
	}
}

// scanToken scans a marker starting at start, which must point at the
// first byte of an opening delimiter. It fails on an empty token, a
// non-word character, or an unterminated opener.
func scanToken(line string, start int) (end int, inner string, ok bool) {
	i := start + len(OpenDelim)
	tokenStart := i
	for i < len(line) && isWordChar(line[i]) {
		i++
	}
	if i == tokenStart {
		return 0, "", false
	}
	if !strings.HasPrefix(line[i:], CloseDelim) {
		return 0, "", false
	}
	return i + len(CloseDelim), line[tokenStart:i], true
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
