package marker

// Range is a cursor or selection span in the document, End exclusive.
// A caret is a zero-width range.
type Range struct {
	Start int
	End   int
}

// Selection returns the range a caller should apply to select m: exactly
// the marker span, delimiters included.
func Selection(m Marker) Range {
	return Range{Start: m.Start, End: m.End}
}

// Next returns the first marker starting strictly after current.End,
// wrapping to the first marker overall when none follows. Returns nil
// only when markers is empty.
func Next(markers []Marker, current Range) *Marker {
	if len(markers) == 0 {
		return nil
	}
	for i := range markers {
		if markers[i].Start > current.End {
			return &markers[i]
		}
	}
	return &markers[0]
}

// Prev returns the last marker ending strictly before current.Start,
// wrapping to the last marker overall when none precedes. Returns nil
// only when markers is empty.
func Prev(markers []Marker, current Range) *Marker {
	if len(markers) == 0 {
		return nil
	}
	for i := len(markers) - 1; i >= 0; i-- {
		if markers[i].End < current.Start {
			return &markers[i]
		}
	}
	return &markers[len(markers)-1]
}
