package marker

import "fmt"

// ParseError reports a malformed input row. Row is 1-based and refers to the
// physical line in the input file, header included.
type ParseError struct {
	Row    int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s (got %q)", e.Row, e.Reason, e.Text)
}

// DuplicateMarkerError reports the same marker appearing twice with
// conflicting statuses. Ambiguous clinical input is never silently resolved.
type DuplicateMarkerError struct {
	Marker string
	First  Status
	Second Status
}

func (e *DuplicateMarkerError) Error() string {
	return fmt.Sprintf("marker %s reported twice with conflicting statuses (%s, then %s)",
		e.Marker, e.First, e.Second)
}
