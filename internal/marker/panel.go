package marker

import "strings"

// Row is one raw input record before normalization.
type Row struct {
	Name   string
	Status string
	Line   int // 1-based physical line in the source file
}

// Panel maps canonical marker names to their tested status for one sample.
// It is built once from input and never mutated afterwards.
type Panel struct {
	status map[string]Status

	// Notes collects non-fatal observations made while building the panel,
	// e.g. a tolerated same-value duplicate row.
	Notes []string
}

// parseStatus normalizes a raw status cell. ok is false when the value is
// neither present- nor absent-equivalent.
func parseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "present":
		return Present, true
	case "absent":
		return Absent, true
	}
	return Unknown, false
}

// isHeader reports whether a row looks like the literal column header.
func isHeader(r Row) bool {
	return strings.EqualFold(strings.TrimSpace(r.Name), "marker") &&
		strings.EqualFold(strings.TrimSpace(r.Status), "status")
}

// Build constructs a Panel from raw rows.
//
// The first row is skipped as a header when it carries the literal tokens
// marker/status and its status cell does not itself parse as a valid call.
// Unrecognized marker names and unparseable statuses are ParseErrors naming
// the offending row. A marker repeated with the same status is tolerated with
// a note; repeated with a different status it is a DuplicateMarkerError.
func Build(rows []Row) (*Panel, error) {
	p := &Panel{status: make(map[string]Status, len(rows))}

	for i, row := range rows {
		st, ok := parseStatus(row.Status)
		if i == 0 && !ok && isHeader(row) {
			continue
		}
		if !ok {
			return nil, &ParseError{
				Row:    row.Line,
				Text:   row.Status,
				Reason: "status must be present or absent",
			}
		}

		name, known := Canonicalize(row.Name)
		if !known {
			return nil, &ParseError{
				Row:    row.Line,
				Text:   row.Name,
				Reason: "unrecognized marker name",
			}
		}

		if prev, seen := p.status[name]; seen {
			if prev != st {
				return nil, &DuplicateMarkerError{Marker: name, First: prev, Second: st}
			}
			p.Notes = append(p.Notes, "duplicate row for "+name+" with identical status; ignored")
			continue
		}
		p.status[name] = st
	}

	return p, nil
}

// Has reports whether the marker was tested.
func (p *Panel) Has(name string) bool {
	_, ok := p.status[name]
	return ok
}

// StatusOf returns the tested status, or Unknown when the marker is not in
// the panel.
func (p *Panel) StatusOf(name string) Status {
	return p.status[name]
}

// Len returns the number of distinct tested markers.
func (p *Panel) Len() int { return len(p.status) }

// Missing returns the required markers not present in the panel, preserving
// the order of the required slice.
func (p *Panel) Missing(required []string) []string {
	var out []string
	for _, name := range required {
		if !p.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
