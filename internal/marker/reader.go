package marker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFile reads a two-column tab-separated marker file into raw rows.
// Rows keep their 1-based line numbers so later errors can cite them.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func readRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var rows []Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(record) == 1 && record[0] == "" {
			continue
		}
		if len(record) < 2 {
			return nil, &ParseError{
				Row:    line,
				Text:   record[0],
				Reason: "expected two tab-separated columns",
			}
		}
		rows = append(rows, Row{Name: record[0], Status: record[1], Line: line})
	}

	if len(rows) == 0 {
		return nil, errors.New("empty marker file")
	}
	return rows, nil
}
