package engine

import (
	"fmt"
	"strings"
)

// Table holds a parsed CSV document: the header row and the data rows.
// Every row has exactly len(Headers) cells; Parse enforces this.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NumberOfRows returns the count of data rows (the header is not a data row).
func (t *Table) NumberOfRows() int { return len(t.Rows) }

// NumberOfColumns returns the header cell count.
func (t *Table) NumberOfColumns() int { return len(t.Headers) }

// Column returns the cell values of column i in row order.
// Panics if i is out of range, matching slice indexing semantics.
func (t *Table) Column(i int) []string {
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// MalformedInputError reports CSV input the parser cannot accept: blank input,
// or a data row whose cell count differs from the header's.
type MalformedInputError struct {
	Row      int // 1-based data row index; 0 when the whole input is at fault
	Actual   int // cell count found on the offending row
	Expected int // header cell count
	msg      string
}

func (e *MalformedInputError) Error() string { return e.msg }

// Parse splits raw CSV text into headers and data rows.
//
// Rows are separated by '\n' and cells by ',' with no quoting support.
// Trailing empty cells are preserved, so "a,b," parses as three cells.
// Trailing empty lines are dropped, so input ending in a newline does not
// produce a phantom empty row; an interior blank line still counts as a row
// and fails column validation like any other short row.
//
// Returns a *MalformedInputError if the input is blank or any data row's cell
// count differs from the header's. The whole input is rejected on the first
// bad row; no partial result is returned.
func Parse(raw string) (*Table, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &MalformedInputError{msg: "CSV data cannot be empty"}
	}

	lines := strings.Split(raw, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	headers := strings.Split(lines[0], ",")
	rows := make([][]string, 0, len(lines)-1)

	for i := 1; i < len(lines); i++ {
		cells := strings.Split(lines[i], ",")
		if len(cells) != len(headers) {
			return nil, &MalformedInputError{
				Row:      i,
				Actual:   len(cells),
				Expected: len(headers),
				msg: fmt.Sprintf("invalid CSV format: row %d has %d columns, expected %d",
					i, len(cells), len(headers)),
			}
		}
		rows = append(rows, cells)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
