package engine

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Parse Tests
// ============================================================================

func TestParse_WellFormed(t *testing.T) {
	table, err := Parse("name,age\nAlice,20\nBob,30\nCharlie,40")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.NumberOfColumns() != 2 {
		t.Errorf("expected 2 columns, got %d", table.NumberOfColumns())
	}
	if table.NumberOfRows() != 3 {
		t.Errorf("expected 3 rows, got %d", table.NumberOfRows())
	}
	if table.Headers[0] != "name" || table.Headers[1] != "age" {
		t.Errorf("unexpected headers: %v", table.Headers)
	}
	if table.Rows[1][0] != "Bob" || table.Rows[1][1] != "30" {
		t.Errorf("unexpected row: %v", table.Rows[1])
	}
}

func TestParse_RowCountExcludesHeader(t *testing.T) {
	raw := "a,b\n1,2\n3,4"
	lineCount := len(strings.Split(raw, "\n"))

	table, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.NumberOfRows() != lineCount-1 {
		t.Errorf("expected %d rows, got %d", lineCount-1, table.NumberOfRows())
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n", " \t\n"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("expected error for input %q, got nil", raw)
		}
	}
}

func TestParse_ColumnCountMismatch(t *testing.T) {
	_, err := Parse("a,b,c\n1,2,3\n1,2\n4,5,6")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %T", err)
	}

	if malformed.Row != 2 {
		t.Errorf("expected row 2, got %d", malformed.Row)
	}
	if malformed.Actual != 2 {
		t.Errorf("expected actual count 2, got %d", malformed.Actual)
	}
	if malformed.Expected != 3 {
		t.Errorf("expected expected count 3, got %d", malformed.Expected)
	}

	want := "invalid CSV format: row 2 has 2 columns, expected 3"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestParse_TrailingNewlineTolerated(t *testing.T) {
	table, err := Parse("a,b\n1,2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.NumberOfRows() != 1 {
		t.Errorf("expected 1 row, got %d", table.NumberOfRows())
	}
}

func TestParse_InteriorBlankLineRejected(t *testing.T) {
	_, err := Parse("a,b\n1,2\n\n3,4")
	if err == nil {
		t.Fatal("expected error for interior blank line, got nil")
	}

	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %T", err)
	}
	if malformed.Row != 2 {
		t.Errorf("expected row 2, got %d", malformed.Row)
	}
}

func TestParse_PreservesEmptyTrailingCells(t *testing.T) {
	table, err := Parse("a,b,c\n1,,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := table.Rows[0]
	if len(row) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(row))
	}
	if row[1] != "" || row[2] != "" {
		t.Errorf("expected empty trailing cells, got %v", row)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	table, err := Parse("a,b,c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.NumberOfRows() != 0 {
		t.Errorf("expected 0 rows, got %d", table.NumberOfRows())
	}
	if table.NumberOfColumns() != 3 {
		t.Errorf("expected 3 columns, got %d", table.NumberOfColumns())
	}
}

// ============================================================================
// Table.Column Tests
// ============================================================================

func TestTable_Column(t *testing.T) {
	table, err := Parse("name,age\nAlice,20\nBob,30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ages := table.Column(1)
	if len(ages) != 2 {
		t.Fatalf("expected 2 values, got %d", len(ages))
	}
	if ages[0] != "20" || ages[1] != "30" {
		t.Errorf("unexpected column values: %v", ages)
	}
}
