package engine

import (
	"regexp"
	"strings"
)

// ColumnType classifies a column from its distinct non-null values.
type ColumnType string

const (
	TypeBoolean ColumnType = "BOOLEAN"
	TypeInteger ColumnType = "INTEGER"
	TypeDecimal ColumnType = "DECIMAL"
	TypeString  ColumnType = "STRING"
)

var (
	// integerPattern: optional leading minus, one or more digits.
	integerPattern = regexp.MustCompile(`^-?\d+$`)

	// decimalPattern: optional leading minus, zero or more digits, a literal
	// decimal point, then one or more digits. Disjoint from integerPattern,
	// so "42" is never DECIMAL and "4.2" is never INTEGER.
	decimalPattern = regexp.MustCompile(`^-?\d*\.\d+$`)
)

// InferType derives a column's type from its distinct non-null values.
//
// The result is BOOLEAN if every value case-insensitively equals "true" or
// "false", else INTEGER if every value matches integerPattern, else DECIMAL
// if every value matches decimalPattern, else STRING. An empty value set is
// STRING.
//
// The result is a pure function of the value set: order and duplicates never
// change it. Once some value has ruled out all three candidate types the scan
// stops early; the outcome is STRING either way.
func InferType(values []string) ColumnType {
	if len(values) == 0 {
		return TypeString
	}

	allBooleans := true
	allIntegers := true
	allDecimals := true

	for _, v := range values {
		value := strings.TrimSpace(v)

		if !strings.EqualFold(value, "true") && !strings.EqualFold(value, "false") {
			allBooleans = false
		}
		if !integerPattern.MatchString(value) {
			allIntegers = false
		}
		if !decimalPattern.MatchString(value) {
			allDecimals = false
		}

		if !allBooleans && !allIntegers && !allDecimals {
			break
		}
	}

	switch {
	case allBooleans:
		return TypeBoolean
	case allIntegers:
		return TypeInteger
	case allDecimals:
		return TypeDecimal
	default:
		return TypeString
	}
}
