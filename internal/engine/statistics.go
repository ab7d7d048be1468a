package engine

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// ColumnStatistics describes one column of a parsed table.
//
// Mean and Median are non-nil only for INTEGER and DECIMAL columns with at
// least one parseable numeric value. StandardDeviation is the sample standard
// deviation (n-1 denominator) and is non-nil only when at least two numeric
// values exist. NullCount + non-null count always equals the table's row count.
type ColumnStatistics struct {
	ColumnName        string     `json:"columnName"`
	NullCount         int        `json:"nullCount"`
	UniqueCount       int        `json:"uniqueCount"`
	InferredType      ColumnType `json:"inferredType"`
	Mean              *float64   `json:"mean"`
	Median            *float64   `json:"median"`
	StandardDeviation *float64   `json:"standardDeviation"`
}

// AnalyzeColumn computes statistics for a column given its per-row cell
// values in original order. It infers the column type from the distinct
// trimmed non-null values, then computes numeric aggregates when the type
// is INTEGER or DECIMAL.
//
// A cell is null when its trimmed value is empty. Unique counting is
// case-sensitive and value-sensitive: "1" and "1.0" are distinct. Non-empty
// cells that fail to parse as a float are excluded from the numeric
// aggregates.
func AnalyzeColumn(name string, values []string) ColumnStatistics {
	cs := ColumnStatistics{ColumnName: name}

	distinct := make(map[string]struct{})
	numeric := make([]float64, 0, len(values))

	for _, v := range values {
		value := strings.TrimSpace(v)
		if value == "" {
			cs.NullCount++
			continue
		}
		distinct[value] = struct{}{}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			numeric = append(numeric, f)
		}
	}

	cs.UniqueCount = len(distinct)

	distinctValues := make([]string, 0, len(distinct))
	for v := range distinct {
		distinctValues = append(distinctValues, v)
	}
	cs.InferredType = InferType(distinctValues)

	if cs.InferredType != TypeInteger && cs.InferredType != TypeDecimal {
		return cs
	}
	if len(numeric) == 0 {
		return cs
	}

	if mean, err := stats.Mean(numeric); err == nil {
		cs.Mean = &mean
	}
	if median, err := stats.Median(numeric); err == nil {
		cs.Median = &median
	}
	if len(numeric) >= 2 {
		if sd, err := stats.StandardDeviationSample(numeric); err == nil {
			cs.StandardDeviation = &sd
		}
	}

	return cs
}
