package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeColumn_IntegerColumn(t *testing.T) {
	cs := AnalyzeColumn("age", []string{"20", "30", "40"})

	require.Equal(t, TypeInteger, cs.InferredType)
	require.Equal(t, 0, cs.NullCount)
	require.Equal(t, 3, cs.UniqueCount)
	require.NotNil(t, cs.Mean)
	require.InDelta(t, 30.0, *cs.Mean, 0.0001)
	require.NotNil(t, cs.Median)
	require.InDelta(t, 30.0, *cs.Median, 0.0001)
	require.NotNil(t, cs.StandardDeviation)
	require.InDelta(t, 10.0, *cs.StandardDeviation, 0.01)
}

func TestAnalyzeColumn_DecimalColumn(t *testing.T) {
	cs := AnalyzeColumn("price", []string{"10.5", "20.5", "30.5"})

	require.Equal(t, TypeDecimal, cs.InferredType)
	require.NotNil(t, cs.Mean)
	require.InDelta(t, 20.5, *cs.Mean, 0.0001)
	require.NotNil(t, cs.Median)
	require.InDelta(t, 20.5, *cs.Median, 0.0001)
	require.NotNil(t, cs.StandardDeviation)
	require.Greater(t, *cs.StandardDeviation, 0.0)
}

func TestAnalyzeColumn_NullsExcludedFromStatistics(t *testing.T) {
	cs := AnalyzeColumn("score", []string{"10", "", "20", "", "30"})

	require.Equal(t, 2, cs.NullCount)
	require.Equal(t, 3, cs.UniqueCount)
	require.Equal(t, TypeInteger, cs.InferredType)
	require.NotNil(t, cs.Mean)
	require.InDelta(t, 20.0, *cs.Mean, 0.0001)
	require.NotNil(t, cs.Median)
	require.InDelta(t, 20.0, *cs.Median, 0.0001)
}

func TestAnalyzeColumn_SingleValueHasNoStandardDeviation(t *testing.T) {
	cs := AnalyzeColumn("n", []string{"42"})

	require.Equal(t, TypeInteger, cs.InferredType)
	require.NotNil(t, cs.Mean)
	require.InDelta(t, 42.0, *cs.Mean, 0.0001)
	require.NotNil(t, cs.Median)
	require.Nil(t, cs.StandardDeviation)
}

func TestAnalyzeColumn_MedianEvenCount(t *testing.T) {
	cs := AnalyzeColumn("n", []string{"1", "2", "3", "4"})

	require.NotNil(t, cs.Median)
	require.InDelta(t, 2.5, *cs.Median, 0.0001)
}

func TestAnalyzeColumn_MedianOddCount(t *testing.T) {
	cs := AnalyzeColumn("n", []string{"1", "2", "3", "4", "5"})

	require.NotNil(t, cs.Median)
	require.InDelta(t, 3.0, *cs.Median, 0.0001)
}

func TestAnalyzeColumn_MedianUnsortedInput(t *testing.T) {
	cs := AnalyzeColumn("n", []string{"40", "10", "30", "20"})

	require.NotNil(t, cs.Median)
	require.InDelta(t, 25.0, *cs.Median, 0.0001)
}

func TestAnalyzeColumn_StringColumnHasNoNumericStatistics(t *testing.T) {
	cs := AnalyzeColumn("name", []string{"Alice", "Bob", "Alice", ""})

	require.Equal(t, TypeString, cs.InferredType)
	require.Equal(t, 1, cs.NullCount)
	require.Equal(t, 2, cs.UniqueCount)
	require.Nil(t, cs.Mean)
	require.Nil(t, cs.Median)
	require.Nil(t, cs.StandardDeviation)
}

func TestAnalyzeColumn_BooleanColumnHasNoNumericStatistics(t *testing.T) {
	cs := AnalyzeColumn("active", []string{"true", "false", "TRUE"})

	require.Equal(t, TypeBoolean, cs.InferredType)
	require.Nil(t, cs.Mean)
	require.Nil(t, cs.Median)
	require.Nil(t, cs.StandardDeviation)
}

func TestAnalyzeColumn_UniqueCountIsValueSensitive(t *testing.T) {
	// "1" and "1.0" are distinct values even though they parse to the same float.
	cs := AnalyzeColumn("n", []string{"1", "1.0", "1"})

	require.Equal(t, 2, cs.UniqueCount)
	// Mixed integer/decimal forms make the column STRING.
	require.Equal(t, TypeString, cs.InferredType)
}

func TestAnalyzeColumn_AllNulls(t *testing.T) {
	cs := AnalyzeColumn("empty", []string{"", "  ", ""})

	require.Equal(t, 3, cs.NullCount)
	require.Equal(t, 0, cs.UniqueCount)
	require.Equal(t, TypeString, cs.InferredType)
	require.Nil(t, cs.Mean)
	require.Nil(t, cs.Median)
	require.Nil(t, cs.StandardDeviation)
}

func TestAnalyzeColumn_NullInvariant(t *testing.T) {
	values := []string{"10", "", "x", "  ", "30"}
	cs := AnalyzeColumn("v", values)

	nonNull := 0
	for _, v := range values {
		if v != "" && v != "  " {
			nonNull++
		}
	}
	require.Equal(t, len(values), cs.NullCount+nonNull)
}
