package utils

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var float_testcases = []struct {
	value    float64
	expected string
}{
	{0, "0.0"},
	{1, "1.0"},
	{-1, "-1.0"},
	{3.14, "3.14"},
	{0.5, "0.5"},
	{1e21, "1e+21"},
	{-2.5e-8, "-2.5e-08"},
	{math.NaN(), "nan"},
	{math.Inf(1), "inf"},
	{math.Inf(-1), "-inf"},
}

func TestFormatFloat(t *testing.T) {
	for _, testcase := range float_testcases {
		assert.Equal(t, testcase.expected, FormatFloat(testcase.value))
	}
}

// Finite values must parse back to the same float64.
func TestFormatFloatRoundTrip(t *testing.T) {
	for _, value := range []float64{
		0, 1, -1, 3.14, 0.1, 1.0 / 3.0, 1e21, -2.5e-8,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
	} {
		parsed, err := strconv.ParseFloat(FormatFloat(value), 64)
		assert.NoError(t, err)
		assert.Equal(t, value, parsed)
	}
}
