package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders the canonical text of a float payload: the
// shortest decimal that round trips through a float64, always
// carrying a decimal point or exponent so 1.0 can not be read back as
// the integer 1.
func FormatFloat(value float64) string {
	switch {
	case math.IsNaN(value):
		return "nan"
	case math.IsInf(value, 1):
		return "inf"
	case math.IsInf(value, -1):
		return "-inf"
	}

	res := strconv.FormatFloat(value, 'g', -1, 64)
	if !strings.ContainsAny(res, ".eE") {
		res += ".0"
	}
	return res
}
