// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// less reports a < b under loose comparison: two strings compare
// bytewise, anything else compares numerically after coercion. A value
// that does not coerce to a number is neither less nor greater than
// anything, so mixed text and numbers in one column leave some pairs
// unordered.
func less(a, b types.Cell) bool {
	if a.Kind == types.CellString && b.Kind == types.CellString {
		return a.Str < b.Str
	}
	x, y := toNumber(a), toNumber(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	return x < y
}

// toNumber coerces a cell to a number. Blank strings are 0; absent cells
// and non-numeric strings are NaN.
func toNumber(c types.Cell) float64 {
	switch c.Kind {
	case types.CellNumber:
		return c.Num
	case types.CellString:
		s := strings.TrimFunc(c.Str, unicode.IsSpace)
		if s == "" {
			return 0
		}
		switch s {
		case "Infinity", "+Infinity":
			return math.Inf(1)
		case "-Infinity":
			return math.Inf(-1)
		}
		if strings.ContainsAny(s, "iInN_xXpP") {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// numericOrZero is toNumber with NaN replaced by 0.
func numericOrZero(c types.Cell) float64 {
	f := toNumber(c)
	if math.IsNaN(f) {
		return 0
	}
	return f
}
