package common

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimals results are shown with.
const DisplayPlaces = 2

// Round rounds v half away from zero to the given number of decimal places.
// Rounding is done in decimal so values like 2.675 round the way they are
// written. NaN and infinities are returned unchanged.
func Round(v float64, places int32) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FormatFixed formats v with exactly the given number of decimal places.
// NaN and infinities are formatted as NaN, +Inf and -Inf.
func FormatFixed(v float64, places int32) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
