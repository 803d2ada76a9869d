package wizard

import (
	"math"
	"time"
)

// Nights computes the number of nights between check-in and check-out
// as the ceiling of the day span, so a pair spanning a partial day still
// counts as a full night. Equal dates yield 0 and reversed dates a
// negative count; both block step one. Unset dates yield 0.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// TotalCost is the nightly price times the night count. No taxes, fees
// or rounding beyond the unit price's own precision.
func TotalCost(nightlyPrice float64, nights int) float64 {
	return nightlyPrice * float64(nights)
}
