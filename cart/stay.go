package cart

import "time"

// Nights counts the nights in a stay. Zero when the range is empty or
// inverted; partial days round down to whole nights.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// StayTotal prices a room stay.
func StayTotal(nightlyRate float64, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return nightlyRate * float64(nights)
}
