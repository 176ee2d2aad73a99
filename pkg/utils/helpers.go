package utils

import (
	"math"
	"strconv"
)

// Clamp limits a value between min and max
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places, half away from zero
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// RoundInt rounds half away from zero and returns an int
func RoundInt(value float64) int {
	r := math.Round(value)
	if r == 0 {
		return 0 // avoid "-0"
	}
	return int(r)
}

// FormatFloat renders f with the fewest digits that round-trip
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
