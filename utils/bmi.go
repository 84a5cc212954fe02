package utils

import "math"

// CalculateBMI computes an imperial BMI from height in feet+inches and
// weight in pounds, rounded half-away-from-zero to one decimal place.
// The second return is false when BMI is undefined for the inputs
// (missing height or weight); that is not an error condition.
func CalculateBMI(heightFt, heightIn int, weightLbs float64) (float64, bool) {
	if heightFt <= 0 || weightLbs <= 0 {
		return 0, false
	}
	totalIn := heightFt*12 + heightIn
	if totalIn <= 0 {
		return 0, false
	}
	bmi := (weightLbs / float64(totalIn*totalIn)) * 703
	return math.Round(bmi*10) / 10, true
}
