// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// Equal returns whether a and b are equal to within tolerance
func Equal(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// SliceEqual returns whether a and b hold equal values to within
// tolerance, elementwise
func SliceEqual(a, b []float64, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}

// Sum calculates and returns the sum of a list of float64s
func Sum(floats ...float64) float64 {
	sum := 0.0
	for _, val := range floats {
		sum += val
	}
	return sum
}
