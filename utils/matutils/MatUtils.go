// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// IntRows converts a matrix of integral values into one []int per row
func IntRows(X mat.Matrix) [][]int {
	r, c := X.Dims()

	rows := make([][]int, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]int, c)
		for j := 0; j < c; j++ {
			rows[i][j] = int(X.At(i, j))
		}
	}
	return rows
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	for i := 0; i < length; i++ {
		oneSlice[i] = 1.0
	}
	return mat.NewVecDense(length, oneSlice)
}
