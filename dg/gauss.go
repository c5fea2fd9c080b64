package dg

import "math"

// GaussNodes3 and GaussWeights3 are the 3-point Gauss-Legendre
// quadrature rule on [-1, 1], exact to degree 5 (spec §4.11).
var (
	gaussNode = math.Sqrt(3.0 / 5.0)

	GaussNodes3   = [3]float64{-gaussNode, 0, gaussNode}
	GaussWeights3 = [3]float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
)
