// package viscosity implements the L4 shear-viscous stress shared by
// iso2d (constant kinematic coefficient) and euler2d (alpha-viscosity
// derived from local disk scale height), spec §4.6.
package viscosity

import "math"

// StrainTensor returns the trace-free strain-rate tensor components
// from the centered velocity gradients (spec §4.6):
//
//	sxx = (4/3)*dvx/dx - (2/3)*dvy/dy
//	syy = (4/3)*dvy/dy - (2/3)*dvx/dx
//	sxy = syx = dvx/dy + dvy/dx
func StrainTensor(dvxdx, dvxdy, dvydx, dvydy float64) (sxx, syy, sxy float64) {
	sxx = (4.0/3.0)*dvxdx - (2.0/3.0)*dvydy
	syy = (4.0/3.0)*dvydy - (2.0/3.0)*dvxdx
	sxy = dvxdy + dvydx
	return
}

// ScaleHeight returns the local disk scale height h = sqrt(p/Sigma) /
// sqrt(omegaK2), where omegaK2 is the sum of the point masses'
// Keplerian angular frequency squared at the zone's location (spec
// §4.6).
func ScaleHeight(p, sigma, omegaK2 float64) float64 {
	return math.Sqrt(p/sigma) / math.Sqrt(omegaK2)
}

// KinematicViscosity returns nu = alpha*h*cs, the alpha-viscosity
// kinematic coefficient (spec §4.6). Callers dispatch the purely
// inviscid branch themselves when alpha == 0, skipping strain
// evaluation entirely (spec §4.6: "omits the shear-strain evaluation
// entirely").
func KinematicViscosity(alpha, h, cs float64) float64 {
	return alpha * h * cs
}
