// package dg implements the modal Legendre basis and Gauss-quadrature
// tables shared by cbdisodg_2d (spec §4.11): a 2D tensor-product basis
// phi_l(x,y) = P_m(xi)*P_n(eta), m+n<3, truncated to NPOLY=6 modes, and
// the node/weight tables used for the volume and surface integrals.
package dg

// NPOLY is the number of 2D modes (total polynomial order <= 2).
const NPOLY = 6

// modeOrders lists (m, n) for each mode index l, in the order the
// spec's NPOLY=6 truncation enumerates them.
var modeOrders = [NPOLY][2]int{
	{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2},
}

// legendreP evaluates the scaled Legendre polynomial of order m at xi
// in [-1, 1]; only orders 0..2 are needed.
func legendreP(m int, xi float64) float64 {
	switch m {
	case 0:
		return 1
	case 1:
		return xi
	case 2:
		return 0.5 * (3*xi*xi - 1)
	default:
		panic("dg: legendreP order > 2 not supported by this truncation")
	}
}

// legendrePPrime evaluates d/dxi of the scaled Legendre polynomial of
// order m at xi.
func legendrePPrime(m int, xi float64) float64 {
	switch m {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 3 * xi
	default:
		panic("dg: legendrePPrime order > 2 not supported by this truncation")
	}
}

// Phi evaluates basis function l at (xi, eta) in [-1,1]^2.
func Phi(l int, xi, eta float64) float64 {
	m, n := modeOrders[l][0], modeOrders[l][1]
	return legendreP(m, xi) * legendreP(n, eta)
}

// GradPhi evaluates (dphi/dxi, dphi/deta) of basis function l at
// (xi, eta).
func GradPhi(l int, xi, eta float64) (dxi, deta float64) {
	m, n := modeOrders[l][0], modeOrders[l][1]
	dxi = legendrePPrime(m, xi) * legendreP(n, eta)
	deta = legendreP(m, xi) * legendrePPrime(n, eta)
	return
}

// Evaluate reconstructs u(xi,eta) = sum_l w[l]*phi_l(xi,eta) for one
// conserved/primitive component's NPOLY modal weights w.
func Evaluate(w []float64, xi, eta float64) float64 {
	var u float64
	for l := 0; l < NPOLY; l++ {
		u += w[l] * Phi(l, xi, eta)
	}
	return u
}

// legendreMass1D is integral_{-1}^{1} P_m(xi)^2 dxi = 2/(2m+1).
func legendreMass1D(m int) float64 {
	return 2.0 / (2*float64(m) + 1)
}

// MassRef is the reference-element (xi,eta in [-1,1]^2) L2 mass-matrix
// diagonal entry for mode l: integral phi_l^2 dxi deta. The basis is
// orthogonal (distinct tensor-product Legendre modes), so the mass
// matrix is diagonal and no off-diagonal terms need representing.
func MassRef(l int) float64 {
	m, n := modeOrders[l][0], modeOrders[l][1]
	return legendreMass1D(m) * legendreMass1D(n)
}
