// package riemann implements the L3 flux and wavespeed routines shared
// by iso2d, euler2d and srhd1d: directional outer signal speeds and the
// HLLE Riemann solver common to all three, plus the SRHD-only HLLC
// variant with a resolved contact (hllc.go).
package riemann

import "math"

// WavespeedsNonRel returns the outer signal speeds lambda- and lambda+
// for a non-relativistic flow with normal velocity vn and sound speed
// squared cs2 (spec §4.3): lambda = vn +/- sqrt(cs2).
func WavespeedsNonRel(vn, cs2 float64) (lm, lp float64) {
	a := math.Sqrt(cs2)
	return vn - a, vn + a
}

// HLLENonRel computes the HLLE flux for the non-relativistic (iso2d,
// euler2d) Riemann problem. The outer speeds are clamped to include
// zero (am = min(0, lmL, lmR), ap = max(0, lpL, lpR)) so that upwinding
// never reverses sign at a near-stagnant interface (spec §4.3).
func HLLENonRel(uL, uR, fL, fR []float64, lmL, lpL, lmR, lpR float64) []float64 {
	am := math.Min(0, math.Min(lmL, lmR))
	ap := math.Max(0, math.Max(lpL, lpR))
	out := make([]float64, len(uL))
	hlle(out, uL, uR, fL, fR, am, ap)
	return out
}

// hlle fills out with the HLL flux combination given the (already
// decided) outer speeds am < ap: clamped to include zero by
// HLLENonRel, unclamped when called from HLLESRHD and HLLC.
func hlle(out, uL, uR, fL, fR []float64, am, ap float64) {
	denom := ap - am
	for i := range out {
		out[i] = (ap*fL[i] - am*fR[i] + am*ap*(uR[i]-uL[i])) / denom
	}
}

// WavespeedsSRHD returns the full relativistic outer signal speeds for
// a direction with four-velocity-derived normal velocity vn, squared
// three-velocity v2, local sound speed squared a2 = gamma*p/(rho*h)
// (spec §4.3):
//
//	lambda± = [vn(1-a2) ± sqrt(a2(1-v2)(1 - v2*a2 - vn²(1-a2)))] / (1 - v2*a2)
func WavespeedsSRHD(vn, v2, a2 float64) (lm, lp float64) {
	disc := a2 * (1 - v2) * (1 - v2*a2 - vn*vn*(1-a2))
	if disc < 0 {
		disc = 0
	}
	root := math.Sqrt(disc)
	denom := 1 - v2*a2
	lm = (vn*(1-a2) - root) / denom
	lp = (vn*(1-a2) + root) / denom
	return
}

// HLLESRHD computes the HLL flux for the SRHD Riemann problem, honoring
// an optionally moving face at velocity vface (spec §4.3). The outer
// speeds are NOT clamped to include zero, unlike HLLENonRel -- the
// relativistic estimate is already well-behaved at stagnation.
//
// When am < vface < ap, the HLL flux in the face frame,
// F_hll - vface*U_hll, is returned. Outside that bracket the flow is
// entirely super/sub-sonic relative to the face and the unique upwind
// flux (minus vface*U from that side) is returned instead.
func HLLESRHD(uL, uR, fL, fR []float64, lmL, lpL, lmR, lpR, vface float64) []float64 {
	am := math.Min(lmL, lmR)
	ap := math.Max(lpL, lpR)
	n := len(uL)
	out := make([]float64, n)
	if vface <= am {
		for i := 0; i < n; i++ {
			out[i] = fL[i] - vface*uL[i]
		}
		return out
	}
	if vface >= ap {
		for i := 0; i < n; i++ {
			out[i] = fR[i] - vface*uR[i]
		}
		return out
	}
	hlle(out, uL, uR, fL, fR, am, ap)
	uHll := make([]float64, n)
	HllState(uHll, uL, uR, fL, fR, am, ap)
	for i := 0; i < n; i++ {
		out[i] -= vface * uHll[i]
	}
	return out
}

// HllState fills out with the HLL star-region conserved state
//
//	U_hll = (ap*U_R - am*U_L + F_L - F_R) / (ap - am)
//
// used by both HLLESRHD and HLLC to form the face-frame flux/state.
func HllState(out, uL, uR, fL, fR []float64, am, ap float64) {
	denom := ap - am
	for i := range out {
		out[i] = (ap*uR[i] - am*uL[i] + fL[i] - fR[i]) / denom
	}
}
