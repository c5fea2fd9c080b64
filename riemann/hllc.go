package riemann

import "math"

// SRHD conserved-vector layout used by HLLC (spec §3: srhd_1d):
// (D, S, tau, D*s).
const (
	iD = iota
	iS
	iTau
	iDs
)

// HLLC computes the SRHD HLLC flux with a resolved contact (spec §4.3).
// uL, uR, fL, fR are the 4-component (D, S, tau, D*s) conserved states
// and fluxes on the left/right of the interface; lmL/lpL/lmR/lpR are
// the per-side outer signal speeds and vface is the (possibly moving)
// face velocity.
//
// Outside [am, ap] the solution is the same upwind flux HLLE would
// give. Inside, the contact speed vstar is the physically admissible
// root of a*vstar^2 + b*vstar + c = 0 built from the HLL flux/state,
// and the star-state pressure and jump conditions pick out the correct
// side's star state depending on vface vs vstar.
func HLLC(uL, uR, fL, fR []float64, lmL, lpL, lmR, lpR, vface float64) []float64 {
	am := math.Min(lmL, lmR)
	ap := math.Max(lpL, lpR)

	if vface <= am {
		out := make([]float64, 4)
		for i := range out {
			out[i] = fL[i] - vface*uL[i]
		}
		return out
	}
	if vface >= ap {
		out := make([]float64, 4)
		for i := range out {
			out[i] = fR[i] - vface*uR[i]
		}
		return out
	}

	fHll := make([]float64, 4)
	hlle(fHll, uL, uR, fL, fR, am, ap)
	uHll := make([]float64, 4)
	HllState(uHll, uL, uR, fL, fR, am, ap)

	a := fHll[iTau] + fHll[iD]
	b := -(uHll[iTau] + uHll[iD] + fHll[iS])
	c := uHll[iS]

	var vstar float64
	if math.Abs(a) < 1e-10 {
		vstar = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			disc = 0
		}
		vstar = (-b - math.Sqrt(disc)) / (2 * a)
	}
	pstar := -a*vstar + fHll[iS]

	var uSide, fSide []float64
	var lSide float64
	if vface <= vstar {
		uSide, fSide, lSide = uL, fL, am
	} else {
		uSide, fSide, lSide = uR, fR, ap
	}

	// Star state from the Rankine-Hugoniot jump across the lSide wave:
	// U* = (lSide*U - F + pstar*e_S) / (lSide - vstar), with the energy
	// (tau) row carrying pstar*vstar and the S row carrying pstar.
	uStar := make([]float64, 4)
	denom := lSide - vstar
	uStar[iD] = (lSide*uSide[iD] - fSide[iD]) / denom
	uStar[iS] = (lSide*uSide[iS] - fSide[iS] + pstar) / denom
	uStar[iTau] = (lSide*uSide[iTau] - fSide[iTau] + pstar*vstar) / denom
	uStar[iDs] = (lSide*uSide[iDs] - fSide[iDs]) / denom

	out := make([]float64, 4)
	for i := range out {
		out[i] = fSide[i] + lSide*(uStar[i]-uSide[i]) - vface*uStar[i]
	}
	return out
}
