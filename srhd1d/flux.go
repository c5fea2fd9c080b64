package srhd1d

import (
	"math"

	"github.com/cpmech/sailfish/riemann"
)

// stateFlux returns the directional flux F=(vn*D, vn*S+p, S-vn*D,
// vn*D*s) and the outer wavespeeds (lm, lp) for a reconstructed
// primitive/conserved pair (spec §4.3).
func stateFlux(prim, cons []float64, gamma float64) (flux [NCONS]float64, lm, lp float64) {
	rho, u1, p := prim[IRho], prim[IU1], prim[IP]
	w2 := 1 + u1*u1
	w := math.Sqrt(w2)
	v1 := u1 / w
	v2 := v1 * v1
	h := 1 + gamma*p/((gamma-1)*rho)
	a2 := gamma * p / (rho * h)

	flux[ID] = v1 * cons[ID]
	flux[ISc] = v1*cons[ISc] + p
	flux[ITau] = cons[ISc] - v1*cons[ID]
	flux[IDs] = v1 * cons[IDs]

	lm, lp = riemann.WavespeedsSRHD(v1, v2, a2)
	return
}
