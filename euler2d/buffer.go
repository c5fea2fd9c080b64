package euler2d

import (
	"math"

	"github.com/cpmech/sailfish/buffer"
)

// applyBuffer relaxes the conserved state u (Sigma, px, py, E) toward
// the circular-Keplerian reference, including the energy row that
// buffer.Buffer leaves to EOS-aware callers (spec §4.5): the reference
// energy is built from the buffer's reference pressure field and the
// reference circular velocity.
func applyBuffer(b buffer.Buffer, u []float64, x, y, dt, gamma float64) {
	r := math.Hypot(x, y)
	rate := b.Rate(r)
	if rate == 0 {
		return
	}
	sigma0, px0, py0 := b.Reference(x, y)
	v0x, v0y := px0/sigma0, py0/sigma0
	e0 := b.SurfacePressure/(gamma-1) + 0.5*sigma0*(v0x*v0x+v0y*v0y)

	u[ISigma] -= (u[ISigma] - sigma0) * rate * dt
	u[IPx] -= (u[IPx] - px0) * rate * dt
	u[IPy] -= (u[IPy] - py0) * rate * dt
	u[IEnergy] -= (u[IEnergy] - e0) * rate * dt
}
