// package buffer implements the L4 Keplerian outer-boundary damping
// zone (spec §4.5): an annulus where the conserved state is relaxed
// toward a prescribed circular-Keplerian reference.
package buffer

import "math"

// Ramp selects between the preferred linear onset ramp and the legacy
// max(r,1) ramp kept only for reproducing older runs (spec §9 open
// question: the linear ramp is preferred).
type Ramp int

const (
	RampLinear Ramp = iota
	RampLegacyMaxR1
)

// Kind discriminates the buffer-zone variant (spec §3: BufferZone).
type Kind int

const (
	None Kind = iota
	Keplerian
)

// Buffer is the tagged-variant buffer zone. None carries no fields;
// Keplerian carries the full parameter set below.
type Buffer struct {
	Kind Kind

	SurfaceDensity  float64
	SurfacePressure float64
	CentralMass     float64
	DrivingRate     float64
	OuterRadius     float64
	OnsetWidth      float64
	RampKind        Ramp
}

// ramp returns the dimensionless onset factor at radius r, which is
// zero at r_onset and one at r_outer for the linear ramp.
func (b Buffer) ramp(r, rOnset float64) float64 {
	switch b.RampKind {
	case RampLegacyMaxR1:
		return math.Max(r, 1)
	default:
		return (r - rOnset) / (b.OuterRadius - rOnset)
	}
}

// Rate returns the relaxation rate omega_outer*driving_rate*ramp(r) at
// radius r (spec §4.5), or 0 outside the onset annulus r > rOuter -
// onsetWidth, or if Kind == None.
func (b Buffer) Rate(r float64) float64 {
	if b.Kind != Keplerian {
		return 0
	}
	rOnset := b.OuterRadius - b.OnsetWidth
	if r <= rOnset {
		return 0
	}
	omegaOuter := math.Sqrt(b.CentralMass / (rOnset * rOnset * rOnset))
	return omegaOuter * b.DrivingRate * b.ramp(r, rOnset)
}

// Reference returns the circular-Keplerian reference surface density
// and momentum components at (x, y): U0 = (Sigma_b, p_f*(-y/r, x/r))
// (spec §4.5). px0, py0 are reference momentum components directly, not
// surface-density-scaled velocities: callers recovering a reference
// velocity (euler2d's energy row) must divide by sigma0 themselves.
func (b Buffer) Reference(x, y float64) (sigma0, px0, py0 float64) {
	r := math.Hypot(x, y)
	sigma0 = b.SurfaceDensity
	px0 = b.SurfacePressure * (-y / r)
	py0 = b.SurfacePressure * (x / r)
	return
}

// Apply relaxes the conserved state u (mass, px, py) toward the
// circular-Keplerian reference at (x, y), in place, for a zone with dt
// the local timestep: U <- U - (U - U0)*rate*dt. It is a no-op outside
// the onset annulus, or entirely if Kind == None. Callers with an
// energy row (euler2d) relax it separately with Rate and their own
// reference energy, since the reference energy depends on the EOS.
func (b Buffer) Apply(u []float64, x, y, dt float64) {
	r := math.Hypot(x, y)
	rate := b.Rate(r)
	if rate == 0 {
		return
	}
	sigma0, px0, py0 := b.Reference(x, y)
	u[0] -= (u[0] - sigma0) * rate * dt
	u[1] -= (u[1] - px0) * rate * dt
	u[2] -= (u[2] - py0) * rate * dt
}
