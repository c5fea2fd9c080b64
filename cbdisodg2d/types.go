// package cbdisodg2d implements the experimental 2D isothermal
// discontinuous-Galerkin variant (spec §4.11): modal Legendre weights
// per zone instead of cell averages, with the same HLLE flux, PLM-free
// (basis-limited) reconstruction, point-mass source and Keplerian
// buffer as iso2d.
package cbdisodg2d

import (
	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/dg"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/gravity"
)

// NCONS is the number of conserved/primitive components per zone:
// (Sigma, vx, vy) for primitives, (Sigma, px, py) for conserved.
const NCONS = 3

// NPOLY is the number of 2D modal weights per component (spec §4.11).
const NPOLY = dg.NPOLY

// ZoneWidth is the flat scalar width of one zone's state: NCONS
// components, each NPOLY modal weights, component-major.
const ZoneWidth = NCONS * NPOLY

// Component indices, shared by the primitive and conserved layouts.
const (
	ISigma = 0
	IVx    = 1
	IVy    = 2
	IPx    = 1
	IPy    = 2
)

// Weights returns the NPOLY-wide modal weight slice for component q
// within a ZoneWidth-wide zone slice (component-major layout).
func Weights(zone []float64, q int) []float64 {
	return zone[q*NPOLY : q*NPOLY+NPOLY]
}

// Params bundles the tunable numerical parameters of one advance_rk
// call (spec §4.9, §4.11).
type Params struct {
	RKParam float64
	Dt      float64
}

// DefaultParams returns the default parameter set (RK1, RKParam=0);
// Dt is left at zero for the caller to set.
func DefaultParams() Params {
	return Params{RKParam: 0}
}

// Config is the full per-call configuration (spec §6, §4.4, §4.5).
type Config struct {
	EOS    eos.EOS
	Buffer buffer.Buffer
	Masses []gravity.PointMass
	Params Params
}
