// package euler2d implements the 2D adiabatic (gamma-law) finite-volume
// solver (spec §1): PLM reconstruction, HLLE flux, alpha-viscosity
// derived from local disk scale height, beta-cooling, point-mass
// gravity and sinks, and a Keplerian buffer with an energy-row
// relaxation of its own.
package euler2d

import (
	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/gravity"
)

// NCONS is the number of conserved/primitive components per zone:
// (Sigma, vx, vy, p) for primitives, (Sigma, px, py, E) for conserved.
const NCONS = 4

// Component indices, shared by the primitive and conserved layouts.
const (
	ISigma    = 0
	IVx       = 1 // primitive: x-velocity
	IVy       = 2 // primitive: y-velocity
	IPressure = 3 // primitive: pressure
	IPx       = 1 // conserved: x-momentum
	IPy       = 2 // conserved: y-momentum
	IEnergy   = 3 // conserved: total energy
)

// Params bundles the tunable numerical parameters of one advance_rk
// call (spec §4.1, §4.6, §4.7, §4.9).
type Params struct {
	ThetaPLM        float64
	DensityFloor    float64
	PressureFloor   float64
	VelocityCeiling float64

	// Alpha is the dimensionless alpha-viscosity coefficient; Alpha==0
	// dispatches the purely inviscid branch (spec §4.6).
	Alpha float64

	// CoolingCoeff is c_beta in the implicit beta-cooling update;
	// CoolingCoeff==0 skips cooling entirely (spec §4.7).
	CoolingCoeff float64

	// RKParam is the convex-combination weight for this substep: 0 for
	// RK1, 1/2 for RK2, 2/3 for RK3/SSPRK3 (spec §4.9).
	RKParam float64

	Dt float64
}

// DefaultParams returns the parameter set used throughout the test
// suite: theta=1.5 (spec §4.1), generous floors/ceilings, viscosity
// and cooling off.
func DefaultParams() Params {
	return Params{
		ThetaPLM:        1.5,
		DensityFloor:    1e-12,
		PressureFloor:   1e-12,
		VelocityCeiling: 1e8,
		Alpha:           0,
		CoolingCoeff:    0,
		RKParam:         0,
	}
}

// Config is the full per-call configuration of AdvanceRK (spec §6);
// PrimitiveToConserved and MaxWavespeeds take their inputs directly.
type Config struct {
	EOS    eos.EOS
	Buffer buffer.Buffer
	Masses []gravity.PointMass
	Params Params
}
