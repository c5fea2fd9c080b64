// package srhd1d implements the 1D special-relativistic hydrodynamics
// solver (spec §1): PLM reconstruction, HLLE/HLLC Riemann flux,
// Newton-iterated conservative->primitive inversion, spherical
// geometric source terms, and homologous mesh expansion.
package srhd1d

import "github.com/cpmech/sailfish/mesh"

// NCONS is the number of conserved/primitive components per zone:
// (rho, u1, p, s) for primitives, (D, S, tau, D*s) for conserved.
const NCONS = 4

// Primitive component indices.
const (
	IRho = 0
	IU1  = 1
	IP   = 2
	IS   = 3
)

// Conserved component indices, matching riemann.HLLC's layout.
const (
	ID   = 0
	ISc  = 1
	ITau = 2
	IDs  = 3
)

// Riemann selects the Riemann solver used by AdvanceRK.
type Riemann int

const (
	UseHLLE Riemann = iota
	UseHLLC
)

// Params bundles the tunable numerical parameters of one advance_rk
// call (spec §4.1, §4.2, §4.10).
type Params struct {
	ThetaPLM float64

	// MachMax caps the specific internal energy floor after inversion
	// (spec §4.2): eps_min = u^2/(1+u^2)/MachMax^2.
	MachMax float64

	// FixI0, FixI1 skip the update for the first/last interior zone,
	// supporting moving-boundary setups (spec §4.10).
	FixI0, FixI1 bool

	Solver Riemann

	RKParam float64
	Dt      float64
}

// DefaultParams returns the parameter set used throughout the test
// suite: theta=2.0 (spec §4.1), MachMax=1e6, HLLC.
func DefaultParams() Params {
	return Params{
		ThetaPLM: 2.0,
		MachMax:  1e6,
		Solver:   UseHLLC,
		RKParam:  0,
	}
}

// Config is the full per-call configuration of AdvanceRK (spec §6);
// PrimitiveToConserved and ConservedToPrimitive take their inputs
// directly. SRHD carries no point-mass or buffer source
// (spec §4.4 names only iso2d, euler2d, cbdisodg_2d); its only source
// term is the geometric one in spherical coordinates (spec §4.8).
type Config struct {
	Gamma  float64
	Coords mesh.Coords

	// ExpansionRate is adot/a for a homologously expanding mesh
	// (x = a(t)*y); zero for a static mesh. Each face moves at
	// vface = ExpansionRate * x_face (spec §3). The outer wavespeeds
	// passed to the Riemann solver are lab-frame estimates; they are not
	// boosted by the face velocity.
	ExpansionRate float64

	Params Params
}
