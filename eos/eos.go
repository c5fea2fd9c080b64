// package eos implements the equation-of-state tagged variant (L1):
// the sound-speed law shared by iso2d, euler2d and cbdisodg_2d.
//
// This mirrors the tagged-model pattern used by the teacher's mreten
// and msolid packages (a discriminated Kind plus a small set of
// closed variants) but is specialized to the three EOS flavors the
// core needs: there is no open-ended model registry here, so a plain
// exhaustive switch replaces the allocator-map machinery those
// packages use for their much larger families of constitutive models.
package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kind discriminates the equation-of-state variant. The numeric values
// are bit-stable at the external interface boundary (spec §6).
type Kind int

const (
	Isothermal Kind = iota + 1
	LocallyIsothermal
	GammaLaw
)

// EOS is the tagged-variant equation of state. Exactly one of the
// fields is meaningful, selected by Kind; all three are kept inline
// (rather than behind an interface) because the set is closed and the
// hot path (SoundSpeedSquared, called once per zone per substep) must
// not allocate or go through a dynamic dispatch.
type EOS struct {
	Kind Kind

	// Cs2 is the isothermal sound speed squared, used when Kind == Isothermal.
	Cs2 float64

	// Mach2 is the locally-isothermal Mach number squared (cs² = GM/(Mach²·r)),
	// used when Kind == LocallyIsothermal.
	Mach2 float64

	// Gamma is the adiabatic index, used when Kind == GammaLaw.
	Gamma float64
}

// NewIsothermal returns an EOS with a globally constant sound speed squared.
func NewIsothermal(cs2 float64) EOS { return EOS{Kind: Isothermal, Cs2: cs2} }

// NewLocallyIsothermal returns an EOS whose sound speed depends on the
// local distance from a central mass via a fixed disk aspect ratio.
func NewLocallyIsothermal(mach2 float64) EOS { return EOS{Kind: LocallyIsothermal, Mach2: mach2} }

// NewGammaLaw returns a gamma-law (adiabatic) EOS.
func NewGammaLaw(gamma float64) EOS { return EOS{Kind: GammaLaw, Gamma: gamma} }

// SoundSpeedSquared returns cs² for a zone at squared-distance r2 from
// the central mass with central mass centralMass, given pressure p and
// surface density sigma for the gamma-law branch. Non-gamma-law
// branches ignore p and sigma; the gamma-law branch ignores r2 and
// centralMass.
func (e EOS) SoundSpeedSquared(r2, centralMass, sigma, p float64) float64 {
	switch e.Kind {
	case Isothermal:
		return e.Cs2
	case LocallyIsothermal:
		return centralMass / (e.Mach2 * math.Sqrt(r2))
	case GammaLaw:
		return e.Gamma * p / sigma
	default:
		panic(chk.Err("eos: unreachable Kind %d", e.Kind))
	}
}

// Pressure returns the pressure implied by this EOS for a zone of
// surface density sigma, used by the non-relativistic flux and source
// routines. For GammaLaw the energy equation supplies pressure
// directly instead (see euler2d), so this is only meaningful for the
// two isothermal variants.
func (e EOS) Pressure(r2, centralMass, sigma float64) float64 {
	switch e.Kind {
	case Isothermal, LocallyIsothermal:
		return sigma * e.SoundSpeedSquared(r2, centralMass, sigma, 0)
	case GammaLaw:
		panic(chk.Err("eos: Pressure is not defined for GammaLaw; use the energy equation"))
	default:
		panic(chk.Err("eos: unreachable Kind %d", e.Kind))
	}
}
