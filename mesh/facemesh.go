package mesh

import "math"

// Coords discriminates the coordinate system of a srhd1d FaceMesh
// (spec §6: stable at the external interface boundary).
type Coords int

const (
	Cartesian Coords = iota
	Spherical
)

// FaceMesh is the srhd1d 1D mesh: an ordered sequence of ni+1 comoving
// face positions, scaled by a homologous expansion factor to give
// physical face positions (spec §3): xl = scale_factor * yl.
type FaceMesh struct {
	Yl          []float64
	ScaleFactor float64
}

// Ni returns the number of interior cells.
func (m FaceMesh) Ni() int { return len(m.Yl) - 1 }

// XL returns the physical position of face i.
func (m FaceMesh) XL(i int) float64 { return m.ScaleFactor * m.Yl[i] }

// Center returns the physical position of the center of cell i.
func (m FaceMesh) Center(i int) float64 { return 0.5 * (m.XL(i) + m.XL(i+1)) }

// VolumeElement returns the finite-volume cell volume between faces at
// xl and xr under the given coordinate system (spec §4.2): x_r - x_l
// for Cartesian, (x_r^3 - x_l^3)*4*pi/3 for spherical.
func VolumeElement(c Coords, xl, xr float64) float64 {
	switch c {
	case Spherical:
		return (xr*xr*xr - xl*xl*xl) * 4.0 * math.Pi / 3.0
	default:
		return xr - xl
	}
}

// FaceArea returns the face area at physical position x under the
// given coordinate system (spec §4.2): 1 for Cartesian, 4*pi*x^2 for
// spherical.
func FaceArea(c Coords, x float64) float64 {
	switch c {
	case Spherical:
		return 4.0 * math.Pi * x * x
	default:
		return 1.0
	}
}
