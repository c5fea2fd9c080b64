package srhd1d

import (
	"math"

	"github.com/cpmech/sailfish/mesh"
)

// geometricSource returns the spherical geometric source term (spec
// §4.8): only the radial momentum row carries p*(xr^2-xl^2)*4*pi; all
// other rows are zero. Cartesian coordinates contribute nothing.
func geometricSource(coords mesh.Coords, p, xl, xr float64) [NCONS]float64 {
	var src [NCONS]float64
	if coords == mesh.Spherical {
		src[ISc] = p * (xr*xr - xl*xl) * 4 * math.Pi
	}
	return src
}
