package cbdisodg2d

import (
	"github.com/cpmech/sailfish/dg"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/mesh"
)

// project fills outModes (NPOLY-wide) with the L2 projection of the
// pointwise function sampled at the 3x3 Gauss grid (values indexed
// [i][j]) onto the orthogonal modal basis.
func project(values [3][3]float64, outModes []float64) {
	for l := 0; l < NPOLY; l++ {
		var acc float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				acc += dg.GaussWeights3[i] * dg.GaussWeights3[j] * values[i][j] * dg.Phi(l, dg.GaussNodes3[i], dg.GaussNodes3[j])
			}
		}
		outModes[l] = acc / dg.MassRef(l)
	}
}

// evalAt3x3 samples the modal field w at every node of the 3x3 Gauss
// grid.
func evalAt3x3(w []float64) (out [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = dg.Evaluate(w, dg.GaussNodes3[i], dg.GaussNodes3[j])
		}
	}
	return
}

// PrimitiveToConserved converts every interior zone's primitive modal
// weights (guarded, ng=1) to conserved modal weights (interior-only),
// by evaluating the primitive field at the 3x3 Gauss grid, forming the
// pointwise conserved state there, and L2-projecting back onto the
// modal basis (spec §4.11, §6).
func PrimitiveToConserved(p mesh.Patch, primitiveIn, conservedOut []float64, mode exec.Mode) {
	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		zone := p.ZoneAt(primitiveIn, i, j).Self()
		sigmaPts := evalAt3x3(Weights(zone, ISigma))
		vxPts := evalAt3x3(Weights(zone, IVx))
		vyPts := evalAt3x3(Weights(zone, IVy))

		var pxPts, pyPts [3][3]float64
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				pxPts[a][b] = sigmaPts[a][b] * vxPts[a][b]
				pyPts[a][b] = sigmaPts[a][b] * vyPts[a][b]
			}
		}

		out := conservedOut[(i*p.Nj+j)*ZoneWidth : (i*p.Nj+j)*ZoneWidth+ZoneWidth]
		project(sigmaPts, Weights(out, ISigma))
		project(pxPts, Weights(out, IPx))
		project(pyPts, Weights(out, IPy))
	})
}

// pointPrimitiveFromConserved recovers the pointwise primitive state
// (Sigma, vx, vy) from a pointwise conserved sample (Sigma, px, py);
// isothermal/locally-isothermal EOS needs no energy inversion, unlike
// euler2d or srhd1d (spec §4.2).
func pointPrimitiveFromConserved(sigma, px, py float64) (s, vx, vy float64) {
	return sigma, px / sigma, py / sigma
}
