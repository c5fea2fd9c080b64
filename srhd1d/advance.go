package srhd1d

import (
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/limiter"
	"github.com/cpmech/sailfish/mesh"
	"github.com/cpmech/sailfish/riemann"
)

func gradient(theta float64, yl, y0, yr []float64) [NCONS]float64 {
	var g [NCONS]float64
	for k := 0; k < NCONS; k++ {
		g[k] = limiter.Minmod(theta, yl[k], y0[k], yr[k])
	}
	return g
}

// plmFaces reconstructs the left/right primitive states bordering the
// center cell of a 5-wide stencil (spec §4.1, §5): west-left,
// west-right, east-left, east-right.
func plmFaces(theta float64, stencil [5][]float64) (wl, wr, el, er [NCONS]float64) {
	gradM1 := gradient(theta, stencil[0], stencil[1], stencil[2])
	grad0 := gradient(theta, stencil[1], stencil[2], stencil[3])
	gradP1 := gradient(theta, stencil[2], stencil[3], stencil[4])
	for k := 0; k < NCONS; k++ {
		wl[k] = stencil[1][k] + 0.5*gradM1[k]
		wr[k] = stencil[2][k] - 0.5*grad0[k]
		el[k] = stencil[2][k] + 0.5*grad0[k]
		er[k] = stencil[3][k] - 0.5*gradP1[k]
	}
	return
}

func faceFlux(solver Riemann, uL, uR, fL, fR []float64, lmL, lpL, lmR, lpR, vface float64) []float64 {
	if solver == UseHLLC {
		return riemann.HLLC(uL, uR, fL, fR, lmL, lpL, lmR, lpR, vface)
	}
	return riemann.HLLESRHD(uL, uR, fL, fR, lmL, lpL, lmR, lpR, vface)
}

// AdvanceRK performs one RK substep over the interior of an n-zone 1D
// mesh, dispatched under mode (spec §4.9, §4.10, §5, §6). checkpoint
// holds the stage-0 conserved state (interior-only); primitiveRead is
// the guarded primitive state (ng=2) at the start of this substep;
// conservedWrite receives the interior-only updated conserved state --
// SRHD writes conserved_wr, unlike iso2d/euler2d's fused primitive
// writeback (spec §4.9).
func AdvanceRK(fm mesh.FaceMesh, checkpoint, primitiveRead, conservedWrite []float64, cfg Config, mode exec.Mode) {
	n := fm.Ni()
	ng := 2
	theta := cfg.Params.ThetaPLM
	dt := cfg.Params.Dt

	exec.Zone1D(mode, n, func(i int) {
		ck := checkpoint[i*NCONS : i*NCONS+NCONS]
		out := conservedWrite[i*NCONS : i*NCONS+NCONS]

		if (i == 0 && cfg.Params.FixI0) || (i == n-1 && cfg.Params.FixI1) {
			copy(out, ck)
			return
		}

		stencil := [5][]float64{
			zoneAt(primitiveRead, i-2, ng),
			zoneAt(primitiveRead, i-1, ng),
			zoneAt(primitiveRead, i, ng),
			zoneAt(primitiveRead, i+1, ng),
			zoneAt(primitiveRead, i+2, ng),
		}
		wl, wr, el, er := plmFaces(theta, stencil)

		var uWL, uWR, uEL, uER [NCONS]float64
		primitiveToConserved(wl[:], uWL[:], cfg.Gamma)
		primitiveToConserved(wr[:], uWR[:], cfg.Gamma)
		primitiveToConserved(el[:], uEL[:], cfg.Gamma)
		primitiveToConserved(er[:], uER[:], cfg.Gamma)

		fWL, lmWL, lpWL := stateFlux(wl[:], uWL[:], cfg.Gamma)
		fWR, lmWR, lpWR := stateFlux(wr[:], uWR[:], cfg.Gamma)
		fEL, lmEL, lpEL := stateFlux(el[:], uEL[:], cfg.Gamma)
		fER, lmER, lpER := stateFlux(er[:], uER[:], cfg.Gamma)

		xl, xr := fm.XL(i), fm.XL(i+1)
		vfaceW := cfg.ExpansionRate * xl
		vfaceE := cfg.ExpansionRate * xr

		fluxW := faceFlux(cfg.Params.Solver, uWL[:], uWR[:], fWL[:], fWR[:], lmWL, lpWL, lmWR, lpWR, vfaceW)
		fluxE := faceFlux(cfg.Params.Solver, uEL[:], uER[:], fEL[:], fER[:], lmEL, lpEL, lmER, lpER, vfaceE)

		areaW := mesh.FaceArea(cfg.Coords, xl)
		areaE := mesh.FaceArea(cfg.Coords, xr)
		dv := mesh.VolumeElement(cfg.Coords, xl, xr)

		uOld := zoneAt(primitiveRead, i, ng)
		uOldCons := make([]float64, NCONS)
		primitiveToConserved(uOld, uOldCons, cfg.Gamma)

		cellPressure := uOld[IP]
		src := geometricSource(cfg.Coords, cellPressure, xl, xr)

		uNew := make([]float64, NCONS)
		for k := 0; k < NCONS; k++ {
			uNew[k] = uOldCons[k] + dt*(-(fluxE[k]*areaE-fluxW[k]*areaW)/dv+src[k])
		}

		rk := cfg.Params.RKParam
		for k := 0; k < NCONS; k++ {
			out[k] = (1-rk)*uNew[k] + rk*ck[k]
		}
	})
}
