package iso2d

import (
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/gravity"
	"github.com/cpmech/sailfish/limiter"
	"github.com/cpmech/sailfish/mesh"
	"github.com/cpmech/sailfish/riemann"
	"github.com/cpmech/sailfish/viscosity"
)

// plmPair reconstructs the four one-sided face states (west-left,
// west-right, east-left, east-right) bordering the center cell of a
// 5-wide stencil, from the theta-minmod limited gradients of the three
// cells spanning each face (spec §4.1, §5).
func plmPair(theta float64, stencil [5][]float64) (uWL, uWR, uEL, uER [NCONS]float64) {
	gradM1 := gradient(theta, stencil[0], stencil[1], stencil[2])
	grad0 := gradient(theta, stencil[1], stencil[2], stencil[3])
	gradP1 := gradient(theta, stencil[2], stencil[3], stencil[4])
	for k := 0; k < NCONS; k++ {
		uWL[k] = stencil[1][k] + 0.5*gradM1[k]
		uWR[k] = stencil[2][k] - 0.5*grad0[k]
		uEL[k] = stencil[2][k] + 0.5*grad0[k]
		uER[k] = stencil[3][k] - 0.5*gradP1[k]
	}
	return
}

func gradient(theta float64, yl, y0, yr []float64) [NCONS]float64 {
	var g [NCONS]float64
	for k := 0; k < NCONS; k++ {
		g[k] = limiter.Minmod(theta, yl[k], y0[k], yr[k])
	}
	return g
}

func velocityGradients(z mesh.Zone, theta, dx, dy float64) (dvxdx, dvydx, dvxdy, dvydy float64) {
	xl, x0, xr := z.At(-1, 0), z.Self(), z.At(1, 0)
	yl, y0, yr := z.At(0, -1), z.Self(), z.At(0, 1)
	dvxdx = limiter.Minmod(theta, xl[IVx], x0[IVx], xr[IVx]) / dx
	dvydx = limiter.Minmod(theta, xl[IVy], x0[IVy], xr[IVy]) / dx
	dvxdy = limiter.Minmod(theta, yl[IVx], y0[IVx], yr[IVx]) / dy
	dvydy = limiter.Minmod(theta, yl[IVy], y0[IVy], yr[IVy]) / dy
	return
}

// viscousStress returns (tauxx, tauyy, tauxy) = nu*Sigma*s_ij at the
// cell centered by z (spec §4.6).
func viscousStress(z mesh.Zone, theta, nu, dx, dy float64) (tauxx, tauyy, tauxy float64) {
	sigma := z.Self()[ISigma]
	dvxdx, dvydx, dvxdy, dvydy := velocityGradients(z, theta, dx, dy)
	sxx, syy, sxy := viscosity.StrainTensor(dvxdx, dvxdy, dvydx, dvydy)
	return nu * sigma * sxx, nu * sigma * syy, nu * sigma * sxy
}

func directionalFlux(cons [NCONS]float64, p, vn float64, dirX bool) [NCONS]float64 {
	var f [NCONS]float64
	f[ISigma] = vn * cons[ISigma]
	f[IPx] = vn * cons[IPx]
	f[IPy] = vn * cons[IPy]
	if dirX {
		f[IPx] += p
	} else {
		f[IPy] += p
	}
	return f
}

// AdvanceRK performs one RK substep over the interior of patch p (spec
// §4.9, §6). checkpoint holds the stage-0 conserved state
// (interior-only, (Sigma,px,py)); primitiveRead is the guarded
// primitive state at the start of this substep; primitiveWrite
// receives the guarded, updated primitive state (only the interior
// portion is written; guard zones are the driver's responsibility).
func AdvanceRK(p mesh.Patch, checkpoint, primitiveRead, primitiveWrite []float64, cfg Config, mode exec.Mode) {
	theta := cfg.Params.ThetaPLM
	dt := cfg.Params.Dt

	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		z := p.ZoneAt(primitiveRead, i, j)
		x, y := p.X(i), p.Y(j)

		xStencil := [5][]float64{z.At(-2, 0), z.At(-1, 0), z.Self(), z.At(1, 0), z.At(2, 0)}
		yStencil := [5][]float64{z.At(0, -2), z.At(0, -1), z.Self(), z.At(0, 1), z.At(0, 2)}

		wl, wr, el, er := plmPair(theta, xStencil)
		sl, sr, nl, nr := plmPair(theta, yStencil)

		pressureAt := func(xx, yy, sigma float64) float64 {
			return cfg.EOS.Pressure(xx*xx+yy*yy, centralMassOf(cfg.Masses), sigma)
		}

		var uWL, uWR, uEL, uER, uSL, uSR, uNL, uNR [NCONS]float64
		primitiveToConserved(wl[:], uWL[:])
		primitiveToConserved(wr[:], uWR[:])
		primitiveToConserved(el[:], uEL[:])
		primitiveToConserved(er[:], uER[:])
		primitiveToConserved(sl[:], uSL[:])
		primitiveToConserved(sr[:], uSR[:])
		primitiveToConserved(nl[:], uNL[:])
		primitiveToConserved(nr[:], uNR[:])

		cMass := centralMassOf(cfg.Masses)
		cs2W := cfg.EOS.SoundSpeedSquared((x-0.5*p.Dx)*(x-0.5*p.Dx)+y*y, cMass, wl[ISigma], 0)
		cs2E := cfg.EOS.SoundSpeedSquared((x+0.5*p.Dx)*(x+0.5*p.Dx)+y*y, cMass, el[ISigma], 0)
		cs2S := cfg.EOS.SoundSpeedSquared(x*x+(y-0.5*p.Dy)*(y-0.5*p.Dy), cMass, sl[ISigma], 0)
		cs2N := cfg.EOS.SoundSpeedSquared(x*x+(y+0.5*p.Dy)*(y+0.5*p.Dy), cMass, nl[ISigma], 0)

		pWl := pressureAt(x-0.5*p.Dx, y, wl[ISigma])
		pWr := pressureAt(x-0.5*p.Dx, y, wr[ISigma])
		pEl := pressureAt(x+0.5*p.Dx, y, el[ISigma])
		pEr := pressureAt(x+0.5*p.Dx, y, er[ISigma])
		pSl := pressureAt(x, y-0.5*p.Dy, sl[ISigma])
		pSr := pressureAt(x, y-0.5*p.Dy, sr[ISigma])
		pNl := pressureAt(x, y+0.5*p.Dy, nl[ISigma])
		pNr := pressureAt(x, y+0.5*p.Dy, nr[ISigma])

		fWL := directionalFlux(uWL, pWl, wl[IVx], true)
		fWR := directionalFlux(uWR, pWr, wr[IVx], true)
		fEL := directionalFlux(uEL, pEl, el[IVx], true)
		fER := directionalFlux(uER, pEr, er[IVx], true)
		fSL := directionalFlux(uSL, pSl, sl[IVy], false)
		fSR := directionalFlux(uSR, pSr, sr[IVy], false)
		fNL := directionalFlux(uNL, pNl, nl[IVy], false)
		fNR := directionalFlux(uNR, pNr, nr[IVy], false)

		lmWL, lpWL := riemann.WavespeedsNonRel(wl[IVx], cs2W)
		lmWR, lpWR := riemann.WavespeedsNonRel(wr[IVx], cs2W)
		lmEL, lpEL := riemann.WavespeedsNonRel(el[IVx], cs2E)
		lmER, lpER := riemann.WavespeedsNonRel(er[IVx], cs2E)
		lmSL, lpSL := riemann.WavespeedsNonRel(sl[IVy], cs2S)
		lmSR, lpSR := riemann.WavespeedsNonRel(sr[IVy], cs2S)
		lmNL, lpNL := riemann.WavespeedsNonRel(nl[IVy], cs2N)
		lmNR, lpNR := riemann.WavespeedsNonRel(nr[IVy], cs2N)

		fluxW := riemann.HLLENonRel(uWL[:], uWR[:], fWL[:], fWR[:], lmWL, lpWL, lmWR, lpWR)
		fluxE := riemann.HLLENonRel(uEL[:], uER[:], fEL[:], fER[:], lmEL, lpEL, lmER, lpER)
		fluxS := riemann.HLLENonRel(uSL[:], uSR[:], fSL[:], fSR[:], lmSL, lpSL, lmSR, lpSR)
		fluxN := riemann.HLLENonRel(uNL[:], uNR[:], fNL[:], fNR[:], lmNL, lpNL, lmNR, lpNR)

		if cfg.Params.Nu > 0 {
			zWest := p.ZoneAt(primitiveRead, i-1, j)
			zEast := p.ZoneAt(primitiveRead, i+1, j)
			zSouth := p.ZoneAt(primitiveRead, i, j-1)
			zNorth := p.ZoneAt(primitiveRead, i, j+1)
			txxC, tyyC, txyC := viscousStress(z, theta, cfg.Params.Nu, p.Dx, p.Dy)
			txxW, _, txyW := viscousStress(zWest, theta, cfg.Params.Nu, p.Dx, p.Dy)
			txxE, _, txyE := viscousStress(zEast, theta, cfg.Params.Nu, p.Dx, p.Dy)
			_, tyyS, txyS := viscousStress(zSouth, theta, cfg.Params.Nu, p.Dx, p.Dy)
			_, tyyN, txyN := viscousStress(zNorth, theta, cfg.Params.Nu, p.Dx, p.Dy)

			fluxW[IPx] -= 0.5 * (txxW + txxC)
			fluxW[IPy] -= 0.5 * (txyW + txyC)
			fluxE[IPx] -= 0.5 * (txxE + txxC)
			fluxE[IPy] -= 0.5 * (txyE + txyC)
			fluxS[IPy] -= 0.5 * (tyyS + tyyC)
			fluxS[IPx] -= 0.5 * (txyS + txyC)
			fluxN[IPy] -= 0.5 * (tyyN + tyyC)
			fluxN[IPx] -= 0.5 * (txyN + txyC)
		}

		uOld := make([]float64, NCONS)
		primitiveToConserved(z.Self(), uOld)

		dU := make([]float64, NCONS)
		for k := 0; k < NCONS; k++ {
			dU[k] = -dt * ((fluxE[k]-fluxW[k])/p.Dx + (fluxN[k]-fluxS[k])/p.Dy)
		}

		src := gravity.Sum(cfg.Masses, x, y, z.Self()[ISigma], z.Self()[IVx], z.Self()[IVy], 0, false)
		dU[ISigma] += dt * src.DSigma
		dU[IPx] += dt * src.DPx
		dU[IPy] += dt * src.DPy

		uNew := make([]float64, NCONS)
		for k := 0; k < NCONS; k++ {
			uNew[k] = uOld[k] + dU[k]
		}
		cfg.Buffer.Apply(uNew, x, y, dt)

		ck := checkpoint[(i*p.Nj+j)*NCONS : (i*p.Nj+j)*NCONS+NCONS]
		uOut := make([]float64, NCONS)
		rk := cfg.Params.RKParam
		for k := 0; k < NCONS; k++ {
			uOut[k] = (1-rk)*uNew[k] + rk*ck[k]
		}

		primOut := p.ZoneAt(primitiveWrite, i, j).Self()
		conservedToPrimitive(uOut, cfg.Params, primOut)
	})
}

// centralMassOf returns the mass of the (single, by convention the
// first) central gravitating body used for locally-isothermal sound
// speed evaluation; iso2d problems using LocallyIsothermal EOS always
// have exactly one central mass for this purpose even when a second,
// orbiting mass is also present (spec §4.2's M in cs^2=GM/(Mach^2 r)
// refers to the central object).
func centralMassOf(masses []gravity.PointMass) float64 {
	if len(masses) == 0 {
		return 0
	}
	return masses[0].Mass
}
