package euler2d

import (
	"math"

	"github.com/cpmech/sailfish/eos"
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

func directionalFlux(cons [NCONS]float64, pres, vn float64, dirX bool, energy float64) [NCONS]float64 {
	var f [NCONS]float64
	f[ISigma] = vn * cons[ISigma]
	f[IPx] = vn * cons[IPx]
	f[IPy] = vn * cons[IPy]
	if dirX {
		f[IPx] += pres
	} else {
		f[IPy] += pres
	}
	f[IEnergy] = vn * (energy + pres)
	return f
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

// cellViscousStress returns (tauxx, tauyy, tauxy) = nu*Sigma*s_ij at
// the cell centered by z, with nu derived from the local disk scale
// height (spec §4.6).
func cellViscousStress(z mesh.Zone, e eos.EOS, theta, alpha, dx, dy, omegaK2 float64) (tauxx, tauyy, tauxy, vx, vy float64) {
	self := z.Self()
	sigma, pres := self[ISigma], self[IPressure]
	cs := math.Sqrt(e.SoundSpeedSquared(0, 0, sigma, pres))
	h := viscosity.ScaleHeight(pres, sigma, omegaK2)
	nu := viscosity.KinematicViscosity(alpha, h, cs)
	dvxdx, dvydx, dvxdy, dvydy := velocityGradients(z, theta, dx, dy)
	sxx, syy, sxy := viscosity.StrainTensor(dvxdx, dvxdy, dvydx, dvydy)
	return nu * sigma * sxx, nu * sigma * syy, nu * sigma * sxy, self[IVx], self[IVy]
}

// AdvanceRK performs one RK substep over the interior of patch p (spec
// §4.9, §6). checkpoint holds the stage-0 conserved state
// (interior-only); primitiveRead is the guarded primitive state at the
// start of this substep; primitiveWrite receives the guarded, updated
// primitive state (only the interior portion is written; guard zones
// are the driver's responsibility).
func AdvanceRK(p mesh.Patch, checkpoint, primitiveRead, primitiveWrite []float64, cfg Config, mode exec.Mode) {
	theta := cfg.Params.ThetaPLM
	dt := cfg.Params.Dt
	gamma := cfg.EOS.Gamma

	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		z := p.ZoneAt(primitiveRead, i, j)
		x, y := p.X(i), p.Y(j)

		xStencil := [5][]float64{z.At(-2, 0), z.At(-1, 0), z.Self(), z.At(1, 0), z.At(2, 0)}
		yStencil := [5][]float64{z.At(0, -2), z.At(0, -1), z.Self(), z.At(0, 1), z.At(0, 2)}

		wl, wr, el, er := plmPair(theta, xStencil)
		sl, sr, nl, nr := plmPair(theta, yStencil)

		var uWL, uWR, uEL, uER, uSL, uSR, uNL, uNR [NCONS]float64
		primitiveToConserved(wl[:], uWL[:], cfg.EOS)
		primitiveToConserved(wr[:], uWR[:], cfg.EOS)
		primitiveToConserved(el[:], uEL[:], cfg.EOS)
		primitiveToConserved(er[:], uER[:], cfg.EOS)
		primitiveToConserved(sl[:], uSL[:], cfg.EOS)
		primitiveToConserved(sr[:], uSR[:], cfg.EOS)
		primitiveToConserved(nl[:], uNL[:], cfg.EOS)
		primitiveToConserved(nr[:], uNR[:], cfg.EOS)

		cs2W := cfg.EOS.SoundSpeedSquared(0, 0, wl[ISigma], wl[IPressure])
		cs2E := cfg.EOS.SoundSpeedSquared(0, 0, el[ISigma], el[IPressure])
		cs2S := cfg.EOS.SoundSpeedSquared(0, 0, sl[ISigma], sl[IPressure])
		cs2N := cfg.EOS.SoundSpeedSquared(0, 0, nl[ISigma], nl[IPressure])

		fWL := directionalFlux(uWL, wl[IPressure], wl[IVx], true, uWL[IEnergy])
		fWR := directionalFlux(uWR, wr[IPressure], wr[IVx], true, uWR[IEnergy])
		fEL := directionalFlux(uEL, el[IPressure], el[IVx], true, uEL[IEnergy])
		fER := directionalFlux(uER, er[IPressure], er[IVx], true, uER[IEnergy])
		fSL := directionalFlux(uSL, sl[IPressure], sl[IVy], false, uSL[IEnergy])
		fSR := directionalFlux(uSR, sr[IPressure], sr[IVy], false, uSR[IEnergy])
		fNL := directionalFlux(uNL, nl[IPressure], nl[IVy], false, uNL[IEnergy])
		fNR := directionalFlux(uNR, nr[IPressure], nr[IVy], false, uNR[IEnergy])

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

		if cfg.Params.Alpha > 0 {
			omegaK2 := gravity.OmegaKSquaredSum(cfg.Masses, x, y)
			zWest := p.ZoneAt(primitiveRead, i-1, j)
			zEast := p.ZoneAt(primitiveRead, i+1, j)
			zSouth := p.ZoneAt(primitiveRead, i, j-1)
			zNorth := p.ZoneAt(primitiveRead, i, j+1)

			txxC, tyyC, txyC, vxC, vyC := cellViscousStress(z, cfg.EOS, theta, cfg.Params.Alpha, p.Dx, p.Dy, omegaK2)
			txxW, _, txyW, vxW, vyW := cellViscousStress(zWest, cfg.EOS, theta, cfg.Params.Alpha, p.Dx, p.Dy, omegaK2)
			txxE, _, txyE, vxE, vyE := cellViscousStress(zEast, cfg.EOS, theta, cfg.Params.Alpha, p.Dx, p.Dy, omegaK2)
			_, tyyS, txyS, vxS, vyS := cellViscousStress(zSouth, cfg.EOS, theta, cfg.Params.Alpha, p.Dx, p.Dy, omegaK2)
			_, tyyN, txyN, vxN, vyN := cellViscousStress(zNorth, cfg.EOS, theta, cfg.Params.Alpha, p.Dx, p.Dy, omegaK2)

			fluxW[IPx] -= 0.5 * (txxW + txxC)
			fluxW[IPy] -= 0.5 * (txyW + txyC)
			fluxE[IPx] -= 0.5 * (txxE + txxC)
			fluxE[IPy] -= 0.5 * (txyE + txyC)
			fluxS[IPy] -= 0.5 * (tyyS + tyyC)
			fluxS[IPx] -= 0.5 * (txyS + txyC)
			fluxN[IPy] -= 0.5 * (tyyN + tyyC)
			fluxN[IPx] -= 0.5 * (txyN + txyC)

			// viscous energy flux v.tau, averaged across each face
			fluxW[IEnergy] -= 0.5 * (vxW*txxW + vyW*txyW + vxC*txxC + vyC*txyC)
			fluxE[IEnergy] -= 0.5 * (vxE*txxE + vyE*txyE + vxC*txxC + vyC*txyC)
			fluxS[IEnergy] -= 0.5 * (vxS*txyS + vyS*tyyS + vxC*txyC + vyC*tyyC)
			fluxN[IEnergy] -= 0.5 * (vxN*txyN + vyN*tyyN + vxC*txyC + vyC*tyyC)
		}

		uOld := make([]float64, NCONS)
		primitiveToConserved(z.Self(), uOld, cfg.EOS)

		dU := make([]float64, NCONS)
		for k := 0; k < NCONS; k++ {
			dU[k] = -dt * ((fluxE[k]-fluxW[k])/p.Dx + (fluxN[k]-fluxS[k])/p.Dy)
		}

		self := z.Self()
		eps := self[IPressure] / (gamma - 1) / self[ISigma]
		src := gravity.Sum(cfg.Masses, x, y, self[ISigma], self[IVx], self[IVy], eps, true)
		dU[ISigma] += dt * src.DSigma
		dU[IPx] += dt * src.DPx
		dU[IPy] += dt * src.DPy
		dU[IEnergy] += dt * src.DEnergy

		if cfg.Params.CoolingCoeff > 0 {
			dU[IEnergy] += Cool(eps, self[ISigma], dt, cfg.Params.CoolingCoeff)
		}

		uNew := make([]float64, NCONS)
		for k := 0; k < NCONS; k++ {
			uNew[k] = uOld[k] + dU[k]
		}
		applyBuffer(cfg.Buffer, uNew, x, y, dt, gamma)

		ck := checkpoint[(i*p.Nj+j)*NCONS : (i*p.Nj+j)*NCONS+NCONS]
		uOut := make([]float64, NCONS)
		rk := cfg.Params.RKParam
		for k := 0; k < NCONS; k++ {
			uOut[k] = (1-rk)*uNew[k] + rk*ck[k]
		}

		primOut := p.ZoneAt(primitiveWrite, i, j).Self()
		conservedToPrimitive(uOut, cfg.Params, cfg.EOS, primOut)
	})
}
