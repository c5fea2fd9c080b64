package cbdisodg2d

import (
	"github.com/cpmech/sailfish/buffer"
	"github.com/cpmech/sailfish/dg"
	"github.com/cpmech/sailfish/eos"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/gravity"
	"github.com/cpmech/sailfish/mesh"
	"github.com/cpmech/sailfish/riemann"
)

func directionalFluxPoint(sigma, vx, vy, p, vn float64, dirX bool) [NCONS]float64 {
	var f [NCONS]float64
	f[ISigma] = vn * sigma
	f[IPx] = vn * sigma * vx
	f[IPy] = vn * sigma * vy
	if dirX {
		f[IPx] += p
	} else {
		f[IPy] += p
	}
	return f
}

// centralMassOf returns the mass of the (by convention, first) central
// gravitating body used for locally-isothermal sound-speed evaluation
// (spec §4.2), matching the same convention iso2d uses.
func centralMassOf(masses []gravity.PointMass) float64 {
	if len(masses) == 0 {
		return 0
	}
	return masses[0].Mass
}

// volumeTerm accumulates, for each component q and mode l, the
// reference-element integral of F.grad(phi_l) over the 3x3 Gauss grid
// (spec §4.11).
func volumeTerm(zone []float64, e eos.EOS, cMass, cx, cy, dx, dy float64, out *[NCONS][NPOLY]float64) {
	sigmaPts := evalAt3x3(Weights(zone, ISigma))
	vxPts := evalAt3x3(Weights(zone, IVx))
	vyPts := evalAt3x3(Weights(zone, IVy))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			xi, eta := dg.GaussNodes3[i], dg.GaussNodes3[j]
			wij := dg.GaussWeights3[i] * dg.GaussWeights3[j]
			px, py := cx+xi*dx/2, cy+eta*dy/2
			r2 := px*px + py*py
			sigma, vx, vy := sigmaPts[i][j], vxPts[i][j], vyPts[i][j]
			p := e.Pressure(r2, cMass, sigma)
			fx := directionalFluxPoint(sigma, vx, vy, p, vx, true)
			fy := directionalFluxPoint(sigma, vx, vy, p, vy, false)
			for l := 0; l < NPOLY; l++ {
				dxi, deta := dg.GradPhi(l, xi, eta)
				for q := 0; q < NCONS; q++ {
					out[q][l] += wij * (fx[q]*dxi*(dy/2) + fy[q]*deta*(dx/2))
				}
			}
		}
	}
}

// faceFluxHLLE computes the non-relativistic HLLE flux between the
// pointwise states on either side of a cell face, at physical position
// (px, py).
func faceFluxHLLE(e eos.EOS, cMass, px, py, sigmaL, vxL, vyL, sigmaR, vxR, vyR float64, dirX bool) [NCONS]float64 {
	r2 := px*px + py*py
	pL := e.Pressure(r2, cMass, sigmaL)
	pR := e.Pressure(r2, cMass, sigmaR)
	var vnL, vnR float64
	if dirX {
		vnL, vnR = vxL, vxR
	} else {
		vnL, vnR = vyL, vyR
	}
	cs2L := e.SoundSpeedSquared(r2, cMass, sigmaL, 0)
	cs2R := e.SoundSpeedSquared(r2, cMass, sigmaR, 0)
	lmL, lpL := riemann.WavespeedsNonRel(vnL, cs2L)
	lmR, lpR := riemann.WavespeedsNonRel(vnR, cs2R)

	uL := [NCONS]float64{sigmaL, sigmaL * vxL, sigmaL * vyL}
	uR := [NCONS]float64{sigmaR, sigmaR * vxR, sigmaR * vyR}
	fL := directionalFluxPoint(sigmaL, vxL, vyL, pL, vnL, dirX)
	fR := directionalFluxPoint(sigmaR, vxR, vyR, pR, vnR, dirX)

	out := riemann.HLLENonRel(uL[:], uR[:], fL[:], fR[:], lmL, lpL, lmR, lpR)
	var f [NCONS]float64
	copy(f[:], out)
	return f
}

// surfaceTerm accumulates -integral_face F.nhat phi_l ds over all four
// faces of the zone, using the neighbor zones' own modal fields
// evaluated at the shared boundary (spec §4.11).
func surfaceTerm(self, west, east, south, north []float64, e eos.EOS, cMass, cx, cy, dx, dy float64, out *[NCONS][NPOLY]float64) {
	sigmaSelf, vxSelf, vySelf := Weights(self, ISigma), Weights(self, IVx), Weights(self, IVy)
	sigmaW, vxW, vyW := Weights(west, ISigma), Weights(west, IVx), Weights(west, IVy)
	sigmaE, vxE, vyE := Weights(east, ISigma), Weights(east, IVx), Weights(east, IVy)
	sigmaS, vxS, vyS := Weights(south, ISigma), Weights(south, IVx), Weights(south, IVy)
	sigmaN, vxN, vyN := Weights(north, ISigma), Weights(north, IVx), Weights(north, IVy)

	for t := 0; t < 3; t++ {
		tang := dg.GaussNodes3[t]
		wt := dg.GaussWeights3[t]

		xWest, yWest := cx-dx/2, cy+tang*dy/2
		xEast, yEast := cx+dx/2, cy+tang*dy/2
		xSouth, ySouth := cx+tang*dx/2, cy-dy/2
		xNorth, yNorth := cx+tang*dx/2, cy+dy/2

		// West face: xi = -1. Left state from neighbor's east edge (xi=+1).
		sL, vxL, vyL := dg.Evaluate(sigmaW, 1, tang), dg.Evaluate(vxW, 1, tang), dg.Evaluate(vyW, 1, tang)
		sR, vxR, vyR := dg.Evaluate(sigmaSelf, -1, tang), dg.Evaluate(vxSelf, -1, tang), dg.Evaluate(vySelf, -1, tang)
		fWest := faceFluxHLLE(e, cMass, xWest, yWest, sL, vxL, vyL, sR, vxR, vyR, true)

		// East face: xi = +1. Left state is self at xi=+1, right is east neighbor at xi=-1.
		sL2, vxL2, vyL2 := dg.Evaluate(sigmaSelf, 1, tang), dg.Evaluate(vxSelf, 1, tang), dg.Evaluate(vySelf, 1, tang)
		sR2, vxR2, vyR2 := dg.Evaluate(sigmaE, -1, tang), dg.Evaluate(vxE, -1, tang), dg.Evaluate(vyE, -1, tang)
		fEast := faceFluxHLLE(e, cMass, xEast, yEast, sL2, vxL2, vyL2, sR2, vxR2, vyR2, true)

		// South face: eta = -1. Left state from neighbor's north edge (eta=+1).
		sL3, vxL3, vyL3 := dg.Evaluate(sigmaS, tang, 1), dg.Evaluate(vxS, tang, 1), dg.Evaluate(vyS, tang, 1)
		sR3, vxR3, vyR3 := dg.Evaluate(sigmaSelf, tang, -1), dg.Evaluate(vxSelf, tang, -1), dg.Evaluate(vySelf, tang, -1)
		fSouth := faceFluxHLLE(e, cMass, xSouth, ySouth, sL3, vxL3, vyL3, sR3, vxR3, vyR3, false)

		// North face: eta = +1. Left is self at eta=+1, right is north neighbor at eta=-1.
		sL4, vxL4, vyL4 := dg.Evaluate(sigmaSelf, tang, 1), dg.Evaluate(vxSelf, tang, 1), dg.Evaluate(vySelf, tang, 1)
		sR4, vxR4, vyR4 := dg.Evaluate(sigmaN, tang, -1), dg.Evaluate(vxN, tang, -1), dg.Evaluate(vyN, tang, -1)
		fNorth := faceFluxHLLE(e, cMass, xNorth, yNorth, sL4, vxL4, vyL4, sR4, vxR4, vyR4, false)

		for l := 0; l < NPOLY; l++ {
			phiWest := dg.Phi(l, -1, tang)
			phiEast := dg.Phi(l, 1, tang)
			phiSouth := dg.Phi(l, tang, -1)
			phiNorth := dg.Phi(l, tang, 1)
			for q := 0; q < NCONS; q++ {
				out[q][l] += wt * (dy / 2) * fWest[q] * phiWest
				out[q][l] -= wt * (dy / 2) * fEast[q] * phiEast
				out[q][l] += wt * (dx / 2) * fSouth[q] * phiSouth
				out[q][l] -= wt * (dx / 2) * fNorth[q] * phiNorth
			}
		}
	}
}

// addPointMassSource accumulates the point-mass gravitational and sink
// source (spec §4.4), evaluated at the 3x3 Gauss grid and L2-projected
// onto the modal basis, scaled by the cell's physical area element.
func addPointMassSource(zone []float64, masses []gravity.PointMass, cx, cy, dx, dy float64, acc *[NCONS][NPOLY]float64) {
	if len(masses) == 0 {
		return
	}
	sigmaPts := evalAt3x3(Weights(zone, ISigma))
	vxPts := evalAt3x3(Weights(zone, IVx))
	vyPts := evalAt3x3(Weights(zone, IVy))
	cellArea := (dx / 2) * (dy / 2)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			xi, eta := dg.GaussNodes3[i], dg.GaussNodes3[j]
			px, py := cx+xi*dx/2, cy+eta*dy/2
			wij := dg.GaussWeights3[i] * dg.GaussWeights3[j]
			src := gravity.Sum(masses, px, py, sigmaPts[i][j], vxPts[i][j], vyPts[i][j], 0, false)
			for l := 0; l < NPOLY; l++ {
				phi := dg.Phi(l, xi, eta)
				acc[ISigma][l] += wij * src.DSigma * phi * cellArea
				acc[IPx][l] += wij * src.DPx * phi * cellArea
				acc[IPy][l] += wij * src.DPy * phi * cellArea
			}
		}
	}
}

// AdvanceRK performs one RK substep over the interior of patch p (spec
// §4.9, §4.11): the full routine, not the "safe" l=0-only shortcut
// (spec §9) -- every mode of every component is updated, each
// normalized by its own mass-matrix entry rather than a shared dx*dy
// divisor. checkpoint holds the stage-0 conserved modal weights,
// interior-only (ZoneWidth-wide per zone, no guard region);
// weightsRead and weightsWrite are the guarded buffers for this
// substep's input and output.
func AdvanceRK(p mesh.Patch, checkpoint, weightsRead, weightsWrite []float64, cfg Config, mode exec.Mode) {
	dt := cfg.Params.Dt
	dx, dy := p.Dx, p.Dy
	cMass := centralMassOf(cfg.Masses)

	exec.Zone2D(mode, p.Ni, p.Nj, func(i, j int) {
		self := p.ZoneAt(weightsRead, i, j).Self()
		west := p.ZoneAt(weightsRead, i-1, j).Self()
		east := p.ZoneAt(weightsRead, i+1, j).Self()
		south := p.ZoneAt(weightsRead, i, j-1).Self()
		north := p.ZoneAt(weightsRead, i, j+1).Self()
		cx, cy := p.X(i), p.Y(j)

		var acc [NCONS][NPOLY]float64
		volumeTerm(self, cfg.EOS, cMass, cx, cy, dx, dy, &acc)
		surfaceTerm(self, west, east, south, north, cfg.EOS, cMass, cx, cy, dx, dy, &acc)
		addPointMassSource(self, cfg.Masses, cx, cy, dx, dy, &acc)

		ck := checkpoint[(i*p.Nj+j)*ZoneWidth : (i*p.Nj+j)*ZoneWidth+ZoneWidth]
		outZone := p.ZoneAt(weightsWrite, i, j).Self()
		rk := cfg.Params.RKParam
		for q := 0; q < NCONS; q++ {
			for l := 0; l < NPOLY; l++ {
				massPhysical := dg.MassRef(l) * (dx / 2) * (dy / 2)
				wNew := self[q*NPOLY+l] + dt*acc[q][l]/massPhysical
				outZone[q*NPOLY+l] = (1-rk)*wNew + rk*ck[q*NPOLY+l]
			}
		}

		if cfg.Buffer.Kind != buffer.None {
			mode0 := []float64{outZone[ISigma*NPOLY], outZone[IPx*NPOLY], outZone[IPy*NPOLY]}
			cfg.Buffer.Apply(mode0, cx, cy, dt)
			outZone[ISigma*NPOLY], outZone[IPx*NPOLY], outZone[IPy*NPOLY] = mode0[0], mode0[1], mode0[2]
		}
	})
}
