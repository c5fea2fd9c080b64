package srhd1d

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/sailfish/exec"
	"github.com/cpmech/sailfish/mesh"
)

// PrimitiveToConserved converts every interior zone of primitiveIn
// (guarded, (rho, u1, p, s)) to conservedOut (interior-only, (D, S,
// tau, D*s)), pointwise, dispatched under mode (spec §5, §6, §4.2).
// conservedOut carries no guard cells.
func PrimitiveToConserved(n int, primitiveIn, conservedOut []float64, ng int, gamma float64, mode exec.Mode) {
	exec.Zone1D(mode, n, func(i int) {
		prim := zoneAt(primitiveIn, i, ng)
		out := conservedOut[i*NCONS : i*NCONS+NCONS]
		primitiveToConserved(prim, out, gamma)
	})
}

func primitiveToConserved(prim, out []float64, gamma float64) {
	rho, u1, p, s := prim[IRho], prim[IU1], prim[IP], prim[IS]
	w2 := 1 + u1*u1
	w := math.Sqrt(w2)
	h := 1 + gamma*p/((gamma-1)*rho)

	out[ID] = rho * w
	out[ISc] = rho * h * w * u1
	out[ITau] = rho*h*w2 - p - out[ID]
	out[IDs] = out[ID] * s
}

// ConservedToPrimitive converts every interior zone of conservedIn
// ((D, S, tau, D*s), interior-only) into primitiveOut (guarded,
// (rho, u1, p, s)), by Newton iteration on pressure, dispatched under
// mode (spec §4.2, §5, §6: SRHD is the only solver exposing
// conserved_to_primitive publicly). fm and coords supply each zone's
// geometric volume element dv, which scales the Newton convergence
// tolerance (spec §4.2: converge when |f| < 1e-12*(D+tau)/dv).
// primitiveOut supplies the previous pressure guess in primitiveOut
// itself (the caller seeds primitiveOut[i*NCONS+IP] before calling, or
// leaves it as a prior converged value from the last substep). The
// first per-zone failure observed (order not guaranteed once mode
// parallelizes) is returned.
func ConservedToPrimitive(n int, conservedIn, primitiveOut []float64, ng int, gamma float64, machMax float64, fm mesh.FaceMesh, coords mesh.Coords, mode exec.Mode) error {
	var mu sync.Mutex
	var firstErr error
	exec.Zone1D(mode, n, func(i int) {
		cons := conservedIn[i*NCONS : i*NCONS+NCONS]
		prim := zoneAt(primitiveOut, i, ng)
		dv := mesh.VolumeElement(coords, fm.XL(i), fm.XL(i+1))
		if err := conservedToPrimitive(cons, prim, gamma, machMax, dv); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = chk.Err("srhd1d: conserved_to_primitive failed at x=%v: %v", fm.Center(i), err)
			}
			mu.Unlock()
		}
	})
	return firstErr
}

// conservedToPrimitive performs the Newton iteration of spec §4.2 on a
// single zone. prim[IP] is read as the initial pressure guess and
// overwritten, along with rho, u1 and s, on success. dv is the zone's
// geometric volume element, which scales the convergence tolerance.
func conservedToPrimitive(cons, prim []float64, gamma, machMax, dv float64) error {
	d, s, tau, ds := cons[ID], cons[ISc], cons[ITau], cons[IDs]

	p := prim[IP]
	if p <= 0 {
		p = 1e-6
	}

	const maxIter = 500
	var f float64
	converged := false
	for iter := 0; iter < maxIter; iter++ {
		beta2 := s * s / ((tau + p + d) * (tau + p + d))
		if beta2 > 1-1e-10 {
			beta2 = 1 - 1e-10
		}
		w2 := 1 / (1 - beta2)
		w := math.Sqrt(w2)
		rho := d / w
		eps := (tau + d*(1-w) + p*(1-w2)) / (d * w)
		h := 1 + eps + p/rho
		a2 := gamma * p / (rho * h)

		f = rho*eps*(gamma-1) - p
		g := beta2*a2 - 1

		if math.Abs(f) < 1e-12*(d+tau)/math.Max(dv, 1e-300) {
			converged = true
			break
		}
		p -= f / g
	}
	if !converged {
		return chk.Err("non-convergence after %d iterations, residual=%v", maxIter, f)
	}
	if math.IsNaN(p) || p <= 0 {
		return chk.Err("unphysical pressure p=%v", p)
	}

	beta2 := s * s / ((tau + p + d) * (tau + p + d))
	if beta2 > 1-1e-10 {
		beta2 = 1 - 1e-10
	}
	w2 := 1 / (1 - beta2)
	w := math.Sqrt(w2)
	rho := d / w
	if math.IsNaN(rho) || rho <= 0 {
		return chk.Err("unphysical density rho=%v", rho)
	}

	// S/(tau+D+p) is the three-velocity v, so W*S/(tau+D+p) is u1 = W*v.
	u1 := w * s / (tau + d + p)

	epsMin := u1 * u1 / (1 + u1*u1) / (machMax * machMax)
	eps := (tau + d*(1-w) + p*(1-w2)) / (d * w)
	if eps < epsMin {
		eps = epsMin
		p = eps * rho * (gamma - 1)
	}

	prim[IRho] = rho
	prim[IU1] = u1
	prim[IP] = p
	prim[IS] = ds / d
	return nil
}

// zoneAt returns the NCONS-wide slice for interior index i in a
// guarded 1D buffer with ng guard cells on each edge.
func zoneAt(buf []float64, i, ng int) []float64 {
	off := (i + ng) * NCONS
	return buf[off : off+NCONS]
}
