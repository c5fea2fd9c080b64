// package mesh implements the data-model layer (spec §3): the 2D
// rectangular Patch with guard zones, the 1D FaceMesh with homologous
// expansion, and the Coords-dependent volume/face-area factors that
// feed the primitive<->conserved maps and fluxes.
//
// Design notes (spec §9) ask for a patch abstraction carrying interior
// start/extent and stride, yielding zone-relative borrows with negative
// indices for guard zones, rather than raw pointer arithmetic; Patch
// and Zone below are that abstraction.
package mesh

// Patch describes a rectangular 2D finite-volume mesh of ni x nj
// interior cells, each NCONS-wide, surrounded by ng guard cells on
// every edge (spec §3, §6: ng=2 for iso2d/euler2d, ng=1 for
// cbdisodg_2d).
type Patch struct {
	Ni, Nj int
	Dx, Dy float64
	X0, Y0 float64
	NG     int
	NCONS  int
}

// strideJ is the stride (in scalars) between adjacent cells along j in
// the row-major (i-major, NCONS-fastest) buffer layout, i.e. NCONS;
// strideI is the stride between adjacent cells along i, i.e. one full
// guarded row of (nj+2ng)*NCONS scalars.
func (p Patch) strideJ() int { return p.NCONS }
func (p Patch) strideI() int { return (p.Nj + 2*p.NG) * p.NCONS }

// offset returns the flat scalar offset of interior cell (i, j), where
// i, j may be negative or >= Ni/Nj to reach into the guard region.
func (p Patch) offset(i, j int) int {
	return (i+p.NG)*p.strideI() + (j+p.NG)*p.strideJ()
}

// X returns the physical x-coordinate of the center of interior column i.
func (p Patch) X(i int) float64 { return p.X0 + (float64(i)+0.5)*p.Dx }

// Y returns the physical y-coordinate of the center of interior row j.
func (p Patch) Y(j int) float64 { return p.Y0 + (float64(j)+0.5)*p.Dy }

// Zone is a zone-relative borrow into a patch buffer, centered on
// interior cell (i, j). At(di, dj) yields the NCONS-wide slice for the
// neighbor di columns and dj rows away, including negative offsets
// into the guard region; callers never compute flat offsets directly.
type Zone struct {
	patch Patch
	buf   []float64
	i, j  int
}

// ZoneAt returns a Zone borrowing buf (a full (ni+2ng)x(nj+2ng)xNCONS
// patch buffer) centered on interior cell (i, j).
func (p Patch) ZoneAt(buf []float64, i, j int) Zone {
	return Zone{patch: p, buf: buf, i: i, j: j}
}

// At returns the NCONS-wide state slice for the cell di columns and dj
// rows away from this zone's center cell.
func (z Zone) At(di, dj int) []float64 {
	off := z.patch.offset(z.i+di, z.j+dj)
	return z.buf[off : off+z.patch.NCONS]
}

// Self is shorthand for At(0, 0).
func (z Zone) Self() []float64 { return z.At(0, 0) }

// GuardedExtent returns the total extents (ni+2ng, nj+2ng) for
// allocating a guarded buffer; callers multiply by NCONS for the flat scalar
// length.
func (p Patch) GuardedExtent() (ni, nj int) {
	return p.Ni + 2*p.NG, p.Nj + 2*p.NG
}
