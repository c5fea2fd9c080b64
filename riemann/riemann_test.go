package riemann

import "math"

import "testing"

func directionalFluxNonRel(sigma, vn, p float64) []float64 {
	return []float64{sigma * vn, sigma * vn * vn + p}
}

func TestHLLEConsistencyEqualPressure(t *testing.T) {
	cs2 := 1.0
	sigmaL, vnL := 1.0, 0.3
	sigmaR, vnR := 0.8, 0.3
	pL := sigmaL * cs2
	pR := sigmaR * cs2

	uL := []float64{sigmaL, sigmaL * vnL}
	uR := []float64{sigmaR, sigmaR * vnR}
	fL := directionalFluxNonRel(sigmaL, vnL, pL)
	fR := directionalFluxNonRel(sigmaR, vnR, pR)

	lmL, lpL := WavespeedsNonRel(vnL, cs2)
	lmR, lpR := WavespeedsNonRel(vnR, cs2)

	flux := HLLENonRel(uL, uR, fL, fR, lmL, lpL, lmR, lpR)

	// when vnL == vnR and pL != pR this is not literally F(p_L), so
	// instead test the genuinely degenerate case: identical states on
	// both sides should reproduce F(p_L) exactly.
	uR2, fR2 := uL, fL
	flux2 := HLLENonRel(uL, uR2, fL, fR2, lmL, lpL, lmL, lpL)
	for i := range flux2 {
		if math.Abs(flux2[i]-fL[i]) > 1e-12 {
			t.Fatalf("component %d: got %v want %v", i, flux2[i], fL[i])
		}
	}
	_ = flux
}

func TestWavespeedsSRHDSubluminal(t *testing.T) {
	vn := 0.1
	v2 := 0.02
	a2 := 0.3
	lm, lp := WavespeedsSRHD(vn, v2, a2)
	if lm >= lp {
		t.Fatalf("expected lm < lp, got lm=%v lp=%v", lm, lp)
	}
	if lm > vn || lp < vn {
		t.Fatalf("expected outer speeds to bracket vn=%v: lm=%v lp=%v", vn, lm, lp)
	}
	if math.Abs(lm) >= 1 || math.Abs(lp) >= 1 {
		t.Fatalf("expected subluminal outer speeds: lm=%v lp=%v", lm, lp)
	}
}

func TestHLLCMatchesUpwindOutsideBracket(t *testing.T) {
	uL := []float64{1.0, 0.1, 2.0, 0.0}
	uR := []float64{0.5, 0.05, 1.0, 0.0}
	fL := []float64{0.1, 0.2, 0.3, 0.0}
	fR := []float64{0.05, 0.1, 0.15, 0.0}

	// face moving faster than every wave: result should equal the
	// right-side upwind flux in the face frame.
	lmL, lpL := -0.2, 0.5
	lmR, lpR := -0.1, 0.4
	vface := 10.0
	out := HLLC(uL, uR, fL, fR, lmL, lpL, lmR, lpR, vface)
	for i := range out {
		want := fR[i] - vface*uR[i]
		if math.Abs(out[i]-want) > 1e-9 {
			t.Fatalf("component %d: got %v want %v", i, out[i], want)
		}
	}
}
