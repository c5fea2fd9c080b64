package euler2d

import "math"

// Cool applies one implicit beta-cooling substep to the specific
// internal energy eps over timestep dt, at surface density sigma (spec
// §4.7): eps' = eps * (1 + 3*c_beta*eps^3*dt/sigma^2)^(-1/3). Returns
// the increment Sigma*(eps'-eps) to add to the energy conserved
// variable. coolingCoeff == 0 is the caller's responsibility to skip.
func Cool(eps, sigma, dt, coolingCoeff float64) float64 {
	factor := 1 + 3*coolingCoeff*eps*eps*eps*dt/(sigma*sigma)
	epsNew := eps * math.Pow(factor, -1.0/3.0)
	return sigma * (epsNew - eps)
}
