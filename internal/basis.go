package internal

import "math"

// Compute a single Bernstein basis polynomial
//
// **params**
// + binomial coefficients C(n, 0..n), where n = len(binomials) - 1
// + index of the basis polynomial
// + parameter
//
// **returns**
// + C(n, i) * t^i * (1-t)^(n-i)
//
// math.Pow(0, 0) is 1, which gives the endpoint conditions B_0(0) = B_n(1) = 1.
func Bernstein(binomials []float64, i int, t float64) float64 {
	n := len(binomials) - 1
	return binomials[i] * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// Compute the first derivative of a single Bernstein basis polynomial
//
// The end polynomials are handled separately so that no negative exponent
// is ever raised at t = 0 or t = 1.
//
// **params**
// + binomial coefficients C(n, 0..n)
// + index of the basis polynomial
// + parameter
//
// **returns**
// + d/dt B_i(t)
func BernsteinDerivative(binomials []float64, i int, t float64) float64 {
	n := len(binomials) - 1
	nf := float64(n)

	switch i {
	case 0:
		return -nf * binomials[0] * math.Pow(1-t, nf-1)
	case n:
		return nf * binomials[n] * math.Pow(t, nf-1)
	}

	return -binomials[i] * math.Pow(t, float64(i-1)) * math.Pow(1-t, float64(n-i-1)) * (nf*t - float64(i))
}

// Evaluate every basis polynomial at t into dst, which must hold len(binomials) values
func BernsteinAll(dst, binomials []float64, t float64) []float64 {
	for i := range binomials {
		dst[i] = Bernstein(binomials, i, t)
	}

	return dst
}

// Evaluate every basis derivative at t into dst, which must hold len(binomials) values
func BernsteinDerivativeAll(dst, binomials []float64, t float64) []float64 {
	for i := range binomials {
		dst[i] = BernsteinDerivative(binomials, i, t)
	}

	return dst
}
