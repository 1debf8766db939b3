package bezier

// Compute the binomial coefficient C(n, k) with the multiplicative recurrence.
// Surfaces and curves compute their row once and keep it.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k == n {
		return 1
	}

	if k > n-k {
		k = n - k // optimization
	}

	// c*n/d is C(n0, d) at every step, so the division is exact
	c := 1
	for d := 1; d <= k; d++ {
		c *= n
		c /= d
		n--
	}

	return float64(c)
}

// Compute the row C(n, 0..n)
func binomialRow(n int) []float64 {
	row := make([]float64, n+1)
	for k := range row {
		row[k] = binomial(n, k)
	}

	return row
}
