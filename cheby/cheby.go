// Package cheby evaluates Chebyshev series with the Clenshaw recurrence,
// used to decode SPK Type 2/3 coefficient blocks and any other series in
// this module expressed the same way (spec.md §4.3).
package cheby

// Value evaluates f(x) = sum_k coeffs[k]*T_k(x) for x in [-1, 1] using the
// Clenshaw recurrence: b_n = c_n, b_k = c_k + 2x*b_{k+1} - b_{k+2}, and
// f(x) = c_0 + x*b_1 - b_2.
func Value(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return coeffs[0]
	}

	x2 := 2 * x
	b0 := coeffs[n-1]
	b1 := 0.0
	for i := n - 2; i >= 1; i-- {
		b0, b1 = coeffs[i]+x2*b0-b1, b0
	}
	return coeffs[0] + x*b0 - b1
}

// Derivative evaluates f'(x) for the same series as Value, by converting
// to derivative coefficients (the standard downward recurrence using
// k*c_k) and evaluating those with Clenshaw.
func Derivative(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n < 2 {
		return 0
	}

	m := n - 1
	dc := make([]float64, m)
	for j := m - 1; j >= 1; j-- {
		var djp2 float64
		if j+2 < m {
			djp2 = dc[j+2]
		}
		dc[j] = djp2 + 2*float64(j+1)*coeffs[j+1]
	}
	var d2 float64
	if m > 2 {
		d2 = dc[2]
	}
	dc[0] = (d2 + 2*coeffs[1]) / 2

	return Value(dc, x)
}
