package stats

// IQRBounds returns the lower and upper outlier fences of a column
// under the interquartile-range rule with multiplier k:
// Q1 - k*IQR and Q3 + k*IQR. With zero spread the fences collapse to
// Q1 = Q3.
func IQRBounds(x []float64, k float64) (lower, upper float64) {
	q1 := Percentile(x, 25)
	q3 := Percentile(x, 75)
	iqr := q3 - q1
	return q1 - k*iqr, q3 + k*iqr
}

// CountOutliers counts the values strictly outside the IQR fences.
// Values exactly on a fence are not flagged.
func CountOutliers(x []float64, k float64) int {
	lower, upper := IQRBounds(x, k)
	n := 0
	for _, v := range x {
		if v < lower || v > upper {
			n++
		}
	}
	return n
}

// Outliers returns the values strictly outside the IQR fences, in
// input order.
func Outliers(x []float64, k float64) []float64 {
	lower, upper := IQRBounds(x, k)
	var out []float64
	for _, v := range x {
		if v < lower || v > upper {
			out = append(out, v)
		}
	}
	return out
}
