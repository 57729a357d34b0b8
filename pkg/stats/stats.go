package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Variance computes the sample variance (n-1 denominator) of a slice.
func Variance(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mean := Mean(x)
	sumSq := 0.0
	for _, v := range x {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(n-1)
}

// StdDev computes the sample standard deviation of a slice.
func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Percentile returns the p-th percentile value of the slice
// (0 <= p <= 100), linearly interpolating between the closest order
// statistics. Allocates a sorted copy of the input.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	min, max := MinMax(x)
	if p <= 0 {
		return min
	}
	if p >= 100 {
		return max
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// Median returns the 50th percentile of the slice.
func Median(x []float64) float64 {
	return Percentile(x, 50)
}

// Summary holds the descriptive statistics of one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes the descriptive statistics of a slice.
func Describe(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}
	min, max := MinMax(x)
	return Summary{
		Count:  len(x),
		Mean:   Mean(x),
		Std:    StdDev(x),
		Min:    min,
		Q1:     Percentile(x, 25),
		Median: Percentile(x, 50),
		Q3:     Percentile(x, 75),
		Max:    max,
	}
}

// Drop returns the values of x whose present mask entry is true.
func Drop(x []float64, present []bool) []float64 {
	out := make([]float64, 0, len(x))
	for i, v := range x {
		if present[i] {
			out = append(out, v)
		}
	}
	return out
}

// PairwiseCorrelation computes the Pearson correlation matrix over the
// given columns. Each pair uses only the rows where both values are
// present. A pair with fewer than two complete rows yields NaN.
func PairwiseCorrelation(cols [][]float64, present [][]bool) [][]float64 {
	k := len(cols)
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		m[i][i] = 1
		for j := i + 1; j < k; j++ {
			var xi, xj []float64
			for r := range cols[i] {
				if present[i][r] && present[j][r] {
					xi = append(xi, cols[i][r])
					xj = append(xj, cols[j][r])
				}
			}
			c := math.NaN()
			if len(xi) >= 2 {
				c = stat.Correlation(xi, xj, nil)
			}
			m[i][j] = c
			m[j][i] = c
		}
	}
	return m
}
