package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Frame statistics shared by the analyzers. All of them are total: empty
// input returns 0 instead of panicking the way the raw gonum calls do.

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// PopulationStdDev returns the population (divide by n) standard deviation
func PopulationStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	_, variance := stat.PopMeanVariance(data, nil)
	if variance < 0 {
		// rounding on constant input
		return 0.0
	}
	return math.Sqrt(variance)
}

// MeanStdDev returns the mean and population standard deviation together
func MeanStdDev(data []float64) (float64, float64) {
	return Mean(data), PopulationStdDev(data)
}

// Max returns the largest value, 0 for an empty slice
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// Min returns the smallest value, 0 for an empty slice
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Min(data)
}

// RMS calculates root mean square
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return math.Sqrt(floats.Dot(data, data) / float64(len(data)))
}

// Sum adds up the slice
func Sum(data []float64) float64 {
	return floats.Sum(data)
}

// CoefficientOfVariation returns std/mean, or 0 when the mean is not positive
func CoefficientOfVariation(mean, std float64) float64 {
	if mean <= 0 {
		return 0.0
	}
	return std / mean
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Round rounds half away from zero to the given number of decimal places
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// InverseVariationScore maps a coefficient of variation onto 0-100 where a
// perfectly steady signal scores 100: max(0, 100 - cv*100).
func InverseVariationScore(mean, std float64) float64 {
	if mean <= 0 {
		return 0.0
	}
	return math.Max(0, 100-CoefficientOfVariation(mean, std)*100)
}

// NextPowerOfTwo returns the smallest power of two >= n
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
