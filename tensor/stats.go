// stats.go - Zusammenfassende Statistik ueber Tensor-Buffer
// Wird von CLI (--verbose) und Tests fuer Plausibilitaets-Checks genutzt
package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary enthaelt zusammenfassende Statistik eines Tensors.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// Stats berechnet Min/Max/Mean/Std ueber alle Elemente.
// Akkumulation in float64 fuer stabile Ergebnisse bei grossen Tensoren.
func (t *Tensor) Stats() Summary {
	if len(t.Data) == 0 {
		return Summary{}
	}

	f64 := make([]float64, len(t.Data))
	for i, v := range t.Data {
		f64[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(f64, nil)
	return Summary{
		Min:  floats.Min(f64),
		Max:  floats.Max(f64),
		Mean: mean,
		Std:  std,
	}
}
