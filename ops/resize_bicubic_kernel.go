// MODUL: resize_bicubic_kernel
// ZWECK: CPU-Kernel fuer bikubisches Resampling ueber NCHW Tensoren
// INPUT: Input-Plane-Daten, Skalierungsfaktoren, Koordinaten-Modus
// OUTPUT: Vollstaendig befuellter Output-Buffer
// NEBENEFFEKTE: Parallele Worker ueber parallel.Compute2D
// HINWEISE: Zwei-Pass separables Resampling; der Koordinaten-Modus wird
// einmal pro Achse in eine Strategie (sampler) aufgeloest, die inneren
// Schleifen laufen danach ohne Modus-Branch. Indizes mit Edge-Replication
// geklemmt; Half-Pixel-Modus nullt Gewichte geklemmter Taps und
// renormalisiert die Summe.
package ops

import (
	"math"

	"github.com/7blacky7/mobinfer/parallel"
)

// minNormalFloat32 ist der kleinste normale (nicht-denormale) float32.
const minNormalFloat32 = float32(1.1754943508222875e-38)

// bound klemmt val auf [0, limit-1] (Edge-Replication am Rand).
func bound(val, limit int) int {
	if val < 0 {
		return 0
	}
	if val > limit-1 {
		return limit - 1
	}
	return val
}

// sampler ist die pro Resample-Lauf und Achse aufgeloeste Strategie:
// Koordinaten-Abbildung, Tabellen-Variante und Gewichts-Politik stehen
// nach newSampler fest und werden pro Output-Koordinate nur noch aufgerufen.
// Nach der Konstruktion read-only, darf von Workern geteilt werden.
type sampler struct {
	limit    int
	mapCoord func(outLoc int) float32
	weigh    func(offset, inLoc int, indices *[4]int, weights *[4]float32)
}

// newSampler loest den Koordinaten-Modus fuer eine Achse auf.
// scale: Achsen-Skalierungsfaktor, outSize: Output-Achsenlaenge,
// limit: Input-Achsenlaenge.
func newSampler(scale float32, mode CoordinateTransformationMode, outSize, limit int) sampler {
	s := sampler{limit: limit}

	switch {
	case mode == HalfPixel,
		mode == PyTorchHalfPixel && outSize > 1:
		s.mapCoord = func(outLoc int) float32 {
			return (float32(outLoc)+0.5)*scale - 0.5
		}
	case mode == PyTorchHalfPixel:
		// Degenerierte Achse: alle Output-Koordinaten auf 0
		s.mapCoord = func(outLoc int) float32 { return 0 }
	default:
		s.mapCoord = func(outLoc int) float32 { return float32(outLoc) * scale }
	}

	if mode == HalfPixel { // fuer TensorFlow >= 1.14
		tab := coeffsTable(true)
		s.weigh = func(offset, inLoc int, indices *[4]int, weights *[4]float32) {
			// Geklemmte Taps bekommen Gewicht 0, sonst wuerde das
			// Randsample doppelt zaehlen
			weights[0], weights[1], weights[2], weights[3] = 0, 0, 0, 0
			if indices[0] == inLoc-1 {
				weights[0] = tab[offset*2+1]
			}
			if indices[1] == inLoc {
				weights[1] = tab[offset*2]
			}
			if indices[2] == inLoc+1 {
				weights[2] = tab[(coeffsTableSize-offset)*2]
			}
			if indices[3] == inLoc+2 {
				weights[3] = tab[(coeffsTableSize-offset)*2+1]
			}

			weightSum := weights[0] + weights[1] + weights[2] + weights[3]
			if abs32(weightSum) >= 1000*minNormalFloat32 {
				oneOverWeightSum := 1 / weightSum
				weights[0] *= oneOverWeightSum
				weights[1] *= oneOverWeightSum
				weights[2] *= oneOverWeightSum
				weights[3] *= oneOverWeightSum
			}
		}
	} else {
		tab := coeffsTable(false)
		s.weigh = func(offset, _ int, _ *[4]int, weights *[4]float32) {
			weights[0] = tab[offset*2+1]
			weights[1] = tab[offset*2]
			weights[2] = tab[(coeffsTableSize-offset)*2]
			weights[3] = tab[(coeffsTableSize-offset)*2+1]
		}
	}

	return s
}

// weightsAndIndices berechnet fuer eine Output-Koordinate die vier
// beitragenden Input-Indizes und ihre Gewichte.
func (s *sampler) weightsAndIndices(outLoc int, weights *[4]float32, indices *[4]int) {
	in := s.mapCoord(outLoc)
	inLoc := int(math.Floor(float64(in)))
	delta := in - float32(inLoc)
	offset := int(math.Round(float64(delta) * coeffsTableSize))

	indices[0] = bound(inLoc-1, s.limit)
	indices[1] = bound(inLoc, s.limit)
	indices[2] = bound(inLoc+1, s.limit)
	indices[3] = bound(inLoc+2, s.limit)

	s.weigh(offset, inLoc, indices, weights)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// interpolate1D kombiniert vier Samples mit vier Gewichten zu einem Skalar.
// Keine weitere Normalisierung; die passiert (falls noetig) bereits in
// der Gewichts-Politik des samplers.
func interpolate1D(weights, values *[4]float32) float32 {
	return values[0]*weights[0] + values[1]*weights[1] +
		values[2]*weights[2] + values[3]*weights[3]
}

// resizeImage fuehrt das separable bikubische Resampling ueber den ganzen
// Tensor aus. images und output sind NCHW row-major Buffer; output muss
// batch*channels*outHeight*outWidth Elemente fassen.
// Die Arbeit wird ueber (Batch, Output-Zeile) partitioniert; Work-Units
// schreiben disjunkte Zeilen-Slices und brauchen keine Synchronisation.
func resizeImage(images []float32, batch, inHeight, inWidth, outHeight, outWidth,
	channels int, heightScale, widthScale float32,
	mode CoordinateTransformationMode, output []float32) {
	ySampler := newSampler(heightScale, mode, outHeight, inHeight)
	xSampler := newSampler(widthScale, mode, outWidth, inWidth)

	parallel.Compute2D(batch, outHeight, func(b, y int) {
		var yWeights [4]float32
		var yIndices [4]int
		ySampler.weightsAndIndices(y, &yWeights, &yIndices)

		for x := 0; x < outWidth; x++ {
			var xWeights [4]float32
			var xIndices [4]int
			xSampler.weightsAndIndices(x, &xWeights, &xIndices)

			for c := 0; c < channels; c++ {
				// 4x4 Patch fuer den Output-Wert an (b, c, y, x)
				channelInput := images[(b*channels+c)*inHeight*inWidth:]
				channelOutput := output[(b*channels+c)*outHeight*outWidth:]
				var coeff [4]float32
				for i := 0; i < 4; i++ {
					values := [4]float32{
						channelInput[yIndices[i]*inWidth+xIndices[0]],
						channelInput[yIndices[i]*inWidth+xIndices[1]],
						channelInput[yIndices[i]*inWidth+xIndices[2]],
						channelInput[yIndices[i]*inWidth+xIndices[3]],
					}
					coeff[i] = interpolate1D(&xWeights, &values)
				}
				channelOutput[y*outWidth+x] = interpolate1D(&yWeights, &coeff)
			}
		}
	})
}
