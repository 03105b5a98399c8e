// coordinate.go - Koordinaten-Transformations-Modi fuer Resize-Kernels
// Bestimmt die Abbildung von Output-Pixel-Koordinate auf fraktionale
// Input-Koordinate (und damit die Gewichts-Politik des Kernels)
package ops

import "fmt"

// CoordinateTransformationMode waehlt die Formel, die eine
// Output-Koordinate auf eine Input-Koordinate abbildet.
type CoordinateTransformationMode int

const (
	// Asymmetric: in = out * scale
	Asymmetric CoordinateTransformationMode = iota
	// HalfPixel: in = (out + 0.5) * scale - 0.5 (TensorFlow >= 1.14)
	HalfPixel
	// PyTorchHalfPixel: wie HalfPixel, aber 0 bei Achsen der Laenge <= 1
	PyTorchHalfPixel
)

// ParseCoordinateTransformationMode validiert einen numerischen Modus.
func ParseCoordinateTransformationMode(v int) (CoordinateTransformationMode, error) {
	switch m := CoordinateTransformationMode(v); m {
	case Asymmetric, HalfPixel, PyTorchHalfPixel:
		return m, nil
	default:
		return Asymmetric, fmt.Errorf("unbekannter coordinate transformation mode: %d", v)
	}
}

func (m CoordinateTransformationMode) String() string {
	switch m {
	case Asymmetric:
		return "asymmetric"
	case HalfPixel:
		return "half_pixel"
	case PyTorchHalfPixel:
		return "pytorch_half_pixel"
	default:
		return fmt.Sprintf("coordinate_transformation_mode(%d)", int(m))
	}
}
