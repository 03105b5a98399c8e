// MODUL: preprocess
// ZWECK: Bild-Preprocessing-Pipeline (Resize + Normalisierung)
// INPUT: ImageInput, Ziel-Groesse, PreprocessOptions
// OUTPUT: float32 Tensor im NCHW Format [1, 3, H, W]
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: ops (ResizeBicubic), tensor
// HINWEISE: Resize laeuft ueber den bikubischen Operator, nicht ueber
// x/image/draw; Normalisierung nutzt ImageNet mean/std als Default

package vision

import (
	"fmt"

	"github.com/7blacky7/mobinfer/ops"
	"github.com/7blacky7/mobinfer/tensor"
)

// Standard-Normalisierungswerte
var (
	// ImageNet Default (ResNet, EfficientNet, etc.)
	ImageNetMean = [3]float32{0.485, 0.456, 0.406}
	ImageNetStd  = [3]float32{0.229, 0.224, 0.225}

	// Keine Normalisierung (nur Skalierung auf [0,1])
	NoNormMean = [3]float32{0.0, 0.0, 0.0}
	NoNormStd  = [3]float32{1.0, 1.0, 1.0}
)

// PreprocessOptions steuert die Preprocessing-Pipeline
type PreprocessOptions struct {
	Mode         ops.CoordinateTransformationMode
	AlignCorners bool
	Normalize    bool
	Mean         [3]float32
	Std          [3]float32
}

// DefaultPreprocessOptions gibt die Standard-Pipeline zurueck:
// half_pixel Resize, ImageNet-Normalisierung
func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{
		Mode:      ops.HalfPixel,
		Normalize: true,
		Mean:      ImageNetMean,
		Std:       ImageNetStd,
	}
}

// Preprocess skaliert ein Bild bikubisch auf die Ziel-Groesse und
// normalisiert es optional. Rueckgabe: Tensor [1, 3, height, width].
func Preprocess(img *ImageInput, height, width int, opts PreprocessOptions) (*tensor.Tensor, error) {
	t, err := ImageToTensor(img)
	if err != nil {
		return nil, err
	}

	resized, err := Resize(t, height, width, opts.Mode, opts.AlignCorners)
	if err != nil {
		return nil, err
	}

	if opts.Normalize {
		normalizeNCHW(resized, opts.Mean, opts.Std)
	}

	return resized, nil
}

// Resize skaliert einen NCHW Tensor bikubisch auf (height, width).
func Resize(t *tensor.Tensor, height, width int, mode ops.CoordinateTransformationMode, alignCorners bool) (*tensor.Tensor, error) {
	op := ops.NewResizeBicubic(alignCorners, mode, height, width)
	out, err := op.Run(ops.NewContext(), t)
	if err != nil {
		return nil, fmt.Errorf("bikubisches resize fehlgeschlagen: %w", err)
	}
	return out, nil
}

// normalizeNCHW wendet (v - mean) / std kanal-weise in-place an
func normalizeNCHW(t *tensor.Tensor, mean, std [3]float32) {
	batch, channels, _, _ := t.Dims()
	for b := 0; b < batch; b++ {
		for c := 0; c < channels && c < 3; c++ {
			plane := t.ChannelSlice(b, c)
			for i := range plane {
				plane[i] = (plane[i] - mean[c]) / std[c]
			}
		}
	}
}
