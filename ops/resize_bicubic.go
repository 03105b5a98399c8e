// MODUL: resize_bicubic
// ZWECK: ResizeBicubic Operator (Shape-Aufloesung, Dispatch, Fast-Path)
// INPUT: NCHW Tensor, optional Size-Tensor, Args (align_corners, mode, size)
// OUTPUT: Resampelter NCHW Tensor
// NEBENEFFEKTE: Allokiert den Output-Tensor; parallele Worker im CPU-Pfad
// ABHAENGIGKEITEN: tensor, parallel (indirekt), accelerator.go, Kernel
// HINWEISE: Identitaets-Resize ist ein Bulk-Copy (bit-exakt, keine
// Interpolation); Vertrags-Verletzungen sind Fehler des Aufrufers
package ops

import (
	"errors"
	"fmt"
	"sync"

	"github.com/7blacky7/mobinfer/tensor"
)

// ResizeBicubicName ist der Registry-Name des Operators.
const ResizeBicubicName = "ResizeBicubic"

var (
	ErrMissingInput = errors.New("input tensor fehlt")
	ErrMissingSize  = errors.New("output-groesse fehlt: weder size-argument noch size-tensor vorhanden")
)

func init() {
	Register(ResizeBicubicName, func(args Args) (Operator, error) {
		mode, err := ParseCoordinateTransformationMode(args.Int("coordinate_transformation_mode", 0))
		if err != nil {
			return nil, err
		}

		size := args.Ints("size", []int{-1, -1})
		if len(size) != 2 {
			return nil, fmt.Errorf("size erwartet 2 elemente, hat %d", len(size))
		}

		return &ResizeBicubic{
			alignCorners: args.Bool("align_corners", false),
			mode:         mode,
			size:         [2]int{size[0], size[1]},
		}, nil
	})
}

// ResizeBicubic resampelt einen NCHW Tensor bikubisch auf eine Ziel-Groesse.
type ResizeBicubic struct {
	alignCorners bool
	mode         CoordinateTransformationMode
	size         [2]int // [outHeight, outWidth]; <= 0: aus Size-Tensor lesen

	kernelMu sync.Mutex
	kernel   AcceleratorKernel // lazily pro Backend konstruiert
	kernelOn string
}

// NewResizeBicubic erstellt den Operator direkt (ohne Registry).
// outHeight/outWidth <= 0 verlangt einen Size-Tensor als zweiten Input.
func NewResizeBicubic(alignCorners bool, mode CoordinateTransformationMode, outHeight, outWidth int) *ResizeBicubic {
	return &ResizeBicubic{
		alignCorners: alignCorners,
		mode:         mode,
		size:         [2]int{outHeight, outWidth},
	}
}

func (op *ResizeBicubic) Name() string { return ResizeBicubicName }

// Run fuehrt das Resampling aus.
// inputs[0]: Daten-Tensor; inputs[1] (optional): Size-Tensor mit
// mindestens 2 Elementen (outHeight, outWidth), falls size nicht gesetzt ist.
func (op *ResizeBicubic) Run(octx *Context, inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	if len(inputs) == 0 || inputs[0] == nil {
		return nil, ErrMissingInput
	}
	input := inputs[0]
	batch, channels, inHeight, inWidth := input.Dims()

	outHeight, outWidth := op.size[0], op.size[1]
	if outHeight <= 0 || outWidth <= 0 {
		// Dynamischer Size-Tensor (TensorFlow-Stil)
		if len(inputs) < 2 || inputs[1] == nil {
			return nil, ErrMissingSize
		}
		var err error
		outHeight, outWidth, err = sizeFromTensor(inputs[1])
		if err != nil {
			return nil, err
		}
	}

	output, err := tensor.New(batch, channels, outHeight, outWidth)
	if err != nil {
		return nil, fmt.Errorf("output allokieren fehlgeschlagen: %w", err)
	}

	if octx.Device == DeviceAccelerator {
		kernel, err := op.acceleratorKernel(octx.Accelerator)
		if err != nil {
			return nil, err
		}
		if err := kernel.Compute(octx.Ctx, input, outHeight, outWidth, output); err != nil {
			return nil, fmt.Errorf("accelerator kernel fehlgeschlagen: %w", err)
		}
		return output, nil
	}

	if outHeight == inHeight && outWidth == inWidth {
		copy(output.Data, input.Data)
		return output, nil
	}

	heightScale := CalculateResizeScale(inHeight, outHeight, op.alignCorners)
	widthScale := CalculateResizeScale(inWidth, outWidth, op.alignCorners)

	resizeImage(input.Data, batch, inHeight, inWidth, outHeight, outWidth,
		channels, heightScale, widthScale, op.mode, output.Data)

	return output, nil
}

// acceleratorKernel konstruiert den Backend-Kernel beim ersten Accelerator-Lauf
// und haelt ihn fuer Folgelaeufe.
func (op *ResizeBicubic) acceleratorKernel(backend string) (AcceleratorKernel, error) {
	op.kernelMu.Lock()
	defer op.kernelMu.Unlock()

	if op.kernel != nil && op.kernelOn == backend {
		return op.kernel, nil
	}

	kernel, err := newAcceleratorKernel(backend, op.alignCorners, op.mode)
	if err != nil {
		return nil, err
	}
	op.kernel, op.kernelOn = kernel, backend
	return kernel, nil
}

// CalculateResizeScale berechnet den Achsen-Skalierungsfaktor.
// alignCorners bildet die Eck-Pixel exakt aufeinander ab (nur bei
// Output-Laenge > 1 definiert, sonst normale Formel).
func CalculateResizeScale(inSize, outSize int, alignCorners bool) float32 {
	if alignCorners && outSize > 1 {
		return float32(inSize-1) / float32(outSize-1)
	}
	return float32(inSize) / float32(outSize)
}

// sizeFromTensor liest (outHeight, outWidth) aus einem Size-Tensor.
func sizeFromTensor(t *tensor.Tensor) (outHeight, outWidth int, err error) {
	if t.NumElements() < 2 {
		return 0, 0, fmt.Errorf("size-tensor braucht mindestens 2 elemente, hat %d", t.NumElements())
	}

	outHeight, outWidth = int(t.Data[0]), int(t.Data[1])
	if outHeight <= 0 || outWidth <= 0 {
		return 0, 0, fmt.Errorf("ungueltige output-groesse aus size-tensor: %dx%d", outHeight, outWidth)
	}
	return outHeight, outWidth, nil
}
