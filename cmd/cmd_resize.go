// cmd_resize.go - resize Command (Bild-Datei bikubisch skalieren)
// Laedt ein Bild, resampelt ueber den ResizeBicubic-Operator und schreibt
// das Ergebnis als PNG; optional Tensor-Dump in half precision
package cmd

import (
	"encoding/binary"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/7blacky7/mobinfer/ops"
	"github.com/7blacky7/mobinfer/tensor"
	"github.com/7blacky7/mobinfer/vision"
)

// resizeOptions enthaelt alle Flags des resize Commands.
type resizeOptions struct {
	height       int
	width        int
	mode         int
	alignCorners bool
	tensorPath   string
	half         bool
	verbose      bool
}

// newResizeCmd - Erstellt den resize Command
func newResizeCmd() *cobra.Command {
	var opts resizeOptions

	cmd := &cobra.Command{
		Use:   "resize INPUT OUTPUT",
		Short: "Resample an image file with the bicubic kernel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVar(&opts.height, "height", 0, "Target height in pixels (required)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Target width in pixels (required)")
	cmd.Flags().IntVar(&opts.mode, "mode", 0, "Coordinate transformation mode (0=asymmetric, 1=half_pixel, 2=pytorch_half_pixel)")
	cmd.Flags().BoolVar(&opts.alignCorners, "align-corners", false, "Map corner pixels exactly onto each other")
	cmd.Flags().StringVar(&opts.tensorPath, "tensor", "", "Also write the raw NCHW tensor to this path")
	cmd.Flags().BoolVar(&opts.half, "half", false, "Write the tensor dump in IEEE half precision")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Print tensor statistics")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

// runResize fuehrt das Resampling einer Bild-Datei aus
func runResize(inputPath, outputPath string, opts resizeOptions) error {
	mode, err := ops.ParseCoordinateTransformationMode(opts.mode)
	if err != nil {
		return err
	}

	img, err := vision.LoadImage(inputPath)
	if err != nil {
		return err
	}

	t, err := vision.ImageToTensor(img)
	if err != nil {
		return err
	}

	resized, err := vision.Resize(t, opts.height, opts.width, mode, opts.alignCorners)
	if err != nil {
		return err
	}

	if opts.verbose {
		stats := resized.Stats()
		fmt.Printf("%s  min=%.4f max=%.4f mean=%.4f std=%.4f\n",
			resized, stats.Min, stats.Max, stats.Mean, stats.Std)
	}

	if opts.tensorPath != "" {
		if err := writeTensorDump(opts.tensorPath, resized, opts.half); err != nil {
			return err
		}
	}

	out, err := vision.TensorToImage(resized)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, out)
}

// writeTensorDump schreibt den rohen NCHW Buffer little-endian auf Platte.
// half: IEEE 754 half precision statt float32
func writeTensorDump(path string, t *tensor.Tensor, half bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if half {
		return binary.Write(f, binary.LittleEndian, t.ToFloat16())
	}
	return binary.Write(f, binary.LittleEndian, t.Data)
}
