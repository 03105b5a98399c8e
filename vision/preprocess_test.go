// preprocess_test.go - Tests fuer die Preprocessing-Pipeline
package vision

import (
	"image/color"
	"math"
	"testing"

	"github.com/7blacky7/mobinfer/ops"
)

func TestResizeShape(t *testing.T) {
	img, err := LoadImageFromBytes(createPNGBytes(16, 16, color.White))
	if err != nil {
		t.Fatalf("LoadImageFromBytes() error = %v", err)
	}

	tn, err := ImageToTensor(img)
	if err != nil {
		t.Fatalf("ImageToTensor() error = %v", err)
	}

	resized, err := Resize(tn, 8, 12, ops.HalfPixel, false)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}

	if want := [4]int{1, 3, 8, 12}; resized.Shape != want {
		t.Errorf("Shape = %v, erwartet %v", resized.Shape, want)
	}
}

func TestResizeUniformImageStaysUniform(t *testing.T) {
	// Ein einfarbiges Bild muss nach dem Resampling einfarbig bleiben
	// (Gewichtssumme 1)
	img, _ := LoadImageFromBytes(createPNGBytes(10, 10, color.RGBA{128, 128, 128, 255}))
	tn, _ := ImageToTensor(img)

	resized, err := Resize(tn, 7, 5, ops.Asymmetric, false)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}

	want := float64(128) / 255
	for i, v := range resized.Data {
		if math.Abs(float64(v)-want) > 1e-5 {
			t.Fatalf("index %d: wert %v, erwartet %v", i, v, want)
		}
	}
}

func TestPreprocessNormalize(t *testing.T) {
	img, _ := LoadImageFromBytes(createPNGBytes(8, 8, color.White))

	opts := DefaultPreprocessOptions()
	tn, err := Preprocess(img, 4, 4, opts)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	// Weiss (1.0) normalisiert mit ImageNet mean/std im roten Kanal
	want := (1 - ImageNetMean[0]) / ImageNetStd[0]
	got := tn.At(0, 0, 0, 0)
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("normalisierter wert = %v, erwartet %v", got, want)
	}
}

func TestPreprocessNoNormalize(t *testing.T) {
	img, _ := LoadImageFromBytes(createPNGBytes(8, 8, color.Black))

	opts := PreprocessOptions{Mode: ops.Asymmetric}
	tn, err := Preprocess(img, 8, 8, opts)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	for i, v := range tn.Data {
		if v != 0 {
			t.Fatalf("index %d: wert %v, erwartet 0 (keine normalisierung)", i, v)
		}
	}
}
