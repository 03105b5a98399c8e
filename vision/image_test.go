// MODUL: image_test
// ZWECK: Tests fuer Bild-Laden und Tensor-Konvertierung
// INPUT: Synthetische Bilder und PNG-Bytes
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, image, image/png, bytes
// HINWEISE: Testet Dekodierung, Format-Erkennung und NCHW Round-Trip

package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createPNGBytes erzeugt PNG-Bytes aus einem einfarbigen Testbild
func createPNGBytes(w, h int, c color.Color) []byte {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, rgba)
	return buf.Bytes()
}

func TestLoadImageFromBytes(t *testing.T) {
	pngData := createPNGBytes(100, 50, color.RGBA{255, 0, 0, 255})

	img, err := LoadImageFromBytes(pngData)
	if err != nil {
		t.Fatalf("LoadImageFromBytes() error = %v", err)
	}

	if img.Width != 100 || img.Height != 50 {
		t.Errorf("Groesse = %dx%d, erwartet 100x50", img.Width, img.Height)
	}

	if img.Format != FormatPNG {
		t.Errorf("Format = %v, erwartet %v", img.Format, FormatPNG)
	}
}

func TestLoadImageFromBytesInvalid(t *testing.T) {
	invalidData := []byte{0x00, 0x00, 0x00, 0x00}

	_, err := LoadImageFromBytes(invalidData)
	if err == nil {
		t.Error("Erwartet Fehler bei ungueltigem Format")
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		data []byte
		want ImageFormat
	}{
		{[]byte{0xFF, 0xD8, 0xFF, 0xE0}, FormatJPEG},
		{[]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}, FormatPNG},
		{append([]byte("RIFF1234"), []byte("WEBP")...), FormatWebP},
		{[]byte("RIFF1234WAVE"), FormatUnknown},
		{[]byte{0x00}, FormatUnknown},
	}

	for _, c := range cases {
		if got := DetectFormat(c.data); got != c.want {
			t.Errorf("DetectFormat(%v) = %v, erwartet %v", c.data[:min(4, len(c.data))], got, c.want)
		}
	}
}

func TestImageTensorRoundTrip(t *testing.T) {
	pngData := createPNGBytes(8, 6, color.RGBA{200, 100, 50, 255})
	img, err := LoadImageFromBytes(pngData)
	if err != nil {
		t.Fatalf("LoadImageFromBytes() error = %v", err)
	}

	tn, err := ImageToTensor(img)
	if err != nil {
		t.Fatalf("ImageToTensor() error = %v", err)
	}

	if want := [4]int{1, 3, 6, 8}; tn.Shape != want {
		t.Fatalf("Shape = %v, erwartet %v", tn.Shape, want)
	}

	out, err := TensorToImage(tn)
	if err != nil {
		t.Fatalf("TensorToImage() error = %v", err)
	}

	got := out.RGBAAt(3, 2)
	if got.R != 200 || got.G != 100 || got.B != 50 {
		t.Errorf("Pixel = %v, erwartet {200 100 50 255}", got)
	}
}

func TestBatchToTensor(t *testing.T) {
	a, _ := LoadImageFromBytes(createPNGBytes(4, 4, color.White))
	b, _ := LoadImageFromBytes(createPNGBytes(4, 4, color.Black))

	batch, err := BatchToTensor([]*ImageInput{a, b})
	if err != nil {
		t.Fatalf("BatchToTensor() error = %v", err)
	}

	if want := [4]int{2, 3, 4, 4}; batch.Shape != want {
		t.Errorf("Shape = %v, erwartet %v", batch.Shape, want)
	}

	if batch.At(0, 0, 0, 0) != 1 {
		t.Errorf("weisses bild: wert = %v, erwartet 1", batch.At(0, 0, 0, 0))
	}
	if batch.At(1, 0, 0, 0) != 0 {
		t.Errorf("schwarzes bild: wert = %v, erwartet 0", batch.At(1, 0, 0, 0))
	}
}

func TestBatchToTensorSizeMismatch(t *testing.T) {
	a, _ := LoadImageFromBytes(createPNGBytes(4, 4, color.White))
	b, _ := LoadImageFromBytes(createPNGBytes(5, 4, color.White))

	if _, err := BatchToTensor([]*ImageInput{a, b}); err == nil {
		t.Error("Erwartet Fehler bei unterschiedlichen Bild-Groessen")
	}
}
