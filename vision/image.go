// MODUL: image
// ZWECK: Bild-Lade- und Dekodier-Funktionen fuer die Resize-Pipeline
// INPUT: Dateipfad, Bytes oder io.Reader
// OUTPUT: ImageInput Struktur mit dekodiertem Bild
// NEBENEFFEKTE: Dateisystem-Lesezugriff bei LoadImage
// ABHAENGIGKEITEN: golang.org/x/image/draw (extern), image/jpeg, image/png
// HINWEISE: Alle Bilder werden als RGBA konvertiert, WebP benoetigt x/image/webp

package vision

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Standard-Decoder registrieren
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ImageInput enthaelt ein dekodiertes Bild mit Metadaten
type ImageInput struct {
	Image  *image.RGBA
	Width  int
	Height int
	Format ImageFormat
}

// LoadImage laedt ein Bild von einem Dateipfad
func LoadImage(path string) (*ImageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datei lesen fehlgeschlagen: %w", err)
	}
	return LoadImageFromBytes(data)
}

// LoadImageFromBytes dekodiert ein Bild aus Byte-Daten
func LoadImageFromBytes(data []byte) (*ImageInput, error) {
	format := DetectFormat(data)
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	reader := bytes.NewReader(data)
	return decodeWithFormat(reader, format)
}

// DecodeImage dekodiert ein Bild aus einem io.Reader
func DecodeImage(reader io.Reader) (*ImageInput, error) {
	// Erst Daten puffern fuer Format-Erkennung
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("daten lesen fehlgeschlagen: %w", err)
	}
	return LoadImageFromBytes(data)
}

// decodeWithFormat dekodiert und konvertiert zu RGBA
func decodeWithFormat(reader io.Reader, format ImageFormat) (*ImageInput, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("bild dekodieren fehlgeschlagen: %w", err)
	}

	rgba := toRGBA(img)
	bounds := rgba.Bounds()

	return &ImageInput{
		Image:  rgba,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

// toRGBA konvertiert ein beliebiges image.Image zu *image.RGBA
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
