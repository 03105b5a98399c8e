// MODUL: formats
// ZWECK: Bildformat-Erkennung und Validierung
// INPUT: Bild-Bytes
// OUTPUT: ImageFormat, Fehler bei ungueltigem Format
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: bytes (stdlib)
// HINWEISE: Magic-Bytes-basierte Erkennung, unterstuetzt JPEG/PNG/WebP

package vision

import (
	"bytes"
	"errors"
)

// ImageFormat repraesentiert ein unterstuetztes Bildformat
type ImageFormat string

const (
	FormatJPEG    ImageFormat = "jpeg"
	FormatPNG     ImageFormat = "png"
	FormatWebP    ImageFormat = "webp"
	FormatUnknown ImageFormat = "unknown"
)

// ErrUnknownFormat wird zurueckgegeben wenn das Format nicht erkannt wurde
var ErrUnknownFormat = errors.New("unbekanntes Bildformat")

// DetectFormat erkennt das Bildformat anhand der Magic-Bytes
func DetectFormat(data []byte) ImageFormat {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return FormatJPEG
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
		return FormatPNG
	case bytes.HasPrefix(data, []byte("RIFF")) && len(data) >= 12 && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP
	default:
		return FormatUnknown
	}
}

// ValidateFormat prueft ob das Format dekodierbar ist
func ValidateFormat(format ImageFormat) error {
	switch format {
	case FormatJPEG, FormatPNG, FormatWebP:
		return nil
	default:
		return ErrUnknownFormat
	}
}
