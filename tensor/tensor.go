// MODUL: tensor
// ZWECK: Float32 NCHW Tensor fuer Bild- und Aktivierungs-Daten
// INPUT: Shape (Batch, Channels, Height, Width) und optionale Rohdaten
// OUTPUT: Tensor-Struktur mit Zugriffs- und Stride-Helfern
// NEBENEFFEKTE: keine (rein speicherbasiert)
// ABHAENGIGKEITEN: keine (stdlib)
// HINWEISE: Layout ist row-major NCHW; der Tensor besitzt seinen Buffer,
// Slices aus ChannelSlice teilen ihn
package tensor

import (
	"fmt"
)

// Rank ist die einzige unterstuetzte Tensor-Dimensionalitaet.
const Rank = 4

// Tensor ist ein 4-D float32 Tensor im NCHW Layout.
type Tensor struct {
	Data  []float32
	Shape [Rank]int // [Batch, Channels, Height, Width]
}

// New erstellt einen Tensor mit genulltem Buffer.
func New(batch, channels, height, width int) (*Tensor, error) {
	if batch <= 0 || channels <= 0 || height <= 0 || width <= 0 {
		return nil, fmt.Errorf("ungueltige shape: [%d %d %d %d]", batch, channels, height, width)
	}

	return &Tensor{
		Data:  make([]float32, batch*channels*height*width),
		Shape: [Rank]int{batch, channels, height, width},
	}, nil
}

// NewFromData erstellt einen Tensor ueber einem existierenden Buffer.
// Der Buffer wird nicht kopiert.
func NewFromData(data []float32, batch, channels, height, width int) (*Tensor, error) {
	t, err := New(batch, channels, height, width)
	if err != nil {
		return nil, err
	}

	if len(data) != t.NumElements() {
		return nil, fmt.Errorf("datenlaenge %d passt nicht zu shape [%d %d %d %d] (erwartet %d)",
			len(data), batch, channels, height, width, t.NumElements())
	}

	t.Data = data
	return t, nil
}

// Dims gibt die vier Dimensionen zurueck.
func (t *Tensor) Dims() (batch, channels, height, width int) {
	return t.Shape[0], t.Shape[1], t.Shape[2], t.Shape[3]
}

// NumElements gibt die Gesamtzahl der Elemente zurueck.
func (t *Tensor) NumElements() int {
	return t.Shape[0] * t.Shape[1] * t.Shape[2] * t.Shape[3]
}

// ChannelOffset gibt den Offset des (batch, channel) Bild-Plane im Buffer zurueck.
func (t *Tensor) ChannelOffset(batch, channel int) int {
	return (batch*t.Shape[1] + channel) * t.Shape[2] * t.Shape[3]
}

// ChannelSlice gibt die HxW Plane fuer (batch, channel) als Slice zurueck.
// Das Slice teilt den Buffer des Tensors.
func (t *Tensor) ChannelSlice(batch, channel int) []float32 {
	off := t.ChannelOffset(batch, channel)
	return t.Data[off : off+t.Shape[2]*t.Shape[3]]
}

// At liest das Element an (batch, channel, y, x).
func (t *Tensor) At(batch, channel, y, x int) float32 {
	return t.Data[t.ChannelOffset(batch, channel)+y*t.Shape[3]+x]
}

// Set schreibt das Element an (batch, channel, y, x).
func (t *Tensor) Set(batch, channel, y, x int, v float32) {
	t.Data[t.ChannelOffset(batch, channel)+y*t.Shape[3]+x] = v
}

// Clone erstellt eine tiefe Kopie.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.Data))
	copy(data, t.Data)
	return &Tensor{Data: data, Shape: t.Shape}
}

// String gibt eine kompakte Beschreibung zurueck.
func (t *Tensor) String() string {
	return fmt.Sprintf("tensor[%dx%dx%dx%d]", t.Shape[0], t.Shape[1], t.Shape[2], t.Shape[3])
}
