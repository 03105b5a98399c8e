// convert.go - Half-Precision Konvertierung fuer Tensor-Buffer
// Enthaelt: ToFloat16, FromFloat16, ToBFloat16, FromBFloat16
// Inferenz-Engines liefern Aktivierungen haeufig als f16/bf16; die
// Resize-Kernels rechnen intern in f32
package tensor

import (
	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// ToFloat16 konvertiert den Buffer nach IEEE 754 half precision.
func (t *Tensor) ToFloat16() []uint16 {
	out := make([]uint16, len(t.Data))
	for i, v := range t.Data {
		out[i] = float16.Fromfloat32(v).Bits()
	}
	return out
}

// FromFloat16 erstellt einen Tensor aus IEEE 754 half precision Daten.
func FromFloat16(data []uint16, batch, channels, height, width int) (*Tensor, error) {
	f32 := make([]float32, len(data))
	for i, v := range data {
		f32[i] = float16.Frombits(v).Float32()
	}
	return NewFromData(f32, batch, channels, height, width)
}

// ToBFloat16 konvertiert den Buffer nach bfloat16.
func (t *Tensor) ToBFloat16() []bfloat16.BF16 {
	out := make([]bfloat16.BF16, len(t.Data))
	for i, v := range t.Data {
		out[i] = bfloat16.FromFloat32(v)
	}
	return out
}

// FromBFloat16 erstellt einen Tensor aus bfloat16 Daten.
func FromBFloat16(data []bfloat16.BF16, batch, channels, height, width int) (*Tensor, error) {
	f32 := make([]float32, len(data))
	for i, v := range data {
		f32[i] = bfloat16.ToFloat32(v)
	}
	return NewFromData(f32, batch, channels, height, width)
}
