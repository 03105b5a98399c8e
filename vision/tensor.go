// MODUL: tensor
// ZWECK: Konvertierung zwischen RGBA-Bildern und NCHW float32 Tensoren
// INPUT: ImageInput bzw. Tensor [N, 3, H, W]
// OUTPUT: Tensor [1, 3, H, W] bzw. *image.RGBA
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: tensor, parallel
// HINWEISE: Pixel-Werte werden auf [0,1] skaliert; TensorToImage klemmt
// Over-/Undershoot des bikubischen Kernels auf den gueltigen Bereich

package vision

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/7blacky7/mobinfer/parallel"
	"github.com/7blacky7/mobinfer/tensor"
)

// ImageToTensor konvertiert ein Bild zu einem [1, 3, H, W] Tensor.
// Pixel-Werte werden auf [0,1] skaliert.
func ImageToTensor(img *ImageInput) (*tensor.Tensor, error) {
	t, err := tensor.New(1, 3, img.Height, img.Width)
	if err != nil {
		return nil, err
	}

	w := img.Width
	rPlane := t.ChannelSlice(0, 0)
	gPlane := t.ChannelSlice(0, 1)
	bPlane := t.ChannelSlice(0, 2)

	parallel.Compute1D(img.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				c := img.Image.RGBAAt(x, y)
				idx := y*w + x
				rPlane[idx] = float32(c.R) / 255.0
				gPlane[idx] = float32(c.G) / 255.0
				bPlane[idx] = float32(c.B) / 255.0
			}
		}
	})

	return t, nil
}

// BatchToTensor stapelt mehrere gleich grosse Bilder zu [N, 3, H, W].
func BatchToTensor(imgs []*ImageInput) (*tensor.Tensor, error) {
	if len(imgs) == 0 {
		return nil, fmt.Errorf("leerer batch")
	}

	h, w := imgs[0].Height, imgs[0].Width
	batch, err := tensor.New(len(imgs), 3, h, w)
	if err != nil {
		return nil, err
	}

	for i, img := range imgs {
		if img.Height != h || img.Width != w {
			return nil, fmt.Errorf("bild %d hat groesse %dx%d, erwartet %dx%d", i, img.Width, img.Height, w, h)
		}
		single, err := ImageToTensor(img)
		if err != nil {
			return nil, err
		}
		copy(batch.Data[batch.ChannelOffset(i, 0):], single.Data)
	}

	return batch, nil
}

// TensorToImage konvertiert das erste Batch-Element eines [N, 3, H, W]
// Tensors zurueck zu einem RGBA-Bild.
func TensorToImage(t *tensor.Tensor) (*image.RGBA, error) {
	_, channels, h, w := t.Dims()
	if channels != 3 {
		return nil, fmt.Errorf("tensor hat %d kanaele, erwartet 3", channels)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rPlane := t.ChannelSlice(0, 0)
	gPlane := t.ChannelSlice(0, 1)
	bPlane := t.ChannelSlice(0, 2)

	parallel.Compute1D(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				img.SetRGBA(x, y, color.RGBA{
					R: clampByte(rPlane[idx]),
					G: clampByte(gPlane[idx]),
					B: clampByte(bPlane[idx]),
					A: 255,
				})
			}
		}
	})

	return img, nil
}

// clampByte skaliert [0,1] auf [0,255] und klemmt Ueber-/Unterschwinger
func clampByte(v float32) uint8 {
	scaled := float64(v) * 255.0
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(math.Round(scaled))
}
