package sonyaces

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// CurveRamp renders the decoded transfer curve as a horizontal grayscale
// ramp, column brightness normalized to the curve's span over [0, 1] input.
// It is a quick visual check of baked LUT data, not a colorimetric preview.
func CurveRamp(tf TransferFunction, width, height int) *image.Gray16 {
	if width < 2 {
		width = 2
	}
	if height < 1 {
		height = 1
	}

	lin := make([]float64, width)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range lin {
		v := tf.Decode(float64(i) / float64(width-1))
		lin[i] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		v := uint16((lin[x] - lo) / span * math.MaxUint16)
		for y := 0; y < height; y++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(v >> 8)
			img.Pix[i+1] = uint8(v)
		}
	}
	return img
}

// Thumbnail downscales a ramp preview to fit within maxDim on both axes,
// preserving aspect ratio. Images already within bounds are returned as-is.
func Thumbnail(img image.Image, maxDim int) image.Image {
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
}
