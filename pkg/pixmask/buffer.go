package pixmask

import (
	"bytes"
	"image"
	"image/color"
)

// BytesPerPixel is the number of channels stored for each pixel: R, G, B.
const BytesPerPixel = 3

var _ image.Image = (*PixelBuffer)(nil)

// PixelBuffer is a packed, row-major RGB pixel grid without padding.
// The pixel at (x, y) starts at Pix[(y*Width + x)*BytesPerPixel].
//
// PixelBuffer implements image.Image as a fully opaque image, so it may be passed directly to an image encoder.
type PixelBuffer struct {
	Width, Height int
	Pix           []byte
}

// NewPixelBuffer allocates a black PixelBuffer with the given dimensions.
// Negative dimensions are treated as 0.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// FromImage normalizes img to 3 channel RGB.
// Alpha is discarded by taking the non-premultiplied channel values, so transparent pixels keep whatever color they carry.
func FromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	buf := NewPixelBuffer(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i] = c.R
			buf.Pix[i+1] = c.G
			buf.Pix[i+2] = c.B
			i += BytesPerPixel
		}
	}
	return buf
}

func (b *PixelBuffer) offset(x, y int) int {
	return (y*b.Width + x) * BytesPerPixel
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// RGBAt returns the channels of the pixel at (x, y), or zeros if out of bounds.
func (b *PixelBuffer) RGBAt(x, y int) (r, g, bl byte) {
	if !b.inBounds(x, y) {
		return 0, 0, 0
	}
	i := b.offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// SetRGB sets the pixel at (x, y). Out of bounds coordinates are ignored.
func (b *PixelBuffer) SetRGB(x, y int, r, g, bl byte) {
	if !b.inBounds(x, y) {
		return
	}
	i := b.offset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    pix,
	}
}

// Equal reports whether both buffers have the same dimensions and pixel data.
func (b *PixelBuffer) Equal(other *PixelBuffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Width == other.Width && b.Height == other.Height && bytes.Equal(b.Pix, other.Pix)
}

// Opaque is always true, since alpha is never stored.
func (b *PixelBuffer) Opaque() bool {
	return true
}

func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *PixelBuffer) At(x, y int) color.Color {
	r, g, bl := b.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}
