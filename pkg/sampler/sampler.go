// Package sampler provides deterministic grid sampling over pixel buffers.
package sampler

import (
	"errors"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DefaultStride is the default spacing in pixels between grid samples.
const DefaultStride = 5

// DefaultMaxDimension caps the longer side of the analysis buffer.
const DefaultMaxDimension = 1000

// ErrInvalidBuffer reports a pixel buffer with zero dimensions or a raw
// byte length inconsistent with width*height*3.
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Point is a single grid sample: position and observed color.
type Point struct {
	X, Y    int
	R, G, B uint8
}

// Downscale resizes img so that its longer side does not exceed
// maxDimension, preserving aspect ratio. Images already within the limit
// are returned untouched; the scale factor is never above 1.
func Downscale(img image.Image, maxDimension int) image.Image {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	if w >= h {
		return imaging.Resize(img, maxDimension, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxDimension, imaging.Lanczos)
}

// FromRGB adopts a row-major 8-bit RGB buffer (three bytes per pixel) into
// an NRGBA image. Returns ErrInvalidBuffer when the dimensions are not
// positive or the byte length does not match width*height*3.
func FromRGB(data []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBuffer
	}
	if len(data) != width*height*3 {
		return nil, ErrInvalidBuffer
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	src := 0
	for y := 0; y < height; y++ {
		dst := y * img.Stride
		for x := 0; x < width; x++ {
			img.Pix[dst] = data[src]
			img.Pix[dst+1] = data[src+1]
			img.Pix[dst+2] = data[src+2]
			img.Pix[dst+3] = 0xFF
			src += 3
			dst += 4
		}
	}
	return img, nil
}

// Grid iterates the sampling positions of a width x height buffer with a
// fixed stride: x = 0, S, 2S, ... as the outer loop and y = 0, S, 2S, ...
// as the inner loop. The iterator is lazy, finite and restartable.
type Grid struct {
	width  int
	height int
	stride int
	x, y   int
}

// NewGrid creates a sampling grid. A non-positive stride falls back to
// DefaultStride.
func NewGrid(width, height, stride int) *Grid {
	if stride <= 0 {
		stride = DefaultStride
	}
	return &Grid{width: width, height: height, stride: stride}
}

// Count returns the exact number of samples the grid yields,
// ceil(W/S) * ceil(H/S), computed without iterating.
func (g *Grid) Count() int {
	if g.width <= 0 || g.height <= 0 {
		return 0
	}
	cols := (g.width + g.stride - 1) / g.stride
	rows := (g.height + g.stride - 1) / g.stride
	return cols * rows
}

// Next yields the next grid position. The second return value is false
// once the grid is exhausted.
func (g *Grid) Next() (int, int, bool) {
	if g.x >= g.width || g.height <= 0 {
		return 0, 0, false
	}

	x, y := g.x, g.y
	g.y += g.stride
	if g.y >= g.height {
		g.y = 0
		g.x += g.stride
	}
	return x, y, true
}

// Reset rewinds the iterator to the first grid position.
func (g *Grid) Reset() {
	g.x = 0
	g.y = 0
}

// Sampler walks an image on a sampling grid and yields pixel colors.
type Sampler struct {
	img  *image.NRGBA
	grid *Grid
}

// New binds a sampler to an image. The image is converted to NRGBA once up
// front so the sampling loop reads raw bytes instead of going through the
// color.Color interface per pixel.
func New(img image.Image, stride int) *Sampler {
	nrgba := toNRGBA(img)
	bounds := nrgba.Bounds()
	return &Sampler{
		img:  nrgba,
		grid: NewGrid(bounds.Dx(), bounds.Dy(), stride),
	}
}

// Count returns the analytic total number of samples.
func (s *Sampler) Count() int {
	return s.grid.Count()
}

// Bounds returns the dimensions of the sampled buffer.
func (s *Sampler) Bounds() (int, int) {
	bounds := s.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Next yields the next sample. The second return value is false once the
// pass is complete.
func (s *Sampler) Next() (Point, bool) {
	x, y, ok := s.grid.Next()
	if !ok {
		return Point{}, false
	}
	offset := y*s.img.Stride + x*4
	return Point{
		X: x,
		Y: y,
		R: s.img.Pix[offset],
		G: s.img.Pix[offset+1],
		B: s.img.Pix[offset+2],
	}, true
}

// Reset restarts the sampling pass from the first grid position.
func (s *Sampler) Reset() {
	s.grid.Reset()
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
