// Package channel reconstructs an image through a single CMYK channel.
package channel

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"strings"
	"sync"

	"github.com/cmyklens/cmyk-analyzer/pkg/cmyk"
	"github.com/cmyklens/cmyk-analyzer/pkg/types"
)

// Channel selects one of the four CMYK channels.
type Channel int

const (
	Cyan Channel = iota
	Magenta
	Yellow
	Black
)

// Channels lists all four channels in canonical order.
var Channels = []Channel{Cyan, Magenta, Yellow, Black}

func (c Channel) String() string {
	switch c {
	case Cyan:
		return "cyan"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// ParseChannel converts a channel name to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cyan", "c":
		return Cyan, nil
	case "magenta", "m":
		return Magenta, nil
	case "yellow", "y":
		return Yellow, nil
	case "black", "k":
		return Black, nil
	default:
		return 0, fmt.Errorf("unknown channel: %q", s)
	}
}

// Isolator produces per-channel reconstructions of an image.
type Isolator struct {
	workers int
}

// New creates an Isolator. A non-positive worker count defaults to the
// number of available CPUs.
func New(workers int) *Isolator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Isolator{workers: workers}
}

// Isolate returns a new image of identical dimensions where every pixel
// has been converted to CMYK, all channels except ch zeroed, and
// converted back to RGB. The transform is pure and idempotent for a fixed
// channel; the input is not modified. It operates at full resolution of
// the given buffer, with no sampling.
func (iso *Isolator) Isolate(img image.Image, ch Channel) *image.NRGBA {
	src := toNRGBA(img)
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Output rows are disjoint per worker, so no locking is needed
	workers := iso.workers
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		startY, endY := splitRange(height, workers, worker)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				srcOff := y * src.Stride
				dstOff := y * dst.Stride
				for x := 0; x < width; x++ {
					r, g, b := isolatePixel(src.Pix[srcOff], src.Pix[srcOff+1], src.Pix[srcOff+2], ch)
					dst.Pix[dstOff] = r
					dst.Pix[dstOff+1] = g
					dst.Pix[dstOff+2] = b
					dst.Pix[dstOff+3] = src.Pix[srcOff+3]
					srcOff += 4
					dstOff += 4
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return dst
}

func isolatePixel(r, g, b uint8, ch Channel) (uint8, uint8, uint8) {
	q := cmyk.FromRGB(r, g, b)

	var kept types.CMYK
	switch ch {
	case Cyan:
		kept.C = q.C
	case Magenta:
		kept.M = q.M
	case Yellow:
		kept.Y = q.Y
	case Black:
		kept.K = q.K
	}

	return cmyk.ToRGB(kept)
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

func splitRange(length, workers, workerIndex int) (int, int) {
	chunkSize := length / workers
	remainder := length % workers
	start := workerIndex*chunkSize + min(workerIndex, remainder)
	end := start + chunkSize
	if workerIndex < remainder {
		end++
	}
	return start, end
}
