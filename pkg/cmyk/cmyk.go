// Package cmyk implements pure RGB/CMYK color space conversion.
//
// The conversion is intentionally dependency-free: no ICC profiles and no
// color management, so the same input always produces the same output.
package cmyk

import (
	"fmt"
	"math"

	"github.com/cmyklens/cmyk-analyzer/pkg/types"
)

// FromRGB converts an 8-bit RGB triple to a CMYK quadruple with each
// channel expressed as a percentage in [0,100].
func FromRGB(r, g, b uint8) types.CMYK {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	k := 1 - math.Max(rf, math.Max(gf, bf))
	if k == 1 {
		// Pure black: the chromatic channels are undefined (0/0)
		return types.CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	c := (1 - rf - k) / (1 - k)
	m := (1 - gf - k) / (1 - k)
	y := (1 - bf - k) / (1 - k)

	return types.CMYK{C: c * 100, M: m * 100, Y: y * 100, K: k * 100}
}

// ToRGB converts a CMYK quadruple back to an 8-bit RGB triple, rounding to
// the nearest integer and clamping to [0,255]. A round trip through FromRGB
// and ToRGB reproduces the original triple within ±1 per channel.
func ToRGB(q types.CMYK) (uint8, uint8, uint8) {
	c := q.C / 100
	m := q.M / 100
	y := q.Y / 100
	k := q.K / 100

	r := 255 * (1 - c) * (1 - k)
	g := 255 * (1 - m) * (1 - k)
	b := 255 * (1 - y) * (1 - k)

	return clampChannel(r), clampChannel(g), clampChannel(b)
}

// HexKey returns the canonical hex key for an RGB triple, e.g. "#3FA0C8".
func HexKey(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ParseHex parses a "#RRGGBB" key produced by HexKey.
func ParseHex(key string) (uint8, uint8, uint8, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(key, "#%02X%02X%02X", &r, &g, &b); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", key, err)
	}
	return r, g, b, nil
}

// Distance returns the unweighted Euclidean distance between two RGB
// triples over the three channels.
func Distance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func clampChannel(v float64) uint8 {
	rounded := math.Round(v)
	if rounded < 0 {
		return 0
	}
	if rounded > 255 {
		return 255
	}
	return uint8(rounded)
}
