// Package cluster groups visually similar colors into a ranked palette.
//
// The clustering is a greedy single pass: each observed color is merged
// into the first existing cluster whose representative lies within the
// distance threshold, in insertion order, or starts a new cluster. Ties
// and near-ties resolve by insertion order, not by minimal distance, so
// the output depends on observation order. Observe is O(clusters), which
// is a known scalability limit for very large palettes.
package cluster

import (
	"sort"

	"github.com/cmyklens/cmyk-analyzer/pkg/cmyk"
	"github.com/cmyklens/cmyk-analyzer/pkg/types"
)

// DefaultDistanceThreshold is the Euclidean RGB distance below which a
// sample merges into an existing cluster.
const DefaultDistanceThreshold = 15.0

type record struct {
	hex     string
	r, g, b uint8
	count   int
}

// Clusterer accumulates color observations into clusters. The zero value
// is not usable; create one with New.
type Clusterer struct {
	threshold float64
	records   []record
}

// New creates a Clusterer. A non-positive threshold falls back to
// DefaultDistanceThreshold.
func New(threshold float64) *Clusterer {
	if threshold <= 0 {
		threshold = DefaultDistanceThreshold
	}
	return &Clusterer{threshold: threshold}
}

// Observe merges a color into the first cluster within the distance
// threshold, or creates a new cluster with this color as its
// representative. Representatives never change once assigned.
func (c *Clusterer) Observe(r, g, b uint8) {
	for i := range c.records {
		rec := &c.records[i]
		if cmyk.Distance(r, g, b, rec.r, rec.g, rec.b) < c.threshold {
			rec.count++
			return
		}
	}

	c.records = append(c.records, record{
		hex:   cmyk.HexKey(r, g, b),
		r:     r,
		g:     g,
		b:     b,
		count: 1,
	})
}

// Len returns the number of clusters created so far.
func (c *Clusterer) Len() int {
	return len(c.records)
}

// Reset discards all clusters.
func (c *Clusterer) Reset() {
	c.records = c.records[:0]
}

// Rank returns all clusters sorted by descending count, with clusters of
// equal count keeping their insertion order. Each entry carries its share
// of totalSamples and the CMYK breakdown of its representative color.
func (c *Clusterer) Rank(totalSamples int) []types.RankedColor {
	ranked := make([]types.RankedColor, 0, len(c.records))
	for _, rec := range c.records {
		entry := types.RankedColor{
			Hex:   rec.hex,
			R:     rec.r,
			G:     rec.g,
			B:     rec.b,
			Count: rec.count,
			CMYK:  cmyk.FromRGB(rec.r, rec.g, rec.b),
		}
		if totalSamples > 0 {
			entry.Percent = float64(rec.count) / float64(totalSamples) * 100
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}
