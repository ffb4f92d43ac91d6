// Package stats accumulates per-channel CMYK composition across samples.
package stats

import (
	"errors"

	"github.com/cmyklens/cmyk-analyzer/pkg/types"
)

// ErrNoSamples reports a finalize with zero accumulated samples.
var ErrNoSamples = errors.New("no samples accumulated")

// Aggregator keeps running sums of CMYK channel percentages. Each sample
// contributes its per-channel percentage, so the final value is the
// arithmetic mean across samples. The division happens only in Finalize.
type Aggregator struct {
	sumC, sumM, sumY, sumK float64
	count                  int
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Accumulate adds one sample's CMYK breakdown to the running totals.
func (a *Aggregator) Accumulate(q types.CMYK) {
	a.sumC += q.C
	a.sumM += q.M
	a.sumY += q.Y
	a.sumK += q.K
	a.count++
}

// Count returns the number of accumulated samples.
func (a *Aggregator) Count() int {
	return a.count
}

// Finalize returns the mean CMYK composition. It fails with ErrNoSamples
// when nothing has been accumulated rather than defaulting to zero.
func (a *Aggregator) Finalize() (types.CMYK, error) {
	if a.count == 0 {
		return types.CMYK{}, ErrNoSamples
	}
	n := float64(a.count)
	return types.CMYK{
		C: a.sumC / n,
		M: a.sumM / n,
		Y: a.sumY / n,
		K: a.sumK / n,
	}, nil
}

// Reset discards all accumulated state.
func (a *Aggregator) Reset() {
	*a = Aggregator{}
}
