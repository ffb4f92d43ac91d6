// Package analysis drives a full color composition analysis: downscale,
// grid sampling, clustering, channel statistics and report assembly.
package analysis

import (
	"context"
	"fmt"
	"image"

	"github.com/cmyklens/cmyk-analyzer/pkg/cluster"
	"github.com/cmyklens/cmyk-analyzer/pkg/cmyk"
	"github.com/cmyklens/cmyk-analyzer/pkg/sampler"
	"github.com/cmyklens/cmyk-analyzer/pkg/stats"
	"github.com/cmyklens/cmyk-analyzer/pkg/types"
)

// State tracks the progress of one analysis run.
type State int

const (
	StateIdle State = iota
	StateScaling
	StateSampling
	StateAggregating
	StateRanking
	StateComplete
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScaling:
		return "scaling"
	case StateSampling:
		return "sampling"
	case StateAggregating:
		return "aggregating"
	case StateRanking:
		return "ranking"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config holds the tunable parameters of an analysis run.
type Config struct {
	// Stride is the sampling grid spacing in pixels.
	Stride int
	// DistanceThreshold is the RGB distance below which colors merge.
	DistanceThreshold float64
	// MaxDimension caps the longer side of the analysis buffer.
	MaxDimension int
	// OnProgress, when set, receives a monotonically non-decreasing
	// percentage. It is invoked only when the integer value changes.
	OnProgress func(percent int)
}

// DefaultConfig returns the default analysis parameters.
func DefaultConfig() Config {
	return Config{
		Stride:            sampler.DefaultStride,
		DistanceThreshold: cluster.DefaultDistanceThreshold,
		MaxDimension:      sampler.DefaultMaxDimension,
	}
}

// Analyzer runs color composition analyses. An Analyzer is not safe for
// concurrent use; each Analyze call replaces the previous run's state.
type Analyzer struct {
	config Config
	state  State
}

// New creates an Analyzer with default configuration.
func New() *Analyzer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Analyzer with custom configuration.
// Non-positive numeric fields fall back to their defaults.
func NewWithConfig(config Config) *Analyzer {
	if config.Stride <= 0 {
		config.Stride = sampler.DefaultStride
	}
	if config.DistanceThreshold <= 0 {
		config.DistanceThreshold = cluster.DefaultDistanceThreshold
	}
	if config.MaxDimension <= 0 {
		config.MaxDimension = sampler.DefaultMaxDimension
	}
	return &Analyzer{config: config, state: StateIdle}
}

// State returns the state the most recent run ended in, or the phase the
// current run is in.
func (a *Analyzer) State() State {
	return a.state
}

// Analyze performs one full analysis pass over img. The image is
// downscaled, sampled on the configured grid, and every sample is fed to
// the clusterer and the channel aggregator. The returned report is
// immutable and owned by the caller.
//
// Cancellation via ctx is checked at each progress tick; a cancelled run
// ends in StateCancelled with ctx's error and no partial report.
func (a *Analyzer) Analyze(ctx context.Context, img image.Image) (*types.Report, error) {
	a.state = StateIdle

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return a.fail(fmt.Errorf("analyze: %w", sampler.ErrInvalidBuffer))
	}

	a.state = StateScaling
	scaled := sampler.Downscale(img, a.config.MaxDimension)

	a.state = StateSampling
	s := sampler.New(scaled, a.config.Stride)
	clusterer := cluster.New(a.config.DistanceThreshold)
	aggregator := stats.New()

	total := s.Count()
	processed := 0
	lastPercent := -1

	for {
		point, ok := s.Next()
		if !ok {
			break
		}

		clusterer.Observe(point.R, point.G, point.B)
		aggregator.Accumulate(cmyk.FromRGB(point.R, point.G, point.B))
		processed++

		if percent := processed * 100 / total; percent != lastPercent {
			lastPercent = percent
			if err := ctx.Err(); err != nil {
				a.state = StateCancelled
				return nil, err
			}
			if a.config.OnProgress != nil {
				a.config.OnProgress(percent)
			}
		}
	}

	// The realized sample count must match the analytic count exactly
	if processed != total {
		return a.fail(fmt.Errorf("analyze: sampled %d pixels, expected %d", processed, total))
	}

	a.state = StateAggregating
	overall, err := aggregator.Finalize()
	if err != nil {
		return a.fail(fmt.Errorf("analyze: %w", err))
	}

	a.state = StateRanking
	width, height := s.Bounds()
	report := &types.Report{
		Clusters:     clusterer.Rank(total),
		Overall:      overall,
		TotalSamples: total,
		Width:        width,
		Height:       height,
	}

	a.state = StateComplete
	return report, nil
}

func (a *Analyzer) fail(err error) (*types.Report, error) {
	a.state = StateFailed
	return nil, err
}
