// Package cmykanalyzer analyzes the color composition of raster images.
//
// The package samples an image on a fixed grid, converts each sample to
// the subtractive CMYK color model, aggregates per-channel statistics and
// clusters visually similar colors into a ranked palette. It can also
// reconstruct an image through a single CMYK channel for visual
// inspection.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		cmykanalyzer "github.com/cmyklens/cmyk-analyzer"
//	)
//
//	func main() {
//		a := cmykanalyzer.New()
//
//		report, err := a.AnalyzeFile(context.Background(), "photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		fmt.Printf("analyzed %d samples, overall k=%.1f%%\n",
//			report.TotalSamples, report.Overall.K)
//		for _, c := range report.Top(5).Clusters {
//			fmt.Printf("%s %6.2f%% (%d samples)\n", c.Hex, c.Percent, c.Count)
//		}
//	}
//
// The package consists of six main components:
//
// 1. Sampler (pkg/sampler): deterministic grid sampling and downscaling
// 2. Converter (pkg/cmyk): pure RGB/CMYK color space conversion
// 3. Clusterer (pkg/cluster): greedy first-match color clustering
// 4. Aggregator (pkg/stats): per-channel composition statistics
// 5. Isolator (pkg/channel): single-channel image reconstruction
// 6. Analyzer (pkg/analysis): the orchestrating state machine
//
// Large images are downscaled before analysis so that the longer side
// does not exceed a configurable maximum (default 1000px); all reported
// coordinates and channel previews refer to the scaled buffer. Clustering
// is a greedy, order-dependent approximation: each sample merges into the
// first cluster within the distance threshold, so the result is
// reproducible but not globally optimal.
package cmykanalyzer

import (
	"context"
	"fmt"
	"image"

	"github.com/cmyklens/cmyk-analyzer/pkg/analysis"
	"github.com/cmyklens/cmyk-analyzer/pkg/channel"
	"github.com/cmyklens/cmyk-analyzer/pkg/loader"
	"github.com/cmyklens/cmyk-analyzer/pkg/sampler"
	"github.com/cmyklens/cmyk-analyzer/pkg/types"
)

// Version of the cmyk-analyzer library
const Version = "1.0.0"

// Analyzer provides a high-level interface for color composition analysis
type Analyzer struct {
	loader   *loader.Loader
	analyzer *analysis.Analyzer
	isolator *channel.Isolator

	maxDimension int
}

// New creates a new Analyzer with default configuration
func New() *Analyzer {
	return NewWithConfig(analysis.DefaultConfig(), 0)
}

// NewWithConfig creates a new Analyzer with custom analysis configuration
// and worker count for channel isolation (0 = number of CPUs)
func NewWithConfig(analysisConfig analysis.Config, isolationWorkers int) *Analyzer {
	a := analysis.NewWithConfig(analysisConfig)
	maxDimension := analysisConfig.MaxDimension
	if maxDimension <= 0 {
		maxDimension = sampler.DefaultMaxDimension
	}

	return &Analyzer{
		loader:       loader.New(),
		analyzer:     a,
		isolator:     channel.New(isolationWorkers),
		maxDimension: maxDimension,
	}
}

// LoadImage loads an image from a file path (JPEG, PNG, GIF or WebP)
func (a *Analyzer) LoadImage(path string) (image.Image, error) {
	return a.loader.LoadImage(path)
}

// LoadImageSmart loads an image from either a file path or an HTTP(S) URL
func (a *Analyzer) LoadImageSmart(source string) (image.Image, error) {
	return a.loader.LoadImageSmart(source)
}

// DecodeBytes decodes raw JPEG, PNG, GIF or WebP file bytes
func (a *Analyzer) DecodeBytes(data []byte) (image.Image, error) {
	return a.loader.DecodeBytes(data)
}

// AnalyzeImage runs a full composition analysis on a decoded image
func (a *Analyzer) AnalyzeImage(ctx context.Context, img image.Image) (*types.Report, error) {
	return a.analyzer.Analyze(ctx, img)
}

// AnalyzeFile loads an image from a path or URL and analyzes it
func (a *Analyzer) AnalyzeFile(ctx context.Context, source string) (*types.Report, error) {
	img, err := a.LoadImageSmart(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return a.AnalyzeImage(ctx, img)
}

// AnalyzeRGB adopts a row-major 8-bit RGB buffer and analyzes it
func (a *Analyzer) AnalyzeRGB(ctx context.Context, data []byte, width, height int) (*types.Report, error) {
	img, err := sampler.FromRGB(data, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to adopt pixel buffer: %w", err)
	}
	return a.AnalyzeImage(ctx, img)
}

// IsolateChannel reconstructs img through a single CMYK channel. The
// image is downscaled with the same limit the analysis uses, so the
// preview matches the buffer the report refers to.
func (a *Analyzer) IsolateChannel(img image.Image, ch channel.Channel) *image.NRGBA {
	scaled := sampler.Downscale(img, a.maxDimension)
	return a.isolator.Isolate(scaled, ch)
}

// SaveImage saves an image to a file with the specified format and quality
func (a *Analyzer) SaveImage(img image.Image, path, format string, quality int, lossless bool) error {
	return a.loader.SaveImage(img, path, format, quality, lossless)
}

// State returns the state of the most recent analysis run
func (a *Analyzer) State() analysis.State {
	return a.analyzer.State()
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
