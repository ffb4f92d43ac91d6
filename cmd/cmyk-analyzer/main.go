package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmyklens/cmyk-analyzer/internal/config"
	"github.com/cmyklens/cmyk-analyzer/internal/utils"
	"github.com/cmyklens/cmyk-analyzer/pkg/analysis"
	"github.com/cmyklens/cmyk-analyzer/pkg/channel"
	"github.com/cmyklens/cmyk-analyzer/pkg/loader"
	"github.com/cmyklens/cmyk-analyzer/pkg/sampler"
)

func main() {
	var in, outDir, channels, ext, configPath string
	var stride, maxDim, top, quality int
	var threshold float64
	var lossless bool

	flag.StringVar(&in, "in", "", "input image path or URL (jpg/png/gif/webp)")
	flag.StringVar(&outDir, "out", "", "output directory")
	flag.StringVar(&configPath, "config", "", "path to a JSON config file")

	flag.IntVar(&stride, "stride", 0, "sampling grid spacing in pixels")
	flag.Float64Var(&threshold, "threshold", 0, "cluster distance threshold")
	flag.IntVar(&maxDim, "maxdim", 0, "max long side of the analysis buffer (px)")
	flag.IntVar(&top, "top", 0, "number of clusters to report")

	flag.StringVar(&channels, "channels", "", "channel previews to write: comma list of c,m,y,k or 'all'")
	flag.StringVar(&ext, "ext", "", "preview output format: png|jpg|webp")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP preview quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP preview lossless mode")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|URL [-out outdir] [-stride 5] [-threshold 15] [-maxdim 1000] [-top 50] [-channels all|c,m,y,k]", filepath.Base(os.Args[0]))
	}

	cfg := loadConfig(configPath)
	applyFlags(cfg, stride, threshold, maxDim, top, outDir, ext, quality, lossless)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		log.Fatal(err)
	}

	// Load input image (from file or URL)
	l := loader.New()
	img, err := l.LoadImageSmart(in)
	if err != nil {
		log.Fatal(err)
	}
	info := l.GetImageInfo(img)
	log.Printf("loaded %s: %dx%d", in, info.Width, info.Height)

	analyzer := analysis.NewWithConfig(analysis.Config{
		Stride:            cfg.Analysis.Stride,
		DistanceThreshold: cfg.Analysis.DistanceThreshold,
		MaxDimension:      cfg.Analysis.MaxDimension,
		OnProgress: func(percent int) {
			if percent%20 == 0 {
				log.Printf("analyzing... %d%%", percent)
			}
		},
	})

	report, err := analyzer.Analyze(context.Background(), img)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	log.Printf("analyzed %d samples on a %dx%d buffer: %d clusters, overall c=%.1f m=%.1f y=%.1f k=%.1f",
		report.TotalSamples, report.Width, report.Height, len(report.Clusters),
		report.Overall.C, report.Overall.M, report.Overall.Y, report.Overall.K)

	for i, c := range report.Top(10).Clusters {
		log.Printf("%2d. %s %6.2f%% (%d samples)", i+1, c.Hex, c.Percent, c.Count)
	}

	// Write the report, truncated to the configured cluster count
	reportPath := filepath.Join(cfg.Output.Dir, "report.json")
	js, err := json.MarshalIndent(report.Top(cfg.Analysis.TopClusters), "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal report: %v", err)
	}
	if err := os.WriteFile(reportPath, js, 0o644); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	log.Printf("wrote %s", reportPath)

	// Previews operate on the same scaled buffer the report refers to
	scaled := sampler.Downscale(img, cfg.Analysis.MaxDimension)
	iso := channel.New(cfg.Isolation.Workers)
	for _, ch := range parseChannels(channels) {
		preview := iso.Isolate(scaled, ch)

		path := utils.GenerateOutputFilename(in, cfg.Output.Dir, "_"+ch.String(), cfg.Output.Format)
		if err := l.SaveImage(preview, path, cfg.Output.Format, cfg.Output.Quality, cfg.Output.Lossless); err != nil {
			log.Printf("save %s failed: %v", path, err)
			continue
		}
		log.Printf("wrote %s", path)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func applyFlags(cfg *config.Config, stride int, threshold float64, maxDim, top int, outDir, ext string, quality int, lossless bool) {
	if stride > 0 {
		cfg.Analysis.Stride = stride
	}
	if threshold > 0 {
		cfg.Analysis.DistanceThreshold = threshold
	}
	if maxDim > 0 {
		cfg.Analysis.MaxDimension = maxDim
	}
	if top > 0 {
		cfg.Analysis.TopClusters = top
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if ext != "" {
		cfg.Output.Format = strings.ToLower(ext)
	}
	if quality > 0 {
		cfg.Output.Quality = quality
	}
	if lossless {
		cfg.Output.Lossless = true
	}
}

func parseChannels(list string) []channel.Channel {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil
	}
	if strings.EqualFold(list, "all") {
		return channel.Channels
	}

	var chosen []channel.Channel
	for _, part := range strings.Split(list, ",") {
		ch, err := channel.ParseChannel(part)
		if err != nil {
			log.Fatalf("%v (use c, m, y, k or 'all')", err)
		}
		chosen = append(chosen, ch)
	}
	return chosen
}
