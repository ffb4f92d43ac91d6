// Package loader handles image intake and output for the analyzer:
// loading from file paths, URLs or raw bytes with WebP support, and
// saving reconstructed channel previews.
package loader

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Loader loads and saves images in the formats the analyzer accepts.
type Loader struct {
	client *http.Client
}

// New creates a Loader with a 30 second HTTP timeout for URL sources.
func New() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// LoadImage loads an image from a file path with WebP support.
func (l *Loader) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// LoadImageFromURL downloads and decodes an image from an HTTP(S) URL.
func (l *Loader) LoadImageFromURL(imageURL string) (image.Image, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme: %s (only http and https are supported)", parsedURL.Scheme)
	}

	req, err := http.NewRequest("GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CMYK-Analyzer/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: HTTP %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("URL does not point to an image (Content-Type: %s)", contentType)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return l.DecodeBytes(imageData)
}

// LoadImageSmart loads an image from either a file path or a URL.
func (l *Loader) LoadImageSmart(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.LoadImageFromURL(source)
	}
	return l.LoadImage(source)
}

// DecodeBytes decodes raw JPEG, PNG, GIF or WebP file bytes.
func (l *Loader) DecodeBytes(data []byte) (image.Image, error) {
	// Try standard image.Decode first
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	// Try WebP decode
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	return nil, fmt.Errorf("image: unknown or unsupported format")
}

// SaveImage saves an image to a file with the specified format and quality.
func (l *Loader) SaveImage(img image.Image, path, format string, quality int, lossless bool) error {
	switch strings.ToLower(format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	default: // jpg/jpeg
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	}
}

// ImageInfo contains basic image metadata.
type ImageInfo struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Area        int     `json:"area"`
}

// GetImageInfo returns basic information about an image.
func (l *Loader) GetImageInfo(img image.Image) ImageInfo {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	return ImageInfo{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
		Area:        width * height,
	}
}
