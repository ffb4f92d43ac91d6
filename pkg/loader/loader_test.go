package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func createTestImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 100, 255})
		}
	}
	return img
}

func TestDecodeBytesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, createTestImage(20, 10)); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	l := New()
	img, err := l.DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 10 {
		t.Errorf("decoded %dx%d, expected 20x10", bounds.Dx(), bounds.Dy())
	}
}

func TestDecodeBytesGarbage(t *testing.T) {
	l := New()
	if _, err := l.DecodeBytes([]byte("not an image")); err == nil {
		t.Error("expected error for non-image bytes")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := New()
	img := createTestImage(30, 20)

	for _, format := range []string{"png", "jpg", "webp"} {
		path := filepath.Join(dir, "test."+format)
		if err := l.SaveImage(img, path, format, 90, false); err != nil {
			t.Fatalf("SaveImage %s failed: %v", format, err)
		}

		loaded, err := l.LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage %s failed: %v", format, err)
		}
		bounds := loaded.Bounds()
		if bounds.Dx() != 30 || bounds.Dy() != 20 {
			t.Errorf("%s: loaded %dx%d, expected 30x20", format, bounds.Dx(), bounds.Dy())
		}
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	l := New()
	if _, err := l.LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New().LoadImage(path); err == nil {
		t.Error("expected error for non-image content")
	}
}

func TestLoadImageFromURLRejectsScheme(t *testing.T) {
	l := New()
	if _, err := l.LoadImageFromURL("ftp://example.com/image.png"); err == nil {
		t.Error("expected error for unsupported URL scheme")
	}
}

func TestGetImageInfo(t *testing.T) {
	l := New()
	info := l.GetImageInfo(createTestImage(400, 300))

	if info.Width != 400 || info.Height != 300 {
		t.Errorf("info reports %dx%d, expected 400x300", info.Width, info.Height)
	}
	if info.AspectRatio != 400.0/300.0 {
		t.Errorf("aspect ratio %f, expected %f", info.AspectRatio, 400.0/300.0)
	}
	if info.Area != 120000 {
		t.Errorf("area %d, expected 120000", info.Area)
	}
}
