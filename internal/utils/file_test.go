package utils

import (
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"photo.jpg", "jpg"},
		{"photo.PNG", "png"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
	}

	for _, test := range tests {
		if got := GetFileExtension(test.input); got != test.expected {
			t.Errorf("GetFileExtension(%s) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	images := []string{"a.jpg", "b.jpeg", "c.png", "d.gif", "e.webp", "F.JPG"}
	for _, name := range images {
		if !IsImageFile(name) {
			t.Errorf("expected %s to be an image file", name)
		}
	}

	others := []string{"a.txt", "b.pdf", "noext", "c.bmp.doc"}
	for _, name := range others {
		if IsImageFile(name) {
			t.Errorf("expected %s to not be an image file", name)
		}
	}
}

func TestBaseNameWithoutExt(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"photo.jpg", "photo"},
		{"path/to/photo.jpg", "photo"},
		{"image", "image"},
		{"test.image.jpg", "test.image"},
	}

	for _, test := range tests {
		if got := BaseNameWithoutExt(test.input); got != test.expected {
			t.Errorf("BaseNameWithoutExt(%s) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	got := GenerateOutputFilename("in/photo.jpg", "out", "_cyan", "png")
	expected := filepath.Join("out", "photo_cyan.png")
	if got != expected {
		t.Errorf("GenerateOutputFilename = %s, expected %s", got, expected)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	// Idempotent
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}
