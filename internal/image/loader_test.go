package image

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-colour PNG and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("Load() bounds = %v, want 4x4", img.Bounds())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	loader := NewFileLoader()

	if _, err := loader.Load(""); err == nil {
		t.Error("Load() expected error for empty path")
	}
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load() expected error for missing file")
	}
	if _, err := loader.Load(t.TempDir()); err == nil {
		t.Error("Load() expected error for directory path")
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t)

	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath() error = %v", err)
	}
	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath() expected error for empty path")
	}
	if err := ValidateImagePath("https://example.com/wallpaper.png"); err != nil {
		t.Errorf("ValidateImagePath() error for URL = %v", err)
	}

	// Not an image.
	bad := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateImagePath(bad); err == nil {
		t.Error("ValidateImagePath() expected error for non-image file")
	}
}

func TestGetImageDimensions(t *testing.T) {
	path := writeTestPNG(t)

	w, h, err := GetImageDimensions(path)
	if err != nil {
		t.Fatalf("GetImageDimensions() error = %v", err)
	}
	if w != 4 || h != 4 {
		t.Errorf("GetImageDimensions() = %dx%d, want 4x4", w, h)
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("http://example.com/a.png") || !IsURL("https://example.com/a.png") {
		t.Error("IsURL() = false for URL")
	}
	if IsURL("/tmp/a.png") {
		t.Error("IsURL() = true for local path")
	}
}
