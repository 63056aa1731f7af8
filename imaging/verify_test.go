package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// writePatternPNG writes a 64x64 test image, either a smooth gradient
// or a high-contrast checkerboard.
func writePatternPNG(t *testing.T, path string, checker bool) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if checker {
				if (x/8+y/8)%2 == 0 {
					img.Set(x, y, color.White)
				} else {
					img.Set(x, y, color.Black)
				}
			} else {
				img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func TestPerceptualDistance_IdenticalImages(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.png")
	b := filepath.Join(tmpDir, "b.png")
	writePatternPNG(t, a, false)
	writePatternPNG(t, b, false)

	distance, err := PerceptualDistance(a, b)
	if err != nil {
		t.Fatalf("PerceptualDistance() error: %v", err)
	}
	if distance != 0 {
		t.Errorf("Distance = %d for identical images, expected 0", distance)
	}
}

func TestPerceptualDistance_DifferentImages(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "gradient.png")
	b := filepath.Join(tmpDir, "checker.png")
	writePatternPNG(t, a, false)
	writePatternPNG(t, b, true)

	distance, err := PerceptualDistance(a, b)
	if err != nil {
		t.Fatalf("PerceptualDistance() error: %v", err)
	}
	if distance == 0 {
		t.Error("Distance = 0 for clearly different images, expected > 0")
	}
}

func TestPerceptualDistance_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.png")
	writePatternPNG(t, a, false)

	if _, err := PerceptualDistance(a, filepath.Join(tmpDir, "nope.png")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := PerceptualDistance(filepath.Join(tmpDir, "nope.png"), a); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestPerceptualDistance_UndecodableFile(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.png")
	writePatternPNG(t, a, false)

	garbage := filepath.Join(tmpDir, "garbage.webp")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := PerceptualDistance(a, garbage); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestPerceptualDistance_WebpOutput(t *testing.T) {
	if _, err := exec.LookPath("cwebp"); err != nil {
		t.Skip("cwebp not available, skipping WebP comparison test")
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "image.png")
	writePatternPNG(t, src, false)

	dst := filepath.Join(tmpDir, "image.webp")
	e := &CwebpEncoder{Quality: 100}
	if err := e.Encode(src, dst, false); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	distance, err := PerceptualDistance(src, dst)
	if err != nil {
		t.Fatalf("PerceptualDistance() error: %v", err)
	}
	if distance > defaultVerifyThreshold {
		t.Errorf("Distance = %d between source and conversion, expected <= %d", distance, defaultVerifyThreshold)
	}
}
