package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-normalmap/pkg/texture"
)

func TestSavePNG_RoundTrip(t *testing.T) {
	generator, err := texture.NewGenerator(texture.Config{Size: 32, Strength: 0.6, NoiseScale: 0.02}, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	img := generator.Generate(nil)

	filename := filepath.Join(t.TempDir(), "HoleNormal.png")
	if err := savePNG(img, filename); err != nil {
		t.Fatalf("savePNG failed: %v", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Failed to open written PNG: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode written PNG: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 32 {
		t.Errorf("Expected 32x32 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Decoded pixel values must survive the encode/decode round trip
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			wantR, wantG, wantB, wantA := img.At(x, y).RGBA()
			gotR, gotG, gotB, gotA := decoded.At(x, y).RGBA()
			if wantR != gotR || wantG != gotG || wantB != gotB || wantA != gotA {
				t.Fatalf("Pixel (%d,%d) changed across PNG round trip", x, y)
			}
		}
	}
}

func TestSavePNG_InvalidPath(t *testing.T) {
	generator, err := texture.NewGenerator(texture.Config{Size: 8, Strength: 0.6}, nil)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	img := generator.Generate(nil)

	if err := savePNG(img, filepath.Join(t.TempDir(), "missing", "HoleNormal.png")); err == nil {
		t.Error("Expected error when writing to a nonexistent directory")
	}
}
