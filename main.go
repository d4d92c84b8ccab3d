package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/df07/go-normalmap/pkg/texture"
)

const outputFile = "HoleNormal.png"

func main() {
	fmt.Println("Generating hole normal map...")

	generator, err := texture.NewGenerator(texture.DefaultConfig(), nil)
	if err != nil {
		fmt.Printf("Error creating generator: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	img, stats, err := generator.GenerateParallel(texture.DefaultTileSize, 0)
	if err != nil {
		fmt.Printf("Error generating normal map: %v\n", err)
		os.Exit(1)
	}
	genTime := time.Since(startTime)

	fmt.Printf("Generation completed in %v\n", genTime)
	fmt.Printf("Pixels: %d total, %d inside the hole disc (%d tiles, %d workers)\n",
		stats.TotalPixels, stats.InsideDisc, stats.Tiles, stats.NumWorkers)

	if err := savePNG(img, outputFile); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s\n", outputFile)
}

// savePNG writes the canvas to a PNG file at the given path
func savePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
