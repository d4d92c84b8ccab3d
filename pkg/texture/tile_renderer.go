package texture

import (
	"image"
	"math/rand"
)

// TileRenderer fills rectangular regions of a shared canvas with encoded
// normals. Tiles have non-overlapping bounds, so concurrent renderers may
// write to the same canvas without synchronization.
type TileRenderer struct {
	generator *Generator
}

// NewTileRenderer creates a tile renderer backed by the given generator
func NewTileRenderer(generator *Generator) *TileRenderer {
	return &TileRenderer{generator: generator}
}

// RenderTileBounds computes and stores every pixel within the specified
// bounds, drawing noise from the supplied random generator
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, canvas *image.RGBA, random *rand.Rand) GenStats {
	stats := GenStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel, inside := tr.generator.pixelAt(x, y, random)
			if inside {
				stats.InsideDisc++
			}
			canvas.SetRGBA(x, y, pixel)
		}
	}

	return stats
}
