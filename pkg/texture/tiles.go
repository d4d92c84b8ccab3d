package texture

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the canvas to be generated
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic noise
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	// Create deterministic random generator based on tile ID
	random := rand.New(rand.NewSource(int64(id + defaultSeed))) // +42 to avoid seed 0

	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: random,
	}
}

// NewTileGrid creates a grid of tiles covering the entire square canvas
func NewTileGrid(size, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension (ceiling division)
	tilesPerSide := (size + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesPerSide; tileY++ {
		for tileX := 0; tileX < tilesPerSide; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, size) // Don't exceed canvas bounds
			y1 := min(y0+tileSize, size)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
