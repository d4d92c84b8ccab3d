package texture

import (
	"testing"
)

func TestNewTileGrid_Coverage(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		tileSize      int
		expectedTiles int
	}{
		{"even split", 64, 16, 16},
		{"uneven split", 100, 32, 16},
		{"single tile", 32, 64, 1},
		{"tile per pixel", 4, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.size, tt.tileSize)

			if len(tiles) != tt.expectedTiles {
				t.Errorf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Every pixel must be covered by exactly one tile
			covered := make([]int, tt.size*tt.size)
			for _, tile := range tiles {
				if tile.Random == nil {
					t.Fatalf("Tile %d has no random generator", tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						if x < 0 || x >= tt.size || y < 0 || y >= tt.size {
							t.Fatalf("Tile %d bounds %v exceed canvas", tile.ID, tile.Bounds)
						}
						covered[y*tt.size+x]++
					}
				}
			}

			for i, count := range covered {
				if count != 1 {
					t.Fatalf("Pixel (%d,%d) covered %d times, expected exactly once",
						i%tt.size, i/tt.size, count)
				}
			}
		})
	}
}

func TestNewTile_DeterministicRandom(t *testing.T) {
	a := NewTile(3, NewTileGrid(64, 16)[3].Bounds)
	b := NewTile(3, NewTileGrid(64, 16)[3].Bounds)

	// Same tile ID seeds the same sequence
	for i := 0; i < 10; i++ {
		if a.Random.Float64() != b.Random.Float64() {
			t.Fatal("Tiles with the same ID should produce identical noise sequences")
		}
	}
}
