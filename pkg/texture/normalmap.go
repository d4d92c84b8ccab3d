package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/go-normalmap/pkg/core"
)

const (
	// grooveExponent shapes the radial curvature profile of the hole;
	// higher values steepen the slope near the rim.
	grooveExponent = 1.5

	// radiusFactor shrinks the hole disc slightly inside the canvas edge
	radiusFactor = 0.95

	// normalEpsilon is the magnitude below which vectors are left
	// un-normalized rather than divided by a near-zero length
	normalEpsilon = 1e-6

	// defaultSeed seeds the fallback random generator for deterministic output
	defaultSeed = 42

	// DefaultTileSize is the tile edge length used for parallel generation
	DefaultTileSize = 64
)

// Config contains generation parameters for a hole normal map
type Config struct {
	Size       int     // Canvas width and height in pixels
	Strength   float64 // Groove intensity, clamped to [0,1] at use
	NoiseScale float64 // Amplitude of the uniform per-pixel perturbation
}

// DefaultConfig returns the standard hole normal map parameters
func DefaultConfig() Config {
	return Config{
		Size:       512,
		Strength:   0.6,
		NoiseScale: 0.02,
	}
}

// Generator bakes a tangent-space normal map of a circular indentation.
// Each pixel's normal is computed analytically from its distance to the
// canvas center, so pixels are independent of each other.
type Generator struct {
	config Config
	cx, cy float64 // Canvas center in pixel coordinates
	radius float64 // Hole radius in pixels
	logger core.Logger
}

// NewGenerator creates a generator for the given configuration.
// A nil logger falls back to stdout output.
func NewGenerator(config Config, logger core.Logger) (*Generator, error) {
	if config.Size <= 0 {
		return nil, fmt.Errorf("texture: size must be positive, got %d", config.Size)
	}
	if logger == nil {
		logger = core.NewDefaultLogger()
	}

	cx := float64(config.Size-1) / 2.0
	cy := float64(config.Size-1) / 2.0

	return &Generator{
		config: config,
		cx:     cx,
		cy:     cy,
		radius: math.Min(cx, cy) * radiusFactor,
		logger: logger,
	}, nil
}

// Config returns the generator's configuration
func (g *Generator) Config() Config {
	return g.config
}

// normalAt computes the pre-noise surface normal for one pixel and
// reports whether the pixel falls inside the hole disc.
func (g *Generator) normalAt(x, y int) (core.Vec3, bool) {
	dx := (float64(x) - g.cx) / g.radius
	dy := (float64(y) - g.cy) / g.radius
	dist2 := dx*dx + dy*dy

	// Outside the disc the surface is flat
	if dist2 > 1.0 {
		return core.NewVec3(0, 0, 1), false
	}

	// Concave groove profile: z = sqrt(1 - dist2^p * k), tilting the
	// normal outward in proportion to the clamped strength
	k := math.Max(0.0, math.Min(1.0, g.config.Strength))
	inner := math.Max(0.0, 1.0-math.Pow(dist2, grooveExponent)*k)
	dz := math.Sqrt(inner)

	v := core.NewVec3(dx*k, dy*k, dz)
	return v.NormalizeIfLonger(normalEpsilon), true
}

// pixelAt computes the final encoded pixel, applying noise to the x and y
// components before re-normalizing. The z component carries through.
func (g *Generator) pixelAt(x, y int, random *rand.Rand) (color.RGBA, bool) {
	normal, inside := g.normalAt(x, y)

	perturbed := core.NewVec3(
		normal.X+(random.Float64()-0.5)*g.config.NoiseScale,
		normal.Y+(random.Float64()-0.5)*g.config.NoiseScale,
		normal.Z,
	)

	return encodeNormal(perturbed.NormalizeIfLonger(normalEpsilon)), inside
}

// encodeNormal maps a normal vector onto RGB bytes, with each component's
// [-1,1] range mapped linearly to [0,255]. Alpha is fully opaque.
func encodeNormal(n core.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round((n.X*0.5 + 0.5) * 255)),
		G: uint8(math.Round((n.Y*0.5 + 0.5) * 255)),
		B: uint8(math.Round((n.Z*0.5 + 0.5) * 255)),
		A: 255,
	}
}

// DecodeNormal recovers the surface normal encoded in a pixel's RGB channels
func DecodeNormal(c color.RGBA) core.Vec3 {
	return core.NewVec3(
		float64(c.R)/255.0*2.0-1.0,
		float64(c.G)/255.0*2.0-1.0,
		float64(c.B)/255.0*2.0-1.0,
	)
}

// Generate bakes the full normal map sequentially using the supplied
// random generator for noise draws. A nil generator falls back to a
// deterministic default seed.
func (g *Generator) Generate(random *rand.Rand) *image.RGBA {
	if random == nil {
		random = rand.New(rand.NewSource(defaultSeed))
	}

	img := image.NewRGBA(image.Rect(0, 0, g.config.Size, g.config.Size))
	renderer := NewTileRenderer(g)
	renderer.RenderTileBounds(img.Bounds(), img, random)

	return img
}

// GenerateParallel bakes the normal map by splitting the canvas into tiles
// and distributing them across a worker pool. Each tile has its own
// deterministic random generator, so the output for a given tile size does
// not depend on scheduling order. With tileSize <= 0 the default tile size
// is used; with numWorkers <= 0 the worker count matches the CPU count.
func (g *Generator) GenerateParallel(tileSize, numWorkers int) (*image.RGBA, GenStats, error) {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	img := image.NewRGBA(image.Rect(0, 0, g.config.Size, g.config.Size))
	tiles := NewTileGrid(g.config.Size, tileSize)
	pool := NewWorkerPool(g, tileSize, numWorkers)

	g.logger.Printf("Generating %dx%d normal map across %d tiles (using %d workers)...\n",
		g.config.Size, g.config.Size, len(tiles), pool.GetNumWorkers())

	pool.Start()
	defer pool.Stop()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
			Canvas: img,
		})
	}

	stats := GenStats{
		Tiles:      len(tiles),
		NumWorkers: pool.GetNumWorkers(),
	}
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			return nil, GenStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Err != nil {
			return nil, GenStats{}, result.Err
		}
		stats.Merge(result.Stats)
	}

	return img, stats, nil
}
