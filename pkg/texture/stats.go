package texture

// GenStats contains statistics about a generation run
type GenStats struct {
	TotalPixels int // Total number of pixels generated
	InsideDisc  int // Pixels falling inside the hole disc
	Tiles       int // Number of tiles the canvas was split into (0 for sequential runs)
	NumWorkers  int // Number of workers used (0 for sequential runs)
}

// Merge accumulates per-tile pixel counts into the run totals
func (s *GenStats) Merge(other GenStats) {
	s.TotalPixels += other.TotalPixels
	s.InsideDisc += other.InsideDisc
}
