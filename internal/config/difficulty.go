package config

import "github.com/vovakirdan/tui-flappy/internal/core"

// GapSize returns the gap height for an obstacle created at the given score.
// The gap shrinks by one cell per point and never drops below MinGapSize.
func (o ObstacleConfig) GapSize(score int) int {
	return core.Max(o.MinGapSize, o.BaseGapSize-score)
}
