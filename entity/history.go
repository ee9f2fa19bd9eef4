package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/game"
)

// HistoricalPosition is where the entity stood at the end of a session tick.
type HistoricalPosition struct {
	Position mgl32.Vec3
	Visible  bool
	Tick     uint64
}

// LastSeen returns the most recent remembered position at which the entity was visible.
func (e *Entity) LastSeen() (HistoricalPosition, bool) {
	var (
		result HistoricalPosition
		found  bool
	)
	for hp := range e.PositionHistory.Iter() {
		if hp.Visible {
			result, found = hp, true
		}
	}
	return result, found
}

// Travelled returns the horizontal distance the entity covered in the remembered ticks after the
// tick passed.
func (e *Entity) Travelled(since uint64) float32 {
	var (
		d    float32
		prev *HistoricalPosition
	)
	for hp := range e.PositionHistory.Iter() {
		if prev != nil && hp.Tick > since {
			d += game.HzDistance(prev.Position, hp.Position)
		}
		prev = &hp
	}
	return d
}
