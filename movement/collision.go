package movement

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Result is the outcome of resolving a move against the Collider Store.
type Result struct {
	// BlockedX and BlockedZ are true if the move had a component on the axis and it was reverted.
	BlockedX, BlockedZ bool
	// Moved is true if at least one axis was applied.
	Moved bool
	// Tests is the amount of collision tests performed.
	Tests int
}

// Move resolves the horizontal delta passed from the player's current position and applies the
// result, without touching band, bob or footsteps.
func (m *Movement) Move(delta mgl32.Vec3) Result {
	p := m.s.Player()
	pos, res := m.resolve(p.Position, delta)
	p.Position = pos
	return res
}

// resolve applies delta one horizontal axis at a time, X first, then Z from wherever X left the box.
// An axis whose tentative application overlaps an active collider is reverted, so a player pressing
// into a wall at an angle keeps sliding along it on the other axis.
func (m *Movement) resolve(pos, delta mgl32.Vec3) (mgl32.Vec3, Result) {
	var res Result
	w := m.s.World()

	if dx := delta.X(); dx != 0 {
		next := pos.Add(mgl32.Vec3{dx})
		res.Tests++
		if w.Intersects(m.Box(next)) {
			res.BlockedX = true
		} else {
			pos, res.Moved = next, true
		}
	}
	if dz := delta.Z(); dz != 0 {
		next := pos.Add(mgl32.Vec3{0, 0, dz})
		res.Tests++
		if w.Intersects(m.Box(next)) {
			res.BlockedZ = true
		} else {
			pos, res.Moved = next, true
		}
	}
	return pos, res
}
