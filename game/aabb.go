package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxFromCenter returns a bounding box from a center point and half extents.
func BoxFromCenter(center, half mgl32.Vec3) cube.BBox {
	return cube.Box(
		center.X()-half.X(), center.Y()-half.Y(), center.Z()-half.Z(),
		center.X()+half.X(), center.Y()+half.Y(), center.Z()+half.Z(),
	)
}
