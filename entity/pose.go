package entity

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose holds the offsets applied to the entity's limb meshes by its glitch animation.
type Pose struct {
	Head, LeftArm, RightArm, Torso mgl32.Vec3
}

// Pose returns the glitch animation pose at the time passed. It is purely cosmetic.
func (e *Entity) Pose(t float32) Pose {
	// Incommensurate frequencies keep the jitter from looking periodic.
	jerk := math32.Sin(t*23) * math32.Sin(t*3.7)
	return Pose{
		Head:     mgl32.Vec3{math32.Sin(t*17) * 0.04, jerk * 0.03, math32.Cos(t*11) * 0.04},
		LeftArm:  mgl32.Vec3{math32.Sin(t*9.1) * 0.06, 0, math32.Cos(t*13.3) * 0.05},
		RightArm: mgl32.Vec3{math32.Cos(t*8.3) * 0.06, 0, math32.Sin(t*12.7) * 0.05},
		Torso:    mgl32.Vec3{0, math32.Abs(jerk) * 0.02, 0},
	}
}

// CurrentPose returns the glitch pose at the entity's own clock.
func (e *Entity) CurrentPose() Pose {
	return e.Pose(e.clock)
}
