package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up vector.
var Up = mgl32.Vec3{0, 1, 0}

// DirectionVector returns a direction vector from the given yaw and pitch values, in degrees.
// A yaw and pitch of zero looks down the positive Z axis.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// YawTowards returns the yaw, in degrees, of a camera looking along the horizontal direction passed.
func YawTowards(dir mgl32.Vec3) float32 {
	return mgl32.RadToDeg(math32.Atan2(-dir.X(), dir.Z()))
}

// FlatBasis returns the camera's forward and right vectors flattened onto the XZ plane.
func FlatBasis(yaw float32) (forward, right mgl32.Vec3) {
	forward = DirectionVector(yaw, 0)
	forward[1] = 0
	forward = forward.Normalize()
	right = forward.Cross(Up).Normalize()
	return forward, right
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HzDistance returns the horizontal distance between two points.
func HzDistance(a, b mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(b.Sub(a)))
}

// SteerTowards moves from towards to along the XZ plane by at most step, keeping from's Y.
// The second return value is true once to has been reached.
func SteerTowards(from, to mgl32.Vec3, step float32) (mgl32.Vec3, bool) {
	delta := to.Sub(from)
	delta[1] = 0
	dist := delta.Len()
	if dist <= step || dist == 0 {
		return mgl32.Vec3{to.X(), from.Y(), to.Z()}, true
	}
	return from.Add(delta.Mul(step / dist)), false
}
