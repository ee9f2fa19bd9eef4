package world

import "github.com/go-gl/mathgl/mgl32"

// Light is a scene light whose intensity and color are driven by sequencer runs.
type Light struct {
	Intensity float32
	Color     mgl32.Vec3

	baseIntensity float32
	baseColor     mgl32.Vec3
}

// Restore resets the light to the values it was created with.
func (l *Light) Restore() {
	l.Intensity = l.baseIntensity
	l.Color = l.baseColor
}

// Rebase replaces the values Restore returns the light to and applies them.
func (l *Light) Rebase(intensity float32, color mgl32.Vec3) {
	l.baseIntensity, l.baseColor = intensity, color
	l.Restore()
}

// Base returns the intensity the light is restored to.
func (l *Light) Base() float32 {
	return l.baseIntensity
}

// Prop is a scene graph node driven by the simulation. Props are never removed, only hidden.
type Prop struct {
	Visible  bool
	Position mgl32.Vec3
	// Offset is added to Position when rendering. Sliding door leaves use it.
	Offset mgl32.Vec3
	// Rotation is in degrees around the prop's local axis.
	Rotation float32
	Opacity  float32
	Color    mgl32.Vec3
}

// Hide hides the prop.
func (p *Prop) Hide() {
	p.Visible = false
}

// RenderPosition returns the position the prop should be drawn at.
func (p *Prop) RenderPosition() mgl32.Vec3 {
	return p.Position.Add(p.Offset)
}
