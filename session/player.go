package session

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/game"
)

// Input is the control surface sampled once per tick.
type Input struct {
	Forward, Back, Left, Right bool
	Sprint                     bool
	// Yaw and Pitch are the camera rotation in degrees.
	Yaw, Pitch float32
	// ToggleFlashlight and Interact are edges: true only on the tick the key went down.
	ToggleFlashlight bool
	Interact         bool
}

// Axes returns the forward and strafe axes of the input, each -1, 0 or 1. Strafe is positive to
// the right.
func (in Input) Axes() (forward, strafe float32) {
	if in.Forward {
		forward++
	}
	if in.Back {
		forward--
	}
	if in.Right {
		strafe++
	}
	if in.Left {
		strafe--
	}
	return forward, strafe
}

// Player is the state of the player owned by a Session.
type Player struct {
	// Position is the eye position of the player.
	Position   mgl32.Vec3
	Yaw, Pitch float32

	// Forward and Strafe hold the velocity intent of the last tick.
	Forward, Strafe float32
	Sprinting       bool
	Moving          bool
	// Bob is the vertical head bob offset applied to the camera.
	Bob float32

	Flashlight bool
	Battery    float32
	lowBattery bool

	keycard, keycardTier2 bool

	// ControlFrozen is set while a cinematic holds control. Movement and interaction are skipped.
	ControlFrozen bool
}

// Camera returns the position the camera renders from, including head bob.
func (p *Player) Camera() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, p.Bob, 0})
}

// LookDirection returns the unit vector the camera looks along.
func (p *Player) LookDirection() mgl32.Vec3 {
	return game.DirectionVector(p.Yaw, p.Pitch)
}

// HasKeycard returns true if the player holds a keycard of the tier passed. Tier 1 is the security
// keycard, tier 2 the escape keycard.
func (p *Player) HasKeycard(tier int) bool {
	switch tier {
	case 1:
		return p.keycard
	case 2:
		return p.keycardTier2
	}
	return false
}

// GrantKeycard gives the player a keycard of the tier passed.
func (p *Player) GrantKeycard(tier int) {
	switch tier {
	case 1:
		p.keycard = true
	case 2:
		p.keycardTier2 = true
	}
}

// Progress holds the session-wide counters and flags of a playthrough.
type Progress struct {
	// ValvesTurned is the total amount of valves turned. It never decreases.
	ValvesTurned int
	// Collectibles is counted according to the session's collectible policy.
	Collectibles int
	Escaped      bool

	cinematicRequested bool
}

// RequestCinematic asks the session to start the chapter cinematic at its next sequencer stage.
func (p *Progress) RequestCinematic() {
	p.cinematicRequested = true
}

// CinematicRequested returns true if a cinematic request is waiting to be consumed.
func (p *Progress) CinematicRequested() bool {
	return p.cinematicRequested
}

func (p *Progress) takeCinematicRequest() bool {
	r := p.cinematicRequested
	p.cinematicRequested = false
	return r
}
