package movement

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/game"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/samber/lo"
)

// Band is one of the discrete floor levels of the level.
type Band int

const (
	BandUnderground Band = iota
	BandGround
	BandRooftop
)

func (b Band) String() string {
	switch b {
	case BandUnderground:
		return "underground"
	case BandRooftop:
		return "rooftop"
	}
	return "ground"
}

// Movement advances the player's position from input, resolving collisions against the world's
// Collider Store one horizontal axis at a time. Vertical position is not simulated: it follows the
// floor band the player's eye height falls in.
type Movement struct {
	s *session.Session

	band  Band
	phase float32
}

// New creates the movement component of the session passed and registers it.
func New(s *session.Session) *Movement {
	m := &Movement{s: s, band: BandGround}
	s.SetMovement(m)
	return m
}

// Band returns the floor band the player was on at the end of the last tick.
func (m *Movement) Band() Band {
	return m.band
}

// Phase returns the head bob phase accumulator.
func (m *Movement) Phase() float32 {
	return m.phase
}

// Box returns the bounding box of the player's body for the eye position passed. The box spans from
// the feet up to the body height.
func (m *Movement) Box(eye mgl32.Vec3) cube.BBox {
	opts := m.s.Settings().Movement
	feet := eye.Y() - opts.EyeHeight
	hw := opts.BodyHalfWidth
	return cube.Box(
		eye.X()-hw, feet, eye.Z()-hw,
		eye.X()+hw, feet+opts.BodyHeight, eye.Z()+hw,
	)
}

// Tick moves the player according to the input passed.
func (m *Movement) Tick(in session.Input, dt float32) {
	p := m.s.Player()
	opts := m.s.Settings().Movement

	m.band = bandOf(p.Position.Y(), opts)
	band := bandSettings(m.band, opts)
	p.Position[1] = band.Floor + opts.EyeHeight

	forward, strafe := in.Axes()
	p.Forward, p.Strafe = forward, strafe
	if forward == 0 && strafe == 0 {
		p.Moving, p.Sprinting = false, false
		m.phase, p.Bob = 0, 0
		return
	}
	p.Sprinting = in.Sprint

	speed := opts.WalkSpeed
	if p.Sprinting {
		speed = opts.SprintSpeed
	}
	fwdVec, rightVec := game.FlatBasis(p.Yaw)
	move := fwdVec.Mul(forward).Add(rightVec.Mul(strafe)).Normalize().Mul(speed * dt)

	start := p.Position
	pos, res := m.resolve(start, move)
	pos[0] = lo.Clamp(pos.X(), band.MinX, band.MaxX)
	pos[2] = lo.Clamp(pos.Z(), band.MinZ, band.MaxZ)
	p.Position = pos
	p.Moving = res.Moved && pos != start

	m.s.Dbg.Notify(session.DebugModeMovement, true, "move=%v blockedX=%v blockedZ=%v pos=%v band=%v", move, res.BlockedX, res.BlockedZ, pos, m.band)
	m.s.Dbg.Notify(session.DebugModeMovement, res.BlockedX && res.BlockedZ, "fully blocked at %v", pos)

	if !p.Moving {
		// Pushing into a wall is standing still.
		m.phase, p.Bob = 0, 0
		return
	}
	rate, amp := opts.WalkBobRate, opts.WalkBobAmplitude
	if p.Sprinting {
		rate, amp = opts.SprintBobRate, opts.SprintBobAmplitude
	}
	m.phase += dt * rate
	p.Bob = math32.Sin(m.phase) * amp
	m.s.Audio().Footsteps(p.Sprinting, dt)
}

// bandOf returns the band the eye height passed falls in.
func bandOf(eyeY float32, opts settings.Movement) Band {
	switch {
	case eyeY < opts.UndergroundBelow:
		return BandUnderground
	case eyeY > opts.RooftopAbove:
		return BandRooftop
	}
	return BandGround
}

func bandSettings(b Band, opts settings.Movement) settings.Band {
	switch b {
	case BandUnderground:
		return opts.Underground
	case BandRooftop:
		return opts.Rooftop
	}
	return opts.Ground
}
