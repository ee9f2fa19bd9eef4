package entity

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/game"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// State is the behavior state of the entity.
type State int

const (
	// Dormant is the initial state, held until the activation countdown elapses. It is never
	// re-entered.
	Dormant State = iota
	Hidden
	Patrolling
	Chasing
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Patrolling:
		return "patrolling"
	case Chasing:
		return "chasing"
	}
	return "dormant"
}

// floorTolerance is the height difference below which the entity and the player are on the same floor.
const floorTolerance = 1

// historySize is the amount of ticks of positions the entity remembers.
const historySize = 128

// Entity is the autonomous antagonist. It steers straight at waypoints or the player and is never
// blocked by colliders.
type Entity struct {
	s *session.Session

	state        State
	position     mgl32.Vec3
	lastPosition mgl32.Vec3
	// yaw is the direction the entity faces, in degrees.
	yaw float32

	waypoints []mgl32.Vec3
	waypoint  int

	activationIn float32
	// windowIn is the time left in the current visible or hidden window.
	windowIn float32

	activations, contacts int
	clock                 float32
	// shownAt is the session tick the current visible window started at.
	shownAt uint64

	// prop is the scene node mirroring the entity's visibility and position.
	prop string
	// PositionHistory holds the positions of the last ticks, oldest first.
	PositionHistory *utils.CircularQueue[HistoricalPosition]
}

// New creates the dormant entity of the session at the position passed and registers it. The
// activation countdown is rolled from the session's random source. prop names the scene node that
// shows the entity and may be empty.
func New(s *session.Session, start mgl32.Vec3, waypoints []mgl32.Vec3, prop string) *Entity {
	e := &Entity{
		s:               s,
		position:        start,
		lastPosition:    start,
		waypoints:       waypoints,
		prop:            prop,
		activationIn:    s.Settings().Entity.Activation.Roll(s.Rand()),
		PositionHistory: utils.NewCircularQueue[HistoricalPosition](historySize),
	}
	e.syncProp()
	s.SetEntity(e)
	return e
}

// State returns the behavior state of the entity.
func (e *Entity) State() State {
	return e.state
}

// Visible returns true while the entity is patrolling or chasing.
func (e *Entity) Visible() bool {
	return e.state == Patrolling || e.state == Chasing
}

// Position returns the position of the entity's feet.
func (e *Entity) Position() mgl32.Vec3 {
	return e.position
}

// LastPosition returns the position of the entity before the last tick.
func (e *Entity) LastPosition() mgl32.Vec3 {
	return e.lastPosition
}

// Yaw returns the direction the entity faces, in degrees.
func (e *Entity) Yaw() float32 {
	return e.yaw
}

// Waypoint returns the index of the waypoint the entity patrols towards.
func (e *Entity) Waypoint() int {
	return e.waypoint
}

// Activations returns how many times the entity left the dormant state. It is at most one.
func (e *Entity) Activations() int {
	return e.activations
}

// Contacts returns how many times the entity reached the player.
func (e *Entity) Contacts() int {
	return e.contacts
}

// ActivationIn returns the time left until the entity activates.
func (e *Entity) ActivationIn() float32 {
	return e.activationIn
}

// WindowIn returns the time left in the current visible or hidden window.
func (e *Entity) WindowIn() float32 {
	return e.windowIn
}

// SetActivationCountdown overrides the activation countdown of a dormant entity.
func (e *Entity) SetActivationCountdown(d float32) {
	if e.state == Dormant {
		e.activationIn = d
	}
}

// Tick advances the entity by dt.
func (e *Entity) Tick(dt float32) {
	e.clock += dt
	e.lastPosition = e.position
	defer func() {
		_ = e.PositionHistory.Append(HistoricalPosition{
			Position: e.position,
			Visible:  e.Visible(),
			Tick:     e.s.Ticks(),
		})
		e.syncProp()
	}()

	opts := e.s.Settings().Entity
	switch e.state {
	case Dormant:
		e.activationIn -= dt
		if e.activationIn > 0 {
			return
		}
		e.activations++
		e.s.Record("entity_active", utils.Fields("position", e.position))
		e.show()
	case Hidden:
		e.windowIn -= dt
		if e.windowIn <= 0 {
			e.show()
		}
	case Patrolling, Chasing:
		e.windowIn -= dt
		if e.windowIn <= 0 {
			e.hide(opts.Hidden.Roll(e.s.Rand()))
			return
		}
		e.steer(dt)
	}
}

// steer moves a visible entity at the player or along its patrol route and handles contact.
func (e *Entity) steer(dt float32) {
	opts := e.s.Settings().Entity
	target := e.s.Player().Position
	target[1] -= e.s.Settings().Movement.EyeHeight
	dist := game.HzDistance(e.position, target)
	if math32.Abs(target.Y()-e.position.Y()) > floorTolerance {
		// The player is on another floor.
		dist = math32.Inf(1)
	}

	switch {
	case dist < opts.ContactRadius:
		e.contact()
		return
	case dist < opts.DetectionRadius:
		if e.state != Chasing {
			e.state = Chasing
			e.s.Play(audio.CueHeartbeat)
			e.s.Record("entity_chase", utils.Fields("distance", dist))
		}
		e.moveTowards(target, opts.ChaseSpeed*dt)
		return
	case e.state == Chasing:
		e.state = Patrolling
		e.s.Dbg.Notify(session.DebugModeEntity, true, "entity lost the player at %.2f", dist)
	}

	if len(e.waypoints) == 0 {
		return
	}
	wp := e.waypoints[e.waypoint]
	e.moveTowards(wp, opts.PatrolSpeed*dt)
	if game.HzDistance(e.position, wp) <= opts.CaptureRadius {
		e.waypoint = (e.waypoint + 1) % len(e.waypoints)
		e.s.Dbg.Notify(session.DebugModeEntity, true, "entity heading to waypoint %d", e.waypoint)
	}
}

func (e *Entity) moveTowards(target mgl32.Vec3, step float32) {
	next, _ := game.SteerTowards(e.position, target, step)
	if delta := next.Sub(e.position); delta.X() != 0 || delta.Z() != 0 {
		e.yaw = game.YawTowards(delta)
	}
	e.position = next
}

// contact scares the player and forces the entity into a longer hidden window.
func (e *Entity) contact() {
	e.contacts++
	e.s.Play(audio.CueScareStinger)
	e.s.HUD().ScreenShake()
	e.s.HUD().Flash()
	e.s.Record("entity_contact", utils.Fields("contacts", e.contacts))
	e.hide(e.s.Settings().Entity.ContactHide.Roll(e.s.Rand()))
}

func (e *Entity) show() {
	e.state = Patrolling
	e.shownAt = e.s.Ticks()
	e.windowIn = e.s.Settings().Entity.Visible.Roll(e.s.Rand())
	e.s.Dbg.Notify(session.DebugModeEntity, true, "entity visible for %.2fs", e.windowIn)
}

func (e *Entity) hide(d float32) {
	if seen, ok := e.LastSeen(); ok {
		e.s.Record("entity_hidden", utils.Fields("last_seen", seen.Position, "travelled", e.Travelled(e.shownAt), "for", d))
	}
	e.state = Hidden
	e.windowIn = d
	e.s.Dbg.Notify(session.DebugModeEntity, true, "entity hidden for %.2fs", d)
}

func (e *Entity) syncProp() {
	if e.prop == "" {
		return
	}
	if p, ok := e.s.World().Prop(e.prop); ok {
		p.Visible = e.Visible()
		p.Position = e.position
		p.Rotation = e.yaw
		p.Offset = mgl32.Vec3{}
		if p.Visible {
			p.Offset = e.CurrentPose().Torso
		}
	}
}
