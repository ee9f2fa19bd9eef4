package object

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/game"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// DoorState is the state of a sliding door.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
)

func (s DoorState) String() string {
	switch s {
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	}
	return "closed"
}

// Door is a two-leaf sliding door. Once opened it never closes again.
type Door struct {
	// Leaves are the names of the two leaf props. The first slides towards -Axis, the second
	// towards +Axis.
	Leaves [2]string
	// Colliders are retracted once the slide completes.
	Colliders []string
	// Axis is the horizontal axis the leaves slide along.
	Axis     mgl32.Vec3
	Duration float32
	Travel   float32

	id    string
	state DoorState
	t     float32
}

// NewDoor creates a closed door sliding along X.
func NewDoor(leaves [2]string, colliders []string, duration, travel float32) *Door {
	return &Door{
		Leaves:    leaves,
		Colliders: colliders,
		Axis:      mgl32.Vec3{1, 0, 0},
		Duration:  duration,
		Travel:    travel,
	}
}

func (*Door) machine() {}

func (d *Door) bind(it *Interactable) {
	d.id = it.ID
}

// State returns the current state of the door.
func (d *Door) State() DoorState {
	return d.state
}

// Opened returns true once the door has finished opening.
func (d *Door) Opened() bool {
	return d.state == DoorOpen
}

// Open starts opening a closed door. Opening an opening or open door is a no-op.
func (d *Door) Open(s *session.Session) Result {
	if d.state != DoorClosed {
		return NoOp
	}
	d.state, d.t = DoorOpening, 0
	s.Play(audio.CueClick)
	s.Record("door_opening", utils.Fields("door", d.id))
	return Accepted
}

func (d *Door) animate(s *session.Session, dt float32) {
	if d.state != DoorOpening {
		return
	}
	d.t += dt
	k := game.EaseOutCubic(d.t / d.Duration)

	w := s.World()
	for i, name := range d.Leaves {
		leaf, ok := w.Prop(name)
		if !ok {
			continue
		}
		dir := float32(-1)
		if i == 1 {
			dir = 1
		}
		leaf.Offset = d.Axis.Mul(dir * k * d.Travel)
	}
	if d.t < d.Duration {
		return
	}

	d.state = DoorOpen
	for _, id := range d.Colliders {
		if err := w.Retract(id); err != nil {
			s.Log().Errorf("door %s: %v", d.id, err)
		}
	}
	s.Play(audio.CueDoorSlam)
	s.Record("door_open", utils.Fields("door", d.id, "retracted", len(d.Colliders)))
}

// SecurityDoor is a heavier door that only opens for a player holding the matching keycard.
type SecurityDoor struct {
	Door
	// Tier is the keycard tier required.
	Tier int
	// Indicator is the prop whose color turns from red to green once unlocked.
	Indicator string
}

// NewSecurityDoor creates a locked security door.
func NewSecurityDoor(door *Door, tier int, indicator string) *SecurityDoor {
	return &SecurityDoor{Door: *door, Tier: tier, Indicator: indicator}
}

// Unlock opens the door if the player holds the keycard. Without it the door stays locked, a
// rejection tone is played and a hint is pushed.
func (d *SecurityDoor) Unlock(s *session.Session) Result {
	if d.state != DoorClosed {
		return NoOp
	}
	if !s.Player().HasKeycard(d.Tier) {
		s.Play(audio.CueDenied)
		s.Hint("Access denied. A security keycard is required.")
		s.Log().Debugf("security door %s rejected, no tier %d keycard", d.id, d.Tier)
		return Rejected
	}
	if p, ok := s.World().Prop(d.Indicator); ok {
		p.Color = IndicatorGreen
	}
	return d.Open(s)
}

// Indicator colors of locked doors and valves.
var (
	IndicatorRed   = mgl32.Vec3{1, 0.1, 0.1}
	IndicatorGreen = mgl32.Vec3{0.1, 1, 0.2}
)
