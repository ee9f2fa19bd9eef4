package object

import (
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// EscapeState is the state of the escape door.
type EscapeState int

const (
	EscapeLocked EscapeState = iota
	EscapeGranted
	EscapeOpen
)

func (s EscapeState) String() string {
	switch s {
	case EscapeGranted:
		return "granted"
	case EscapeOpen:
		return "open"
	}
	return "locked"
}

// EscapeDoor ends the level. It requires the tier-2 keycard and, once granted, runs its own short
// sequence that opens it and moves the player outside.
type EscapeDoor struct {
	Tier     int
	Collider string
	Mesh     string
	Anchor   string
	// RetractAt and TeleportAt are offsets from the grant.
	RetractAt, TeleportAt float32

	id    string
	state EscapeState
}

// NewEscapeDoor creates a locked escape door.
func NewEscapeDoor(collider, mesh, anchor string, retractAt, teleportAt float32) *EscapeDoor {
	return &EscapeDoor{
		Tier:       2,
		Collider:   collider,
		Mesh:       mesh,
		Anchor:     anchor,
		RetractAt:  retractAt,
		TeleportAt: teleportAt,
	}
}

func (*EscapeDoor) machine() {}

func (e *EscapeDoor) bind(it *Interactable) {
	e.id = it.ID
}

// State returns the state of the escape door.
func (e *EscapeDoor) State() EscapeState {
	return e.state
}

// Grant opens the door if the player holds the tier-2 keycard, otherwise it plays a rejection tone.
func (e *EscapeDoor) Grant(s *session.Session) Result {
	if e.state != EscapeLocked {
		return NoOp
	}
	if !s.Player().HasKeycard(e.Tier) {
		s.Play(audio.CueDenied)
		s.Hint("The lock reads: TIER 2 CLEARANCE REQUIRED.")
		s.Log().Debugf("escape door %s rejected, no tier %d keycard", e.id, e.Tier)
		return Rejected
	}
	e.state = EscapeGranted
	s.Record("escape_granted", utils.Fields("door", e.id))

	s.Scheduler().Start(sequencer.NewRun("escape/"+e.id,
		sequencer.Step{Name: "release", At: 0, Action: func(sequencer.Firing) {
			s.Play(audio.CueDoorSlam)
			s.Hint("The locks release one by one.")
		}},
		sequencer.Step{Name: "open", At: e.RetractAt, Action: func(sequencer.Firing) {
			if err := s.World().Retract(e.Collider); err != nil {
				s.Log().Errorf("escape door %s: %v", e.id, err)
			}
			if p, ok := s.World().Prop(e.Mesh); ok {
				p.Hide()
			}
			e.state = EscapeOpen
		}},
		sequencer.Step{Name: "outside", At: e.TeleportAt, Action: func(sequencer.Firing) {
			if pos, ok := s.World().Anchor(e.Anchor); ok {
				s.Teleport(pos)
			} else {
				s.Log().Errorf("escape door %s: anchor %q does not exist", e.id, e.Anchor)
			}
			s.Progress().Escaped = true
			s.Record("escaped", utils.Fields("door", e.id, "elapsed", s.Elapsed()))
		}},
	))
	return Accepted
}
