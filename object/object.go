package object

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/lockdown/session"
)

// Kind is the type tag of an interactable as supplied by the level builder.
type Kind string

const (
	KindNote          Kind = "note"
	KindTerminal      Kind = "terminal"
	KindVHS           Kind = "vhs"
	KindFinalTerminal Kind = "final_terminal"
	KindDoor          Kind = "door"
	KindLockedDoor    Kind = "locked_door"
	KindEscapeDoor    Kind = "escape_door"
	KindValve         Kind = "valve"
	KindKeycard       Kind = "keycard"
	KindKeycardTier2  Kind = "keycard_tier2"
	KindHatch         Kind = "hatch"
)

// Kinds is the closed set of interactable kinds.
var Kinds = []Kind{
	KindNote, KindTerminal, KindVHS, KindFinalTerminal, KindDoor, KindLockedDoor,
	KindEscapeDoor, KindValve, KindKeycard, KindKeycardTier2, KindHatch,
}

// Result is the outcome of an interaction. Illegal actions are rejections, never errors.
type Result int

const (
	// NoOp is returned when the machine was already past its initial state.
	NoOp Result = iota
	Accepted
	// Rejected is returned when a requirement, such as a keycard, was not met.
	Rejected
)

func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return "no-op"
}

// Machine is the state machine behind an interactable. The set of machines is closed: *Door,
// *SecurityDoor, *Valve, *Keycard, *Hatch, *EscapeDoor and *Readable.
type Machine interface {
	machine()
}

// animator is implemented by machines that animate over time.
type animator interface {
	animate(s *session.Session, dt float32)
}

// binder is implemented by machines that need their owning record, usually to toggle whether it
// can be interacted with.
type binder interface {
	bind(it *Interactable)
}

// Interactable is a raycastable object the player can activate. Interactables are never destroyed:
// a spent one is hidden or has Interactable set to false.
type Interactable struct {
	ID     string
	Kind   Kind
	Prompt string
	// Parts are the boxes that make up the object. A ray hitting any part resolves to this record.
	Parts []cube.BBox
	// Interactable is false for objects excluded from both the prompt and the activation raycast.
	Interactable bool
	// Payload is opaque display data from the level builder.
	Payload any
	Machine Machine
}
