package object

import (
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// HatchState is the state of a hatch.
type HatchState int

const (
	HatchSealed HatchState = iota
	HatchUnlocked
	HatchUsed
)

func (s HatchState) String() string {
	switch s {
	case HatchUnlocked:
		return "unlocked"
	case HatchUsed:
		return "used"
	}
	return "sealed"
}

// Hatch is sealed until a cinematic unlocks it. Using it teleports the player to an anchor.
type Hatch struct {
	// Anchor names the eye position the player is teleported to.
	Anchor string

	owner *Interactable
	state HatchState
}

// NewHatch creates a sealed hatch leading to the anchor passed.
func NewHatch(anchor string) *Hatch {
	return &Hatch{Anchor: anchor}
}

func (*Hatch) machine() {}

func (h *Hatch) bind(it *Interactable) {
	h.owner = it
	it.Interactable = h.state == HatchUnlocked
}

// State returns the state of the hatch.
func (h *Hatch) State() HatchState {
	return h.state
}

// Unlock unseals the hatch, making it interactable. It is only called by a sequencer step.
func (h *Hatch) Unlock(s *session.Session) {
	if h.state != HatchSealed {
		return
	}
	h.state = HatchUnlocked
	if h.owner != nil {
		h.owner.Interactable = true
	}
	s.Record("hatch_unlocked", utils.Fields("anchor", h.Anchor))
}

// Use teleports the player through an unlocked hatch. A sealed or used hatch is a no-op.
func (h *Hatch) Use(s *session.Session) Result {
	if h.state != HatchUnlocked {
		return NoOp
	}
	pos, ok := s.World().Anchor(h.Anchor)
	if !ok {
		s.Log().Errorf("hatch: anchor %q does not exist", h.Anchor)
		return NoOp
	}
	h.state = HatchUsed
	if h.owner != nil {
		h.owner.Interactable = false
	}
	s.Play(audio.CueDoorSlam)
	s.Teleport(pos)
	return Accepted
}
