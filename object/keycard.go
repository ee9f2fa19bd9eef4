package object

import (
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// Keycard is a pickup granting the player a keycard flag.
type Keycard struct {
	Tier   int
	Pickup string

	owner     *Interactable
	collected bool
}

// NewKeycard creates a keycard of the tier passed, shown by the pickup prop.
func NewKeycard(tier int, pickup string) *Keycard {
	return &Keycard{Tier: tier, Pickup: pickup}
}

func (*Keycard) machine() {}

func (k *Keycard) bind(it *Interactable) {
	k.owner = it
}

// Collected returns true once the keycard was picked up.
func (k *Keycard) Collected() bool {
	return k.collected
}

// Collect gives the keycard to the player, hides the pickup and disables the interactable.
func (k *Keycard) Collect(s *session.Session) Result {
	if k.collected {
		return NoOp
	}
	k.collected = true
	s.Player().GrantKeycard(k.Tier)
	if p, ok := s.World().Prop(k.Pickup); ok {
		p.Hide()
	}
	if k.owner != nil {
		k.owner.Interactable = false
	}
	s.Play(audio.CueClick)
	if k.Tier == 2 {
		s.Hint("Picked up a tier-2 keycard.")
	} else {
		s.Hint("Picked up a security keycard.")
	}
	s.Record("keycard", utils.Fields("tier", k.Tier))
	return Accepted
}
