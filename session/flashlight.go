package session

import (
	"github.com/oomph-ac/lockdown/audio"
	"github.com/samber/lo"
)

// tickFlashlight handles the flashlight toggle and drains the battery while the flashlight is on.
func (s *Session) tickFlashlight(in Input, dt float32) {
	p := &s.player
	if in.ToggleFlashlight {
		switch {
		case p.Flashlight:
			p.Flashlight = false
			s.Play(audio.CueClick)
		case p.Battery > 0:
			p.Flashlight = true
			s.Play(audio.CueClick)
		default:
			s.Hint("Battery depleted")
		}
	}

	if p.Flashlight {
		p.Battery = lo.Clamp(p.Battery-s.opts.Flashlight.DrainRate*dt, 0, 100)
		if p.Battery == 0 {
			p.Flashlight = false
			s.Hint("Battery depleted")
		}
	}
	s.hud.Battery(p.Battery)

	if low := p.Battery <= s.opts.Flashlight.LowThreshold; low != p.lowBattery {
		p.lowBattery = low
		s.hud.LowBattery(low)
	}
}
