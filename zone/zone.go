package zone

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/cinematic"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// WhisperAnchor is the anchor the whisper zone is centered on.
const WhisperAnchor = "whisper_point"

var ambientCues = []audio.Cue{audio.CueHeartbeat, audio.CueStatic, audio.CueWhisper}

// Zones tests the player's position against every trigger each tick and adds the random ambient
// scares and whispers.
type Zones struct {
	s        *session.Session
	triggers []*Trigger

	ambientIn    float32
	ambientFires int

	whisperPoint mgl32.Vec3
	whisperZone  bool
	whispers     int
}

// New creates the zone component of the session and registers it. The whisper zone is only active
// if the world has a whisper anchor.
func New(s *session.Session, triggers ...*Trigger) *Zones {
	z := &Zones{s: s, triggers: triggers}
	z.whisperPoint, z.whisperZone = s.World().Anchor(WhisperAnchor)
	z.rollAmbient()
	s.SetZones(z)
	return z
}

// Triggers returns the triggers of the component.
func (z *Zones) Triggers() []*Trigger {
	return z.triggers
}

// AmbientIn returns the time left until the next ambient scare.
func (z *Zones) AmbientIn() float32 {
	return z.ambientIn
}

// AmbientFires returns how many ambient scares fired.
func (z *Zones) AmbientFires() int {
	return z.ambientFires
}

// Whispers returns how many times the whisper zone fired.
func (z *Zones) Whispers() int {
	return z.whispers
}

// Tick fires every trigger the player entered, then advances the ambient timer and rolls the
// whisper chance.
func (z *Zones) Tick(dt float32) {
	pos := z.s.Player().Position
	for _, t := range z.triggers {
		if t.fired || !t.Shape.Contains(pos) {
			continue
		}
		t.fired = true
		t.Handler.fire(z.s, t)
		z.s.Record("zone", utils.Fields("trigger", t.Name, "handler", t.Handler))
	}

	z.ambientIn -= dt
	if z.ambientIn <= 0 {
		z.fireAmbient()
		z.rollAmbient()
	}

	opts := z.s.Settings().Zones
	if z.whisperZone && pos.Sub(z.whisperPoint).Len() < opts.WhisperRadius && z.s.Rand().Float32() < opts.WhisperChance {
		z.whispers++
		z.s.Play(audio.CueWhisper)
		z.s.Dbg.Notify(session.DebugModeZones, true, "whisper zone fired at %v", pos)
	}
}

func (z *Zones) rollAmbient() {
	z.ambientIn = z.s.Settings().Zones.AmbientInterval.Roll(z.s.Rand())
	z.s.Dbg.Notify(session.DebugModeZones, true, "next ambient scare in %.2fs", z.ambientIn)
}

// fireAmbient plays a random ambient cue and briefly flickers a random light.
func (z *Zones) fireAmbient() {
	z.ambientFires++
	cue := ambientCues[z.s.Rand().IntN(len(ambientCues))]
	z.s.Play(cue)

	names := z.s.World().LightNames()
	if len(names) == 0 {
		z.s.Dbg.Notify(session.DebugModeZones, true, "ambient %s, no light to flicker", cue)
		return
	}
	light := names[z.s.Rand().IntN(len(names))]
	z.s.Scheduler().Start(sequencer.NewRun(fmt.Sprintf("ambient/%d", z.ambientFires),
		cinematic.Flicker(z.s.World(), "flicker", 0, 0.1, z.s.Settings().Zones.FlickerDuration/2, 0.2, light),
	))
	z.s.Dbg.Notify(session.DebugModeZones, true, "ambient %s, flickering %s", cue, light)
}
