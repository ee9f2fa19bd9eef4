package cinematic

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/object"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// RunName is the name of the chapter-ending run in the session's scheduler.
const RunName = "chapter"

// Offsets of the chapter-ending run, in seconds from its start.
const (
	AtBoot      float32 = 0
	AtAlarm     float32 = 2
	AtShake     float32 = 5
	AtBlackout  float32 = 7
	AtEmergency float32 = 10
	AtHatch     float32 = 12
	AtHandoff   float32 = 14
)

var (
	// EmergencyColor is the color every light takes once the emergency power comes on.
	EmergencyColor = mgl32.Vec3{1, 0.08, 0.05}
	// EmergencyIntensity is the fraction of its base intensity a light keeps on emergency power.
	EmergencyIntensity float32 = 0.4
)

// Chapter is the chapter-ending cinematic. It holds player control from its start until the handoff
// and runs at most once per session.
type Chapter struct {
	s     *session.Session
	hatch *object.Hatch

	started, finished bool
}

// New creates the chapter cinematic of the session and registers it. The hatch passed is unlocked
// near the end of the cinematic and may be nil for levels without one.
func New(s *session.Session, hatch *object.Hatch) *Chapter {
	c := &Chapter{s: s, hatch: hatch}
	s.SetCinematic(c)
	return c
}

// Started returns true once the cinematic was started.
func (c *Chapter) Started() bool {
	return c.started
}

// Running returns true between the start of the cinematic and the control handoff.
func (c *Chapter) Running() bool {
	return c.started && !c.finished
}

// Start freezes player control and starts the chapter-ending run. It returns false if the cinematic
// already ran in this session.
func (c *Chapter) Start() bool {
	if c.started {
		return false
	}
	c.started = true
	c.s.Player().ControlFrozen = true
	c.s.Record("cinematic_start", utils.Fields("run", RunName))
	c.s.Scheduler().Start(c.run())
	return true
}

func (c *Chapter) run() *sequencer.Run {
	s, w := c.s, c.s.World()
	return sequencer.NewRun(RunName,
		sequencer.Step{Name: "boot", At: AtBoot, Action: func(sequencer.Firing) {
			s.Play(audio.CueTerminalBeep)
			s.Hint("UNAUTHORIZED ACCESS DETECTED. FACILITY LOCKDOWN INITIATED.")
		}},
		sequencer.Step{Name: "alarm", At: AtAlarm, Action: func(sequencer.Firing) {
			s.Play(audio.CueAlarm)
		}},
		Flicker(w, "flicker", AtAlarm, 0.1, 2, 0.1),
		sequencer.Step{Name: "shake", At: AtShake, Action: func(sequencer.Firing) {
			s.HUD().ScreenShake()
			s.Play(audio.CueBassBoom)
		}},
		sequencer.Step{Name: "blackout", At: AtBlackout, Action: func(sequencer.Firing) {
			w.SetBlackout(true)
			w.SetAllLights(0)
			s.HUD().Blackout(true)
			s.Audio().StopAmbient()
		}},
		sequencer.Step{Name: "emergency", At: AtEmergency, Action: func(sequencer.Firing) {
			for _, l := range w.Lights() {
				l.Rebase(l.Base()*EmergencyIntensity, EmergencyColor)
			}
			w.SetBlackout(false)
			s.HUD().Blackout(false)
			s.Audio().StartAmbient()
		}},
		sequencer.Step{Name: "hatch", At: AtHatch, Action: func(sequencer.Firing) {
			if c.hatch == nil {
				s.Log().Warn("chapter cinematic has no hatch to unlock")
				return
			}
			c.hatch.Unlock(s)
			s.Hint("A maintenance hatch clicks open somewhere nearby.")
		}},
		sequencer.Step{Name: "handoff", At: AtHandoff, Action: func(sequencer.Firing) {
			s.Player().ControlFrozen = false
			c.finished = true
			s.Record("cinematic_end", utils.Fields("run", RunName, "elapsed", s.Elapsed()))
		}},
	)
}
