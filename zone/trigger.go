package zone

import (
	"fmt"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/cinematic"
	"github.com/oomph-ac/lockdown/game"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/world"
)

// Shape is the volume of a trigger.
type Shape interface {
	Contains(pos mgl32.Vec3) bool
}

// Sphere contains every point closer to its center than its radius.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

func (s Sphere) Contains(pos mgl32.Vec3) bool {
	return pos.Sub(s.Center).Len() < s.Radius
}

// Box is an axis-aligned volume, used for zones larger than a room corner.
type Box struct {
	BBox cube.BBox
}

func (b Box) Contains(pos mgl32.Vec3) bool {
	return b.BBox.Vec3Within(pos)
}

// Trigger fires its handler the first time the player is inside its shape.
type Trigger struct {
	Name    string
	Shape   Shape
	Handler Handler

	fired bool
}

// Fired returns true once the trigger fired.
func (t *Trigger) Fired() bool {
	return t.fired
}

// Handler is the reaction of a trigger. The set of handlers is closed: LightsOut, ShadowFigure,
// PlayCue and ChapterCinematic.
type Handler interface {
	fire(s *session.Session, t *Trigger)
	fmt.Stringer
}

// LightsOut flickers the lights named, or every light if none are, keeps them dark for a moment and
// then restores them.
type LightsOut struct {
	Lights []string
}

func (LightsOut) String() string { return "lights_out" }

func (h LightsOut) fire(s *session.Session, t *Trigger) {
	w, d := s.World(), s.Settings().Zones.FlickerDuration
	each := func(f func(l *world.Light)) {
		if len(h.Lights) == 0 {
			for _, l := range w.Lights() {
				f(l)
			}
			return
		}
		for _, name := range h.Lights {
			if l, ok := w.Light(name); ok {
				f(l)
			}
		}
	}
	s.Scheduler().Start(sequencer.NewRun("zone/"+t.Name,
		sequencer.Step{Name: "static", Action: func(sequencer.Firing) {
			s.Play(audio.CueStatic)
		}},
		cinematic.Flicker(w, "flicker", 0, 0.1, d/2, 0, h.Lights...),
		sequencer.Step{Name: "dark", At: d * 0.6, Action: func(sequencer.Firing) {
			each(func(l *world.Light) { l.Intensity = 0 })
		}},
		sequencer.Step{Name: "restore", At: d, Action: func(sequencer.Firing) {
			each((*world.Light).Restore)
		}},
	))
}

// ShadowFigure shows a prop at a position for a moment and fades it out.
type ShadowFigure struct {
	Prop     string
	Position mgl32.Vec3
}

func (ShadowFigure) String() string { return "shadow_figure" }

func (h ShadowFigure) fire(s *session.Session, t *Trigger) {
	p, ok := s.World().Prop(h.Prop)
	if !ok {
		s.Log().Errorf("zone %s: shadow figure prop %q does not exist", t.Name, h.Prop)
		return
	}
	p.Position, p.Visible, p.Opacity = h.Position, true, 1
	s.Play(audio.CueScareStinger)

	opts := s.Settings().Zones
	s.Scheduler().Start(sequencer.NewRun("zone/"+t.Name, sequencer.Step{
		Name:  "fade",
		At:    opts.ShadowFadeStep,
		Every: opts.ShadowFadeStep,
		For:   opts.ShadowFade - opts.ShadowFadeStep,
		Action: func(f sequencer.Firing) {
			p.Opacity = max(0, game.Lerp(1, 0, f.At/opts.ShadowFade))
			if p.Opacity < 1e-3 {
				p.Opacity = 0
				p.Hide()
			}
		},
	}))
}

// PlayCue plays a single audio cue.
type PlayCue struct {
	Cue audio.Cue
}

func (h PlayCue) String() string { return "cue:" + string(h.Cue) }

func (h PlayCue) fire(s *session.Session, _ *Trigger) {
	s.Play(h.Cue)
}

// ChapterCinematic requests the chapter-ending cinematic.
type ChapterCinematic struct{}

func (ChapterCinematic) String() string { return "chapter_cinematic" }

func (ChapterCinematic) fire(s *session.Session, _ *Trigger) {
	s.Progress().RequestCinematic()
}
