package object

import (
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/game"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/utils"
)

// ValveGroup is the state shared by the valves that together open an exit. Once every valve of the
// group is turned, a run retracts the exit after a delay.
type ValveGroup struct {
	ID            string
	Size          int
	ExitColliders []string
	ExitProp      string
	// Delay is the time between the last valve turning and the exit opening.
	Delay float32

	turned   int
	revealed bool
}

// Turned returns the amount of valves of the group turned so far. It never decreases.
func (g *ValveGroup) Turned() int {
	return g.turned
}

// Revealed returns true once the exit run was started.
func (g *ValveGroup) Revealed() bool {
	return g.revealed
}

func (g *ValveGroup) turn(s *session.Session) {
	g.turned++
	if g.turned < g.Size || g.revealed {
		return
	}
	g.revealed = true
	s.Scheduler().Start(sequencer.NewRun("valves/"+g.ID, sequencer.Step{
		Name: "exit",
		At:   g.Delay,
		Action: func(sequencer.Firing) {
			s.Play(audio.CueBassBoom)
			for _, id := range g.ExitColliders {
				if err := s.World().Retract(id); err != nil {
					s.Log().Errorf("valve group %s: %v", g.ID, err)
				}
			}
			if p, ok := s.World().Prop(g.ExitProp); ok {
				p.Hide()
			}
			s.Hint("Somewhere below, a heavy door grinds open.")
			s.Record("valve_exit", utils.Fields("group", g.ID))
		},
	}))
}

// Valve is one of the valves of a group. Turning it is one-way.
type Valve struct {
	Group     *ValveGroup
	Wheel     string
	Indicator string
	// SpinDuration is how long the wheel takes to spin one full turn.
	SpinDuration float32

	id     string
	turned bool
	spin   float32
}

// NewValve creates an unturned valve belonging to the group passed.
func NewValve(group *ValveGroup, wheel, indicator string, spin float32) *Valve {
	return &Valve{Group: group, Wheel: wheel, Indicator: indicator, SpinDuration: spin}
}

func (*Valve) machine() {}

func (v *Valve) bind(it *Interactable) {
	v.id = it.ID
}

// Turned returns true once the valve was turned.
func (v *Valve) Turned() bool {
	return v.turned
}

// Turn turns the valve, counting it towards its group and the session's valve counter. Turning a
// turned valve is a no-op.
func (v *Valve) Turn(s *session.Session) Result {
	if v.turned {
		return NoOp
	}
	v.turned = true
	if p, ok := s.World().Prop(v.Indicator); ok {
		p.Color = IndicatorGreen
	}
	s.Progress().ValvesTurned++
	s.Play(audio.CueClick)
	s.Record("valve_turned", utils.Fields("valve", v.id, "group", v.Group.ID, "turned", v.Group.turned+1, "of", v.Group.Size))
	v.Group.turn(s)
	return Accepted
}

func (v *Valve) animate(s *session.Session, dt float32) {
	if !v.turned || v.spin >= v.SpinDuration {
		return
	}
	v.spin += dt
	if p, ok := s.World().Prop(v.Wheel); ok {
		p.Rotation = 360 * game.EaseOutCubic(v.spin/v.SpinDuration)
	}
}
