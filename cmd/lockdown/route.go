package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown"
	"github.com/oomph-ac/lockdown/session"
)

// leg is one part of a scripted route. The player is moved to Pos, if set, and then holds the input
// for Ticks ticks.
type leg struct {
	Pos   *mgl32.Vec3
	Yaw   float32
	Input session.Input
	Ticks int
	// UntilClosed repeats the leg until no modal is open.
	UntilClosed bool
}

func at(x, y, z, yaw float32) leg {
	return leg{Pos: &mgl32.Vec3{x, y, z}, Yaw: yaw}
}

func (l leg) interact() leg {
	l.Input.Interact, l.Ticks = true, 1
	return l
}

func wait(seconds float32) leg {
	return leg{Ticks: int(seconds/tickRate + 0.5)}
}

func walk(seconds float32) leg {
	return leg{Input: session.Input{Forward: true}, Ticks: int(seconds/tickRate + 0.5)}
}

func read() leg {
	return leg{Input: session.Input{Interact: true}, Ticks: 1, UntilClosed: true}
}

// demoRoute walks the demo level from the spawn to the escape door.
func demoRoute() []leg {
	return []leg{
		at(0, 1.7, 1, 90).interact(), read(),
		at(0, 1.7, 4.5, 0).interact(), wait(1.5), walk(1),
		at(0, 1.7, 12.5, 0).interact(),
		at(1.5, 1.7, 10, -90).interact(),
		at(0, 1.7, 12.5, 0).interact(), wait(2.6),
		at(-3, 1.7, 16.5, 0).interact(),
		at(0, 1.7, 16.5, 0).interact(),
		at(3, 1.7, 16.5, 0).interact(), wait(2.5),
		at(-6, 1.7, 16.5, 0).interact(), read(), wait(14.5),
		at(0, 1.7, 22.5, 0).interact(), wait(0.5),
		at(0, -4.3, 0, 0), walk(0.4), leg{Input: session.Input{Interact: true}, Ticks: 1},
		at(0, -4.3, 10.5, 0).interact(), wait(3),
	}
}

// runner feeds a route to a game one tick at a time.
type runner struct {
	g     *lockdown.Game
	route []leg
	yaw   float32

	leg, tick int
}

// next runs a single tick of the route. It returns false once the route is complete.
func (r *runner) next() bool {
	for r.leg < len(r.route) {
		l := r.route[r.leg]
		if r.tick == 0 && l.Pos != nil {
			r.g.Session.Teleport(*l.Pos)
			r.yaw = l.Yaw
		}
		if l.UntilClosed && !r.g.Session.Modal().Open() {
			r.leg, r.tick = r.leg+1, 0
			continue
		}
		if !l.UntilClosed && r.tick >= l.Ticks {
			r.leg, r.tick = r.leg+1, 0
			continue
		}

		in := l.Input
		in.Yaw = r.yaw
		r.g.Tick(in, tickRate)
		r.tick++
		return true
	}
	return false
}
