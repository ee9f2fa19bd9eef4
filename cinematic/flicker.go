package cinematic

import (
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/world"
)

// Flicker returns a repeating step that toggles the lights named between a dimmed and their base
// intensity every interval over the window passed, starting dimmed. The last firing always leaves
// the lights at their base intensity. Passing no names flickers every light of the world.
func Flicker(w *world.World, name string, at, every, window, dim float32, lights ...string) sequencer.Step {
	return sequencer.Step{
		Name:  name,
		At:    at,
		Every: every,
		For:   window,
		Action: func(f sequencer.Firing) {
			last := f.At >= at+window-every/2
			for _, l := range flickerTargets(w, lights) {
				if f.Iteration%2 == 1 || last {
					l.Intensity = l.Base()
				} else {
					l.Intensity = l.Base() * dim
				}
			}
		},
	}
}

func flickerTargets(w *world.World, names []string) []*world.Light {
	var lights []*world.Light
	if len(names) == 0 {
		for _, l := range w.Lights() {
			lights = append(lights, l)
		}
		return lights
	}
	for _, n := range names {
		if l, ok := w.Light(n); ok {
			lights = append(lights, l)
		}
	}
	return lights
}
