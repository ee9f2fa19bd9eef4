package world

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/oerror"
)

// World holds the level state that the simulation reads and mutates: the Collider Store, scene
// lights and props, named anchors and the full-screen blackout overlay.
type World struct {
	colliders []*Collider
	byID      map[string]*Collider

	lights *orderedmap.OrderedMap[string, *Light]
	props  *orderedmap.OrderedMap[string, *Prop]

	anchors  map[string]mgl32.Vec3
	blackout bool
}

// New creates an empty world.
func New() *World {
	return &World{
		byID:    make(map[string]*Collider),
		lights:  orderedmap.NewOrderedMap[string, *Light](),
		props:   orderedmap.NewOrderedMap[string, *Prop](),
		anchors: make(map[string]mgl32.Vec3),
	}
}

// AddLight adds a light with the given base intensity and color. Adding a light with an existing
// name replaces it.
func (w *World) AddLight(name string, intensity float32, color mgl32.Vec3) *Light {
	l := &Light{
		Intensity:     intensity,
		Color:         color,
		baseIntensity: intensity,
		baseColor:     color,
	}
	w.lights.Set(name, l)
	return l
}

// Light returns the light with the given name.
func (w *World) Light(name string) (*Light, bool) {
	return w.lights.Get(name)
}

// Lights iterates over all lights in the order they were added.
func (w *World) Lights() iter.Seq2[string, *Light] {
	return func(yield func(string, *Light) bool) {
		for el := w.lights.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}

// LightNames returns the names of all lights in the order they were added.
func (w *World) LightNames() []string {
	return w.lights.Keys()
}

// SetAllLights sets the intensity of every light.
func (w *World) SetAllLights(intensity float32) {
	for _, l := range w.Lights() {
		l.Intensity = intensity
	}
}

// RestoreLights resets every light to its base intensity and color.
func (w *World) RestoreLights() {
	for _, l := range w.Lights() {
		l.Restore()
	}
}

// AddProp adds a visible prop at the given position.
func (w *World) AddProp(name string, pos mgl32.Vec3) *Prop {
	p := &Prop{Position: pos, Visible: true, Opacity: 1, Color: mgl32.Vec3{1, 1, 1}}
	w.props.Set(name, p)
	return p
}

// Prop returns the prop with the given name.
func (w *World) Prop(name string) (*Prop, bool) {
	return w.props.Get(name)
}

// Props iterates over all props in the order they were added.
func (w *World) Props() iter.Seq2[string, *Prop] {
	return func(yield func(string, *Prop) bool) {
		for el := w.props.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}

// SetAnchor sets a named reference point in the level.
func (w *World) SetAnchor(name string, pos mgl32.Vec3) {
	w.anchors[name] = pos
}

// Anchor returns the named reference point.
func (w *World) Anchor(name string) (mgl32.Vec3, bool) {
	pos, ok := w.anchors[name]
	return pos, ok
}

// MustAnchor returns the named reference point or an error naming the missing anchor.
func (w *World) MustAnchor(name string) (mgl32.Vec3, error) {
	pos, ok := w.anchors[name]
	if !ok {
		return mgl32.Vec3{}, oerror.New("anchor %q does not exist", name)
	}
	return pos, nil
}

// SetBlackout shows or hides the full-screen blackout overlay.
func (w *World) SetBlackout(on bool) {
	w.blackout = on
}

// Blackout returns true if the blackout overlay is shown.
func (w *World) Blackout() bool {
	return w.blackout
}
