package level

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/game"
	"github.com/oomph-ac/lockdown/oerror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Vec is a position or extent in level files, written as [x, y, z].
type Vec [3]float32

// Vec3 converts v to an mgl32.Vec3.
func (v Vec) Vec3() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// Box is an axis-aligned box given by its center and half extents.
type Box struct {
	Center Vec `yaml:"center"`
	Half   Vec `yaml:"half"`
}

// BBox converts b to a cube.BBox.
func (b Box) BBox() cube.BBox {
	return game.BoxFromCenter(b.Center.Vec3(), b.Half.Vec3())
}

// Level is the static description of a level as produced by the level builder.
type Level struct {
	Name string `yaml:"name"`
	// Spawn is the eye position the player starts at.
	Spawn Vec `yaml:"spawn"`

	Colliders     []Collider     `yaml:"colliders"`
	Lights        []Light        `yaml:"lights"`
	Props         []Prop         `yaml:"props"`
	Anchors       map[string]Vec `yaml:"anchors"`
	ValveGroups   []ValveGroup   `yaml:"valve_groups"`
	Interactables []Interactable `yaml:"interactables"`
	Zones         []Zone         `yaml:"zones"`
	Entity        *Entity        `yaml:"entity"`
}

type Collider struct {
	ID          string `yaml:"id"`
	Center      Vec    `yaml:"center"`
	Half        Vec    `yaml:"half"`
	Retractable bool   `yaml:"retractable"`
}

// BBox returns the box of the collider.
func (c Collider) BBox() cube.BBox {
	return Box{Center: c.Center, Half: c.Half}.BBox()
}

type Light struct {
	Name      string  `yaml:"name"`
	Intensity float32 `yaml:"intensity"`
	Color     Vec     `yaml:"color"`
}

type Prop struct {
	Name     string `yaml:"name"`
	Position Vec    `yaml:"position"`
	Hidden   bool   `yaml:"hidden"`
}

// ValveGroup is a set of valves that opens its exit once every valve was turned. A zero Size uses
// the configured group size.
type ValveGroup struct {
	ID            string   `yaml:"id"`
	Size          int      `yaml:"size"`
	ExitColliders []string `yaml:"exit_colliders"`
	ExitProp      string   `yaml:"exit_prop"`
}

// Interactable is an interactable object. Which of the optional fields are used depends on Kind.
type Interactable struct {
	ID     string `yaml:"id"`
	Kind   string `yaml:"kind"`
	Prompt string `yaml:"prompt"`
	Parts  []Box  `yaml:"parts"`

	// Colliders are retracted once a door opens.
	Colliders []string `yaml:"colliders"`
	// Leaves are the two sliding leaf props of a door.
	Leaves    []string `yaml:"leaves"`
	Indicator string   `yaml:"indicator"`
	Tier      int      `yaml:"tier"`

	Text string `yaml:"text"`

	Group string `yaml:"group"`
	Wheel string `yaml:"wheel"`

	Pickup string `yaml:"pickup"`
	Anchor string `yaml:"anchor"`
	Mesh   string `yaml:"mesh"`
}

// Zone is a trigger volume. Exactly one of Sphere and Box is set.
type Zone struct {
	Name   string  `yaml:"name"`
	Sphere *Sphere `yaml:"sphere"`
	Box    *Box    `yaml:"box"`

	// Handler is one of lights_out, shadow_figure, play_cue and chapter_cinematic.
	Handler  string   `yaml:"handler"`
	Lights   []string `yaml:"lights"`
	Prop     string   `yaml:"prop"`
	Position Vec      `yaml:"position"`
	Cue      string   `yaml:"cue"`
}

type Sphere struct {
	Center Vec     `yaml:"center"`
	Radius float32 `yaml:"radius"`
}

// Entity places the antagonist. Its position is the position of its feet.
type Entity struct {
	Start     Vec    `yaml:"start"`
	Waypoints []Vec  `yaml:"waypoints"`
	Prop      string `yaml:"prop"`
}

// Decode reads a level from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Level, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var lvl Level
	if err := dec.Decode(&lvl); err != nil {
		return nil, errors.Wrap(err, "error decoding level")
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Load reads and validates the level file at path.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening level %s", path)
	}
	defer f.Close()

	lvl, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", path)
	}
	return lvl, nil
}

//go:embed demo.yaml
var demo []byte

// Demo returns the built-in demo level.
func Demo() *Level {
	lvl, err := Decode(bytes.NewReader(demo))
	if err != nil {
		panic(err)
	}
	return lvl
}

// Validate checks that every ID is unique and every reference between records resolves.
func (lvl *Level) Validate() error {
	colliders := make(map[string]struct{}, len(lvl.Colliders))
	for _, c := range lvl.Colliders {
		if _, ok := colliders[c.ID]; ok && c.ID != "" {
			return oerror.New("duplicate collider %q", c.ID)
		}
		colliders[c.ID] = struct{}{}
	}
	props := make(map[string]struct{}, len(lvl.Props))
	for _, p := range lvl.Props {
		if _, ok := props[p.Name]; ok {
			return oerror.New("duplicate prop %q", p.Name)
		}
		props[p.Name] = struct{}{}
	}
	lights := make(map[string]struct{}, len(lvl.Lights))
	for _, l := range lvl.Lights {
		lights[l.Name] = struct{}{}
	}

	checkColliders := func(owner string, ids []string) error {
		for _, id := range ids {
			if _, ok := colliders[id]; !ok {
				return oerror.New("%s references unknown collider %q", owner, id)
			}
		}
		return nil
	}
	checkProp := func(owner, name string) error {
		if name == "" {
			return nil
		}
		if _, ok := props[name]; !ok {
			return oerror.New("%s references unknown prop %q", owner, name)
		}
		return nil
	}
	checkAnchor := func(owner, name string) error {
		if _, ok := lvl.Anchors[name]; !ok {
			return oerror.New("%s references unknown anchor %q", owner, name)
		}
		return nil
	}

	groups := make(map[string]struct{}, len(lvl.ValveGroups))
	for _, g := range lvl.ValveGroups {
		if _, ok := groups[g.ID]; ok {
			return oerror.New("duplicate valve group %q", g.ID)
		}
		groups[g.ID] = struct{}{}
		if g.Size < 0 {
			return oerror.New("valve group %q has size %d", g.ID, g.Size)
		}
		if err := checkColliders("valve group "+g.ID, g.ExitColliders); err != nil {
			return err
		}
		if err := checkProp("valve group "+g.ID, g.ExitProp); err != nil {
			return err
		}
	}

	ids := make(map[string]struct{}, len(lvl.Interactables))
	for _, it := range lvl.Interactables {
		owner := "interactable " + it.ID
		if it.ID == "" {
			return oerror.New("interactable of kind %q has no id", it.Kind)
		}
		if _, ok := ids[it.ID]; ok {
			return oerror.New("duplicate interactable %q", it.ID)
		}
		ids[it.ID] = struct{}{}
		if len(it.Parts) == 0 {
			return oerror.New("%s has no parts", owner)
		}
		if len(it.Leaves) != 0 && len(it.Leaves) != 2 {
			return oerror.New("%s has %d door leaves, expected 2", owner, len(it.Leaves))
		}
		if err := checkColliders(owner, it.Colliders); err != nil {
			return err
		}
		for _, p := range append([]string{it.Indicator, it.Wheel, it.Pickup, it.Mesh}, it.Leaves...) {
			if err := checkProp(owner, p); err != nil {
				return err
			}
		}
		if it.Group != "" {
			if _, ok := groups[it.Group]; !ok {
				return oerror.New("%s references unknown valve group %q", owner, it.Group)
			}
		}
		if it.Anchor != "" {
			if err := checkAnchor(owner, it.Anchor); err != nil {
				return err
			}
		}
	}

	for _, z := range lvl.Zones {
		owner := "zone " + z.Name
		if (z.Sphere == nil) == (z.Box == nil) {
			return oerror.New("%s must have exactly one of sphere and box", owner)
		}
		if err := checkProp(owner, z.Prop); err != nil {
			return err
		}
		for _, l := range z.Lights {
			if _, ok := lights[l]; !ok {
				return oerror.New("%s references unknown light %q", owner, l)
			}
		}
	}

	if lvl.Entity != nil {
		if err := checkProp("entity", lvl.Entity.Prop); err != nil {
			return err
		}
	}
	return nil
}
