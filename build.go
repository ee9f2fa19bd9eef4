package lockdown

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/level"
	"github.com/oomph-ac/lockdown/object"
	"github.com/oomph-ac/lockdown/oerror"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/world"
	"github.com/oomph-ac/lockdown/zone"
)

// Default anchor names used when a hatch or escape door does not name one.
const (
	HatchExitAnchor  = "hatch_exit"
	EscapeExitAnchor = "escape_exit"
)

// buildWorld creates the colliders, lights, props and anchors of the level.
func buildWorld(lvl *level.Level) (*world.World, error) {
	w := world.New()
	for _, c := range lvl.Colliders {
		if _, err := w.AddCollider(c.ID, c.BBox(), c.Retractable); err != nil {
			return nil, err
		}
	}
	for _, l := range lvl.Lights {
		w.AddLight(l.Name, l.Intensity, l.Color.Vec3())
	}
	for _, p := range lvl.Props {
		prop := w.AddProp(p.Name, p.Position.Vec3())
		if p.Hidden {
			prop.Hide()
		}
	}
	for name, pos := range lvl.Anchors {
		w.SetAnchor(name, pos.Vec3())
	}
	return w, nil
}

// buildObjects adds every interactable of the level to the registry. It returns the hatch the
// chapter cinematic unlocks, which is nil if the level has none.
func buildObjects(s *session.Session, reg *object.Registry, lvl *level.Level) (*object.Hatch, error) {
	opts := s.Settings()
	groups := make(map[string]*object.ValveGroup, len(lvl.ValveGroups))
	for _, g := range lvl.ValveGroups {
		size := g.Size
		if size == 0 {
			size = opts.Valves.GroupSize
		}
		groups[g.ID] = &object.ValveGroup{
			ID:            g.ID,
			Size:          size,
			ExitColliders: g.ExitColliders,
			ExitProp:      g.ExitProp,
			Delay:         opts.Valves.RevealDelay,
		}
	}

	var hatch *object.Hatch
	for _, rec := range lvl.Interactables {
		kind := object.Kind(rec.Kind)
		var m object.Machine
		switch kind {
		case object.KindNote, object.KindTerminal, object.KindVHS, object.KindFinalTerminal:
			m = object.NewReadable(hud.ModalKind(kind), rec.Text)
		case object.KindDoor:
			m = object.NewDoor(leaves(rec), rec.Colliders, opts.Doors.SlideDuration, opts.Doors.LeafTravel)
		case object.KindLockedDoor:
			door := object.NewDoor(leaves(rec), rec.Colliders, opts.Doors.SecuritySlideDuration, opts.Doors.LeafTravel)
			m = object.NewSecurityDoor(door, tier(rec, 1), rec.Indicator)
			paint(s.World(), rec.Indicator)
		case object.KindValve:
			g, ok := groups[rec.Group]
			if !ok {
				return nil, oerror.New("valve %q has no valve group", rec.ID)
			}
			m = object.NewValve(g, rec.Wheel, rec.Indicator, opts.Valves.SpinDuration)
			paint(s.World(), rec.Indicator)
		case object.KindKeycard:
			m = object.NewKeycard(tier(rec, 1), rec.Pickup)
		case object.KindKeycardTier2:
			m = object.NewKeycard(tier(rec, 2), rec.Pickup)
		case object.KindHatch:
			if hatch != nil {
				return nil, oerror.New("hatch %q: a level has at most one hatch", rec.ID)
			}
			anchor := anchorOr(rec.Anchor, HatchExitAnchor)
			if _, err := s.World().MustAnchor(anchor); err != nil {
				return nil, oerror.New("hatch %q: %v", rec.ID, err)
			}
			hatch = object.NewHatch(anchor)
			m = hatch
		case object.KindEscapeDoor:
			if len(rec.Colliders) != 1 {
				return nil, oerror.New("escape door %q needs exactly one collider, has %d", rec.ID, len(rec.Colliders))
			}
			anchor := anchorOr(rec.Anchor, EscapeExitAnchor)
			if _, err := s.World().MustAnchor(anchor); err != nil {
				return nil, oerror.New("escape door %q: %v", rec.ID, err)
			}
			door := object.NewEscapeDoor(rec.Colliders[0], rec.Mesh, anchor, opts.Escape.RetractAt, opts.Escape.TeleportAt)
			door.Tier = tier(rec, 2)
			m = door
		default:
			return nil, oerror.New("interactable %q has unknown kind %q", rec.ID, rec.Kind)
		}

		parts := make([]cube.BBox, 0, len(rec.Parts))
		for _, p := range rec.Parts {
			parts = append(parts, p.BBox())
		}
		if err := reg.Add(&object.Interactable{
			ID:           rec.ID,
			Kind:         kind,
			Prompt:       rec.Prompt,
			Parts:        parts,
			Interactable: true,
			Payload:      rec.Text,
			Machine:      m,
		}); err != nil {
			return nil, err
		}
	}
	return hatch, nil
}

// buildTriggers creates the zone triggers of the level.
func buildTriggers(lvl *level.Level) ([]*zone.Trigger, error) {
	triggers := make([]*zone.Trigger, 0, len(lvl.Zones))
	for _, z := range lvl.Zones {
		var shape zone.Shape
		if z.Sphere != nil {
			shape = zone.Sphere{Center: z.Sphere.Center.Vec3(), Radius: z.Sphere.Radius}
		} else {
			shape = zone.Box{BBox: z.Box.BBox()}
		}

		var h zone.Handler
		switch z.Handler {
		case "lights_out":
			h = zone.LightsOut{Lights: z.Lights}
		case "shadow_figure":
			if z.Prop == "" {
				return nil, oerror.New("zone %q: shadow figure needs a prop", z.Name)
			}
			h = zone.ShadowFigure{Prop: z.Prop, Position: z.Position.Vec3()}
		case "play_cue":
			cue := audio.Cue(z.Cue)
			if !cue.Valid() {
				return nil, oerror.New("zone %q plays unknown cue %q", z.Name, z.Cue)
			}
			h = zone.PlayCue{Cue: cue}
		case "chapter_cinematic":
			h = zone.ChapterCinematic{}
		default:
			return nil, oerror.New("zone %q has unknown handler %q", z.Name, z.Handler)
		}
		triggers = append(triggers, &zone.Trigger{Name: z.Name, Shape: shape, Handler: h})
	}
	return triggers, nil
}

func leaves(rec level.Interactable) (l [2]string) {
	copy(l[:], rec.Leaves)
	return l
}

func tier(rec level.Interactable, def int) int {
	if rec.Tier == 0 {
		return def
	}
	return rec.Tier
}

func anchorOr(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// paint turns an indicator prop red.
func paint(w *world.World, indicator string) {
	if p, ok := w.Prop(indicator); ok {
		p.Color = object.IndicatorRed
	}
}
