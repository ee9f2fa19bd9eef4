package interaction

import (
	"io"
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/object"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/oomph-ac/lockdown/world"
	"github.com/sirupsen/logrus"
)

type fixture struct {
	s   *session.Session
	w   *world.World
	reg *object.Registry
	i   *Interaction
	a   *audio.Recorder
	h   *hud.Recorder
}

func newFixture(t *testing.T, opts settings.Settings) *fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{w: world.New(), a: audio.NewRecorder(), h: hud.NewRecorder()}
	f.s = session.New(log, opts, f.w, f.a, f.h)
	f.reg = object.NewRegistry(f.s)
	f.i = New(f.s, f.reg)
	// The player looks along +Z from the eye height.
	f.s.Player().Position = mgl32.Vec3{0, 1.7, 0}
	return f
}

// add registers a 1x1x0.5 interactable centered on the view ray at the distance passed.
func (f *fixture) add(t *testing.T, id string, kind object.Kind, z float32, m object.Machine) *object.Interactable {
	t.Helper()
	it := &object.Interactable{
		ID:           id,
		Kind:         kind,
		Prompt:       "Use " + id,
		Parts:        []cube.BBox{cube.Box(-0.5, 1.2, z, 0.5, 2.2, z+0.5)},
		Interactable: true,
		Machine:      m,
	}
	if err := f.reg.Add(it); err != nil {
		t.Fatal(err)
	}
	return it
}

func TestRaycastPicksNearest(t *testing.T) {
	f := newFixture(t, settings.Default())
	f.add(t, "far", object.KindNote, 2, object.NewReadable(hud.ModalNote, "far"))
	near := f.add(t, "near", object.KindNote, 1, object.NewReadable(hud.ModalNote, "near"))

	it, dist, ok := f.i.Raycast()
	if !ok || it.ID != "near" {
		t.Fatalf("expected near to be hit, got %v", it)
	}
	if math32.Abs(dist-1) > 1e-3 {
		t.Fatalf("expected a distance of 1, got %v", dist)
	}

	near.Interactable = false
	if it, _, ok = f.i.Raycast(); !ok || it.ID != "far" {
		t.Fatalf("expected far to be hit once near is not interactable, got %v", it)
	}
}

func TestRaycastRange(t *testing.T) {
	f := newFixture(t, settings.Default())
	f.add(t, "distant", object.KindNote, 3.5, object.NewReadable(hud.ModalNote, "distant"))
	if it, _, ok := f.i.Raycast(); ok {
		t.Fatalf("expected nothing in range, got %s", it.ID)
	}
	// Looking away from it misses as well.
	f.s.Player().Position = mgl32.Vec3{0, 1.7, 1}
	f.s.Player().Yaw = 180
	if it, _, ok := f.i.Raycast(); ok {
		t.Fatalf("expected nothing behind the player, got %s", it.ID)
	}
}

func TestRaycastFromInsidePart(t *testing.T) {
	f := newFixture(t, settings.Default())
	f.add(t, "around", object.KindNote, -0.25, object.NewReadable(hud.ModalNote, "around"))
	it, dist, ok := f.i.Raycast()
	if !ok || it.ID != "around" || dist != 0 {
		t.Fatalf("expected a zero distance hit on the enclosing part, got %v %v", it, dist)
	}
}

func TestPromptThrottledAndOnlyOnChange(t *testing.T) {
	f := newFixture(t, settings.Default())
	note := f.add(t, "note", object.KindNote, 1, object.NewReadable(hud.ModalNote, "note"))

	f.i.Tick(session.Input{})
	if !f.h.PromptVisible || f.h.Prompt != "Use note" {
		t.Fatalf("expected the prompt to be shown on the first tick, got %+v", f.h)
	}
	for range 11 {
		f.i.Tick(session.Input{})
	}
	if len(f.h.Prompts) != 1 {
		t.Fatalf("expected the prompt to be shown once for an unchanged target, got %d", len(f.h.Prompts))
	}

	// 12 ticks have run, the next prompt raycast happens on the 13th.
	note.Interactable = false
	f.i.Tick(session.Input{})
	if f.h.PromptHides != 1 || f.h.PromptVisible {
		t.Fatalf("expected the prompt to hide once the target is lost, hides %d", f.h.PromptHides)
	}
	for range 6 {
		f.i.Tick(session.Input{})
	}
	if f.h.PromptHides != 1 {
		t.Fatalf("expected no repeated hides, got %d", f.h.PromptHides)
	}
}

func TestLockedDoorThroughInteraction(t *testing.T) {
	f := newFixture(t, settings.Default())
	if _, err := f.w.AddCollider("sec", cube.Box(-1, 0, 1, 1, 3, 1.5), true); err != nil {
		t.Fatal(err)
	}
	f.w.AddProp("sec_indicator", mgl32.Vec3{1, 1.5, 1})
	door := object.NewSecurityDoor(object.NewDoor([2]string{}, []string{"sec"}, 2.5, 0.55), 1, "sec_indicator")
	f.add(t, "sec_door", object.KindLockedDoor, 1, door)

	f.i.Tick(session.Input{Interact: true})
	if door.State() != object.DoorClosed {
		t.Fatalf("door opened without a keycard")
	}
	if f.a.Count(audio.CueDenied) != 1 {
		t.Fatalf("expected the denied cue")
	}
	if f.h.LastHint() != "Access denied. A security keycard is required." {
		t.Fatalf("unexpected hint %q", f.h.LastHint())
	}
	if f.s.Progress().Collectibles != 0 {
		t.Fatalf("a rejected interaction must not be counted")
	}

	f.s.Player().GrantKeycard(1)
	f.i.Tick(session.Input{Interact: true})
	if door.State() != object.DoorOpening {
		t.Fatalf("expected the door to open, state %v", door.State())
	}
	if p, _ := f.w.Prop("sec_indicator"); p.Color != object.IndicatorGreen {
		t.Fatalf("expected the indicator to turn green")
	}
	if f.s.Progress().Collectibles != 1 {
		t.Fatalf("expected the accepted interaction to be counted, got %d", f.s.Progress().Collectibles)
	}
}

func TestInteractMiss(t *testing.T) {
	f := newFixture(t, settings.Default())
	f.i.Tick(session.Input{Interact: true})
	if f.s.Progress().Collectibles != 0 || len(f.s.Journal()) != 0 {
		t.Fatalf("a miss must not do anything")
	}
}

func TestCollectiblePolicy(t *testing.T) {
	for _, tc := range []struct {
		policy settings.CollectiblePolicy
		want   int
	}{
		{settings.CollectEveryInteraction, 3},
		{settings.CollectReadablesOnly, 1},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			opts := settings.Default()
			opts.CollectiblePolicy = tc.policy
			f := newFixture(t, opts)
			note := f.add(t, "note", object.KindNote, 1, object.NewReadable(hud.ModalNote, "note"))

			f.i.Tick(session.Input{Interact: true})
			f.i.Tick(session.Input{Interact: true})

			note.Interactable = false
			f.add(t, "door", object.KindDoor, 2, object.NewDoor([2]string{}, nil, 1.2, 0.55))
			f.i.Tick(session.Input{Interact: true})

			if got := f.s.Progress().Collectibles; got != tc.want {
				t.Fatalf("expected %d collectibles, got %d", tc.want, got)
			}
		})
	}
}

func TestDispatchRoutesEveryMachine(t *testing.T) {
	f := newFixture(t, settings.Default())
	f.w.AddProp("card", mgl32.Vec3{0, 1, 1})
	card := object.NewKeycard(2, "card")
	it := f.add(t, "card", object.KindKeycardTier2, 1, card)

	if res := Dispatch(f.s, it); res != object.Accepted {
		t.Fatalf("expected the keycard to be collected, got %v", res)
	}
	if !f.s.Player().HasKeycard(2) || it.Interactable {
		t.Fatalf("expected the tier 2 keycard to be granted and the pickup disabled")
	}
	if res := Dispatch(f.s, it); res != object.NoOp {
		t.Fatalf("expected a second collect to be a no-op, got %v", res)
	}

	hatch := f.add(t, "hatch", object.KindHatch, 2, object.NewHatch("below"))
	if res := Dispatch(f.s, hatch); res != object.NoOp {
		t.Fatalf("expected a sealed hatch to be a no-op, got %v", res)
	}
}
