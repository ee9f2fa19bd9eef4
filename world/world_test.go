package world

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestRetractedColliderNeverIntersects(t *testing.T) {
	w := New()
	if _, err := w.AddCollider("door_left", cube.Box(0, 0, 0, 1, 3, 0.2), true); err != nil {
		t.Fatalf("add collider: %v", err)
	}
	box := cube.Box(0.2, 0, -0.1, 0.7, 1.7, 0.4)
	if !w.Intersects(box) {
		t.Fatalf("expected the box to intersect the door before retraction")
	}
	if err := w.Retract("door_left"); err != nil {
		t.Fatalf("retract: %v", err)
	}

	for x := float32(-2); x <= 2; x += 0.25 {
		for z := float32(-2); z <= 2; z += 0.25 {
			bb := cube.Box(x-0.25, 0, z-0.25, x+0.25, 1.7, z+0.25)
			if w.Intersects(bb) {
				t.Fatalf("retracted collider intersected box at x=%v z=%v", x, z)
			}
		}
	}

	// Retracting twice is a no-op.
	if err := w.Retract("door_left"); err != nil {
		t.Fatalf("second retract returned error: %v", err)
	}
	if c, _ := w.Collider("door_left"); c.Active() {
		t.Fatalf("collider became active again")
	}
}

func TestRetractErrors(t *testing.T) {
	w := New()
	if _, err := w.AddCollider("wall", cube.Box(0, 0, 0, 1, 1, 1), false); err != nil {
		t.Fatalf("add collider: %v", err)
	}
	if err := w.Retract("wall"); err == nil {
		t.Fatalf("expected error retracting a static collider")
	}
	if err := w.Retract("missing"); err == nil {
		t.Fatalf("expected error retracting an unknown collider")
	}
	if _, err := w.AddCollider("wall", cube.Box(2, 0, 0, 3, 1, 1), false); err == nil {
		t.Fatalf("expected error adding a duplicate collider")
	}
}

func TestTouchingBoxesDoNotIntersect(t *testing.T) {
	w := New()
	if _, err := w.AddCollider("", cube.Box(1, 0, -5, 2, 3, 5), false); err != nil {
		t.Fatalf("add collider: %v", err)
	}
	if w.Intersects(cube.Box(0.5, 0, 0, 1, 1.7, 0.5)) {
		t.Fatalf("touching box reported as intersecting")
	}
	if len(w.ActiveBoxes()) != 1 {
		t.Fatalf("expected one active box, got %d", len(w.ActiveBoxes()))
	}
}

func TestLightsRestore(t *testing.T) {
	w := New()
	w.AddLight("core", 1.5, mgl32.Vec3{1, 1, 1})
	w.AddLight("hall", 0.8, mgl32.Vec3{1, 0.9, 0.8})

	w.SetAllLights(0)
	for name, l := range w.Lights() {
		if l.Intensity != 0 {
			t.Fatalf("light %s still lit", name)
		}
	}
	w.RestoreLights()
	if l, _ := w.Light("core"); l.Intensity != 1.5 {
		t.Fatalf("expected core to restore to 1.5, got %v", l.Intensity)
	}
	if names := w.LightNames(); len(names) != 2 || names[0] != "core" || names[1] != "hall" {
		t.Fatalf("unexpected light order %v", names)
	}
}

func TestAnchors(t *testing.T) {
	w := New()
	w.SetAnchor("hatch_exit", mgl32.Vec3{0, -4.3, 0})
	if _, err := w.MustAnchor("hatch_exit"); err != nil {
		t.Fatalf("expected anchor: %v", err)
	}
	if _, err := w.MustAnchor("escape_exit"); err == nil {
		t.Fatalf("expected error for missing anchor")
	}
}
