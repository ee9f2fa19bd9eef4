package movement

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/oomph-ac/lockdown/world"
	"github.com/sirupsen/logrus"
)

func newTestMovement(t *testing.T, w *world.World) (*Movement, *session.Session, *audio.Recorder) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	a := audio.NewRecorder()
	s := session.New(log, settings.Default(), w, a, hud.Nop{})
	s.Player().Position = mgl32.Vec3{0, 1.7, 0}
	return New(s), s, a
}

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestSlidingAlongWall(t *testing.T) {
	w := world.New()
	// Wall to the +X side of the player, spanning along Z.
	if _, err := w.AddCollider("wall", cube.Box(1, 0, -10, 2, 3, 10), false); err != nil {
		t.Fatal(err)
	}
	m, s, _ := newTestMovement(t, w)

	res := m.Move(mgl32.Vec3{1, 0, 0.3})
	if !res.BlockedX || res.BlockedZ || !res.Moved {
		t.Fatalf("expected X blocked and Z applied, got %+v", res)
	}
	if pos := s.Player().Position; pos.X() != 0 || !approx(pos.Z(), 0.3, 1e-6) {
		t.Fatalf("expected to slide to z=0.3 keeping x=0, got %v", pos)
	}
}

func TestZeroMovePerformsNoTests(t *testing.T) {
	m, _, _ := newTestMovement(t, world.New())
	if res := m.Move(mgl32.Vec3{}); res.Tests != 0 || res.Moved {
		t.Fatalf("zero move performed work: %+v", res)
	}
}

// TestSlidingIsLossFree checks, for random worlds and moves, that whenever one axis is blocked the
// other axis is applied exactly as if it had been moved alone, and that the resolved box never
// overlaps a collider.
func TestSlidingIsLossFree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 500; trial++ {
		w := world.New()
		for i := 0; i < 6; i++ {
			x, z := rng.Float32()*8-4, rng.Float32()*8-4
			sx, sz := rng.Float32()*2+0.1, rng.Float32()*2+0.1
			if _, err := w.AddCollider("", cube.Box(x, 0, z, x+sx, 3, z+sz), false); err != nil {
				t.Fatal(err)
			}
		}
		m, s, _ := newTestMovement(t, w)
		start := mgl32.Vec3{rng.Float32()*8 - 4, 1.7, rng.Float32()*8 - 4}
		if w.Intersects(m.Box(start)) {
			continue
		}
		s.Player().Position = start
		delta := mgl32.Vec3{rng.Float32()*1.2 - 0.6, 0, rng.Float32()*1.2 - 0.6}

		res := m.Move(delta)
		end := s.Player().Position
		if w.Intersects(m.Box(end)) {
			t.Fatalf("trial %d: resolved box overlaps a collider at %v", trial, end)
		}
		if res.BlockedX && !res.BlockedZ {
			want := start.Add(mgl32.Vec3{0, 0, delta.Z()})
			if end != want {
				t.Fatalf("trial %d: X blocked, expected %v got %v", trial, want, end)
			}
			if w.Intersects(m.Box(want)) {
				t.Fatalf("trial %d: Z-only move overlaps", trial)
			}
		}
		if res.BlockedZ && !res.BlockedX && end.X() != start.X()+delta.X() {
			t.Fatalf("trial %d: Z blocked but X not fully applied", trial)
		}
	}
}

func TestWalkAndSprintSpeed(t *testing.T) {
	m, s, a := newTestMovement(t, world.New())
	for i := 0; i < 10; i++ {
		m.Tick(session.Input{Forward: true}, 0.1)
	}
	if pos := s.Player().Position; !approx(pos.Z(), 3.5, 1e-3) || !approx(pos.X(), 0, 1e-3) {
		t.Fatalf("expected 3.5 units forward along +Z, got %v", pos)
	}
	if a.FootstepCalls() != 10 {
		t.Fatalf("expected footstep cadence every moving tick, got %d", a.FootstepCalls())
	}

	s.Player().Position = mgl32.Vec3{0, 1.7, 0}
	for i := 0; i < 10; i++ {
		m.Tick(session.Input{Forward: true, Sprint: true}, 0.1)
	}
	if pos := s.Player().Position; !approx(pos.Z(), 6, 1e-3) {
		t.Fatalf("expected 6 units sprinting, got %v", pos)
	}
}

func TestDiagonalIsNormalized(t *testing.T) {
	m, s, _ := newTestMovement(t, world.New())
	m.Tick(session.Input{Forward: true, Right: true}, 0.1)
	pos := s.Player().Position
	if d := math32.Sqrt(pos.X()*pos.X() + pos.Z()*pos.Z()); !approx(d, 0.35, 1e-4) {
		t.Fatalf("expected diagonal distance 0.35, got %v", d)
	}
	// Right of +Z is -X.
	if pos.X() >= 0 || pos.Z() <= 0 {
		t.Fatalf("unexpected diagonal direction %v", pos)
	}
}

func TestBobResetsWhenStopping(t *testing.T) {
	m, s, _ := newTestMovement(t, world.New())
	for i := 0; i < 5; i++ {
		m.Tick(session.Input{Forward: true}, 0.05)
	}
	if m.Phase() <= 0 || s.Player().Bob == 0 {
		t.Fatalf("expected bob phase to accumulate, got %v", m.Phase())
	}
	if !approx(m.Phase(), 5*0.05*9, 1e-4) {
		t.Fatalf("expected walk bob rate 9, phase %v", m.Phase())
	}
	m.Tick(session.Input{}, 0.05)
	if m.Phase() != 0 || s.Player().Bob != 0 || s.Player().Moving {
		t.Fatalf("expected bob reset when stopped")
	}

	// Walking into a wall directly ahead.
	w := world.New()
	if _, err := w.AddCollider("wall", cube.Box(-2, 0, 0.3, 2, 3, 0.5), false); err != nil {
		t.Fatal(err)
	}
	m, s, a := newTestMovement(t, w)
	for i := 0; i < 10; i++ {
		m.Tick(session.Input{Forward: true}, 0.05)
	}
	p := s.Player()
	if p.Position != (mgl32.Vec3{0, 1.7, 0}) {
		t.Fatalf("expected the wall to hold the player, at %v", p.Position)
	}
	if p.Moving || m.Phase() != 0 || p.Bob != 0 {
		t.Fatalf("expected no bob while blocked, moving=%v phase=%v bob=%v", p.Moving, m.Phase(), p.Bob)
	}
	if a.FootstepCalls() != 0 {
		t.Fatalf("expected no footsteps while blocked, got %d", a.FootstepCalls())
	}
}

func TestFloorBands(t *testing.T) {
	m, s, _ := newTestMovement(t, world.New())
	s.Teleport(mgl32.Vec3{0, -4.3, 0})
	m.Tick(session.Input{}, 0.1)
	if m.Band() != BandUnderground || !approx(s.Player().Position.Y(), -4.3, 1e-5) {
		t.Fatalf("expected underground band, got %v at %v", m.Band(), s.Player().Position)
	}

	s.Teleport(mgl32.Vec3{11.9, 7.7, 0})
	// Left of +Z is +X.
	m.Tick(session.Input{Left: true}, 0.1)
	if m.Band() != BandRooftop {
		t.Fatalf("expected rooftop band, got %v", m.Band())
	}
	if x := s.Player().Position.X(); x > 12 {
		t.Fatalf("rooftop clamp not applied, x=%v", x)
	}
}

func TestRetractedDoorLetsPlayerThrough(t *testing.T) {
	w := world.New()
	if _, err := w.AddCollider("door", cube.Box(-1, 0, 0.5, 1, 3, 0.7), true); err != nil {
		t.Fatal(err)
	}
	m, s, _ := newTestMovement(t, w)
	if res := m.Move(mgl32.Vec3{0, 0, 0.5}); !res.BlockedZ {
		t.Fatalf("expected door to block")
	}
	if err := w.Retract("door"); err != nil {
		t.Fatal(err)
	}
	if res := m.Move(mgl32.Vec3{0, 0, 0.5}); res.BlockedZ || s.Player().Position.Z() != 0.5 {
		t.Fatalf("expected to pass the retracted door, got %+v", res)
	}
}
