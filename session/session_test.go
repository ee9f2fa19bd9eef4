package session

import (
	"io"
	"testing"

	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/oomph-ac/lockdown/world"
	"github.com/sirupsen/logrus"
)

func newTestSession(t *testing.T, mutate func(*settings.Settings)) (*Session, *audio.Recorder, *hud.Recorder) {
	t.Helper()
	opts := settings.Default()
	opts.Seed = "test"
	if mutate != nil {
		mutate(&opts)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	a, h := audio.NewRecorder(), hud.NewRecorder()
	return New(log, opts, world.New(), a, h), a, h
}

// orderStub records the order components are ticked in.
type orderStub struct {
	name  string
	order *[]string
}

func (o orderStub) Tick(float32)    { *o.order = append(*o.order, o.name) }
func (o orderStub) tickInput(Input) { *o.order = append(*o.order, o.name) }

type inputStub struct{ orderStub }

func (i inputStub) Tick(Input, float32) { i.tickInput(Input{}) }

type interactStub struct{ orderStub }

func (i interactStub) Tick(Input) { i.tickInput(Input{}) }

type cinematicStub struct {
	starts int
}

func (c *cinematicStub) Start() bool {
	c.starts++
	return c.starts == 1
}

func TestTickOrder(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	var order []string
	s.SetMovement(inputStub{orderStub{"movement", &order}})
	s.SetInteraction(interactStub{orderStub{"interaction", &order}})
	s.SetObjects(orderStub{"objects", &order})
	s.SetZones(orderStub{"zones", &order})
	s.SetEntity(orderStub{"entity", &order})
	s.Scheduler().Start(sequencer.NewRun("order", sequencer.Step{Name: "mark", Action: func(sequencer.Firing) {
		order = append(order, "sequencer")
	}}))

	s.Tick(Input{}, 0.016)
	want := []string{"movement", "interaction", "objects", "sequencer", "zones", "entity"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

// starter starts a run with a single step at the given offset the first time it is ticked.
type starter struct {
	s     *Session
	at    float32
	fired *bool
}

func (st starter) start() {
	if st.s.Scheduler().Active("start") || *st.fired {
		return
	}
	st.s.Scheduler().Start(sequencer.NewRun("start", sequencer.Step{Name: "step", At: st.at, Action: func(sequencer.Firing) {
		*st.fired = true
	}}))
}

func (st starter) Tick(Input) { st.start() }

type zoneStarter struct{ starter }

func (z zoneStarter) Tick(float32) { z.start() }

func TestRunStartTiming(t *testing.T) {
	// Started from the interaction stage, a run is advanced by the same tick.
	s, _, _ := newTestSession(t, nil)
	var fired bool
	s.SetInteraction(starter{s: s, at: 0.1, fired: &fired})
	s.Tick(Input{}, 0.1)
	if !fired {
		t.Fatalf("expected a run started before the sequencer stage to advance in the same tick")
	}

	// Started from the zones stage, it first advances on the next tick.
	s, _, _ = newTestSession(t, nil)
	fired = false
	s.SetZones(zoneStarter{starter{s: s, at: 0.1, fired: &fired}})
	s.Tick(Input{}, 0.1)
	if fired {
		t.Fatalf("expected a run started after the sequencer stage to wait for the next tick")
	}
	s.Tick(Input{}, 0.1)
	if !fired {
		t.Fatalf("expected the run to fire on the next tick")
	}
}

func TestDeltaClamped(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.Tick(Input{}, 2)
	if s.Elapsed() != s.Settings().Simulation.MaxStep {
		t.Fatalf("expected delta clamped to %v, got %v", s.Settings().Simulation.MaxStep, s.Elapsed())
	}
}

func TestFlashlightDrainsAndForcesOff(t *testing.T) {
	s, a, h := newTestSession(t, func(o *settings.Settings) {
		o.Flashlight.DrainRate = 50
	})
	s.Tick(Input{ToggleFlashlight: true}, 0.1)
	if !s.Player().Flashlight || a.Count(audio.CueClick) != 1 {
		t.Fatalf("expected flashlight on with a click")
	}
	for i := 0; i < 30; i++ {
		s.Tick(Input{}, 0.1)
	}
	p := s.Player()
	if p.Battery != 0 || p.Flashlight {
		t.Fatalf("expected empty battery and flashlight off, got battery=%v on=%v", p.Battery, p.Flashlight)
	}
	if !h.BatteryLow || h.LowBatteryFlips != 1 {
		t.Fatalf("expected one low battery transition, got %d", h.LowBatteryFlips)
	}
	if h.LastHint() != "Battery depleted" {
		t.Fatalf("expected depletion hint, got %q", h.LastHint())
	}

	s.Tick(Input{ToggleFlashlight: true}, 0.1)
	if s.Player().Flashlight {
		t.Fatalf("flashlight turned on with an empty battery")
	}
}

func TestModalFreezesWorldButRevealAdvances(t *testing.T) {
	s, _, h := newTestSession(t, nil)
	var entityTicks int
	s.SetEntity(entityCounter{&entityTicks})

	s.OpenModal(hud.ModalNote, "the valves", false)
	before := s.Elapsed()
	for i := 0; i < 5; i++ {
		s.Tick(Input{}, 0.03)
	}
	if s.Elapsed() != before {
		t.Fatalf("world clock advanced while modal open")
	}
	if entityTicks != 0 {
		t.Fatalf("entity ticked while modal open")
	}
	if h.ModalRevealed == 0 || s.Modal().Complete() {
		t.Fatalf("expected a partial reveal, got %d", h.ModalRevealed)
	}

	s.Tick(Input{Interact: true}, 0.01)
	if !s.Modal().Complete() || !s.Modal().Open() {
		t.Fatalf("first interact should reveal everything and keep the modal open")
	}
	s.Tick(Input{Interact: true}, 0.01)
	if s.Modal().Open() || h.ModalOpen {
		t.Fatalf("second interact should close the modal")
	}
	s.Tick(Input{}, 0.01)
	if entityTicks != 1 {
		t.Fatalf("expected world to resume after closing, entity ticks %d", entityTicks)
	}
}

type entityCounter struct{ n *int }

func (e entityCounter) Tick(float32) { *e.n++ }

func TestFinalModalRequestsCinematicOnce(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	c := &cinematicStub{}
	s.SetCinematic(c)

	s.OpenModal(hud.ModalFinalTerminal, "x", true)
	s.Tick(Input{}, 0.1)
	s.Tick(Input{Interact: true}, 0.1)
	if !s.Progress().CinematicRequested() {
		t.Fatalf("closing the final terminal should request the cinematic")
	}
	s.Tick(Input{}, 0.1)
	if c.starts != 1 || s.Progress().CinematicRequested() {
		t.Fatalf("expected request consumed once, starts=%d", c.starts)
	}

	s.OpenModal(hud.ModalFinalTerminal, "x", false)
	s.Tick(Input{}, 0.1)
	s.Tick(Input{Interact: true}, 0.1)
	s.Tick(Input{}, 0.1)
	if c.starts != 1 {
		t.Fatalf("reopening without arming requested the cinematic again")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	s, _, h := newTestSession(t, nil)
	s.OpenModal(hud.ModalTerminal, "paused text", false)
	s.Pause()
	for i := 0; i < 10; i++ {
		s.Tick(Input{Interact: true}, 0.1)
	}
	if h.ModalRevealed != 0 || s.Ticks() != 0 {
		t.Fatalf("paused session advanced")
	}
	s.Resume()
	s.Tick(Input{}, 0.1)
	if h.ModalRevealed == 0 {
		t.Fatalf("resumed session did not advance the reveal")
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a, _, _ := newTestSession(t, nil)
	b, _, _ := newTestSession(t, nil)
	for i := 0; i < 8; i++ {
		if x, y := a.Rand().Float32(), b.Rand().Float32(); x != y {
			t.Fatalf("same seed produced %v and %v", x, y)
		}
	}
}

func TestRecoverFunc(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.SetEntity(panicky{})
	var recovered any
	s.SetRecoverFunc(func(_ *Session, v any) { recovered = v })
	s.Tick(Input{}, 0.1)
	if recovered == nil {
		t.Fatalf("panic was not passed to the recover func")
	}
}

type panicky struct{}

func (panicky) Tick(float32) { panic("entity exploded") }

func TestDebugModes(t *testing.T) {
	s, _, _ := newTestSession(t, func(o *settings.Settings) {
		o.Debug.Modes = []string{"zones", "unknown"}
	})
	zones, _ := DebugModeFromName("zones")
	if !s.Dbg.Enabled(zones) {
		t.Fatalf("zones debug mode should be enabled from settings")
	}
	s.Dbg.Toggle(zones)
	if s.Dbg.Enabled(zones) {
		t.Fatalf("toggle did not disable zones")
	}
	if s.Dbg.Enabled(-1) || s.Dbg.Enabled(debugModeCount) {
		t.Fatalf("out of range modes must report disabled")
	}
}

func TestJournal(t *testing.T) {
	s, _, _ := newTestSession(t, func(o *settings.Settings) {
		o.Simulation.JournalSize = 2
	})
	s.OpenModal(hud.ModalNote, "a", false)
	s.CloseModal()
	s.Teleport(s.Player().Position)
	j := s.Journal()
	if len(j) != 2 || j[0].Kind != "modal_close" || j[1].Kind != "teleport" {
		t.Fatalf("unexpected journal %+v", j)
	}
}
