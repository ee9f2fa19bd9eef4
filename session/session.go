package session

import (
	"math/rand/v2"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/sequencer"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/oomph-ac/lockdown/utils"
	"github.com/oomph-ac/lockdown/world"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Session is the simulation context of one play session. It owns the player, the progress
// counters, the scheduler, the world clock and the random source, and borrows the world and the
// audio and presentation collaborators from its creator. Components registered on the session are
// ticked in a fixed order by Tick. A Session is driven by a single goroutine.
type Session struct {
	id  uuid.UUID
	log *logrus.Logger
	// Dbg toggles debug output per subsystem.
	Dbg Debugger

	opts settings.Settings

	world *world.World
	audio audio.Sink
	hud   hud.Presenter

	rng       *rand.Rand
	scheduler *sequencer.Scheduler
	journal   *utils.CircularQueue[Event]

	player   Player
	progress Progress
	modal    Modal

	clock  float32
	ticks  uint64
	paused bool

	movement    MovementComponent
	interaction InteractionComponent
	objects     ObjectsComponent
	zones       ZonesComponent
	entity      EntityComponent
	cinematic   CinematicComponent

	recoverFunc func(s *Session, v any)
}

// New creates a session over the world passed. The settings are expected to be validated.
func New(log *logrus.Logger, opts settings.Settings, w *world.World, sink audio.Sink, presenter hud.Presenter) *Session {
	if sink == nil {
		sink = audio.NopSink{}
	}
	if presenter == nil {
		presenter = hud.Nop{}
	}
	id := uuid.New()
	s := &Session{
		id:        id,
		log:       log,
		opts:      opts,
		world:     w,
		audio:     sink,
		hud:       presenter,
		rng:       newRand(opts.Seed, id),
		scheduler: sequencer.NewScheduler(),
		journal:   utils.NewCircularQueue[Event](opts.Simulation.JournalSize),
		player:    Player{Battery: 100},
	}
	s.Dbg.s = s
	for _, name := range opts.Debug.Modes {
		if mode, ok := DebugModeFromName(name); ok {
			s.Dbg.Enable(mode)
		}
	}
	s.scheduler.Observe(func(f sequencer.Firing) {
		s.Dbg.Notify(DebugModeSequencer, true, "%s/%s#%d fired at %.3f (scheduled %.3f)", f.Run, f.Step, f.Iteration, f.Elapsed, f.At)
	})
	return s
}

// newRand seeds the session's random source from the seed passed, or from the session ID if the
// seed is empty.
func newRand(seed string, id uuid.UUID) *rand.Rand {
	var h xxh3.Uint128
	if seed == "" {
		h = xxh3.Hash128(id[:])
	} else {
		h = xxh3.HashString128(seed)
	}
	return rand.New(rand.NewPCG(h.Hi, h.Lo))
}

// ID returns the unique ID of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Log returns a log entry carrying the session ID and current tick.
func (s *Session) Log() *logrus.Entry {
	return s.log.WithFields(logrus.Fields{"session": s.id.String(), "tick": s.ticks})
}

// Settings returns the settings of the session.
func (s *Session) Settings() settings.Settings {
	return s.opts
}

// World returns the world the session simulates.
func (s *Session) World() *world.World {
	return s.world
}

// Audio returns the audio collaborator.
func (s *Session) Audio() audio.Sink {
	return s.audio
}

// HUD returns the presentation collaborator.
func (s *Session) HUD() hud.Presenter {
	return s.hud
}

// Rand returns the seeded random source of the session.
func (s *Session) Rand() *rand.Rand {
	return s.rng
}

// Scheduler returns the scheduler advancing the session's sequencer runs.
func (s *Session) Scheduler() *sequencer.Scheduler {
	return s.scheduler
}

// Player returns the player state of the session.
func (s *Session) Player() *Player {
	return &s.player
}

// Progress returns the progress counters of the session.
func (s *Session) Progress() *Progress {
	return &s.progress
}

// Elapsed returns the world clock: the total delta of every tick that advanced the world.
func (s *Session) Elapsed() float32 {
	return s.clock
}

// Ticks returns the amount of unpaused ticks processed.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Play plays a cue on the audio collaborator.
func (s *Session) Play(c audio.Cue) {
	s.audio.Play(c)
}

// Hint pushes hint text for the configured hint duration.
func (s *Session) Hint(text string) {
	s.hud.Hint(text, s.opts.Simulation.HintDuration)
}

// Teleport moves the player to the eye position passed. The floor band is derived from the new
// height on the next movement tick.
func (s *Session) Teleport(pos mgl32.Vec3) {
	old := s.player.Position
	s.player.Position = pos
	s.Record("teleport", utils.Fields("from", old, "to", pos))
}

// Pause freezes the session. Paused ticks advance nothing, including the modal reveal.
func (s *Session) Pause() {
	s.paused = true
}

// Resume unfreezes a paused session.
func (s *Session) Resume() {
	s.paused = false
}

// Paused returns true if the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Tick advances the session by dt, which is clamped to the maximum step. Within a tick the flashlight,
// movement, interaction, object animations, sequencer runs, zones and the entity are processed in
// that order. While a modal is open only the modal advances.
func (s *Session) Tick(in Input, dt float32) {
	defer s.recoverError()
	if s.paused {
		return
	}
	dt = max(0, min(dt, s.opts.Simulation.MaxStep))
	s.ticks++

	if s.modal.open {
		s.tickModal(in, dt)
		return
	}
	s.clock += dt

	p := &s.player
	p.Yaw, p.Pitch = in.Yaw, in.Pitch
	s.tickFlashlight(in, dt)

	if !p.ControlFrozen {
		if s.movement != nil {
			s.movement.Tick(in, dt)
		}
		if s.interaction != nil {
			s.interaction.Tick(in)
		}
	}
	if s.objects != nil {
		s.objects.Tick(dt)
	}
	s.scheduler.Tick(dt)
	if s.progress.takeCinematicRequest() && s.cinematic != nil {
		if !s.cinematic.Start() {
			s.Log().Debug("ignored chapter cinematic request, already ran")
		}
	}
	if s.zones != nil {
		s.zones.Tick(dt)
	}
	if s.entity != nil {
		s.entity.Tick(dt)
	}
}

// Record adds a notable event to the journal and logs it.
func (s *Session) Record(kind string, fields *orderedmap.OrderedMap[string, any]) {
	msg := utils.OrderedMapToString(fields)
	_ = s.journal.Append(Event{Tick: s.ticks, Time: s.clock, Kind: kind, Message: msg})
	s.Log().Infof("%s %s", kind, msg)
}

// Journal returns the most recent notable events, oldest first.
func (s *Session) Journal() []Event {
	return s.journal.Slice()
}

// Event is an entry of the session journal.
type Event struct {
	Tick    uint64
	Time    float32
	Kind    string
	Message string
}
