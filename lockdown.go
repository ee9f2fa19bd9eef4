package lockdown

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/cinematic"
	"github.com/oomph-ac/lockdown/entity"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/interaction"
	"github.com/oomph-ac/lockdown/level"
	"github.com/oomph-ac/lockdown/movement"
	"github.com/oomph-ac/lockdown/object"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/oomph-ac/lockdown/utils"
	"github.com/oomph-ac/lockdown/world"
	"github.com/oomph-ac/lockdown/zone"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Game is a session of a level with every component registered.
type Game struct {
	Session     *session.Session
	Registry    *object.Registry
	Movement    *movement.Movement
	Interaction *interaction.Interaction
	Chapter     *cinematic.Chapter
	Zones       *zone.Zones
	// Entity is nil for levels without an antagonist.
	Entity *entity.Entity
}

// New builds the world of the level passed and starts a session on it with every component
// registered. The sink and presenter may be nil.
func New(log *logrus.Logger, opts settings.Settings, lvl *level.Level, sink audio.Sink, presenter hud.Presenter) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	if err := lvl.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid level %s", lvl.Name)
	}

	w, err := buildWorld(lvl)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", lvl.Name)
	}
	s := session.New(log, opts, w, sink, presenter)
	s.Player().Position = lvl.Spawn.Vec3()

	g := &Game{Session: s}
	g.Movement = movement.New(s)
	g.Registry = object.NewRegistry(s)
	hatch, err := buildObjects(s, g.Registry, lvl)
	if err != nil {
		log.Errorf("level %s: %v", lvl.Name, err)
		return nil, errors.Wrapf(err, "level %s", lvl.Name)
	}
	g.Interaction = interaction.New(s, g.Registry)
	g.Chapter = cinematic.New(s, hatch)

	triggers, err := buildTriggers(lvl)
	if err != nil {
		log.Errorf("level %s: %v", lvl.Name, err)
		return nil, errors.Wrapf(err, "level %s", lvl.Name)
	}
	g.Zones = zone.New(s, triggers...)

	if e := lvl.Entity; e != nil {
		waypoints := make([]mgl32.Vec3, 0, len(e.Waypoints))
		for _, wp := range e.Waypoints {
			waypoints = append(waypoints, wp.Vec3())
		}
		g.Entity = entity.New(s, e.Start.Vec3(), waypoints, e.Prop)
	}

	s.Record("level_loaded", utils.Fields("level", lvl.Name, "interactables", g.Registry.Len(), "zones", len(triggers)))
	return g, nil
}

// Tick advances the game by dt.
func (g *Game) Tick(in session.Input, dt float32) {
	g.Session.Tick(in, dt)
}

// World returns the world of the game.
func (g *Game) World() *world.World {
	return g.Session.World()
}
