package settings

import (
	"math/rand/v2"
	"os"
	"strings"

	"github.com/oomph-ac/lockdown/oerror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override values in the settings file,
// for example LOCKDOWN_SEED or LOCKDOWN_ENTITY_CHASESPEED.
const EnvPrefix = "LOCKDOWN"

// CollectiblePolicy decides which interactions count towards the collectibles counter.
type CollectiblePolicy string

const (
	// CollectEveryInteraction counts every dispatched interaction that was not rejected, doors and
	// valves included.
	CollectEveryInteraction CollectiblePolicy = "every-interaction"
	// CollectReadablesOnly counts only the first read of each note, terminal or tape.
	CollectReadablesOnly CollectiblePolicy = "readables-only"
)

// Range is an inclusive range of seconds a random duration is drawn from.
type Range struct {
	Min, Max float32
}

// Roll draws a uniformly distributed value from the range.
func (r Range) Roll(rng *rand.Rand) float32 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float32()*(r.Max-r.Min)
}

// Band is one of the discrete floor levels the player can walk on.
type Band struct {
	// Floor is the height of the walkable surface.
	Floor float32
	// MinX, MaxX, MinZ and MaxZ clamp the horizontal position while on this band.
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// Settings contains every tunable value used by the simulation.
type Settings struct {
	// Seed seeds every random draw of a session. An empty seed derives one from the session ID.
	Seed string
	// CollectiblePolicy is either "every-interaction" or "readables-only".
	CollectiblePolicy CollectiblePolicy

	Simulation  Simulation
	Movement    Movement
	Interaction Interaction
	Doors       Doors
	Valves      Valves
	Escape      Escape
	Readables   Readables
	Flashlight  Flashlight
	Zones       Zones
	Entity      Entity
	Debug       Debug
}

type Simulation struct {
	// MaxStep is the largest delta a single tick may advance the world by.
	MaxStep float32
	// HintDuration is how long hint text stays on screen.
	HintDuration float32
	// JournalSize is the amount of notable events kept per session.
	JournalSize int
}

type Movement struct {
	WalkSpeed, SprintSpeed float32
	BodyHalfWidth          float32
	BodyHeight             float32
	EyeHeight              float32

	WalkBobRate, SprintBobRate           float32
	WalkBobAmplitude, SprintBobAmplitude float32

	// UndergroundBelow and RooftopAbove are the eye heights separating the floor bands.
	UndergroundBelow float32
	RooftopAbove     float32

	Underground, Ground, Rooftop Band
}

type Interaction struct {
	Range float32
	// PromptInterval is the amount of ticks between two prompt raycasts.
	PromptInterval int
}

type Doors struct {
	SlideDuration         float32
	SecuritySlideDuration float32
	// LeafTravel is how far each leaf slides, so the leaves end up twice as far apart.
	LeafTravel float32
}

type Valves struct {
	SpinDuration float32
	GroupSize    int
	RevealDelay  float32
}

type Escape struct {
	RetractAt  float32
	TeleportAt float32
}

type Readables struct {
	CharInterval float32
}

type Flashlight struct {
	// DrainRate is the battery percentage lost per second while the flashlight is on.
	DrainRate    float32
	LowThreshold float32
}

type Zones struct {
	AmbientInterval Range
	WhisperRadius   float32
	WhisperChance   float32
	ShadowFade      float32
	ShadowFadeStep  float32
	FlickerDuration float32
}

type Entity struct {
	Activation  Range
	Visible     Range
	Hidden      Range
	ContactHide Range

	PatrolSpeed, ChaseSpeed float32
	DetectionRadius         float32
	ContactRadius           float32
	CaptureRadius           float32
}

type Debug struct {
	// Modes lists the debug modes enabled at start, such as "movement" or "entity".
	Modes []string
}

// Default returns the default settings of the simulation.
func Default() Settings {
	s := Settings{CollectiblePolicy: CollectEveryInteraction}
	s.Simulation.MaxStep = 0.1
	s.Simulation.HintDuration = 3
	s.Simulation.JournalSize = 64

	s.Movement.WalkSpeed = 3.5
	s.Movement.SprintSpeed = 6
	s.Movement.BodyHalfWidth = 0.25
	s.Movement.BodyHeight = 1.7
	s.Movement.EyeHeight = 1.7
	s.Movement.WalkBobRate = 9
	s.Movement.SprintBobRate = 14
	s.Movement.WalkBobAmplitude = 0.04
	s.Movement.SprintBobAmplitude = 0.07
	s.Movement.UndergroundBelow = -2
	s.Movement.RooftopAbove = 4
	s.Movement.Underground = Band{Floor: -6, MinX: -20, MaxX: 20, MinZ: -20, MaxZ: 20}
	s.Movement.Ground = Band{Floor: 0, MinX: -30, MaxX: 30, MinZ: -30, MaxZ: 30}
	s.Movement.Rooftop = Band{Floor: 6, MinX: -12, MaxX: 12, MinZ: -12, MaxZ: 12}

	s.Interaction.Range = 3
	s.Interaction.PromptInterval = 6

	s.Doors.SlideDuration = 1.2
	s.Doors.SecuritySlideDuration = 2.5
	s.Doors.LeafTravel = 0.55

	s.Valves.SpinDuration = 1
	s.Valves.GroupSize = 3
	s.Valves.RevealDelay = 2

	s.Escape.RetractAt = 0.8
	s.Escape.TeleportAt = 2.5

	s.Readables.CharInterval = 0.03

	s.Flashlight.DrainRate = 0.5
	s.Flashlight.LowThreshold = 20

	s.Zones.AmbientInterval = Range{Min: 25, Max: 55}
	s.Zones.WhisperRadius = 6
	s.Zones.WhisperChance = 0.004
	s.Zones.ShadowFade = 2.5
	s.Zones.ShadowFadeStep = 0.25
	s.Zones.FlickerDuration = 1

	s.Entity.Activation = Range{Min: 40, Max: 80}
	s.Entity.Visible = Range{Min: 6, Max: 12}
	s.Entity.Hidden = Range{Min: 8, Max: 20}
	s.Entity.ContactHide = Range{Min: 25, Max: 45}
	s.Entity.PatrolSpeed = 1.6
	s.Entity.ChaseSpeed = 3.4
	s.Entity.DetectionRadius = 9
	s.Entity.ContactRadius = 1.4
	s.Entity.CaptureRadius = 0.5
	return s
}

// SaveDefault encodes the default settings to the path passed. It returns an error if the file
// already exists.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return oerror.New("settings file %s already exists", path)
	}
	data, err := toml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, "failed encoding default settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed creating settings file")
	}
	return nil
}

// Load reads the settings file at the path passed, writing the defaults first if it does not exist
// yet. Values may be overridden by environment variables prefixed with EnvPrefix.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, errors.Wrapf(err, "error reading settings %s", path)
	}

	s := Default()
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrapf(err, "error decoding settings %s", path)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate returns an error if any of the values in the settings cannot be simulated.
func (s Settings) Validate() error {
	switch s.CollectiblePolicy {
	case CollectEveryInteraction, CollectReadablesOnly:
	default:
		return oerror.New("unknown collectible policy %q", s.CollectiblePolicy)
	}
	if s.Simulation.MaxStep <= 0 {
		return oerror.New("simulation max step must be positive, got %v", s.Simulation.MaxStep)
	}
	if s.Simulation.JournalSize <= 0 {
		return oerror.New("journal size must be positive, got %d", s.Simulation.JournalSize)
	}
	if s.Movement.WalkSpeed <= 0 || s.Movement.SprintSpeed <= 0 {
		return oerror.New("movement speeds must be positive")
	}
	if s.Movement.BodyHalfWidth <= 0 || s.Movement.BodyHeight <= 0 {
		return oerror.New("player body must have a volume")
	}
	if s.Movement.EyeHeight <= 0 {
		return oerror.New("eye height must be positive, got %v", s.Movement.EyeHeight)
	}
	if s.Movement.UndergroundBelow >= s.Movement.RooftopAbove {
		return oerror.New("underground boundary %v must be below rooftop boundary %v", s.Movement.UndergroundBelow, s.Movement.RooftopAbove)
	}
	if s.Interaction.Range <= 0 {
		return oerror.New("interaction range must be positive, got %v", s.Interaction.Range)
	}
	if s.Interaction.PromptInterval < 1 {
		return oerror.New("prompt interval must be at least one tick, got %d", s.Interaction.PromptInterval)
	}
	if s.Doors.SlideDuration <= 0 || s.Doors.SecuritySlideDuration <= 0 {
		return oerror.New("door slide durations must be positive")
	}
	if s.Doors.LeafTravel < 0 {
		return oerror.New("door leaf travel must not be negative, got %v", s.Doors.LeafTravel)
	}
	if s.Valves.SpinDuration <= 0 {
		return oerror.New("valve spin duration must be positive, got %v", s.Valves.SpinDuration)
	}
	if s.Valves.RevealDelay < 0 {
		return oerror.New("valve reveal delay must not be negative, got %v", s.Valves.RevealDelay)
	}
	if s.Escape.RetractAt < 0 || s.Escape.TeleportAt < s.Escape.RetractAt {
		return oerror.New("escape offsets must satisfy 0 <= retract (%v) <= teleport (%v)", s.Escape.RetractAt, s.Escape.TeleportAt)
	}
	if s.Valves.GroupSize < 1 {
		return oerror.New("valve group size must be at least one, got %d", s.Valves.GroupSize)
	}
	if s.Readables.CharInterval <= 0 {
		return oerror.New("readable char interval must be positive, got %v", s.Readables.CharInterval)
	}
	if s.Zones.WhisperChance < 0 || s.Zones.WhisperChance > 1 {
		return oerror.New("whisper chance must be within [0, 1], got %v", s.Zones.WhisperChance)
	}
	if s.Zones.ShadowFadeStep <= 0 {
		return oerror.New("shadow fade step must be positive, got %v", s.Zones.ShadowFadeStep)
	}
	if s.Zones.ShadowFade < s.Zones.ShadowFadeStep {
		return oerror.New("shadow fade %v must be at least one fade step %v", s.Zones.ShadowFade, s.Zones.ShadowFadeStep)
	}
	if s.Zones.FlickerDuration < 0 {
		return oerror.New("flicker duration must not be negative, got %v", s.Zones.FlickerDuration)
	}
	if s.Flashlight.DrainRate < 0 {
		return oerror.New("flashlight drain rate must not be negative, got %v", s.Flashlight.DrainRate)
	}
	if s.Entity.PatrolSpeed < 0 || s.Entity.ChaseSpeed < 0 {
		return oerror.New("entity speeds must not be negative")
	}
	for name, r := range map[string]Range{
		"zones ambient interval": s.Zones.AmbientInterval,
		"entity activation":      s.Entity.Activation,
		"entity visible":         s.Entity.Visible,
		"entity hidden":          s.Entity.Hidden,
		"entity contact hide":    s.Entity.ContactHide,
	} {
		if r.Min < 0 || r.Max < r.Min {
			return oerror.New("%s range [%v, %v] is invalid", name, r.Min, r.Max)
		}
	}
	return nil
}
