package audio

// Cue is the name of a fire-and-forget sound effect.
type Cue string

const (
	CueClick        Cue = "click"
	CueTerminalBeep Cue = "terminal-beep"
	CueStatic       Cue = "static"
	CueScareStinger Cue = "scare-stinger"
	CueWhisper      Cue = "whisper"
	CueDoorSlam     Cue = "door-slam"
	CueBassBoom     Cue = "bass-boom"
	CueAlarm        Cue = "alarm"
	CueHeartbeat    Cue = "heartbeat"
	CueFootstepTone Cue = "footstep-tone"
	// CueDenied is the low-pitched rejection tone of locked doors.
	CueDenied Cue = "denied"
)

// Cues is the closed set of cues the simulation may play.
var Cues = []Cue{
	CueClick, CueTerminalBeep, CueStatic, CueScareStinger, CueWhisper, CueDoorSlam,
	CueBassBoom, CueAlarm, CueHeartbeat, CueFootstepTone, CueDenied,
}

// Valid returns true if the cue is part of the closed cue set.
func (c Cue) Valid() bool {
	for _, cue := range Cues {
		if cue == c {
			return true
		}
	}
	return false
}

// Sink is the audio collaborator. Implementations must not block the caller.
type Sink interface {
	// Play plays a one-shot cue.
	Play(c Cue)
	// StartAmbient starts the ambient loop.
	StartAmbient()
	// StopAmbient stops the ambient loop.
	StopAmbient()
	// Footsteps is called every tick the player moves. The sink decides the step cadence.
	Footsteps(sprinting bool, dt float32)
}

// NopSink is a Sink that plays nothing.
type NopSink struct{}

func (NopSink) Play(Cue)                {}
func (NopSink) StartAmbient()           {}
func (NopSink) StopAmbient()            {}
func (NopSink) Footsteps(bool, float32) {}
