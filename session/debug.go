package session

const (
	DebugModeMovement = iota
	DebugModeInteraction
	DebugModeSequencer
	DebugModeZones
	DebugModeEntity
	debugModeCount
)

// DebugModeList holds the names of the debug modes, indexed by mode.
var DebugModeList = []string{
	"movement",
	"interaction",
	"sequencer",
	"zones",
	"entity",
}

// Debugger toggles per-subsystem debug output of a session. Debug output is logged at the debug
// level, so the logger must be set to it for anything to show.
type Debugger struct {
	s     *Session
	modes [debugModeCount]bool
}

// DebugModeFromName returns the mode with the name passed.
func DebugModeFromName(name string) (int, bool) {
	for mode, n := range DebugModeList {
		if n == name {
			return mode, true
		}
	}
	return 0, false
}

// Toggle flips the debug mode passed.
func (d *Debugger) Toggle(mode int) {
	if mode < 0 || mode >= debugModeCount {
		return
	}
	d.modes[mode] = !d.modes[mode]
}

// Enable enables the debug mode passed.
func (d *Debugger) Enable(mode int) {
	if mode < 0 || mode >= debugModeCount {
		return
	}
	d.modes[mode] = true
}

// Enabled returns true if the debug mode passed is enabled.
func (d *Debugger) Enabled(mode int) bool {
	if mode < 0 || mode >= debugModeCount {
		return false
	}
	return d.modes[mode]
}

// Notify logs the message if the mode is enabled and cond is true.
func (d *Debugger) Notify(mode int, cond bool, msg string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.s.Log().WithField("debug", DebugModeList[mode]).Debugf(msg, args...)
}
