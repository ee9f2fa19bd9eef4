package object

import (
	"github.com/oomph-ac/lockdown/audio"
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/session"
)

// Readable is a note, terminal, tape or the final terminal, opened in the modal text view.
type Readable struct {
	Kind hud.ModalKind
	Text string

	reads int
}

// NewReadable creates an unread readable.
func NewReadable(kind hud.ModalKind, text string) *Readable {
	return &Readable{Kind: kind, Text: text}
}

func (*Readable) machine() {}

// Reads returns how many times the readable was opened.
func (r *Readable) Reads() int {
	return r.reads
}

// Read opens the readable in the modal view. The first read of the final terminal arranges for the
// chapter cinematic to be requested when the modal closes.
func (r *Readable) Read(s *session.Session) Result {
	r.reads++
	s.Play(cueFor(r.Kind))
	s.OpenModal(r.Kind, r.Text, r.Kind == hud.ModalFinalTerminal && r.reads == 1)
	return Accepted
}

func cueFor(kind hud.ModalKind) audio.Cue {
	switch kind {
	case hud.ModalTerminal, hud.ModalFinalTerminal:
		return audio.CueTerminalBeep
	case hud.ModalVHS:
		return audio.CueStatic
	}
	return audio.CueClick
}
