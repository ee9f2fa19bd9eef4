package session

import (
	"github.com/oomph-ac/lockdown/hud"
	"github.com/oomph-ac/lockdown/utils"
)

// Modal is the modal text view of a readable. While it is open the world is frozen and only the
// typewriter reveal advances.
type Modal struct {
	open     bool
	kind     hud.ModalKind
	text     []rune
	revealed int
	timer    float32
	// requestCinematic is set by the final terminal. Closing the modal consumes it.
	requestCinematic bool
}

// Open returns true if the modal is open.
func (m Modal) Open() bool {
	return m.open
}

// Revealed returns the amount of characters revealed so far.
func (m Modal) Revealed() int {
	return m.revealed
}

// Complete returns true if every character has been revealed.
func (m Modal) Complete() bool {
	return m.revealed >= len(m.text)
}

// Modal returns the state of the modal text view.
func (s *Session) Modal() Modal {
	return s.modal
}

// OpenModal opens the modal text view. If requestCinematic is true, closing it requests the chapter
// cinematic.
func (s *Session) OpenModal(kind hud.ModalKind, text string, requestCinematic bool) {
	s.modal = Modal{
		open:             true,
		kind:             kind,
		text:             []rune(text),
		requestCinematic: requestCinematic,
	}
	s.hud.OpenModal(kind, text)
	s.Record("modal_open", utils.Fields("kind", kind, "chars", len(s.modal.text)))
}

// CloseModal closes the modal text view if it is open.
func (s *Session) CloseModal() {
	if !s.modal.open {
		return
	}
	s.modal.open = false
	s.hud.CloseModal()
	if s.modal.requestCinematic {
		s.modal.requestCinematic = false
		s.progress.RequestCinematic()
	}
	s.Record("modal_close", utils.Fields("kind", s.modal.kind))
}

// tickModal advances the typewriter reveal. Interacting reveals the rest of a partially revealed
// text, or closes a fully revealed one.
func (s *Session) tickModal(in Input, dt float32) {
	m := &s.modal
	m.timer += dt
	if n := min(int(m.timer/s.opts.Readables.CharInterval), len(m.text)); n > m.revealed {
		m.revealed = n
		s.hud.RevealModal(n)
	}
	if !in.Interact {
		return
	}
	if !m.Complete() {
		m.revealed = len(m.text)
		s.hud.RevealModal(m.revealed)
		return
	}
	s.CloseModal()
}
