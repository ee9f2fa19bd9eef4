package hud

// ModalKind is the kind of readable shown in the modal text view.
type ModalKind string

const (
	ModalNote          ModalKind = "note"
	ModalTerminal      ModalKind = "terminal"
	ModalVHS           ModalKind = "vhs"
	ModalFinalTerminal ModalKind = "final_terminal"
)

// Presenter is the presentation collaborator that draws hints, prompts, the modal text view and
// the one-shot screen effects.
type Presenter interface {
	// Hint pushes hint text shown for the duration passed, in seconds.
	Hint(text string, duration float32)
	// ShowPrompt shows the interaction prompt of the targeted object.
	ShowPrompt(text string)
	// HidePrompt hides the interaction prompt.
	HidePrompt()
	// OpenModal opens the modal text view with its full text payload. No characters are revealed yet.
	OpenModal(kind ModalKind, text string)
	// RevealModal sets the amount of characters of the modal text that are revealed.
	RevealModal(chars int)
	// CloseModal closes the modal text view.
	CloseModal()
	// Battery sets the flashlight battery percentage.
	Battery(percent float32)
	// LowBattery shows or hides the low battery warning.
	LowBattery(low bool)
	ScreenShake()
	Blackout(on bool)
	Flash()
}

// Nop is a Presenter that draws nothing.
type Nop struct{}

func (Nop) Hint(string, float32)        {}
func (Nop) ShowPrompt(string)           {}
func (Nop) HidePrompt()                 {}
func (Nop) OpenModal(ModalKind, string) {}
func (Nop) RevealModal(int)             {}
func (Nop) CloseModal()                 {}
func (Nop) Battery(float32)             {}
func (Nop) LowBattery(bool)             {}
func (Nop) ScreenShake()                {}
func (Nop) Blackout(bool)               {}
func (Nop) Flash()                      {}
