package hud

// Recorder is a Presenter that keeps the last state of everything it was sent.
type Recorder struct {
	Hints   []string
	Prompts []string
	// PromptVisible and Prompt hold the current prompt state.
	PromptVisible bool
	Prompt        string
	// PromptHides counts HidePrompt calls.
	PromptHides int

	ModalOpen     bool
	ModalKind     ModalKind
	ModalText     string
	ModalRevealed int
	ModalsOpened  int

	BatteryPercent  float32
	BatteryLow      bool
	LowBatteryFlips int

	Shakes, Flashes int
	BlackoutOn      bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{BatteryPercent: 100}
}

func (r *Recorder) Hint(text string, _ float32) {
	r.Hints = append(r.Hints, text)
}

func (r *Recorder) ShowPrompt(text string) {
	r.Prompts = append(r.Prompts, text)
	r.Prompt, r.PromptVisible = text, true
}

func (r *Recorder) HidePrompt() {
	r.Prompt, r.PromptVisible = "", false
	r.PromptHides++
}

func (r *Recorder) OpenModal(kind ModalKind, text string) {
	r.ModalOpen, r.ModalKind, r.ModalText, r.ModalRevealed = true, kind, text, 0
	r.ModalsOpened++
}

func (r *Recorder) RevealModal(chars int) {
	r.ModalRevealed = chars
}

func (r *Recorder) CloseModal() {
	r.ModalOpen = false
}

func (r *Recorder) Battery(percent float32) {
	r.BatteryPercent = percent
}

func (r *Recorder) LowBattery(low bool) {
	r.BatteryLow = low
	r.LowBatteryFlips++
}

func (r *Recorder) ScreenShake() {
	r.Shakes++
}

func (r *Recorder) Blackout(on bool) {
	r.BlackoutOn = on
}

func (r *Recorder) Flash() {
	r.Flashes++
}

// LastHint returns the most recent hint, or an empty string if none was pushed.
func (r *Recorder) LastHint() string {
	if len(r.Hints) == 0 {
		return ""
	}
	return r.Hints[len(r.Hints)-1]
}
