package audio

import "sync"

// Recorder is a Sink that records every cue played. It is safe for concurrent use so that it can
// sit behind an Async sink.
type Recorder struct {
	mu sync.Mutex

	cues      []Cue
	ambient   bool
	footsteps int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

func (r *Recorder) StartAmbient() {
	r.mu.Lock()
	r.ambient = true
	r.mu.Unlock()
}

func (r *Recorder) StopAmbient() {
	r.mu.Lock()
	r.ambient = false
	r.mu.Unlock()
}

func (r *Recorder) Footsteps(bool, float32) {
	r.mu.Lock()
	r.footsteps++
	r.mu.Unlock()
}

// Cues returns a copy of every cue played so far, oldest first.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

// Count returns how many times the cue was played.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	for _, cue := range r.cues {
		if cue == c {
			n++
		}
	}
	return n
}

// Ambient returns true if the ambient loop is playing.
func (r *Recorder) Ambient() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ambient
}

// FootstepCalls returns the amount of footstep cadence calls.
func (r *Recorder) FootstepCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.footsteps
}

// Reset clears everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.cues, r.footsteps = nil, 0
	r.mu.Unlock()
}
