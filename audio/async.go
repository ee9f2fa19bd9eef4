package audio

import (
	"github.com/oomph-ac/lockdown/worker"
	"github.com/sirupsen/logrus"
)

// Async wraps a Sink that may be slow, such as one decoding samples, and hands every call to the
// worker pool so that the simulation tick never waits on it. Calls may reach the wrapped sink out of
// order, and are dropped while the pool is saturated.
type Async struct {
	sink Sink
	log  logrus.FieldLogger
}

// NewAsync returns an Async sink wrapping the Sink passed. Dropped calls are logged to log.
func NewAsync(sink Sink, log logrus.FieldLogger) Async {
	return Async{sink: sink, log: log}
}

func (a Async) Play(c Cue) {
	a.submit("play "+string(c), func() { a.sink.Play(c) })
}

func (a Async) StartAmbient() {
	a.submit("start ambient", a.sink.StartAmbient)
}

func (a Async) StopAmbient() {
	a.submit("stop ambient", a.sink.StopAmbient)
}

func (a Async) Footsteps(sprinting bool, dt float32) {
	a.submit("footsteps", func() { a.sink.Footsteps(sprinting, dt) })
}

func (a Async) submit(call string, f func()) {
	if !worker.Submit(f) {
		a.log.Debugf("audio: worker queue full, dropped %s", call)
	}
}
