package sequencer

// Scheduler advances every started Run by the world clock. It is driven by a single tick thread and
// is not safe for concurrent use.
type Scheduler struct {
	running []*Run
	pending []*Run

	observer func(Firing)
}

// NewScheduler creates a Scheduler with no runs.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Observe sets a function called after every step firing of every run.
func (s *Scheduler) Observe(f func(Firing)) {
	s.observer = f
}

// Start schedules a run. A run started outside of Tick is advanced by the next Tick, including its
// delta. A run started by an action during Tick begins advancing on the following Tick.
func (s *Scheduler) Start(r *Run) {
	s.pending = append(s.pending, r)
}

// Tick advances every running run by dt and drops the runs that finished.
func (s *Scheduler) Tick(dt float32) {
	s.running = append(s.running, s.pending...)
	s.pending = nil

	for _, r := range s.running {
		r.Advance(dt, s.observer)
	}

	n := 0
	for _, r := range s.running {
		if !r.Done() {
			s.running[n] = r
			n++
		}
	}
	clear(s.running[n:])
	s.running = s.running[:n]
}

// Active returns true if a run with the given name is running or waiting to start.
func (s *Scheduler) Active(name string) bool {
	for _, r := range s.running {
		if r.name == name {
			return true
		}
	}
	for _, r := range s.pending {
		if r.name == name {
			return true
		}
	}
	return false
}

// Len returns the amount of runs running or waiting to start.
func (s *Scheduler) Len() int {
	return len(s.running) + len(s.pending)
}
