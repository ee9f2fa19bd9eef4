package sequencer

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/lockdown/assert"
)

// epsilon absorbs float32 drift from summing many tick deltas, so that a step at 14.0 still fires
// after 140 ticks of 0.1.
const epsilon = 1e-4

// Step is one entry of a Run: an action fired once when the run's elapsed time crosses At. A step
// with a positive Every repeats at At, At+Every, ... up to and including At+For.
type Step struct {
	Name   string
	At     float32
	Every  float32
	For    float32
	Action func(f Firing)
}

// Firing describes a single execution of a step's action.
type Firing struct {
	Run  string
	Step string
	// Iteration is zero for the first firing of a repeating step.
	Iteration int
	// At is the offset the firing was scheduled for, Elapsed the run time it actually fired at.
	At, Elapsed float32
}

type occurrence struct {
	step      *Step
	at        float32
	iteration int
}

// Run is a declarative, time-ordered list of steps. Once started it cannot be cancelled: every
// occurrence fires exactly once, in order, regardless of how coarse the ticks advancing it are.
type Run struct {
	name    string
	steps   []Step
	occ     []occurrence
	next    int
	elapsed float32
}

// NewRun creates a run from the steps passed. Steps may be passed in any order.
func NewRun(name string, steps ...Step) *Run {
	r := &Run{name: name, steps: steps}
	for i := range r.steps {
		st := &r.steps[i]
		assert.IsTrue(st.At >= 0, "step %q of run %q has negative offset %v", st.Name, name, st.At)
		assert.IsTrue(st.Every >= 0 && st.For >= 0, "step %q of run %q has a negative repeat window", st.Name, name)

		if st.Every == 0 {
			r.occ = append(r.occ, occurrence{step: st, at: st.At})
			continue
		}
		n := int(math32.Floor(st.For/st.Every + epsilon))
		for it := 0; it <= n; it++ {
			r.occ = append(r.occ, occurrence{step: st, at: st.At + float32(it)*st.Every, iteration: it})
		}
	}
	slices.SortStableFunc(r.occ, func(a, b occurrence) int {
		return cmp.Compare(a.at, b.at)
	})
	return r
}

// Name returns the name of the run.
func (r *Run) Name() string {
	return r.name
}

// Elapsed returns the time the run has been advanced by.
func (r *Run) Elapsed() float32 {
	return r.elapsed
}

// Duration returns the offset of the last occurrence in the run.
func (r *Run) Duration() float32 {
	if len(r.occ) == 0 {
		return 0
	}
	return r.occ[len(r.occ)-1].at
}

// Fired returns the amount of occurrences fired so far.
func (r *Run) Fired() int {
	return r.next
}

// Done returns true once every occurrence of the run has fired.
func (r *Run) Done() bool {
	return r.next >= len(r.occ)
}

// Advance moves the run forward by dt and fires, in order, every occurrence whose offset was crossed.
// The observer, if not nil, is called after each firing.
func (r *Run) Advance(dt float32, observer func(Firing)) {
	r.elapsed += dt
	for r.next < len(r.occ) {
		o := r.occ[r.next]
		if o.at > r.elapsed+epsilon {
			return
		}
		r.next++

		f := Firing{Run: r.name, Step: o.step.Name, Iteration: o.iteration, At: o.at, Elapsed: r.elapsed}
		if o.step.Action != nil {
			o.step.Action(f)
		}
		if observer != nil {
			observer(f)
		}
	}
}
