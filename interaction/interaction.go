package interaction

import (
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/oomph-ac/lockdown/assert"
	"github.com/oomph-ac/lockdown/object"
	"github.com/oomph-ac/lockdown/session"
	"github.com/oomph-ac/lockdown/settings"
	"github.com/oomph-ac/lockdown/utils"
)

// Interaction finds the interactable under the view center and routes interact input to its state
// machine. It never mutates the scene itself.
type Interaction struct {
	s   *session.Session
	reg *object.Registry

	ticks  uint64
	target *object.Interactable
}

// New creates the interaction component of the session and registers it.
func New(s *session.Session, reg *object.Registry) *Interaction {
	i := &Interaction{s: s, reg: reg}
	s.SetInteraction(i)
	return i
}

// Target returns the interactable the prompt is currently shown for, or nil.
func (i *Interaction) Target() *object.Interactable {
	return i.target
}

// Tick refreshes the prompt every few ticks and activates the targeted interactable on the interact
// edge.
func (i *Interaction) Tick(in session.Input) {
	if i.ticks%uint64(i.s.Settings().Interaction.PromptInterval) == 0 {
		i.updatePrompt()
	}
	i.ticks++

	if in.Interact {
		i.activate()
	}
}

// Raycast returns the nearest interactable intersected by a ray from the camera along the view
// direction, capped at the interaction range. Objects that are not interactable are skipped. A
// camera inside a part counts as a hit at distance zero.
func (i *Interaction) Raycast() (*object.Interactable, float32, bool) {
	p := i.s.Player()
	start := p.Camera()
	end := start.Add(p.LookDirection().Mul(i.s.Settings().Interaction.Range))

	var (
		closest     *object.Interactable
		closestDist float32 = 1_000_000
	)
	for it := range i.reg.All() {
		if !it.Interactable {
			continue
		}
		for _, part := range it.Parts {
			if part.Vec3Within(start) {
				closest, closestDist = it, 0
				break
			}
			if res, ok := trace.BBoxIntercept(part, start, end); ok {
				if dist := start.Sub(res.Position()).Len(); dist < closestDist {
					closest, closestDist = it, dist
				}
			}
		}
	}
	return closest, closestDist, closest != nil
}

// updatePrompt shows or hides the prompt when the targeted interactable changes.
func (i *Interaction) updatePrompt() {
	it, _, _ := i.Raycast()
	if it == i.target {
		return
	}
	i.target = it
	if it == nil {
		i.s.HUD().HidePrompt()
		return
	}
	i.s.HUD().ShowPrompt(it.Prompt)
	i.s.Dbg.Notify(session.DebugModeInteraction, true, "prompt target %s (%s)", it.ID, it.Kind)
}

func (i *Interaction) activate() {
	it, dist, ok := i.Raycast()
	if !ok {
		i.s.Dbg.Notify(session.DebugModeInteraction, true, "interact missed")
		return
	}
	res := Dispatch(i.s, it)
	i.count(it, res)

	i.s.Record("interact", utils.Fields("id", it.ID, "kind", it.Kind, "result", res, "dist", dist))
	// A spent object may no longer be interactable, refresh the prompt right away.
	i.updatePrompt()
}

// count applies the session's collectible policy to the outcome of an interaction.
func (i *Interaction) count(it *object.Interactable, res object.Result) {
	progress := i.s.Progress()
	switch i.s.Settings().CollectiblePolicy {
	case settings.CollectReadablesOnly:
		if r, ok := it.Machine.(*object.Readable); ok && res == object.Accepted && r.Reads() == 1 {
			progress.Collectibles++
		}
	default:
		if res != object.Rejected {
			progress.Collectibles++
		}
	}
}

// Dispatch routes an interaction to the transition of the interactable's state machine.
func Dispatch(s *session.Session, it *object.Interactable) object.Result {
	switch m := it.Machine.(type) {
	case *object.Door:
		return m.Open(s)
	case *object.SecurityDoor:
		return m.Unlock(s)
	case *object.Valve:
		return m.Turn(s)
	case *object.Keycard:
		return m.Collect(s)
	case *object.Hatch:
		return m.Use(s)
	case *object.EscapeDoor:
		return m.Grant(s)
	case *object.Readable:
		return m.Read(s)
	default:
		assert.IsTrue(false, "interactable %s has unknown machine %T", it.ID, m)
		return object.NoOp
	}
}
