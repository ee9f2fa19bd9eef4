package object

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/lockdown/oerror"
	"github.com/oomph-ac/lockdown/session"
)

// Registry holds every interactable of a level in insertion order and animates their machines.
type Registry struct {
	s     *session.Session
	items *orderedmap.OrderedMap[string, *Interactable]
}

// NewRegistry creates an empty registry and registers it as the object component of the session.
func NewRegistry(s *session.Session) *Registry {
	r := &Registry{s: s, items: orderedmap.NewOrderedMap[string, *Interactable]()}
	s.SetObjects(r)
	return r
}

// Add adds an interactable. It returns an error if the ID is taken, the record has no parts or no
// machine.
func (r *Registry) Add(it *Interactable) error {
	if _, ok := r.items.Get(it.ID); ok {
		return oerror.New("duplicate interactable %q", it.ID)
	}
	if len(it.Parts) == 0 {
		return oerror.New("interactable %q has no parts", it.ID)
	}
	if it.Machine == nil {
		return oerror.New("interactable %q has no state machine", it.ID)
	}
	if b, ok := it.Machine.(binder); ok {
		b.bind(it)
	}
	r.items.Set(it.ID, it)
	return nil
}

// Get returns the interactable with the ID passed.
func (r *Registry) Get(id string) (*Interactable, bool) {
	return r.items.Get(id)
}

// All iterates over every interactable in insertion order.
func (r *Registry) All() iter.Seq[*Interactable] {
	return func(yield func(*Interactable) bool) {
		for el := r.items.Front(); el != nil; el = el.Next() {
			if !yield(el.Value) {
				return
			}
		}
	}
}

// Len returns the amount of interactables.
func (r *Registry) Len() int {
	return r.items.Len()
}

// Tick advances the animations of every machine.
func (r *Registry) Tick(dt float32) {
	for it := range r.All() {
		if a, ok := it.Machine.(animator); ok {
			a.animate(r.s, dt)
		}
	}
}
