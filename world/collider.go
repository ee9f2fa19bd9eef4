package world

import (
	"fmt"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/lockdown/oerror"
)

// Collider is an axis-aligned box the player cannot move into. Retractable colliders belong to a
// door, valve group or escape door and may be deactivated exactly once.
type Collider struct {
	ID          string
	Box         cube.BBox
	Retractable bool

	active bool
}

// Active returns false once the collider has been retracted.
func (c *Collider) Active() bool {
	return c.active
}

// AddCollider adds a collider to the store. An empty ID assigns a generated one. It returns an error
// if a collider with the same ID already exists.
func (w *World) AddCollider(id string, box cube.BBox, retractable bool) (*Collider, error) {
	if id == "" {
		id = fmt.Sprintf("collider_%d", len(w.colliders))
	}
	if _, ok := w.byID[id]; ok {
		return nil, oerror.New("duplicate collider %q", id)
	}
	c := &Collider{ID: id, Box: box, Retractable: retractable, active: true}
	w.colliders = append(w.colliders, c)
	w.byID[id] = c
	return c, nil
}

// Collider returns the collider with the given ID.
func (w *World) Collider(id string) (*Collider, bool) {
	c, ok := w.byID[id]
	return c, ok
}

// Colliders returns every collider in the store, including retracted ones.
func (w *World) Colliders() []*Collider {
	return w.colliders
}

// ActiveBoxes returns the boxes of all colliders that have not been retracted.
func (w *World) ActiveBoxes() []cube.BBox {
	boxes := make([]cube.BBox, 0, len(w.colliders))
	for _, c := range w.colliders {
		if c.active {
			boxes = append(boxes, c.Box)
		}
	}
	return boxes
}

// Retract permanently deactivates a retractable collider. Retracting an already retracted collider
// is a no-op. It returns an error if the collider does not exist or is not retractable.
func (w *World) Retract(id string) error {
	c, ok := w.byID[id]
	if !ok {
		return oerror.New("collider %q does not exist", id)
	}
	if !c.Retractable {
		return oerror.New("collider %q is not retractable", id)
	}
	c.active = false
	return nil
}

// Intersects returns true if the box passed overlaps any active collider. Boxes that only touch
// do not intersect.
func (w *World) Intersects(bb cube.BBox) bool {
	return cube.AnyIntersections(w.ActiveBoxes(), bb)
}
