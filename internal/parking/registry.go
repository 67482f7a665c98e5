package parking

import (
	"fmt"

	"parking-lot-backend/internal/model"
)

// MaxSlotCount is the upper bound for the configurable slot count.
const MaxSlotCount = 100

// Registry owns the fixed-size collection of slots and their occupancy
// state. Slots are identified by ids 1..count and kept ordered by id.
type Registry struct {
	slots []model.Slot
}

// NewRegistry creates a registry with count fresh, free slots.
func NewRegistry(count int) (*Registry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: slot count must be positive, got %d", ErrInvalidConfig, count)
	}
	slots := make([]model.Slot, count)
	for i := range slots {
		slots[i] = model.Slot{ID: i + 1}
	}
	return &Registry{slots: slots}, nil
}

// restoreRegistry rebuilds a registry from persisted slots. The slots must
// already be ordered by id and numbered 1..len.
func restoreRegistry(slots []model.Slot) (*Registry, error) {
	for i, s := range slots {
		if s.ID != i+1 {
			return nil, fmt.Errorf("%w: slot id %d at position %d", ErrInconsistentState, s.ID, i)
		}
		if s.Occupied != (s.VehicleID != nil) {
			return nil, fmt.Errorf("%w: slot %d occupancy does not match vehicle id", ErrInconsistentState, s.ID)
		}
	}
	r := &Registry{slots: make([]model.Slot, len(slots))}
	copy(r.slots, slots)
	return r, nil
}

// Slot returns the slot with the given id.
func (r *Registry) Slot(id int) (model.Slot, bool) {
	if id < 1 || id > len(r.slots) {
		return model.Slot{}, false
	}
	return r.slots[id-1], true
}

// FindFree reports whether the slot exists and is free. A false result is a
// normal rejection for callers, not a hard error.
func (r *Registry) FindFree(id int) bool {
	s, ok := r.Slot(id)
	return ok && !s.Occupied
}

// Occupy marks the slot as occupied by the given vehicle.
func (r *Registry) Occupy(id int, vehicleID string) {
	if id < 1 || id > len(r.slots) {
		return
	}
	v := vehicleID
	r.slots[id-1].Occupied = true
	r.slots[id-1].VehicleID = &v
}

// Free marks the slot as free again.
func (r *Registry) Free(id int) {
	if id < 1 || id > len(r.slots) {
		return
	}
	r.slots[id-1].Occupied = false
	r.slots[id-1].VehicleID = nil
}

// ListFree returns the free slots ordered by id.
func (r *Registry) ListFree() []model.Slot {
	return r.filter(false)
}

// ListOccupied returns the occupied slots ordered by id.
func (r *Registry) ListOccupied() []model.Slot {
	return r.filter(true)
}

func (r *Registry) filter(occupied bool) []model.Slot {
	out := make([]model.Slot, 0, len(r.slots))
	for _, s := range r.slots {
		if s.Occupied == occupied {
			out = append(out, s)
		}
	}
	return out
}

// All returns a copy of every slot ordered by id.
func (r *Registry) All() []model.Slot {
	out := make([]model.Slot, len(r.slots))
	copy(out, r.slots)
	return out
}

// Len returns the total number of slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// OccupiedCount returns the number of occupied slots.
func (r *Registry) OccupiedCount() int {
	n := 0
	for _, s := range r.slots {
		if s.Occupied {
			n++
		}
	}
	return n
}
