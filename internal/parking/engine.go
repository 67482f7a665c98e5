package parking

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"parking-lot-backend/internal/model"
)

// NormalizeVehicleID trims surrounding whitespace and uppercases the vehicle
// id. Normalized ids are what the ledger stores and compares, which makes
// vehicle identity case-insensitive.
func NormalizeVehicleID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Engine owns the whole domain state: the slot registry, the active session
// ledger, the history log and the settings. Every mutating operation runs to
// completion under one mutex, so no caller ever observes intermediate state,
// and every rejection path leaves the state untouched.
type Engine struct {
	mu       sync.Mutex
	settings model.Settings
	registry *Registry
	sessions map[string]model.Session // keyed by normalized vehicle id
	history  []model.HistoryEntry

	now func() time.Time // overridable in tests
}

// NewEngine creates an engine with the given settings and an empty ledger.
func NewEngine(settings model.Settings) (*Engine, error) {
	if settings.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate must not be negative, got %v", ErrInvalidConfig, settings.HourlyRate)
	}
	registry, err := NewRegistry(settings.SlotCount)
	if err != nil {
		return nil, err
	}
	settings.ID = 1
	return &Engine{
		settings: settings,
		registry: registry,
		sessions: make(map[string]model.Session),
		now:      time.Now,
	}, nil
}

// Restore rebuilds an engine from a persisted snapshot, re-deriving the
// session index and re-checking the slot/session invariants. A failure here
// means the snapshot is corrupt.
func Restore(snap model.Snapshot) (*Engine, error) {
	e, err := NewEngine(snap.Settings)
	if err != nil {
		return nil, err
	}
	if len(snap.Slots) > 0 {
		if len(snap.Slots) != snap.Settings.SlotCount {
			return nil, fmt.Errorf("%w: %d slots persisted, settings say %d",
				ErrInconsistentState, len(snap.Slots), snap.Settings.SlotCount)
		}
		if e.registry, err = restoreRegistry(snap.Slots); err != nil {
			return nil, err
		}
	}
	for _, s := range snap.Sessions {
		key := NormalizeVehicleID(s.VehicleID)
		if _, dup := e.sessions[key]; dup {
			return nil, fmt.Errorf("%w: duplicate session for vehicle %s", ErrInconsistentState, key)
		}
		slot, ok := e.registry.Slot(s.SlotID)
		if !ok || !slot.Occupied {
			return nil, fmt.Errorf("%w: session %s references free or missing slot %d",
				ErrInconsistentState, s.SessionID, s.SlotID)
		}
		e.sessions[key] = s
	}
	e.history = append(e.history, snap.History...)
	return e, nil
}

// Park records the entry of a vehicle into a slot and returns the created
// session. It is the only path that creates a session.
func (e *Engine) Park(vehicleID string, slotID int) (model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := NormalizeVehicleID(vehicleID)
	if id == "" {
		return model.Session{}, fmt.Errorf("%w: empty after trimming", ErrInvalidVehicleID)
	}
	if existing, ok := e.sessions[id]; ok {
		return model.Session{}, fmt.Errorf("%w: vehicle %s is in slot %d",
			ErrVehicleAlreadyParked, id, existing.SlotID)
	}
	if !e.registry.FindFree(slotID) {
		return model.Session{}, fmt.Errorf("%w: slot %d", ErrSlotUnavailable, slotID)
	}

	e.registry.Occupy(slotID, id)
	session := model.Session{
		SessionID: uuid.NewString(),
		VehicleID: id,
		SlotID:    slotID,
		EntryTime: e.now().UTC(),
	}
	e.sessions[id] = session
	return session, nil
}

// Unpark terminates the active session for the vehicle: it computes the
// payment and duration, frees the slot, and archives the stay as an
// immutable history entry, which it returns.
func (e *Engine) Unpark(vehicleID string) (model.HistoryEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := NormalizeVehicleID(vehicleID)
	session, ok := e.sessions[id]
	if !ok {
		return model.HistoryEntry{}, fmt.Errorf("%w: vehicle %s has no active session", ErrVehicleNotFound, id)
	}

	exitTime := e.now().UTC()
	payment, err := ComputeFee(session.EntryTime, exitTime, e.settings.HourlyRate)
	if err != nil {
		return model.HistoryEntry{}, err
	}
	if _, ok := e.registry.Slot(session.SlotID); !ok {
		return model.HistoryEntry{}, fmt.Errorf("%w: session %s references missing slot %d",
			ErrInconsistentState, session.SessionID, session.SlotID)
	}

	e.registry.Free(session.SlotID)
	delete(e.sessions, id)
	entry := model.HistoryEntry{
		VehicleID: session.VehicleID,
		SlotID:    session.SlotID,
		EntryTime: session.EntryTime,
		ExitTime:  exitTime,
		Duration:  FormatDuration(exitTime.Sub(session.EntryTime)),
		Payment:   payment,
	}
	e.history = append(e.history, entry)
	return entry, nil
}

// SetSlotCount replaces the registry with count fresh slots and clears all
// active sessions and history. Destructive: the caller is responsible for
// confirming with the operator first.
func (e *Engine) SetSlotCount(count int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if count <= 0 || count > MaxSlotCount {
		return fmt.Errorf("%w: slot count must be between 1 and %d, got %d", ErrInvalidConfig, MaxSlotCount, count)
	}
	registry, err := NewRegistry(count)
	if err != nil {
		return err
	}
	e.registry = registry
	e.sessions = make(map[string]model.Session)
	e.history = nil
	e.settings.SlotCount = count
	return nil
}

// SetHourlyRate updates the billing rate. Existing sessions are billed at
// the rate in effect when they exit.
func (e *Engine) SetHourlyRate(rate float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if rate < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative, got %v", ErrInvalidConfig, rate)
	}
	e.settings.HourlyRate = rate
	return nil
}

// ClearAll frees every slot and discards all active sessions and history.
// Settings are kept.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, s := range e.registry.All() {
		e.registry.Free(s.ID)
	}
	e.sessions = make(map[string]model.Session)
	e.history = nil
}

// Settings returns the current settings.
func (e *Engine) Settings() model.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// Slots returns every slot ordered by id.
func (e *Engine) Slots() []model.Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.All()
}

// FreeSlots returns the free slots ordered by id.
func (e *Engine) FreeSlots() []model.Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.ListFree()
}

// OccupiedSlots returns the occupied slots ordered by id.
func (e *Engine) OccupiedSlots() []model.Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.ListOccupied()
}

// ActiveSessions returns the active sessions ordered by entry time.
func (e *Engine) ActiveSessions() []model.Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntryTime.Equal(out[j].EntryTime) {
			return out[i].SlotID < out[j].SlotID
		}
		return out[i].EntryTime.Before(out[j].EntryTime)
	})
	return out
}

// History returns a copy of the history log in insertion order.
func (e *Engine) History() []model.HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.HistoryEntry, len(e.history))
	copy(out, e.history)
	return out
}

// Stats recomputes the aggregate view from the current state.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeStats(e.history, e.registry.OccupiedCount(), e.registry.Len())
}

// Snapshot returns a deep copy of the whole domain state, suitable for
// handing to the persistence layer.
func (e *Engine) Snapshot() model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := model.Snapshot{
		Slots:    e.registry.All(),
		Sessions: make([]model.Session, 0, len(e.sessions)),
		History:  make([]model.HistoryEntry, len(e.history)),
		Settings: e.settings,
	}
	for _, s := range e.sessions {
		snap.Sessions = append(snap.Sessions, s)
	}
	sort.Slice(snap.Sessions, func(i, j int) bool {
		if snap.Sessions[i].EntryTime.Equal(snap.Sessions[j].EntryTime) {
			return snap.Sessions[i].SlotID < snap.Sessions[j].SlotID
		}
		return snap.Sessions[i].EntryTime.Before(snap.Sessions[j].EntryTime)
	})
	copy(snap.History, e.history)
	return snap
}
