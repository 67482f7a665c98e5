package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"parking-lot-backend/internal/model"
)

// ErrIOFault wraps every persistence failure, including snapshots that fail
// to decode on load. Callers that hit it keep their in-memory state as the
// authoritative copy.
var ErrIOFault = errors.New("snapshot persistence fault")

// Store is the persistence collaborator: it saves and loads the whole
// domain state as one snapshot, never incrementally.
type Store interface {
	Save(ctx context.Context, snap model.Snapshot) error
	Load(ctx context.Context) (model.Snapshot, bool, error)
}

// gormStore implements Store on top of GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed snapshot store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Save replaces the persisted snapshot with snap inside one transaction.
// History rows are rewritten too: the snapshot is the unit of persistence,
// so a partially written state is never visible.
func (s *gormStore) Save(ctx context.Context, snap model.Snapshot) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&model.Slot{}, &model.Session{}, &model.HistoryEntry{}, &model.Settings{}} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		if len(snap.Slots) > 0 {
			if err := tx.Create(&snap.Slots).Error; err != nil {
				return err
			}
		}
		if len(snap.Sessions) > 0 {
			if err := tx.Create(&snap.Sessions).Error; err != nil {
				return err
			}
		}
		if len(snap.History) > 0 {
			history := make([]model.HistoryEntry, len(snap.History))
			copy(history, snap.History)
			for i := range history {
				history[i].ID = 0 // keep insertion order, let the DB renumber
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}
		snap.Settings.ID = 1
		return tx.Create(&snap.Settings).Error
	})
	if err != nil {
		return fmt.Errorf("%w: save: %v", ErrIOFault, err)
	}
	return nil
}

// Load reads the persisted snapshot back. The second return value is false
// when no snapshot has ever been saved; timestamps come back in UTC.
func (s *gormStore) Load(ctx context.Context) (model.Snapshot, bool, error) {
	var snap model.Snapshot

	var settings model.Settings
	err := s.db.WithContext(ctx).First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: load settings: %v", ErrIOFault, err)
	}
	snap.Settings = settings

	if err := s.db.WithContext(ctx).Order("id").Find(&snap.Slots).Error; err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: load slots: %v", ErrIOFault, err)
	}
	if err := s.db.WithContext(ctx).Order("entry_time").Find(&snap.Sessions).Error; err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: load sessions: %v", ErrIOFault, err)
	}
	if err := s.db.WithContext(ctx).Order("id").Find(&snap.History).Error; err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: load history: %v", ErrIOFault, err)
	}

	normalizeTimes(&snap)
	return snap, true, nil
}

// normalizeTimes pins every timestamp to UTC so a loaded snapshot compares
// equal to the one that was saved regardless of driver timezone handling.
func normalizeTimes(snap *model.Snapshot) {
	for i := range snap.Sessions {
		snap.Sessions[i].EntryTime = snap.Sessions[i].EntryTime.UTC()
	}
	for i := range snap.History {
		snap.History[i].EntryTime = snap.History[i].EntryTime.UTC()
		snap.History[i].ExitTime = snap.History[i].ExitTime.UTC()
	}
}
