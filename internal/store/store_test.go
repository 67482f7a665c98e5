package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parking-lot-backend/internal/model"
)

// newTestStore opens a fresh in-memory SQLite database with migrations run.
func newTestStore(t *testing.T) Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Slot{}, &model.Session{}, &model.HistoryEntry{}, &model.Settings{}))
	return NewGormStore(db)
}

func testSnapshot() model.Snapshot {
	vehicle := "AB12"
	entry := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return model.Snapshot{
		Slots: []model.Slot{
			{ID: 1, Occupied: true, VehicleID: &vehicle},
			{ID: 2},
			{ID: 3},
		},
		Sessions: []model.Session{
			{SessionID: "sess-1", VehicleID: "AB12", SlotID: 1, EntryTime: entry},
		},
		History: []model.HistoryEntry{
			{VehicleID: "CD34", SlotID: 2, EntryTime: entry.Add(-3 * time.Hour), ExitTime: entry.Add(-2 * time.Hour), Duration: "1h 0m", Payment: 10.00},
			{VehicleID: "EF56", SlotID: 3, EntryTime: entry.Add(-2 * time.Hour), ExitTime: entry.Add(-30 * time.Minute), Duration: "1h 30m", Payment: 20.00},
		},
		Settings: model.Settings{ID: 1, SlotCount: 3, HourlyRate: 10.00},
	}
}

func TestGormStore_LoadAbsent(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found, "a fresh database has no snapshot")
}

func TestGormStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	snap := testSnapshot()

	require.NoError(t, s.Save(context.Background(), snap))

	loaded, found, err := s.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, snap.Settings, loaded.Settings)
	assert.Equal(t, snap.Slots, loaded.Slots)

	require.Len(t, loaded.Sessions, 1)
	assert.Equal(t, snap.Sessions[0].SessionID, loaded.Sessions[0].SessionID)
	assert.True(t, snap.Sessions[0].EntryTime.Equal(loaded.Sessions[0].EntryTime),
		"entry timestamps survive serialization")

	require.Len(t, loaded.History, 2)
	for i := range loaded.History {
		loaded.History[i].ID = 0 // row ids are assigned by the database
		assert.True(t, snap.History[i].EntryTime.Equal(loaded.History[i].EntryTime))
		assert.True(t, snap.History[i].ExitTime.Equal(loaded.History[i].ExitTime))
	}
	assert.Equal(t, snap.History[0].Payment, loaded.History[0].Payment)
	assert.Equal(t, snap.History[1].Duration, loaded.History[1].Duration)
	assert.Equal(t, "CD34", loaded.History[0].VehicleID, "history insertion order is preserved")
}

func TestGormStore_SaveReplacesWholeState(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(context.Background(), testSnapshot()))

	// Second save with an emptier state must fully replace the first.
	second := model.Snapshot{
		Slots:    []model.Slot{{ID: 1}, {ID: 2}},
		Settings: model.Settings{ID: 1, SlotCount: 2, HourlyRate: 4.00},
	}
	require.NoError(t, s.Save(context.Background(), second))

	loaded, found, err := s.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, loaded.Slots, 2)
	assert.Empty(t, loaded.Sessions)
	assert.Empty(t, loaded.History)
	assert.Equal(t, 4.00, loaded.Settings.HourlyRate)
}
