package model

import "time"

// HistoryEntry represents an archived, completed parking stay (cold table).
// Entries are append-only and never mutated after creation; insertion order
// is chronological by exit time.
type HistoryEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	VehicleID string    `gorm:"size:32;not null;index" json:"vehicleId"`
	SlotID    int       `gorm:"not null" json:"slotId"`
	EntryTime time.Time `gorm:"not null" json:"entryTime"`
	ExitTime  time.Time `gorm:"not null;index" json:"exitTime"`
	Duration  string    `gorm:"size:32;not null" json:"duration"`
	Payment   float64   `gorm:"not null" json:"payment"`
}
