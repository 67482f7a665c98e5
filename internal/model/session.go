package model

import "time"

// Session represents an in-progress parking stay (hot table).
// The vehicle id is stored normalized (trimmed, uppercased); at most one
// active session exists per vehicle id and per slot id.
type Session struct {
	SessionID string    `gorm:"primaryKey;size:64" json:"sessionId"`
	VehicleID string    `gorm:"uniqueIndex;size:32;not null" json:"vehicleId"`
	SlotID    int       `gorm:"uniqueIndex;not null" json:"slotId"`
	EntryTime time.Time `gorm:"not null" json:"entryTime"`
}
