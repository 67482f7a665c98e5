package model

// Settings holds the operator-configurable parameters. Persisted as a
// single row; changing SlotCount rebuilds the whole slot registry.
type Settings struct {
	ID         int     `gorm:"primaryKey" json:"-"`
	SlotCount  int     `gorm:"not null" json:"slotCount"`
	HourlyRate float64 `gorm:"not null" json:"hourlyRate"`
}

// Default settings used when no snapshot exists yet.
const (
	DefaultSlotCount  = 10
	DefaultHourlyRate = 5.00
)

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{ID: 1, SlotCount: DefaultSlotCount, HourlyRate: DefaultHourlyRate}
}
