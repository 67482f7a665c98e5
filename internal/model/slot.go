package model

// Slot represents a single numbered parking space.
// Invariant: Occupied is true exactly when VehicleID is set.
type Slot struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Occupied  bool    `gorm:"not null" json:"occupied"`
	VehicleID *string `gorm:"size:32" json:"vehicleId,omitempty"`
}
