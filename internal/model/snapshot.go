package model

// Snapshot is the full domain state as a single unit: the persistence
// layer always saves and loads it wholesale, never incrementally.
type Snapshot struct {
	Slots    []Slot         `json:"slots"`
	Sessions []Session      `json:"activeSessions"`
	History  []HistoryEntry `json:"history"`
	Settings Settings       `json:"settings"`
}
