package parking

import "errors"

// Rejection kinds returned by the engine. All of them leave the domain
// state unchanged; callers match with errors.Is and surface the message.
var (
	// ErrInvalidConfig signals a bad slot count or hourly rate.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidVehicleID signals a vehicle id that is empty after trimming.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrVehicleAlreadyParked signals that the vehicle has an active session.
	ErrVehicleAlreadyParked = errors.New("vehicle already parked")

	// ErrSlotUnavailable signals a slot that does not exist or is occupied.
	ErrSlotUnavailable = errors.New("slot not available")

	// ErrVehicleNotFound signals that no active session matches the vehicle.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidTimeRange signals an exit time before the entry time.
	ErrInvalidTimeRange = errors.New("exit time before entry time")

	// ErrInconsistentState signals a consistency fault between the session
	// ledger and the slot registry. It is an internal fault, not a user error.
	ErrInconsistentState = errors.New("inconsistent parking state")
)
