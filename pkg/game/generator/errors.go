package generator

import "errors"

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid generator config")

	// ErrNoSurvivingRooms is returned when every passable region is smaller than
	// the room threshold. Callers should treat it as a configuration problem and
	// retry with smaller thresholds or another seed.
	ErrNoSurvivingRooms = errors.New("no surviving rooms after filtering")

	// ErrUnreachableRoom signals that the connector could not find any passage
	// from a remaining room to the main room's network. It should never happen.
	ErrUnreachableRoom = errors.New("room unreachable from main room")
)
