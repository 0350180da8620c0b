package world

// Direction represents a cardinal direction
type Direction int

// Direction constants. Up is +y, matching the generator's map orientation.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns the 4-connected directions in flood-fill order
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
