package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, in clockwise order
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Right returns the direction rotated 90 degrees clockwise
func (d Direction) Right() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 1) % 4
}

// Left returns the direction rotated 90 degrees counter-clockwise
func (d Direction) Left() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 3) % 4
}

// Backward returns the opposite direction
func (d Direction) Backward() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// IsVertical reports whether the direction moves along a column
func (d Direction) IsVertical() bool {
	return d == North || d == South
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
