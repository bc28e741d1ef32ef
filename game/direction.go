package game

import "fmt"

// Direction is one of the four fixed diagonals the ball travels along.
type Direction int

const (
	TopLeft Direction = iota
	TopRight
	BottomLeft
	BottomRight
)

var directionNames = [...]string{
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
}

func (d Direction) Valid() bool {
	return d >= TopLeft && d <= BottomRight
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// FlipVertical reflects off a top or bottom border: the horizontal
// component is kept.
func (d Direction) FlipVertical() Direction {
	switch d {
	case TopLeft:
		return BottomLeft
	case TopRight:
		return BottomRight
	case BottomLeft:
		return TopLeft
	default:
		return TopRight
	}
}

// FlipHorizontal reflects off a paddle: the vertical component is kept.
func (d Direction) FlipHorizontal() Direction {
	switch d {
	case TopLeft:
		return TopRight
	case TopRight:
		return TopLeft
	case BottomLeft:
		return BottomRight
	default:
		return BottomLeft
	}
}

// HeadingLeft reports whether x decreases while moving in d.
func (d Direction) HeadingLeft() bool {
	return d == TopLeft || d == BottomLeft
}

// Signs returns the unit displacement per axis. Screen y grows downwards.
func (d Direction) Signs() (dx, dy float64) {
	dx, dy = 1, 1
	if d.HeadingLeft() {
		dx = -1
	}
	if d == TopLeft || d == TopRight {
		dy = -1
	}
	return dx, dy
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range directionNames {
		if name == string(text) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}
