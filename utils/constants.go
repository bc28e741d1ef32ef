package utils

import "time"

const (
	// BaseWidth and BaseHeight define the logical coordinate space every
	// position is expressed in, whatever the physical screen size.
	BaseWidth  = 1280
	BaseHeight = 720

	// MinTickInterval is the shortest elapsed time that triggers a logical update.
	MinTickInterval = 4 * time.Millisecond

	BallRadius   = 10
	PaddleWidth  = 5
	PaddleHeight = 50
	PaddleMargin = 10

	// Per nominal tick, scaled by the move multiplier.
	PaddleStep = 2
	BallStep   = 1
)

// Raw key codes of the four controls.
const (
	KeyCodeW    = 87
	KeyCodeS    = 83
	KeyCodeUp   = 265
	KeyCodeDown = 264
)

// KeyCodeFromString maps a browser style key name to its raw key code.
// Unknown names map to 0.
func KeyCodeFromString(name string) int {
	switch name {
	case "KeyW", "w", "W":
		return KeyCodeW
	case "KeyS", "s", "S":
		return KeyCodeS
	case "ArrowUp":
		return KeyCodeUp
	case "ArrowDown":
		return KeyCodeDown
	}
	return 0
}
