package game

import (
	"errors"
	"fmt"
)

// ErrDirectionInvariant is returned when a paddle collision is detected while
// the play state cannot be reflected by that paddle: the match is stopped,
// or the ball already travels away from the paddle.
var ErrDirectionInvariant = errors.New("direction invariant violated")

// InvariantError describes the offending collision.
type InvariantError struct {
	Side  Side
	State PlayState
	Ball  Ball
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s paddle hit with state %s at (%.2f, %.2f): %v",
		e.Side, e.State, e.Ball.X, e.Ball.Y, ErrDirectionInvariant)
}

func (e *InvariantError) Unwrap() error { return ErrDirectionInvariant }
