// File: game/paddle.go
package game

import "github.com/lguibr/duelpong/utils"

// Side identifies one of the two paddles.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// Paddle is an axis-aligned rectangle in logical coordinates.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewPaddle places a paddle near its side border, vertically just above the centre.
func NewPaddle(cfg utils.Config, side Side) Paddle {
	x := cfg.PaddleMargin
	if side == RightSide {
		x = float64(cfg.BaseWidth) - cfg.PaddleMargin
	}
	return Paddle{
		X:      x,
		Y:      float64(cfg.BaseHeight/2 - 5),
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
}

func (p Paddle) Bottom() float64 { return p.Y + p.Height }

// MoveUp moves the paddle up by step*multiplier unless its top edge is
// already above the screen. It reports whether the paddle moved.
func (p *Paddle) MoveUp(step, multiplier float64) bool {
	if p.Y < 0 {
		return false
	}
	p.Y -= step * multiplier
	return true
}

// MoveDown moves the paddle down unless its scaled bottom edge is already
// past the screen height.
func (p *Paddle) MoveDown(step, multiplier float64, screen Screen) bool {
	if p.Bottom()*screen.ScaleY() > float64(screen.Height) {
		return false
	}
	p.Y += step * multiplier
	return true
}
