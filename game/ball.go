package game

import "github.com/lguibr/duelpong/utils"

// Ball is a circle in logical coordinates.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// NewBall places a ball of the configured radius at the centre of the field.
func NewBall(cfg utils.Config) Ball {
	b := Ball{Radius: cfg.BallRadius}
	b.Center(cfg)
	return b
}

// Center resets the ball to the middle of the logical field.
func (b *Ball) Center(cfg utils.Config) {
	b.X = float64(cfg.BaseWidth / 2)
	b.Y = float64(cfg.BaseHeight / 2)
}

// Move displaces the ball by step*multiplier along both axes of d.
func (b *Ball) Move(d Direction, step, multiplier float64) {
	dx, dy := d.Signs()
	b.X += dx * step * multiplier
	b.Y += dy * step * multiplier
}

func (b Ball) Top() float64    { return b.Y - b.Radius }
func (b Ball) Bottom() float64 { return b.Y + b.Radius }
func (b Ball) Left() float64   { return b.X - b.Radius }
func (b Ball) Right() float64  { return b.X + b.Radius }

// OverlapsVertically reports whether the ball's vertical extent touches the paddle's.
func (b Ball) OverlapsVertically(p Paddle) bool {
	return utils.RangesOverlap(b.Top(), b.Bottom(), p.Y, p.Bottom())
}
