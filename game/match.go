package game

import "github.com/lguibr/duelpong/utils"

// Match holds the full state of one two-paddle round sequence and advances it
// one tick at a time. It is not safe for concurrent use; GameActor owns it.
type Match struct {
	cfg      utils.Config
	controls [2]Controls

	Ball    Ball
	Paddles [2]Paddle
	State   PlayState
	Score   Score
	Screen  Screen
}

// TickEvents reports what happened during one tick.
type TickEvents struct {
	Started        bool // a paddle move took the match out of Stopped
	WallBounce     bool
	PaddleBounce   bool
	Scorer         Team
	MoveMultiplier float64
}

// NewMatch creates a stopped match with centred ball and both paddles in
// their starting positions.
func NewMatch(cfg utils.Config) *Match {
	return &Match{
		cfg:      cfg,
		controls: DefaultControls,
		Ball:     NewBall(cfg),
		Paddles:  [2]Paddle{NewPaddle(cfg, LeftSide), NewPaddle(cfg, RightSide)},
		State:    Stopped(),
		Screen:   NewScreen(cfg),
	}
}

// Reset re-centres the ball, returns both paddles to their starting
// positions and stops play. Score and screen size are kept.
func (m *Match) Reset() {
	m.Ball = NewBall(m.cfg)
	m.Paddles = [2]Paddle{NewPaddle(m.cfg, LeftSide), NewPaddle(m.cfg, RightSide)}
	m.State = Stopped()
}

// Resize changes the physical screen size used by border checks.
// Non-positive sizes are ignored.
func (m *Match) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	m.Screen.Width = width
	m.Screen.Height = height
	return true
}

// Tick runs one logical update with the given move multiplier:
// paddle input, ball advance with top/bottom reflection, the score check and
// finally the paddle collision check, in that order.
func (m *Match) Tick(multiplier float64, keys Keyboard) (TickEvents, error) {
	ev := TickEvents{MoveMultiplier: multiplier}

	for i := range m.Paddles {
		if m.movePaddle(Side(i), multiplier, keys) && m.State.Start() {
			ev.Started = true
		}
	}

	ev.WallBounce = m.advanceBall(multiplier)
	ev.Scorer = m.checkScore()

	bounced, err := m.collidePaddles()
	ev.PaddleBounce = bounced
	return ev, err
}

func (m *Match) movePaddle(side Side, multiplier float64, keys Keyboard) bool {
	if keys == nil {
		return false
	}
	p := &m.Paddles[side]
	c := m.controls[side]
	switch {
	case keys.IsKeyDown(c.Up):
		return p.MoveUp(m.cfg.PaddleStep, multiplier)
	case keys.IsKeyDown(c.Down):
		return p.MoveDown(m.cfg.PaddleStep, multiplier, m.Screen)
	}
	return false
}

// advanceBall reflects off the top or bottom border, then moves the ball.
// It is a no-op while stopped.
func (m *Match) advanceBall(multiplier float64) bool {
	dir, running := m.State.Direction()
	if !running {
		return false
	}

	bounced := false
	// The whole bottom edge is scaled, not only the radius as in y+r*scaleY;
	// both agree at scale 1.
	if m.Ball.Bottom()*m.Screen.ScaleY() > float64(m.Screen.Height) || m.Ball.Top() < 0 {
		dir = dir.FlipVertical()
		m.State = Running(dir)
		bounced = true
	}

	m.Ball.Move(dir, m.cfg.BallStep, multiplier)
	return bounced
}

// checkScore credits blue when the ball passes the right border and red when
// it reaches the left one, then stops play and re-centres the ball.
func (m *Match) checkScore() Team {
	scorer := NoTeam
	switch {
	case m.Ball.Right()*m.Screen.ScaleX() > float64(m.Screen.Width):
		scorer = Blue
	case m.Ball.Left() <= 0:
		scorer = Red
	default:
		return NoTeam
	}

	m.Score.Add(scorer)
	m.State = Stopped()
	m.Ball.Center(m.cfg)
	return scorer
}

func (m *Match) collidePaddles() (bool, error) {
	bounced := false

	left := m.Paddles[LeftSide]
	if m.Ball.OverlapsVertically(left) && m.Ball.X <= left.X+left.Width {
		if err := m.reflect(LeftSide); err != nil {
			return bounced, err
		}
		bounced = true
	}

	right := m.Paddles[RightSide]
	if m.Ball.OverlapsVertically(right) && m.Ball.X >= right.X-right.Width {
		if err := m.reflect(RightSide); err != nil {
			return bounced, err
		}
		bounced = true
	}
	return bounced, nil
}

// reflect flips the horizontal component of the direction. The ball must be
// running towards the paddle it hit.
func (m *Match) reflect(side Side) error {
	dir, running := m.State.Direction()
	if !running || dir.HeadingLeft() != (side == LeftSide) {
		return &InvariantError{Side: side, State: m.State, Ball: m.Ball}
	}
	m.State = Running(dir.FlipHorizontal())
	return nil
}

// Snapshot copies the render-relevant state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Ball:    m.Ball,
		Paddles: m.Paddles,
		Score:   m.Score,
		State:   m.State,
		Screen:  m.Screen,
	}
}

// Snapshot is a read-only view of a match for renderers and subscribers.
type Snapshot struct {
	Ball    Ball      `json:"ball"`
	Paddles [2]Paddle `json:"paddles"`
	Score   Score     `json:"score"`
	State   PlayState `json:"state"`
	Screen  Screen    `json:"screen"`
	Halted  string    `json:"halted,omitempty"`
}
