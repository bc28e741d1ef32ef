package game

// Team names the side credited with a point. Blue defends the left border
// and scores when the ball leaves on the right.
type Team int

const (
	NoTeam Team = iota
	Blue
	Red
)

func (t Team) String() string {
	switch t {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return "none"
}

// Score counts points per team. There is no cap and no reset.
type Score struct {
	Blue uint64 `json:"blue"`
	Red  uint64 `json:"red"`
}

func (s *Score) Add(t Team) {
	switch t {
	case Blue:
		s.Blue++
	case Red:
		s.Red++
	}
}
