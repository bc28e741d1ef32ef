package game

import "encoding/json"

// PlayState is either Stopped or Running with a direction. The direction is
// only reachable through Direction(), which reports false while stopped.
type PlayState struct {
	running   bool
	direction Direction
}

func Stopped() PlayState { return PlayState{} }

func Running(d Direction) PlayState {
	return PlayState{running: true, direction: d}
}

func (s PlayState) IsRunning() bool { return s.running }

func (s PlayState) Direction() (Direction, bool) {
	if !s.running {
		return 0, false
	}
	return s.direction, true
}

// Start moves a stopped play state to Running(TopLeft). A running state is
// left untouched. It reports whether a transition happened.
func (s *PlayState) Start() bool {
	if s.running {
		return false
	}
	*s = Running(TopLeft)
	return true
}

func (s PlayState) String() string {
	if !s.running {
		return "Stopped"
	}
	return "Running(" + s.direction.String() + ")"
}

type playStateJSON struct {
	Running   bool       `json:"running"`
	Direction *Direction `json:"direction,omitempty"`
}

func (s PlayState) MarshalJSON() ([]byte, error) {
	out := playStateJSON{Running: s.running}
	if s.running {
		d := s.direction
		out.Direction = &d
	}
	return json.Marshal(out)
}

func (s *PlayState) UnmarshalJSON(data []byte) error {
	var in playStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if !in.Running {
		*s = Stopped()
		return nil
	}
	d := TopLeft
	if in.Direction != nil {
		d = *in.Direction
	}
	*s = Running(d)
	return nil
}
