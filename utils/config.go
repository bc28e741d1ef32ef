// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configurable game and server parameters.
type Config struct {
	// Timing
	MinTickInterval time.Duration `json:"minTickInterval"` // Minimum elapsed time before a logical update runs
	GameTickPeriod  time.Duration `json:"gameTickPeriod"`  // How often the game actor polls the tick gate
	BroadcastPeriod time.Duration `json:"broadcastPeriod"` // Time between state pushes to subscribers

	// Screen
	BaseWidth    int `json:"baseWidth"`    // Logical coordinate space width
	BaseHeight   int `json:"baseHeight"`   // Logical coordinate space height
	ScreenWidth  int `json:"screenWidth"`  // Initial physical screen width
	ScreenHeight int `json:"screenHeight"` // Initial physical screen height

	// Ball
	BallRadius float64 `json:"ballRadius"`
	BallStep   float64 `json:"ballStep"` // Per-axis displacement per nominal tick

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight"`
	PaddleMargin float64 `json:"paddleMargin"` // Distance of each paddle from its side border
	PaddleStep   float64 `json:"paddleStep"`   // Vertical displacement per nominal tick

	// Server
	Addr       string        `json:"addr"`       // HTTP listen address
	AskTimeout time.Duration `json:"askTimeout"` // Timeout for request/reply to the game actor
	LogLevel   string        `json:"logLevel"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Timing
		MinTickInterval: MinTickInterval,
		GameTickPeriod:  time.Millisecond,
		BroadcastPeriod: 16 * time.Millisecond, // ~60 frames per second

		// Screen
		BaseWidth:    BaseWidth,
		BaseHeight:   BaseHeight,
		ScreenWidth:  BaseWidth,
		ScreenHeight: BaseHeight,

		// Ball
		BallRadius: BallRadius,
		BallStep:   BallStep,

		// Paddles
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleMargin: PaddleMargin,
		PaddleStep:   PaddleStep,

		// Server
		Addr:       ":3001",
		AskTimeout: 200 * time.Millisecond,
		LogLevel:   "info",
	}
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.MinTickInterval <= 0:
		return errors.New("config: minTickInterval must be positive")
	case c.GameTickPeriod <= 0:
		return errors.New("config: gameTickPeriod must be positive")
	case c.BroadcastPeriod <= 0:
		return errors.New("config: broadcastPeriod must be positive")
	case c.BaseWidth <= 0 || c.BaseHeight <= 0:
		return fmt.Errorf("config: invalid base resolution %dx%d", c.BaseWidth, c.BaseHeight)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("config: invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.BallRadius <= 0:
		return errors.New("config: ballRadius must be positive")
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return errors.New("config: paddle dimensions must be positive")
	case c.AskTimeout <= 0:
		return errors.New("config: askTimeout must be positive")
	}
	return nil
}
