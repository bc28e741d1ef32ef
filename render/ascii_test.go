package render

import (
	"strings"
	"testing"

	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initialSnapshot() game.Snapshot {
	return game.NewMatch(utils.DefaultConfig()).Snapshot()
}

func TestRenderASCII_Layout(t *testing.T) {
	out := RenderASCII(initialSnapshot(), 128, 36)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 37, "header plus one line per row")

	assert.Contains(t, lines[0], "Blue 0 : 0 Red")
	assert.Contains(t, lines[0], "Stopped")
	for _, line := range lines[1:] {
		assert.Len(t, line, 128)
	}

	grid := lines[1:]
	// Ball centred at (640, 360) with radius 10 covers columns 63..65, rows 17..18.
	assert.Equal(t, byte(ballChar), grid[18][64])
	assert.Equal(t, byte(ballChar), grid[17][63])
	// Paddles start at y=355 and span 50 units.
	assert.Equal(t, byte(paddleChar), grid[17][1])
	assert.Equal(t, byte(paddleChar), grid[20][1])
	assert.Equal(t, byte(paddleChar), grid[17][127])
	assert.Equal(t, byte(emptyChar), grid[0][0])
}

func TestRenderASCII_ScoreAndHalt(t *testing.T) {
	s := initialSnapshot()
	s.Score = game.Score{Blue: 3, Red: 7}
	s.State = game.Running(game.BottomRight)
	s.Halted = "ball hit the paddle moving away"

	header := strings.SplitN(RenderASCII(s, 40, 10), "\n", 2)[0]
	assert.Contains(t, header, "Blue 3 : 7 Red")
	assert.Contains(t, header, "Running(BottomRight)")
	assert.Contains(t, header, "HALTED: ball hit the paddle moving away")
}

func TestRenderASCII_EmptyGrid(t *testing.T) {
	assert.Empty(t, RenderASCII(initialSnapshot(), 0, 10))
	assert.Empty(t, RenderASCII(initialSnapshot(), 10, -1))
	assert.Empty(t, RenderASCII(game.Snapshot{}, 10, 10))
}

func TestRenderASCII_ClampsOffGridShapes(t *testing.T) {
	s := initialSnapshot()
	s.Ball.X, s.Ball.Y = -50, 2000

	out := RenderASCII(s, 16, 8)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, byte(ballChar), lines[8][0], "off-grid ball is pinned to the nearest cell")
}

func TestRenderANSI_Colours(t *testing.T) {
	out := RenderANSI(initialSnapshot(), 64, 18)
	assert.Contains(t, out, rgbToAnsi(bluePaddle)+"#\033[0m")
	assert.Contains(t, out, rgbToAnsi(redPaddle)+"#\033[0m")
	assert.Contains(t, out, rgbToAnsi(ballColor)+"@\033[0m")
}
