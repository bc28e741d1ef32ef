package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/duelpong/game"
)

// RGBPixel is the colour of one frame cell.
type RGBPixel struct {
	R, G, B uint8
}

const (
	emptyChar  = ' '
	ballChar   = '@'
	paddleChar = '#'
)

var (
	ballColor  = RGBPixel{R: 255, G: 255, B: 255}
	bluePaddle = RGBPixel{R: 40, G: 90, B: 255}
	redPaddle  = RGBPixel{R: 235, G: 50, B: 50}
)

type cell struct {
	char  rune
	color RGBPixel
}

// frame is a rows x cols grid of cells in logical-to-grid scale.
type frame struct {
	cells      [][]cell
	scaleX     float64
	scaleY     float64
	cols, rows int
}

func newFrame(s game.Snapshot, cols, rows int) *frame {
	f := &frame{
		cells:  make([][]cell, rows),
		scaleX: float64(cols) / float64(s.Screen.BaseWidth),
		scaleY: float64(rows) / float64(s.Screen.BaseHeight),
		cols:   cols,
		rows:   rows,
	}
	for y := range f.cells {
		f.cells[y] = make([]cell, cols)
		for x := range f.cells[y] {
			f.cells[y][x] = cell{char: emptyChar}
		}
	}

	left, right := s.Paddles[game.LeftSide], s.Paddles[game.RightSide]
	f.fill(left.X, left.Y, left.X+left.Width, left.Bottom(), cell{char: paddleChar, color: bluePaddle})
	f.fill(right.X, right.Y, right.X+right.Width, right.Bottom(), cell{char: paddleChar, color: redPaddle})
	f.fill(s.Ball.Left(), s.Ball.Top(), s.Ball.Right(), s.Ball.Bottom(), cell{char: ballChar, color: ballColor})
	return f
}

// fill paints the logical rectangle [x0,x1] x [y0,y1], always covering at
// least one cell.
func (f *frame) fill(x0, y0, x1, y1 float64, c cell) {
	c0, c1 := clamp(int(x0*f.scaleX), f.cols), clamp(int(x1*f.scaleX), f.cols)
	r0, r1 := clamp(int(y0*f.scaleY), f.rows), clamp(int(y1*f.scaleY), f.rows)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			f.cells[y][x] = c
		}
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func header(s game.Snapshot) string {
	h := fmt.Sprintf("Blue %d : %d Red  [%s]", s.Score.Blue, s.Score.Red, s.State)
	if s.Halted != "" {
		h += "  HALTED: " + s.Halted
	}
	return h
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderASCII draws the score line followed by a rows x cols text frame of
// the match. It returns "" for an empty grid.
func RenderASCII(s game.Snapshot, cols, rows int) string {
	return render(s, cols, rows, false)
}

// RenderANSI is RenderASCII with 24-bit colour escapes around every
// non-empty cell.
func RenderANSI(s game.Snapshot, cols, rows int) string {
	return render(s, cols, rows, true)
}

func render(s game.Snapshot, cols, rows int, color bool) string {
	if cols <= 0 || rows <= 0 || s.Screen.BaseWidth <= 0 || s.Screen.BaseHeight <= 0 {
		return ""
	}
	f := newFrame(s, cols, rows)

	var out strings.Builder
	out.WriteString(header(s))
	out.WriteString("\n")
	for _, line := range f.cells {
		for _, c := range line {
			if color && c.char != emptyChar {
				out.WriteString(rgbToAnsi(c.color))
				out.WriteRune(c.char)
				out.WriteString("\033[0m") // Reset color after each character
				continue
			}
			out.WriteRune(c.char)
		}
		out.WriteString("\n")
	}
	return out.String()
}
