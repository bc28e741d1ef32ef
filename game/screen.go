package game

import "github.com/lguibr/duelpong/utils"

// Screen is the current physical drawing surface. Positions stay in the
// logical base space; border checks multiply by the scale factors.
type Screen struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	BaseWidth  int `json:"baseWidth"`
	BaseHeight int `json:"baseHeight"`
}

func NewScreen(cfg utils.Config) Screen {
	return Screen{
		Width:      cfg.ScreenWidth,
		Height:     cfg.ScreenHeight,
		BaseWidth:  cfg.BaseWidth,
		BaseHeight: cfg.BaseHeight,
	}
}

func (s Screen) ScaleX() float64 { return utils.ScaleFactor(s.Width, s.BaseWidth) }
func (s Screen) ScaleY() float64 { return utils.ScaleFactor(s.Height, s.BaseHeight) }
