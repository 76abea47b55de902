package game

import "simon/internal/buttons"

// Window size. The renderer works in these logical pixels regardless of the
// framebuffer size.
const (
	WindowWidth  = buttons.ScreenWidth
	WindowHeight = buttons.ScreenHeight
	WindowTitle  = "Simon Says"
)

// Font atlas layout (basicfont 7x13, printable ASCII 32-126 plus one solid
// cell used for filled rectangles).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontAscent = 11
	FontFirst  = 32
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
	FontSolid  = 127                  // DEL, drawn as a solid cell
)

// HUD positions (in logical pixels).
const (
	ScoreLabelX = 20
	ScoreLabelY = 20
	ScoreValueY = 40
	TopLabelX   = 470
	TopListX    = 540
	TopListY    = 40
	TopLineH    = 20
	HUDScale    = 1.0
)

// Game over overlay.
const (
	GameOverScale  = 2.0
	RestartW       = 100
	RestartH       = 40
	RestartPadding = 20
	RestartScale   = 1.5
)

// restartRect is the clickable Restart button under the "Game Over" text.
func restartRect() buttons.Rect {
	textBottom := WindowHeight/2 + float64(FontCellH)*GameOverScale/2
	return buttons.Rect{
		X: WindowWidth/2 - RestartW/2,
		Y: textBottom + RestartPadding,
		W: RestartW,
		H: RestartH,
	}
}
