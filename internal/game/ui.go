package game

import (
	"fmt"
	"strconv"

	"simon/internal/buttons"
	"simon/internal/palette"
)

// hud is what the driver last heard from the state machine's show score and
// game over signals.
type hud struct {
	score    int
	top      []int
	gameOver bool
}

// RenderHUD draws the score panels, the buttons with their flash overlays and,
// after a mistake, the game over overlay.
func RenderHUD(r *Renderer, reg *buttons.Registry, flashes *buttons.Flashes, h hud) {
	p := palette.Palette

	r.DrawString("Current Score:", ScoreLabelX, ScoreLabelY, HUDScale, p.White)
	r.DrawString(strconv.Itoa(h.score), ScoreLabelX, ScoreValueY, HUDScale, p.White)

	r.DrawString("Top 10 Scores:", TopLabelX, ScoreLabelY, HUDScale, p.White)
	for i, s := range h.top {
		r.DrawString(fmt.Sprintf("%d. %d", i+1, s), TopListX, TopListY+i*TopLineH, HUDScale, p.White)
	}

	for _, b := range reg.Buttons() {
		r.DrawRect(b.Rect, b.Color, 255)
		if a := flashes.Alpha(b.Index); a > 0 {
			r.DrawRect(b.Rect, b.Flash, a)
		}
	}

	if h.gameOver {
		centre := buttons.Point{X: WindowWidth / 2, Y: WindowHeight / 2}
		r.DrawStringCentered("Game Over", centre, GameOverScale, p.White)

		rect := restartRect()
		r.DrawRect(rect, p.White, 255)
		r.DrawStringCentered("Restart", rect.Center(), RestartScale, p.Black)
	}

	r.Flush()
}
