package hexmerge

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/hexthree/internal/core"
	"github.com/vovakirdan/hexthree/internal/hex"
)

const (
	cellWidth    = 5 // columns of one piece label
	cellStride   = 6 // columns between neighbouring cells of a row
	rowStride    = 2 // screen rows between board rows
	hudHeight    = 3
	footerHeight = 2
)

// boardExtent returns the size of the drawn board in screen cells.
func boardExtent(l *hex.Layout) (w, h int) {
	d := l.Diameter()
	return cellStride*(d-1) + cellWidth, rowStride*(d-1) + 1
}

// screenPos maps a cell to its offset inside the drawn board.
func screenPos(l *hex.Layout, c hex.Coord) (x, y float64) {
	wx, wy, err := l.Position(c)
	if err != nil {
		return 0, 0
	}
	return wx * cellStride, wy * rowStride * 2 / math.Sqrt(3)
}

// Label returns the text shown on a piece of the given stage.
func Label(stage int) string {
	s := strconv.Itoa(StageValue(stage))
	if len(s) > cellWidth {
		return "3^" + strconv.Itoa(stage)
	}
	return s
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardExtent(g.layout)
	board := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)

	dst.DrawTextColor((g.screenW-len(g.Controls()))/2, g.screenH-1, g.Controls(), core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := boardExtent(g.layout)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w+2, h+hudHeight+footerHeight))
}

// renderHUD draws score, progress and mode above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextCentered(0, g.Title())

	left := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(board.X, 1, left)

	var right string
	if g.mode == ModeClassic && g.settings.VictoryStage > 0 {
		right = fmt.Sprintf("Best: %s  Goal: %s", Label(core.Max(g.maxStage, 0)), Label(g.settings.VictoryStage))
	} else {
		right = fmt.Sprintf("Best: %s", Label(core.Max(g.maxStage, 0)))
	}
	dst.DrawText(core.Max(board.Right()-len(right), board.X+len(left)+2), 1, right)

	info := fmt.Sprintf("%d rings  Turn %d", g.layout.Layers(), g.turns)
	dst.DrawTextColor(board.X+(board.W-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws every cell, then the pieces in flight on top.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	g.board.Each(func(k int, p *Piece) {
		c, err := g.layout.FromK(k)
		if err != nil {
			return
		}
		x, y := screenPos(g.layout, c)
		px, py := board.X+int(math.Round(x)), board.Y+int(math.Round(y))

		if p == nil || g.anim.covers(c) {
			dst.SetColor(px+cellWidth/2, py, '·', core.ColorGray)
			return
		}
		drawLabel(dst, px, py, p.stage)
	})

	switch g.anim.kind {
	case animSlide:
		t := g.anim.progress()
		for _, s := range g.anim.resting {
			g.drawSprite(dst, board, s, t)
		}
		for _, s := range g.anim.sprites {
			g.drawSprite(dst, board, s, t)
		}
	case animPop:
		x, y := screenPos(g.layout, g.anim.pop.To)
		px, py := board.X+int(math.Round(x)), board.Y+int(math.Round(y))
		if g.anim.progress() < 0.5 {
			dst.SetColor(px+cellWidth/2, py, '•', core.StageColor(g.anim.pop.Stage))
		} else {
			drawLabel(dst, px, py, g.anim.pop.Stage)
		}
	}
}

func (g *Game) drawSprite(dst *core.Screen, board core.Rect, s sprite, t float64) {
	fx, fy := screenPos(g.layout, s.from)
	tx, ty := screenPos(g.layout, s.to)
	x, y := lerp(fx, fy, tx, ty, t)
	drawLabel(dst, board.X+int(math.Round(x)), board.Y+int(math.Round(y)), s.stage)
}

// drawLabel centres a piece label in the cell starting at column x.
func drawLabel(dst *core.Screen, x, y, stage int) {
	label := Label(stage)
	pad := (cellWidth - len(label)) / 2
	dst.DrawTextColor(x+pad, y, label, core.StageColor(stage))
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, cx, cy, core.ColorDefault, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawOverlay(dst, cx, cy, core.ColorRed, "NO MOVES LEFT",
			fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.victoryShown:
		g.drawOverlay(dst, cx, cy, core.ColorBrightYellow, "YOU WIN!",
			fmt.Sprintf("Reached %s", Label(g.settings.VictoryStage)), "Enter: keep playing")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, color)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "W/E A/D Z/X: Slide | P: Pause | R: Restart | Q: Quit"
}
