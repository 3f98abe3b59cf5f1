package pushbox

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-pushbox/internal/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
)

const (
	hudHeight    = 2 // Title and counters
	footerHeight = 1 // Status line
)

// palette resolves tile colors from the display config.
type palette struct {
	tiles  [core.PlayerOnGoal + 1]platformcore.Color
	border platformcore.Color
}

func (g *Game) palette() palette {
	c := g.cfg.Display.Colors
	var p palette
	p.tiles[core.Empty] = colorOr(c.Empty, platformcore.ColorDefault)
	p.tiles[core.Block] = colorOr(c.Block, platformcore.ColorYellow)
	p.tiles[core.BlockOnGoal] = colorOr(c.BlockOnGoal, platformcore.ColorBrightGreen)
	p.tiles[core.Goal] = colorOr(c.Goal, platformcore.ColorRed)
	p.tiles[core.Player] = colorOr(c.Player, platformcore.ColorBrightCyan)
	p.tiles[core.PlayerOnGoal] = colorOr(c.PlayerOnGoal, platformcore.ColorBrightCyan)
	p.border = colorOr(g.cfg.Display.BorderTint, platformcore.ColorGray)
	return p
}

func colorOr(name string, fallback platformcore.Color) platformcore.Color {
	if c, ok := platformcore.ParseColor(name); ok {
		return c
	}
	return fallback
}

// boardSize returns the on-screen size of the board including its border.
func (g *Game) boardSize() (w, h int) {
	w = g.puzzle.Cols() * g.cellWidth()
	h = g.puzzle.Rows()
	if g.cfg.Display.Border {
		w += 2
		h += 2
	}
	return w, h
}

func (g *Game) cellWidth() int {
	if g.cfg.Display.CellWidth == 2 {
		return 2
	}
	return 1
}

// checkScreenSize flags screens that cannot fit the board and its text.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	if g.cfg.Display.HUD {
		h += hudHeight + footerHeight
	}
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	totalH := boardH
	if g.cfg.Display.HUD {
		totalH += hudHeight + footerHeight
	}
	area := platformcore.CenteredRect(g.screenW, g.screenH, boardW, totalH)

	boardY := area.Y
	if g.cfg.Display.HUD {
		g.renderHUD(dst, area.Y)
		boardY += hudHeight
	}

	board := platformcore.NewRect(area.X, boardY, boardW, boardH)
	g.renderBoard(dst, board)

	if g.cfg.Display.HUD {
		g.renderFooter(dst, board.Bottom())
	}

	if g.puzzle.IsSolved() {
		g.renderSolved(dst, board)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and counters above the board.
func (g *Game) renderHUD(dst *platformcore.Screen, y int) {
	dst.DrawTextCentered(y, g.Title())
	stats := fmt.Sprintf("Moves: %d  Pushes: %d  Goals left: %d",
		g.puzzle.Moves(), g.puzzle.Pushes(), g.puzzle.RemainingGoals())
	dst.DrawTextCentered(y+1, stats)
}

// renderBoard draws the grid, framed when the border is enabled.
func (g *Game) renderBoard(dst *platformcore.Screen, r platformcore.Rect) {
	pal := g.palette()
	x0, y0 := r.X, r.Y
	if g.cfg.Display.Border {
		dst.DrawBox(r, pal.border)
		x0++
		y0++
	}

	cw := g.cellWidth()
	for row := 0; row < g.puzzle.Rows(); row++ {
		for col := 0; col < g.puzzle.Cols(); col++ {
			t := g.puzzle.At(core.Pos{Row: row, Col: col})
			dst.SetColored(x0+col*cw, y0+row, t.Glyph(), pal.tiles[t])
		}
	}
}

// renderFooter draws the status line under the board.
func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	status := g.message
	switch {
	case status != "":
	case g.hint != "":
		status = g.hint
	case g.hasOutcome:
		status = g.lastOutcome.String()
	}
	if status != "" {
		dst.DrawTextCentered(y, status)
	}
}

// renderSolved overlays the win banner on the middle of the board.
func (g *Game) renderSolved(dst *platformcore.Screen, board platformcore.Rect) {
	msg := "SOLVED!"
	if len(msg) > board.W {
		msg = "OK"
	}
	x := board.X + (board.W-len(msg))/2
	y := board.Y + board.H/2
	dst.DrawTextColored(x, y, msg, platformcore.ColorBrightGreen)
}
