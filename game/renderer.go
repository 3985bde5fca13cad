package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var countColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorPurple,
	8: tcell.ColorGray,
}

const keyHelp = "enter activate  f flag  n new game  h hint  d show mines  +/- mines  [/] width  {/} height  q quit"

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	layout     *tview.Flex
}

func NewRenderer() *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView().SetDynamicColors(true),
	}
	r.boardTable.SetSelectable(true, true)
	r.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.status, 2, 0, false).
		AddItem(r.boardTable, 0, 1, true)
	return r
}

// Root is the primitive to hand to the application.
func (r *Renderer) Root() tview.Primitive {
	return r.layout
}

// DrawBoard redraws every cell and the status line.
func (r *Renderer) DrawBoard(game GameService) {
	r.boardTable.Clear()
	for _, v := range game.Cells() {
		r.RenderCell(v)
	}
	r.DrawStatus(game)
}

// RenderCells redraws only the given cells.
func (r *Renderer) RenderCells(game GameService, indices []int) {
	for _, i := range indices {
		r.RenderCell(game.CellView(i))
	}
	r.DrawStatus(game)
}

func (r *Renderer) RenderCell(v CellView) {
	cell := tview.NewTableCell(cellText(v)).SetAlign(tview.AlignCenter)
	switch v.State {
	case CellMine:
		cell.SetTextColor(tcell.ColorRed).SetAttributes(tcell.AttrBold)
	case CellNumber:
		cell.SetTextColor(countColors[v.Count])
	case CellFlagged:
		cell.SetTextColor(tcell.ColorYellow)
	case CellHidden:
		cell.SetTextColor(tcell.ColorSilver)
	}
	r.boardTable.SetCell(v.Row, v.Col, cell)
}

func cellText(v CellView) string {
	switch v.State {
	case CellMine:
		return "M"
	case CellFlagged:
		return "F"
	case CellNumber:
		return strconv.Itoa(v.Count)
	case CellBlank:
		return " "
	default:
		return "."
	}
}

func (r *Renderer) DrawStatus(game GameService) {
	cfg := game.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "Width %d  Height %d  Mines %d  Hint %s  Show mines %s",
		cfg.Width, cfg.Height, cfg.Mines, onOff(cfg.Hint), onOff(cfg.DebugReveal))
	switch {
	case game.IsGameOver():
		b.WriteString("  [red::b]Game Over![-::-]")
	case game.Cleared():
		b.WriteString("  [green::b]Cleared![-::-]")
	}
	b.WriteString("\n[gray]" + tview.Escape(keyHelp))

	r.status.SetText(b.String())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
