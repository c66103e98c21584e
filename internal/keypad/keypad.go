// Package keypad describes the calculator's button grid and maps screen
// coordinates to buttons.
package keypad

import "image"

type Button struct {
	Label string
	Key   rune // key understood by core.ParseKey
}

// Rows is the button grid, top to bottom.
var Rows = [][]Button{
	{{"7", '7'}, {"8", '8'}, {"9", '9'}, {"÷", '/'}},
	{{"4", '4'}, {"5", '5'}, {"6", '6'}, {"×", '*'}},
	{{"1", '1'}, {"2", '2'}, {"3", '3'}, {"−", '-'}},
	{{"C", 'c'}, {"0", '0'}, {"=", '='}, {"+", '+'}},
}

// Layout places a display row above the grid. All cells are the same size.
type Layout struct {
	CellWidth     int
	CellHeight    int
	DisplayHeight int
	Gap           int
}

var DefaultLayout = Layout{
	CellWidth:     56,
	CellHeight:    48,
	DisplayHeight: 64,
	Gap:           4,
}

func (l Layout) Size() (width, height int) {
	cols := len(Rows[0])
	width = l.Gap + cols*(l.CellWidth+l.Gap)
	height = l.DisplayHeight + l.Gap + len(Rows)*(l.CellHeight+l.Gap)
	return width, height
}

// Display is the rectangle of the numeric readout.
func (l Layout) Display() image.Rectangle {
	width, _ := l.Size()
	return image.Rect(l.Gap, l.Gap, width-l.Gap, l.DisplayHeight)
}

// Rect is the rectangle of the button at row, col.
func (l Layout) Rect(row, col int) image.Rectangle {
	x := l.Gap + col*(l.CellWidth+l.Gap)
	y := l.DisplayHeight + l.Gap + row*(l.CellHeight+l.Gap)
	return image.Rect(x, y, x+l.CellWidth, y+l.CellHeight)
}

// ButtonAt returns the button under x, y. Gaps and the display row hit nothing.
func (l Layout) ButtonAt(x, y int) (Button, bool) {
	p := image.Pt(x, y)
	for r, row := range Rows {
		for c, b := range row {
			if p.In(l.Rect(r, c)) {
				return b, true
			}
		}
	}
	return Button{}, false
}
