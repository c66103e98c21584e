// Package window runs the calculator in a desktop window.
package window

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/keypad"
)

// debug font glyph size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	background = color.RGBA{0x1c, 0x1c, 0x1c, 0xff}
	panel      = color.RGBA{0x26, 0x26, 0x26, 0xff}
	button     = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	pressed    = color.RGBA{0x5f, 0x5f, 0xd7, 0xff}
)

// Run opens the window and blocks until it is closed.
func Run(service *core.CalcService, scale int) error {
	g := newGame(service, keypad.DefaultLayout)
	w, h := g.layout.Size()
	ebiten.SetWindowTitle("RoriCalc")
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	service *core.CalcService
	layout  keypad.Layout
	snap    core.Snapshot
	lastKey rune
}

func newGame(service *core.CalcService, layout keypad.Layout) *game {
	return &game{
		service: service,
		layout:  layout,
		snap:    service.Snapshot(),
	}
}

func (g *game) press(key rune) {
	snap, err := g.service.Press(key)
	if err != nil {
		return
	}
	g.snap = snap
	g.lastKey = key
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b, ok := g.layout.ButtonAt(ebiten.CursorPosition()); ok {
			g.press(b.Key)
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.press(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.press('=')
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.press('c')
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	d := g.layout.Display()
	fillRect(screen, d.Min.X, d.Min.Y, d.Dx(), d.Dy(), panel)
	text := strconv.FormatInt(int64(g.snap.Display), 10)
	ebitenutil.DebugPrintAt(screen, text, d.Max.X-8-len(text)*glyphWidth, d.Min.Y+(d.Dy()-glyphHeight)/2)
	if g.snap.HasPending {
		ebitenutil.DebugPrintAt(screen, asciiLabel(g.snap.Pending), d.Min.X+6, d.Min.Y+4)
	}

	for r, row := range keypad.Rows {
		for c, b := range row {
			rect := g.layout.Rect(r, c)
			fill := button
			if b.Key == g.lastKey {
				fill = pressed
			}
			fillRect(screen, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), fill)
			label := asciiLabel(b.Label)
			ebitenutil.DebugPrintAt(screen, label,
				rect.Min.X+(rect.Dx()-len(label)*glyphWidth)/2, rect.Min.Y+(rect.Dy()-glyphHeight)/2)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Size()
}

func fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// The debug font is ASCII only.
var asciiSymbols = strings.NewReplacer("×", "*", "÷", "/", "−", "-")

func asciiLabel(label string) string {
	return asciiSymbols.Replace(label)
}
