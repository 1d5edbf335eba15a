package night

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Cell size of the debug font.
const (
	glyphW = 6
	glyphH = 16
)

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// drawCentered prints lines centered on the screen.
func drawCentered(screen *ebiten.Image, lines []string) {
	b := screen.Bounds()
	y := b.Dy()/2 - len(lines)*glyphH/2
	for _, line := range lines {
		x := b.Dx()/2 - len(line)*glyphW/2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += glyphH
	}
}

// wrap breaks s into lines of at most width characters.
func wrap(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
