package terminal

import (
	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/spaghettifunk/pong/engine/math"
)

// Surface is the terminal the quads are drawn into.
type Surface interface {
	Screen() tcell.Screen
	Title() string
}

const quadRune = '█'

// TerminalRenderer rasterizes quads into terminal cells. The top row is the
// status line, the remaining rows are the playfield.
type TerminalRenderer struct {
	surface    Surface
	background tcell.Style
}

func New(surface Surface) *TerminalRenderer {
	return &TerminalRenderer{
		surface:    surface,
		background: tcell.StyleDefault,
	}
}

func (r *TerminalRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return nil
}

func (r *TerminalRenderer) Shutdown() error {
	return nil
}

// Resized is a no-op: the cell grid is read from the screen every frame.
func (r *TerminalRenderer) Resized(width, height uint16) error {
	return nil
}

func (r *TerminalRenderer) BeginFrame(deltaTime float64, clearColour math.Vec4) error {
	r.background = tcell.StyleDefault.Background(toColour(clearColour))
	screen := r.surface.Screen()
	screen.SetStyle(r.background)
	screen.Clear()
	return nil
}

func (r *TerminalRenderer) DrawQuad(mvp math.Mat4, colour math.Vec4) error {
	screen := r.surface.Screen()
	width, height := screen.Size()
	rows := height - 1
	if width <= 0 || rows <= 0 {
		return nil
	}

	a := math.NewVec3(-0.5, -0.5, 0).Transform(mvp)
	b := math.NewVec3(0.5, 0.5, 0).Transform(mvp)
	x0, x1 := ndcToColumns(a.X, b.X, width)
	y0, y1 := ndcToRows(a.Y, b.Y, rows)

	style := tcell.StyleDefault.Foreground(toColour(colour)).Background(toColour(colour))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			screen.SetContent(x, y+1, quadRune, nil, style)
		}
	}
	return nil
}

func (r *TerminalRenderer) EndFrame(deltaTime float64) error {
	screen := r.surface.Screen()
	width, _ := screen.Size()
	status := tcell.StyleDefault.Reverse(true)
	title := []rune(r.surface.Title())
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(title) {
			ch = title[x]
		}
		screen.SetContent(x, 0, ch, nil, status)
	}
	screen.Show()
	return nil
}

// ndcToColumns maps an NDC x span to an inclusive column span. Every quad
// covers at least one cell.
func ndcToColumns(a, b float32, width int) (int, int) {
	lo, hi := minmax(a, b)
	c0 := int(math32.Floor((lo + 1) / 2 * float32(width)))
	c1 := int(math32.Ceil((hi+1)/2*float32(width))) - 1
	return clampSpan(c0, c1, width)
}

// ndcToRows maps an NDC y span to an inclusive row span, y up.
func ndcToRows(a, b float32, rows int) (int, int) {
	lo, hi := minmax(a, b)
	r0 := int(math32.Floor((1 - hi) / 2 * float32(rows)))
	r1 := int(math32.Ceil((1-lo)/2*float32(rows))) - 1
	return clampSpan(r0, r1, rows)
}

func clampSpan(lo, hi, n int) (int, int) {
	lo = math.Clamp(lo, 0, n-1)
	hi = math.Clamp(hi, 0, n-1)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func minmax(a, b float32) (float32, float32) {
	if a > b {
		return b, a
	}
	return a, b
}

func toColour(c math.Vec4) tcell.Color {
	return tcell.NewRGBColor(
		int32(math.Clamp(c.X, 0, 1)*255),
		int32(math.Clamp(c.Y, 0, 1)*255),
		int32(math.Clamp(c.Z, 0, 1)*255),
	)
}
