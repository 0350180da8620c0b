// Package tui renders cave maps as coloured text in a terminal.
package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gookit/color"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/engine/terminal"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/renderer"
)

// Icon constants
const (
	IconWall  = "▒"
	IconFloor = " "
)

// Lines printed around the map: title, blank, status block, help, prompt.
const chromeRows = 9

// TextMesh is the terminal mesh: one styled string per grid row, highest y
// first.
type TextMesh struct {
	Lines   []string
	Cols    int
	Rows    int
	Clipped bool
}

// TUIRenderer implements renderer.MeshGenerator for terminals
type TUIRenderer struct {
	out io.Writer

	colorWall   color.Style
	colorFloor  color.Style
	colorTitle  color.Style
	colorStatus color.Style
	colorError  color.Style

	// Zero means unlimited.
	maxCols int
	maxRows int
}

var _ renderer.MeshGenerator = (*TUIRenderer)(nil)

// New creates a TUI renderer writing to out, or stdout when out is nil
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	t := &TUIRenderer{out: out}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.BgBlack}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorStatus = color.Style{color.FgGray, color.OpBold}
	t.colorError = color.Style{color.FgRed, color.OpBold}
}

// SetViewport limits meshes to cols x rows characters. Zero disables a limit.
func (t *TUIRenderer) SetViewport(cols, rows int) {
	t.maxCols = cols
	t.maxRows = rows
}

// FitTerminal sizes the viewport to the controlling terminal, leaving room for
// the title and status lines.
func (t *TUIRenderer) FitTerminal() {
	cols, rows := terminal.GetSize()
	t.SetViewport(cols, max(rows-chromeRows, 1))
}

// StyleText applies a style to text and returns the styled string
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleStatus:
		return t.colorStatus.Sprint(text)
	case renderer.StyleError:
		return t.colorError.Sprint(text)
	default:
		return text
	}
}

// GenerateMesh renders every cell as scale characters (rounded, at least one).
// Rows and columns beyond the viewport are dropped.
func (t *TUIRenderer) GenerateMesh(grid *world.Grid, scale float64) (renderer.Mesh, error) {
	if grid == nil {
		return nil, renderer.ErrNilGrid
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %v", renderer.ErrInvalidScale, scale)
	}
	cellWidth := max(int(math.Round(scale)), 1)

	cols := grid.Width()
	rows := grid.Height()
	clipped := false
	if t.maxCols > 0 && cols*cellWidth > t.maxCols {
		cols = max(t.maxCols/cellWidth, 1)
		clipped = true
	}
	if t.maxRows > 0 && rows > t.maxRows {
		rows = t.maxRows
		clipped = true
	}

	mesh := &TextMesh{Cols: cols * cellWidth, Rows: rows, Clipped: clipped}
	for y := grid.Height() - 1; y >= grid.Height()-rows; y-- {
		mesh.Lines = append(mesh.Lines, t.renderRow(grid, y, cols, cellWidth))
	}
	return mesh, nil
}

// renderRow emits runs of equal cells under a single style
func (t *TUIRenderer) renderRow(grid *world.Grid, y, cols, cellWidth int) string {
	var sb strings.Builder
	runStart := 0
	for x := 1; x <= cols; x++ {
		if x < cols && grid.Get(x, y) == grid.Get(runStart, y) {
			continue
		}
		sb.WriteString(t.renderRun(grid.Get(runStart, y), (x-runStart)*cellWidth))
		runStart = x
	}
	return sb.String()
}

func (t *TUIRenderer) renderRun(c world.Cell, n int) string {
	if c == world.Blocked {
		return t.StyleText(strings.Repeat(IconWall, n), renderer.StyleWall)
	}
	return t.StyleText(strings.Repeat(IconFloor, n), renderer.StyleFloor)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\x1b[H\x1b[2J")
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.StyleText(msg, renderer.StyleError))
}

// Present draws the bordered map with its title and status lines
func (t *TUIRenderer) Present(m *generator.Map, scale float64) error {
	mesh, err := t.GenerateMesh(m.Bordered(), scale)
	if err != nil {
		return err
	}
	text := mesh.(*TextMesh)

	fmt.Fprintln(t.out, t.StyleText(renderer.Title(), renderer.StyleTitle))
	fmt.Fprintln(t.out)
	for _, line := range text.Lines {
		fmt.Fprintln(t.out, line)
	}
	fmt.Fprintln(t.out)
	for _, line := range renderer.StatusLines(m) {
		fmt.Fprintln(t.out, t.StyleText(line, renderer.StyleStatus))
	}
	return nil
}

// Run generates and presents a map. When actions is non-nil it keeps
// regenerating on request until the reader asks to quit or runs dry.
// Without a reader a failed generation is returned as an error.
func (t *TUIRenderer) Run(gen generator.MapGenerator, scale float64, actions *input.LineReader) error {
	for {
		if actions != nil {
			t.Clear()
		}
		m, err := gen.Generate()
		if err != nil {
			t.ShowMessage(renderer.ErrorMessage(err))
			if actions == nil {
				return err
			}
		} else if err := t.Present(m, scale); err != nil {
			return err
		}

		if actions == nil {
			return nil
		}
		fmt.Fprintln(t.out, renderer.HelpLine())
		for {
			act, err := actions.ReadAction()
			if err != nil || act == input.ActionQuit {
				return nil
			}
			if act == input.ActionRegenerate {
				break
			}
		}
	}
}
