// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"kektris/pkg/engine/world"
	"kektris/pkg/game/state"
)

const gridDumpFilename = "grid.txt"

// Cell symbols used by the dumps
const (
	SymbolClear   = '.'
	SymbolBlocked = 'o'
	SymbolFrozen  = '#'
)

var (
	colorClear   = color.Style{color.FgGray}
	colorBlocked = color.Style{color.FgGreen, color.OpBold}
	colorFrozen  = color.Style{color.FgMagenta}
	colorDivide  = color.Style{color.FgYellow}
)

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(cell *world.Cell) rune {
	switch {
	case cell == nil:
		return ' '
	case cell.IsFrozen():
		return SymbolFrozen
	case cell.IsBlocked():
		return SymbolBlocked
	default:
		return SymbolClear
	}
}

// RenderGrid returns the grid as text, one line per row.
// With colored set, cell symbols carry ANSI styles and the center lines are marked.
func RenderGrid(grid *world.Grid, colored bool) string {
	var b strings.Builder
	size := grid.Size()
	half := grid.Half()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sym := string(cellSymbol(grid.Cell(x, y)))
			if !colored {
				b.WriteString(sym)
				continue
			}
			cell := grid.Cell(x, y)
			switch {
			case cell.IsFrozen():
				b.WriteString(colorFrozen.Sprint(sym))
			case cell.IsBlocked():
				b.WriteString(colorBlocked.Sprint(sym))
			case x == half || y == half:
				b.WriteString(colorDivide.Sprint(sym))
			default:
				b.WriteString(colorClear.Sprint(sym))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintGrid writes the colored grid and the session totals to w
func PrintGrid(w io.Writer, g *state.Game) {
	fmt.Fprint(w, RenderGrid(g.Grid, true))
	fmt.Fprintln(w, colorClear.Sprintf("score %d  speed %d  figures %d  cleared %d",
		g.Score, g.Speed, g.Settled, g.Cleared))
}

// WriteGridDump writes the metadata, legend and map sections of a grid dump
func WriteGridDump(w io.Writer, g *state.Game) {
	fmt.Fprintln(w, "=== GRID DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_size: %d\n", g.Grid.Size())
	fmt.Fprintf(w, "clear_length: %d\n", g.Config.ClearLength)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "score: %d\n", g.Score)
	fmt.Fprintf(w, "speed: %d\n", g.Speed)
	fmt.Fprintf(w, "figures_settled: %d\n", g.Settled)
	fmt.Fprintf(w, "cells_cleared: %d\n", g.Cleared)
	fmt.Fprintf(w, "paused: %v\n", g.Paused)
	fmt.Fprintf(w, "over: %v\n", g.Over)
	fmt.Fprintf(w, "blocked_cells: %d\n", g.Grid.CountState(world.Blocked))
	fmt.Fprintf(w, "frozen_cells: %d\n", g.Grid.CountState(world.Frozen))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Figure ---")
	if f := g.Figure; f != nil {
		win := f.Window()
		fmt.Fprintf(w, "orientation: %v\n", f.Orientation())
		fmt.Fprintf(w, "top_left: %v\n", win.TopLeft())
		fmt.Fprintf(w, "travel: %v\n", f.Travel())
		fmt.Fprintf(w, "on_grid: %v\n", f.OnGrid())
		fmt.Fprintf(w, "ready_to_settle: %v\n", f.IsReadyToSettle())
	} else {
		fmt.Fprintln(w, "  (none)")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "%c = clear  %c = moving figure  %c = frozen\n", SymbolClear, SymbolBlocked, SymbolFrozen)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprint(w, RenderGrid(g.Grid, false))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "=== END GRID DUMP ===")
}

// DumpGridToFile writes a full grid dump to grid.txt in the working directory
// and returns its absolute path.
func DumpGridToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(gridDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteGridDump(f, g)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
