// Package devtools provides developer tools for inspecting generated maps.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

// ErrNoMap is returned when there is nothing to dump.
var ErrNoMap = errors.New("no map")

// writeMapGrid writes the grid, highest y first, one symbol per cell.
func writeMapGrid(w io.Writer, grid *world.Grid) {
	for _, line := range grid.Lines() {
		fmt.Fprintln(w, line)
	}
}

// DumpMap writes a full debug dump: metadata, legend, the unbordered grid,
// the rooms with their links and the carved passages.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMap(w io.Writer, m *generator.Map) error {
	if m == nil || m.Grid == nil {
		return ErrNoMap
	}
	cfg := m.Config

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (cave layout, rooms, passages) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "run_id: %s\n", m.RunID)
	fmt.Fprintf(w, "seed: %q\n", m.Seed)
	fmt.Fprintf(w, "seed_value: %d\n", m.SeedValue)
	fmt.Fprintf(w, "width: %d\n", m.Grid.Width())
	fmt.Fprintf(w, "height: %d\n", m.Grid.Height())
	fmt.Fprintf(w, "fill_mode: %s\n", cfg.FillMode)
	fmt.Fprintf(w, "random_fill_percent: %d\n", cfg.RandomFillPercent)
	fmt.Fprintf(w, "smooth_level: %d\n", cfg.SmoothLevel)
	fmt.Fprintf(w, "wall_threshold: %d\n", cfg.WallThresholdSize)
	fmt.Fprintf(w, "room_threshold: %d\n", cfg.RoomThresholdSize)
	fmt.Fprintf(w, "passage_width: %d\n", cfg.PassageWidth)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, y grows upwards)\n")
	fmt.Fprintf(w, "passable_cells: %d\n", m.Grid.Count(world.Passable))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%c = passable  %c = blocked\n", world.Passable.Symbol(), world.Blocked.Symbol())
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (top row is highest y) ---")
	writeMapGrid(w, m.Grid)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintf(w, "--- Rooms (%d) ---\n", len(m.Rooms))
	for _, r := range m.Rooms {
		fmt.Fprintf(w, "  id: %d tiles: %d edge_tiles: %d main: %v accessible: %v connected: %v\n",
			r.ID, r.Size(), len(r.EdgeTiles), r.IsMainRoom, r.IsAccessibleFromMainRoom, r.ConnectedRooms())
	}
	fmt.Fprintln(w, "")

	// --- Passages ---
	fmt.Fprintf(w, "--- Passages (%d) ---\n", len(m.Passages))
	for i, p := range m.Passages {
		fmt.Fprintf(w, "  #%d room_a: %d room_b: %d from: %s to: %s\n", i, p.RoomA, p.RoomB, p.From, p.To)
	}
	return nil
}

// DumpMapToFile writes DumpMap output to path, or map.txt in the working
// directory when path is empty, and returns the absolute path written.
func DumpMapToFile(m *generator.Map, path string) (string, error) {
	if m == nil || m.Grid == nil {
		return "", ErrNoMap
	}
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, m); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
