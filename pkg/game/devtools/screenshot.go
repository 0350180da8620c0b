package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/renderer"
)

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 12px;
        }
        .wall { color: #666; }
        .floor { color: #888; }
        .floor-main { color: #00aa00; }
        .endpoint { color: #ffff00; font-weight: bold; }
        .status { color: #888; margin: 5px 0; }
    </style>
</head>
<body>
`

// cellClasses marks main-room tiles and passage endpoints so they stand out.
func cellClasses(m *generator.Map) map[world.Coord]string {
	classes := make(map[world.Coord]string)
	if mainRoom := m.MainRoom(); mainRoom != nil {
		for _, c := range mainRoom.Tiles {
			classes[c] = "floor-main"
		}
	}
	for _, p := range m.Passages {
		classes[p.From] = "endpoint"
		classes[p.To] = "endpoint"
	}
	return classes
}

// getCellHTMLInfo returns the icon and CSS class for a cell
func getCellHTMLInfo(grid *world.Grid, classes map[world.Coord]string, x, y int) (string, string) {
	if grid.Get(x, y) == world.Blocked {
		return "#", "wall"
	}
	if class, ok := classes[world.NewCoord(x, y)]; ok {
		return ".", class
	}
	return ".", "floor"
}

// WriteScreenshotHTML renders the unbordered map and its status lines as HTML
func WriteScreenshotHTML(w io.Writer, m *generator.Map) error {
	if m == nil || m.Grid == nil {
		return ErrNoMap
	}
	var sb strings.Builder
	title := html.EscapeString(renderer.Title())

	fmt.Fprintf(&sb, screenshotHead, title)
	fmt.Fprintf(&sb, `    <div class="header">%s</div>`+"\n", title)
	sb.WriteString(`    <div class="map-container">` + "\n")

	classes := cellClasses(m)
	for y := m.Grid.Height() - 1; y >= 0; y-- {
		sb.WriteString(`        <div class="map-row">`)
		for x := 0; x < m.Grid.Width(); x++ {
			icon, class := getCellHTMLInfo(m.Grid, classes, x, y)
			fmt.Fprintf(&sb, `<span class="%s">%s</span>`, class, icon)
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	for _, line := range renderer.StatusLines(m) {
		fmt.Fprintf(&sb, `    <div class="status">%s</div>`+"\n", html.EscapeString(line))
	}
	sb.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// SaveScreenshotHTML writes a timestamped HTML snapshot of m into dir and
// returns the file path.
func SaveScreenshotHTML(m *generator.Map, dir string, now time.Time) (string, error) {
	if m == nil || m.Grid == nil {
		return "", ErrNoMap
	}
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", now.Format("20060102-150405")))

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, m); err != nil {
		return "", err
	}
	return filename, f.Close()
}
