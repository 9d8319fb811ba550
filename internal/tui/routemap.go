package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

type mapCellType int

const (
	mapCellEmpty mapCellType = iota
	mapCellUpcoming
	mapCellTraveled
	mapCellPast
	mapCellFuture
	mapCellCurrent
	mapCellIssue
)

type mapCell struct {
	ch    rune
	ctype mapCellType
}

type gridPoint struct {
	col int
	row int
}

// mapProjection maps coordinates onto a width x height character grid.
type mapProjection struct {
	minLat, maxLat float64
	minLng         float64
	scale          float64
	xOffset        float64
	yOffset        float64
	width, height  int
}

func newMapProjection(points []models.Point, width, height int) mapProjection {
	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLng = math.Min(minLng, p.Lng)
		maxLng = math.Max(maxLng, p.Lng)
	}

	// Handle degenerate cases
	latSpan := maxLat - minLat
	lngSpan := maxLng - minLng
	if latSpan < 0.01 {
		mid := (minLat + maxLat) / 2
		minLat = mid - 0.005
		maxLat = mid + 0.005
		latSpan = 0.01
	}
	if lngSpan < 0.01 {
		mid := (minLng + maxLng) / 2
		minLng = mid - 0.005
		maxLng = mid + 0.005
		lngSpan = 0.01
	}

	// Add 10% padding
	latPad := latSpan * 0.1
	lngPad := lngSpan * 0.1
	minLat -= latPad
	maxLat += latPad
	minLng -= lngPad
	maxLng += lngPad
	latSpan = maxLat - minLat
	lngSpan = maxLng - minLng

	// Scale factors with terminal aspect ratio correction (chars ~2x tall as wide)
	xScale := float64(width-1) / lngSpan
	yScale := float64(height-1) / latSpan * 2.0
	scale := math.Min(xScale, yScale)

	// Center the map within the available area
	usedWidth := scale * lngSpan
	usedHeight := scale * latSpan / 2.0

	return mapProjection{
		minLat:  minLat,
		maxLat:  maxLat,
		minLng:  minLng,
		scale:   scale,
		xOffset: (float64(width-1) - usedWidth) / 2,
		yOffset: (float64(height-1) - usedHeight) / 2,
		width:   width,
		height:  height,
	}
}

func (p mapProjection) project(pt models.Point) gridPoint {
	col := int(math.Round((pt.Lng-p.minLng)*p.scale + p.xOffset))
	row := int(math.Round((p.maxLat-pt.Lat)*p.scale/2.0 + p.yOffset))
	return gridPoint{
		col: min(max(col, 0), p.width-1),
		row: min(max(row, 0), p.height-1),
	}
}

// renderRouteMap renders a dots-only geographic map of the route with the
// travelled part dimmed and the current position highlighted.
func renderRouteMap(j *models.Journey, state models.DisplayState, width, height int) string {
	if j == nil || len(j.Waypoints) == 0 || width < 3 || height < 3 {
		return ""
	}

	current := state.Point()
	proj := newMapProjection(append(j.Points(), current), width, height)

	grid := make([][]mapCell, height)
	for r := range grid {
		grid[r] = make([]mapCell, width)
		for c := range grid[r] {
			grid[r][c] = mapCell{ch: ' ', ctype: mapCellEmpty}
		}
	}

	// Route lines, travelled first so it wins where both overlap
	traveled, upcoming := j.SplitPath(state.Index, current)
	drawPath(grid, proj, traveled, mapCellTraveled)
	drawPath(grid, proj, upcoming, mapCellUpcoming)

	// Waypoint markers
	for i, w := range j.Waypoints {
		p := proj.project(w.Point())
		if i <= state.Index {
			grid[p.row][p.col] = mapCell{ch: '○', ctype: mapCellPast}
		} else {
			grid[p.row][p.col] = mapCell{ch: '●', ctype: mapCellFuture}
		}
	}

	// Current position on top
	p := proj.project(current)
	if state.Issue {
		grid[p.row][p.col] = mapCell{ch: '◉', ctype: mapCellIssue}
	} else {
		grid[p.row][p.col] = mapCell{ch: '◉', ctype: mapCellCurrent}
	}

	// Render grid to styled string
	styles := map[mapCellType]lipgloss.Style{
		mapCellUpcoming: lipgloss.NewStyle().Foreground(colorCyan),
		mapCellTraveled: lipgloss.NewStyle().Foreground(colorGray),
		mapCellPast:     lipgloss.NewStyle().Foreground(colorGray),
		mapCellFuture:   lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
		mapCellCurrent:  lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
		mapCellIssue:    lipgloss.NewStyle().Foreground(colorRed).Bold(true).Blink(true),
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cell := grid[r][c]
			if style, ok := styles[cell.ctype]; ok {
				b.WriteString(style.Render(string(cell.ch)))
			} else {
				b.WriteRune(cell.ch)
			}
		}
		if r < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func drawPath(grid [][]mapCell, proj mapProjection, path []models.Point, ctype mapCellType) {
	for i := 0; i < len(path)-1; i++ {
		a, b := proj.project(path[i]), proj.project(path[i+1])
		bresenhamLine(grid, a.col, a.row, b.col, b.row, ctype)
	}
}

// bresenhamLine draws a line between two points on the grid using Bresenham's algorithm.
func bresenhamLine(grid [][]mapCell, x0, y0, x1, y1 int, ctype mapCellType) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) {
			if grid[y0][x0].ctype == mapCellEmpty {
				grid[y0][x0] = mapCell{ch: '·', ctype: ctype}
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
