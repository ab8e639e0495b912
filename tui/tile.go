package tui

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/engine"
	"github.com/facetwall/facetwall/icon"
	"github.com/facetwall/facetwall/overlay"
	"github.com/facetwall/facetwall/style"
	"github.com/facetwall/facetwall/surface"
	"github.com/muesli/reflow/wrap"
)

type engineStatus = engine.FacetStatus

// thumbnail caches the half-block rendering of the last picture of a facet.
type thumbnail struct {
	img           image.Image
	width, height int
	lines         []string
}

var stateIcons = map[engine.State]icon.Icon{
	engine.StateUnassigned: icon.Unassigned,
	engine.StateLoading:    icon.Loading,
	engine.StatePlaying:    icon.Playing,
	engine.StateHolding:    icon.Holding,
	engine.StateCompleted:  icon.Completed,
	engine.StateFailed:     icon.Failed,
}

func (b *statefulBubble) viewTile(i int, front bool, width, picRows int) string {
	snap := b.options.Surfaces[i].Snapshot()

	var st engineStatus
	if i < len(b.statuses) {
		st = b.statuses[i]
	}

	name := filepath.Base(st.Path)
	if st.Path == "" {
		name = "-"
	}
	title := fmt.Sprintf("%s %d %s", icon.Get(stateIcons[st.State]), i+1, name)
	title = style.Truncate(width)(style.Fg(style.StateColor(st.State.String()))(title))

	var body []string
	if snap.Content == surface.Error {
		body = errorLines(snap.Error, width, picRows)
	} else {
		body = b.picture(i, snap.Image, width, picRows)
	}

	caption := ""
	if snap.Overlay.Visible {
		caption = lipgloss.NewStyle().
			Foreground(color.FromARGB(uint32(snap.Overlay.Style.Color))).
			Bold(snap.Overlay.Style.Weight == overlay.Bold).
			Italic(snap.Overlay.Style.Slant != overlay.Upright).
			MaxWidth(width).
			Render(snap.Overlay.Text)
	}

	content := strings.Join(append(append([]string{title}, body...), caption), "\n")
	return style.Tile(front).Width(width).Render(content)
}

// picture renders img with upper half blocks, two pixels per cell.
func (b *statefulBubble) picture(i int, img image.Image, width, rows int) []string {
	if img == nil || img.Bounds().Empty() {
		return blank(rows)
	}

	cached := &b.thumbs[i]
	if cached.img == img && cached.width == width && cached.height == rows {
		return cached.lines
	}

	small := imaging.Fill(img, width, rows*2, imaging.Center, imaging.Box)
	lines := make([]string, rows)
	for y := range rows {
		var line strings.Builder
		for x := range width {
			top := small.NRGBAAt(x, 2*y)
			bottom := small.NRGBAAt(x, 2*y+1)
			line.WriteString(lipgloss.NewStyle().
				Foreground(color.FromRGB(top.R, top.G, top.B)).
				Background(color.FromRGB(bottom.R, bottom.G, bottom.B)).
				Render("▀"))
		}
		lines[y] = line.String()
	}

	*cached = thumbnail{img: img, width: width, height: rows, lines: lines}
	return lines
}

func errorLines(e surface.ErrorText, width, rows int) []string {
	lines := []string{style.Fg(color.Red)(icon.Get(icon.Fail) + " " + style.Bold(e.File))}
	lines = append(lines, strings.Split(wrap.String(e.Reason, width), "\n")...)
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return append(lines, blank(rows-len(lines))...)
}

func blank(rows int) []string {
	if rows <= 0 {
		return nil
	}
	return make([]string, rows)
}
