package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/icon"
	"github.com/facetwall/facetwall/style"
	"github.com/facetwall/facetwall/util"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case wallState:
		output = b.viewWall()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title(constant.Facetwall),
			"",
			fmt.Sprintf("%s Building %s", b.spinnerC.View(), b.options.Shape),
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(color.Red).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " The wall could not be built:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) viewWall() string {
	n := len(b.options.Surfaces)
	cols, rows := grid(n)

	helpView := b.helpC.View(b.keymap)
	header := b.viewHeader()

	// tile borders take two columns and two rows, tile padding two more columns,
	// and every tile has a title and a caption line
	tileWidth := util.Max(4, b.width/util.Max(1, cols)-4)
	available := b.height - lipgloss.Height(header) - lipgloss.Height(helpView) - 1
	picRows := util.Max(1, available/util.Max(1, rows)-4)

	front := b.front()
	tiles := make([]string, n)
	for i := range n {
		tiles[i] = b.viewTile(i, i == front, tileWidth, picRows)
	}

	gridRows := make([]string, 0, rows)
	for _, chunk := range lo.Chunk(tiles, cols) {
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, chunk...))
	}

	return paddingStyle.Render(strings.Join([]string{
		header,
		lipgloss.JoinVertical(lipgloss.Left, gridRows...),
		helpView,
	}, "\n"))
}

func (b *statefulBubble) viewHeader() string {
	title := style.Title(constant.Facetwall) + " " + style.Faint(b.options.Shape.String())

	if rot := b.options.Rotation; rot != nil {
		st := rot.State()
		rotIcon := icon.Get(icon.Rotating)
		if st.Paused {
			rotIcon = icon.Get(icon.Paused)
		}
		title += fmt.Sprintf("  %s %s %.0f°/s %s", rotIcon, strings.ToUpper(st.Axis.String()), st.Speed, style.Faint(fmt.Sprintf("%.0f°", st.Angle())))
	}

	failed := lo.CountBy(b.statuses, func(s engineStatus) bool { return s.Failed })
	if failed > 0 {
		title += "  " + style.Fg(color.Red)(util.Quantify(failed, "failed facet", "failed facets"))
	}
	return style.Truncate(b.width)(title)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

// grid picks a near-square layout for n tiles.
func grid(n int) (cols, rows int) {
	if n <= 0 {
		return 1, 1
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}
