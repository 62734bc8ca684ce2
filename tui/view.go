// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/icon"
	"github.com/episodic-cli/episodic/key"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	paneStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.BorderColor).
			Padding(0, 1)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case errorState:
		output = b.viewError()
	case readyState, filterState:
		output = b.viewReady()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " Fetching episodes of " + b.show.String(),
		},
	)
}

func (b *statefulBubble) viewError() string {
	lines := []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " " + constant.CatalogFetchFailed,
	}

	if b.lastError != nil {
		lines = append(lines, "", style.Faint(wrapText(b.lastError.Error(), b.width)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewReady() string {
	header := style.Title(b.show.Name+" Episode Guide") + " " + style.Faint(fmt.Sprintf(
		"%s • %s • %d watched",
		b.show.Years,
		util.Quantify(len(b.catalog), "episode", "episodes"),
		b.watched.Len(),
	))

	// header, blank, help and the pane borders
	paneHeight := util.Max(b.height-6, 3)

	left := paneStyle.Width(b.listWidth()).Height(paneHeight).Render(b.viewList(paneHeight))
	right := paneStyle.Width(b.detailWidth()).Height(paneHeight).Render(b.viewDetail())

	return paddingStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		style.Truncate(b.width)(header),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		b.helpC.View(b.keymap),
	))
}

// listWidth is the inner width of the episode list pane.
func (b *statefulBubble) listWidth() int {
	return util.Clamp(b.width*2/5, 24, 48)
}

// detailWidth is the inner width of the detail pane.
func (b *statefulBubble) detailWidth() int {
	x, _ := paneStyle.GetFrameSize()
	return util.Max(b.width-b.listWidth()-2*x-1, 20)
}

func (b *statefulBubble) viewList(height int) string {
	width := b.listWidth()

	var top []string
	if b.state == filterState || b.filterC.Value() != "" {
		top = append(top, b.filterC.View(), "")
	}

	lines, selectedLine := b.listLines(width)
	if len(lines) == 0 {
		if len(b.catalog) == 0 {
			lines = []string{style.Faint("No episodes found.")}
		} else {
			lines = []string{style.Faint("No episode matches the filter.")}
		}
	}

	room := util.Max(height-len(top), 1)
	start := 0
	if len(lines) > room && selectedLine >= 0 {
		start = util.Clamp(selectedLine-room/2, 0, len(lines)-room)
	}
	end := util.Min(start+room, len(lines))

	return strings.Join(append(top, lines[start:end]...), "\n")
}

func (b *statefulBubble) viewDetail() string {
	width := b.detailWidth()

	e, ok := b.selection()
	if !ok {
		if len(b.catalog) == 0 {
			return style.Faint("There is nothing to show yet.")
		}
		return style.Faint("Select an episode to see its details.")
	}

	toggle := "Mark as Watched"
	if b.watched.IsWatched(e) {
		toggle = "Mark as Unwatched"
	}

	lines := []string{
		style.Faint(fmt.Sprintf("Season %d • Episode %d", e.Season, e.Episode)),
		lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(wrapText(e.Title, width)),
		"",
		style.Tag(style.Base, style.Surface)("w") + " " + toggle,
	}

	if on, ok := b.watched.WatchedOn(e).Get(); ok {
		lines = append(lines, watchedMarkStyle.Render(
			icon.Get(icon.Check)+" Watched on: "+on.Format(viper.GetString(key.TUIDateFormat)),
		))
	}

	lines = append(lines, "")

	switch b.detail {
	case detailLoading:
		lines = append(lines, b.spinnerC.View()+" Generating summary...")
	case detailError:
		lines = append(lines,
			style.ErrorTitle("Summary unavailable"),
			"",
			wrapText(b.details.Summary, width),
			"",
			b.viewLink(width),
		)
	case detailReady:
		lines = append(lines,
			b.viewLink(width),
			"",
			wrapText(b.details.Summary, width),
		)
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewLink(width int) string {
	if b.details.YoutubeLink == "" {
		return ""
	}

	return style.Tag(style.Base, style.AccentColor)("o") + " " +
		style.Fg(style.Blue)(wrap.String(icon.Get(icon.Link)+" "+b.details.YoutubeLink, util.Max(width-4, 1)))
}

// wrapText wraps on word boundaries and hard-wraps words longer than width.
func wrapText(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if h < b.height {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
