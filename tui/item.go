// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/icon"
	"github.com/episodic-cli/episodic/style"
	"github.com/samber/lo"
)

var (
	selectedRowStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(style.AccentColor).
				Foreground(style.AccentColor).
				Padding(0, 0, 0, 1)
	normalRowStyle   = lipgloss.NewStyle().Foreground(style.Text).Padding(0, 0, 0, 2)
	seasonHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(style.Subtext)
	watchedMarkStyle = lipgloss.NewStyle().Foreground(style.SuccessColor)
)

// listItem is one row of the episode list.
type listItem struct {
	episode  episode.Episode
	selected bool
	watched  bool
}

// Title renders the row text, marking watched episodes.
func (t *listItem) Title() string {
	title := t.episode.Label()
	if t.watched {
		title += " " + watchedMarkStyle.Render(icon.Get(icon.Check))
	}
	return title
}

// FilterValue returns the string used by the fuzzy title filter.
func (t *listItem) FilterValue() string {
	return t.episode.Title
}

// Render draws the row within width cells.
func (t *listItem) Render(width int) string {
	s := normalRowStyle
	if t.selected {
		s = selectedRowStyle
	}
	return s.MaxWidth(width).Render(t.Title())
}

// listLines renders the visible episodes grouped under season headers and
// reports which line holds the selection (-1 when it is filtered out).
func (b *statefulBubble) listLines(width int) (lines []string, selectedLine int) {
	selectedLine = -1

	rows := lo.Map(b.visible, func(i, _ int) episode.Episode { return b.catalog[i] })

	current, hasSelection := b.selection()

	for _, season := range episode.GroupBySeason(rows) {
		lines = append(lines, seasonHeadStyle.MaxWidth(width).Render(season.Header()))

		for _, e := range season.Episodes {
			item := &listItem{
				episode:  e,
				selected: hasSelection && e.ID() == current.ID(),
				watched:  b.watched.IsWatched(e),
			}
			if item.selected {
				selectedLine = len(lines)
			}
			lines = append(lines, item.Render(width))
		}
	}

	return lines, selectedLine
}
