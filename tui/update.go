// Package tui provides the primary terminal user interface implementation.
package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/guide"
	"github.com/episodic-cli/episodic/internal/ui"
	"github.com/episodic-cli/episodic/key"
	"github.com/episodic-cli/episodic/log"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// notifications are handled regardless of state
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		return b, uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case spinner.TickMsg:
		// the tick chain stops once nothing is loading
		if b.state != loadingState && b.detail != detailLoading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case detailsLoadedMsg:
		b.onDetails(msg)
		return b, nil
	case linkOpenedMsg:
		if msg.err != nil {
			log.Error(msg.err)
			return b, ui.Notify("Could not open %s", msg.link)
		}
		return b, nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case errorState:
		return b.updateError(msg)
	case readyState:
		return b.updateReady(msg)
	case filterState:
		return b.updateFilter(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogFailedMsg:
		b.raiseError(msg.err)
	case catalogLoadedMsg:
		return b, b.onCatalog(msg.catalog)
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.retry):
			return b, b.refetch()
		}
	}

	return b, nil
}

func (b *statefulBubble) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.up):
			return b, b.moveSelection(-1)
		case bubblesKey.Matches(msg, b.keymap.down):
			return b, b.moveSelection(1)
		case bubblesKey.Matches(msg, b.keymap.top):
			if len(b.visible) > 0 {
				return b, b.selectEpisode(b.visible[0])
			}
		case bubblesKey.Matches(msg, b.keymap.bottom):
			if len(b.visible) > 0 {
				return b, b.selectEpisode(b.visible[len(b.visible)-1])
			}
		case bubblesKey.Matches(msg, b.keymap.nextSeason):
			return b, b.jumpSeason(1)
		case bubblesKey.Matches(msg, b.keymap.prevSeason):
			return b, b.jumpSeason(-1)
		case bubblesKey.Matches(msg, b.keymap.toggleWatched):
			return b, b.toggleWatched()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openSelected()
		case bubblesKey.Matches(msg, b.keymap.filter):
			b.setState(filterState)
			return b, b.filterC.Focus()
		case bubblesKey.Matches(msg, b.keymap.clearFilter):
			b.filterC.SetValue("")
			b.applyFilter()
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		}
	}

	return b, nil
}

func (b *statefulBubble) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.clearFilter):
			b.filterC.SetValue("")
			b.applyFilter()
			b.filterC.Blur()
			b.setState(readyState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptFilter):
			b.filterC.Blur()
			b.setState(readyState)
			return b, nil
		case msg.Type == tea.KeyUp:
			return b, b.moveSelection(-1)
		case msg.Type == tea.KeyDown:
			return b, b.moveSelection(1)
		}
	}

	var cmd tea.Cmd
	b.filterC, cmd = b.filterC.Update(msg)
	b.applyFilter()
	return b, cmd
}

// refetch re-enters the loading state through the same path as startup.
func (b *statefulBubble) refetch() tea.Cmd {
	b.lastError = nil
	b.setState(loadingState)
	return tea.Batch(b.spinnerC.Tick, b.fetchCatalog())
}

// onCatalog replaces the catalog wholesale and selects its first episode.
func (b *statefulBubble) onCatalog(catalog []episode.Episode) tea.Cmd {
	episode.Sort(catalog)

	b.catalog = catalog
	b.selected = -1
	b.detail = detailIdle
	b.details = episode.Details{}
	b.filterC.SetValue("")
	b.applyFilter()
	b.setState(readyState)

	if len(catalog) == 0 {
		return nil
	}
	return b.selectEpisode(0)
}

// selectEpisode moves the selection to the catalog index i and issues
// exactly one details request for it.
func (b *statefulBubble) selectEpisode(i int) tea.Cmd {
	if i < 0 || i >= len(b.catalog) || i == b.selected {
		return nil
	}

	b.selected = i
	b.requestSeq++
	b.detail = detailLoading
	b.details = episode.Details{}

	return tea.Batch(b.spinnerC.Tick, b.fetchDetails(b.catalog[i], b.requestSeq))
}

// onDetails applies a details result unless a newer selection superseded it.
func (b *statefulBubble) onDetails(msg detailsLoadedMsg) {
	e, ok := b.selection()
	if !ok || msg.seq != b.requestSeq || msg.id != e.ID() {
		log.WithFields(log.Fields{"episode": msg.id, "seq": msg.seq}).Debug("discarding stale details")
		return
	}

	b.details = msg.details
	if msg.details.Fallback {
		b.detail = detailError
	} else {
		b.detail = detailReady
	}
}

// visiblePosition returns the position of the selection among the visible rows, or -1.
func (b *statefulBubble) visiblePosition() int {
	return lo.IndexOf(b.visible, b.selected)
}

func (b *statefulBubble) moveSelection(delta int) tea.Cmd {
	if len(b.visible) == 0 {
		return nil
	}

	pos := b.visiblePosition()
	switch {
	case pos == -1:
		pos = 0
	case pos+delta < 0 || pos+delta >= len(b.visible):
		return nil
	default:
		pos += delta
	}

	return b.selectEpisode(b.visible[pos])
}

// jumpSeason selects the first visible episode of the next or previous season.
func (b *statefulBubble) jumpSeason(direction int) tea.Cmd {
	pos := b.visiblePosition()
	if pos == -1 {
		return b.moveSelection(1)
	}

	current := b.catalog[b.selected].Season
	switch {
	case direction > 0:
		next, ok := lo.Find(b.visible[pos:], func(i int) bool {
			return b.catalog[i].Season != current
		})
		if ok {
			return b.selectEpisode(next)
		}
	case direction < 0:
		_, p, ok := lo.FindLastIndexOf(b.visible[:pos], func(i int) bool {
			return b.catalog[i].Season != current
		})
		if !ok {
			return nil
		}
		// seasons are contiguous in a sorted catalog
		previous := b.catalog[b.visible[p]].Season
		first, _ := lo.Find(b.visible, func(i int) bool {
			return b.catalog[i].Season == previous
		})
		return b.selectEpisode(first)
	}

	return nil
}

func (b *statefulBubble) applyFilter() {
	query := b.filterC.Value()

	b.visible = lo.FilterMap(b.catalog, func(e episode.Episode, i int) (int, bool) {
		return i, query == "" || fuzzy.MatchNormalizedFold(query, e.Title)
	})
}

func (b *statefulBubble) toggleWatched() tea.Cmd {
	e, ok := b.selection()
	if !ok {
		return nil
	}

	if b.watched.Toggle(e, b.now()) {
		return ui.Notify("Marked %s as watched", e.ID())
	}
	return ui.Notify("Marked %s as unwatched", e.ID())
}

// link returns the video link for the selection, falling back to a search
// link until details arrive.
func (b *statefulBubble) link(e episode.Episode) string {
	if (b.detail == detailReady || b.detail == detailError) && b.details.YoutubeLink != "" {
		return b.details.YoutubeLink
	}
	return guide.SearchLink(b.show, e)
}

func (b *statefulBubble) openSelected() tea.Cmd {
	e, ok := b.selection()
	if !ok {
		return nil
	}

	cmds := []tea.Cmd{b.openLink(b.link(e))}
	if viper.GetBool(key.TUIMarkWatchedOnOpen) && b.watched.Mark(e, b.now()) {
		cmds = append(cmds, ui.Notify("Marked %s as watched", e.ID()))
	}

	return tea.Batch(cmds...)
}
