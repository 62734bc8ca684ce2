// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/log"
	"github.com/episodic-cli/episodic/util"
)

func (b *statefulBubble) fetchCatalog() tea.Cmd {
	ctx, g := b.ctx, b.guide

	return func() tea.Msg {
		log.Infof("fetching catalog for %s", g.Show())
		catalog, err := g.FetchCatalog(ctx)
		if err != nil {
			log.Error(err)
			return catalogFailedMsg{err: err}
		}

		log.Infof("fetched %s", util.Quantify(len(catalog), "episode", "episodes"))
		return catalogLoadedMsg{catalog: catalog}
	}
}

func (b *statefulBubble) fetchDetails(e episode.Episode, seq int) tea.Cmd {
	ctx, g := b.ctx, b.guide

	return func() tea.Msg {
		log.WithFields(log.Fields{"episode": e.ID(), "seq": seq}).Debug("fetching details")
		return detailsLoadedMsg{
			seq:     seq,
			id:      e.ID(),
			details: g.FetchEpisodeDetails(ctx, e.Title, e.Season, e.Episode),
		}
	}
}

func (b *statefulBubble) openLink(link string) tea.Cmd {
	opener := b.opener

	return func() tea.Msg {
		return linkOpenedMsg{link: link, err: opener(link)}
	}
}
