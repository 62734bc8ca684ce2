// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/guide"
)

// Guide is the episode data source the interface renders.
type Guide interface {
	Show() guide.Show
	FetchCatalog(ctx context.Context) ([]episode.Episode, error)
	FetchEpisodeDetails(ctx context.Context, title string, season, number int) episode.Details
}

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Guide Guide
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(ctx context.Context, options *Options) error {
	if options == nil || options.Guide == nil {
		return errors.New("tui: no episode guide configured")
	}

	bubble := newBubble(ctx, options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
