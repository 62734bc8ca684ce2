// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/guide"
	"github.com/episodic-cli/episodic/internal/ui"
	"github.com/episodic-cli/episodic/open"
	"github.com/episodic-cli/episodic/style"
	"github.com/episodic-cli/episodic/util"
	"github.com/episodic-cli/episodic/watched"
)

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	ctx   context.Context
	guide Guide
	show  guide.Show

	// components
	spinnerC spinner.Model
	filterC  textinput.Model
	helpC    help.Model
	notifier *ui.Model

	catalog []episode.Episode
	// visible holds catalog indices that pass the filter, in catalog order
	visible  []int
	selected int
	watched  *watched.Status

	detail     detailState
	details    episode.Details
	requestSeq int

	lastError error

	width, height int

	now    func() time.Time
	opener func(string) error
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.catalog = nil
	b.visible = nil
	b.selected = -1
	b.detail = detailIdle
	b.details = episode.Details{}
	b.setState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.filterC.Width = util.Max(b.listWidth()-len(b.filterC.Prompt)-4, 8)
}

// selection returns the selected episode, if any.
func (b *statefulBubble) selection() (episode.Episode, bool) {
	if b.selected < 0 || b.selected >= len(b.catalog) {
		return episode.Episode{}, false
	}
	return b.catalog[b.selected], true
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:   keymap,
		ctx:      ctx,
		guide:    options.Guide,
		show:     options.Guide.Show(),
		selected: -1,
		watched:  watched.New(),
		notifier: &ui.Model{},
		now:      time.Now,
		opener:   open.Start,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.filterC = textinput.New()
	bubble.filterC.Placeholder = "Filter by title"
	bubble.filterC.CharLimit = 60
	bubble.filterC.Prompt = "/ "

	bubble.width, bubble.height = 80, 24
	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)

	return &bubble
}
