package tui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/guide"
	"github.com/episodic-cli/episodic/internal/ui"
	"github.com/episodic-cli/episodic/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type fakeGuide struct {
	mu           sync.Mutex
	catalog      []episode.Episode
	catalogErr   error
	catalogCalls int
	details      func(e episode.Episode) episode.Details
	detailCalls  []string
}

func (g *fakeGuide) Show() guide.Show {
	return guide.Show{Name: "Hart to Hart", Years: "1979-1984"}
}

func (g *fakeGuide) FetchCatalog(context.Context) ([]episode.Episode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.catalogCalls++
	if g.catalogErr != nil {
		return nil, g.catalogErr
	}
	return append([]episode.Episode(nil), g.catalog...), nil
}

func (g *fakeGuide) FetchEpisodeDetails(_ context.Context, title string, season, number int) episode.Details {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := episode.Episode{Season: season, Episode: number, Title: title}
	g.detailCalls = append(g.detailCalls, e.ID())
	if g.details != nil {
		return g.details(e)
	}
	return episode.Details{Summary: "Summary of " + title, YoutubeLink: "https://youtu.be/" + e.ID()}
}

var twoEpisodes = []episode.Episode{
	{Season: 1, Episode: 1, Title: "Hart and Soul"},
	{Season: 1, Episode: 2, Title: "Harts in High Places"},
}

// run executes cmd, expanding batches, and returns the produced messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			msgs = append(msgs, run(c)...)
		}
	case nil:
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

func only[T tea.Msg](msgs []tea.Msg) []T {
	var out []T
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func plain(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// send feeds msg to the bubble and returns the messages its command yields.
func send(b *statefulBubble, msg tea.Msg) []tea.Msg {
	_, cmd := b.Update(msg)
	return run(cmd)
}

// feed delivers messages back to the bubble until no command yields more.
// Timer driven messages are dropped so the loop terminates.
func feed(b *statefulBubble, msgs []tea.Msg) {
	for _, m := range msgs {
		switch m.(type) {
		case spinner.TickMsg, ui.NotificationMsg:
			continue
		}
		_, cmd := b.Update(m)
		feed(b, run(cmd))
	}
}

// press updates the bubble without running the returned command.
func press(b *statefulBubble, msgs ...tea.Msg) {
	for _, m := range msgs {
		b.Update(m)
	}
}

func loaded(g *fakeGuide) *statefulBubble {
	b := newBubble(context.Background(), &Options{Guide: g})
	feed(b, run(b.Init()))
	return b
}

func TestCatalogLifecycle(t *testing.T) {
	Convey("Given a guide whose catalog fails", t, func() {
		g := &fakeGuide{catalogErr: &guide.CatalogFetchError{Err: errors.New("401")}}
		b := newBubble(context.Background(), &Options{Guide: g})

		So(b.state, ShouldEqual, loadingState)
		So(plain(b.View()), ShouldContainSubstring, "Fetching episodes of Hart to Hart (1979-1984)")

		feed(b, run(b.Init()))

		Convey("The shell shows the error with an empty catalog and no selection", func() {
			So(g.catalogCalls, ShouldEqual, 1)
			So(b.state, ShouldEqual, errorState)
			So(b.catalog, ShouldBeEmpty)
			So(b.selected, ShouldEqual, -1)
			So(plain(b.View()), ShouldContainSubstring, constant.CatalogFetchFailed)
		})

		Convey("Navigation keys do nothing", func() {
			So(send(b, runes("j")), ShouldBeEmpty)
			So(g.detailCalls, ShouldBeEmpty)
		})

		Convey("r retries through the same fetch path", func() {
			g.catalogErr = nil
			g.catalog = twoEpisodes

			msgs := send(b, runes("r"))
			So(b.state, ShouldEqual, loadingState)
			So(only[catalogLoadedMsg](msgs), ShouldHaveLength, 1)
			So(g.catalogCalls, ShouldEqual, 2)

			feed(b, msgs)
			So(b.state, ShouldEqual, readyState)
			So(b.lastError, ShouldBeNil)
		})
	})

	Convey("Given a guide with an unordered catalog", t, func() {
		g := &fakeGuide{catalog: []episode.Episode{
			{Season: 2, Episode: 1, Title: "Hart of Darkness"},
			{Season: 1, Episode: 2, Title: "Harts in High Places"},
			{Season: 1, Episode: 1, Title: "Hart and Soul"},
		}}
		b := newBubble(context.Background(), &Options{Guide: g})

		msgs := run(b.Init())
		So(only[catalogLoadedMsg](msgs), ShouldHaveLength, 1)

		_, cmd := b.Update(only[catalogLoadedMsg](msgs)[0])
		detailMsgs := only[detailsLoadedMsg](run(cmd))

		Convey("The first episode by season and number is selected", func() {
			e, ok := b.selection()
			So(ok, ShouldBeTrue)
			So(e.ID(), ShouldEqual, "S01E01")
			So(b.state, ShouldEqual, readyState)
		})

		Convey("Exactly one details request is issued for it", func() {
			So(detailMsgs, ShouldHaveLength, 1)
			So(detailMsgs[0].id, ShouldEqual, "S01E01")
			So(g.detailCalls, ShouldResemble, []string{"S01E01"})
			So(b.detail, ShouldEqual, detailLoading)
		})
	})

	Convey("Given a guide with an empty catalog", t, func() {
		b := loaded(&fakeGuide{})

		So(b.state, ShouldEqual, readyState)
		So(b.selected, ShouldEqual, -1)
		So(plain(b.View()), ShouldContainSubstring, "No episodes found.")
	})
}

func TestSelection(t *testing.T) {
	Convey("Given the two episode catalog", t, func() {
		g := &fakeGuide{catalog: twoEpisodes}
		b := loaded(g)

		Convey("The list has one season header with E01 before E02", func() {
			lines, selectedLine := b.listLines(40)

			var headers int
			for _, l := range lines {
				if strings.TrimSpace(plain(l)) == "Season 1" {
					headers++
				}
			}
			So(headers, ShouldEqual, 1)
			So(plain(lines[1]), ShouldContainSubstring, "E01: Hart and Soul")
			So(plain(lines[2]), ShouldContainSubstring, "E02: Harts in High Places")
			So(selectedLine, ShouldEqual, 1)
		})

		Convey("The detail pane shows the first episode", func() {
			view := plain(b.View())
			So(view, ShouldContainSubstring, "Season 1 • Episode 1")
			So(view, ShouldContainSubstring, "Summary of Hart and Soul")
			So(view, ShouldContainSubstring, "Mark as Watched")
		})

		Convey("Selecting row 2 issues exactly one details request for it", func() {
			g.detailCalls = nil

			msgs := send(b, tea.KeyMsg{Type: tea.KeyDown})
			So(g.detailCalls, ShouldResemble, []string{"S01E02"})
			So(only[detailsLoadedMsg](msgs), ShouldHaveLength, 1)

			e, _ := b.selection()
			So(e.ID(), ShouldEqual, "S01E02")
			So(b.detail, ShouldEqual, detailLoading)

			feed(b, msgs)
			So(b.detail, ShouldEqual, detailReady)
			So(b.details.Summary, ShouldEqual, "Summary of Harts in High Places")

			Convey("Moving past the end does nothing", func() {
				So(send(b, runes("j")), ShouldBeEmpty)
				So(g.detailCalls, ShouldHaveLength, 1)
			})
		})

		Convey("Reselecting the same episode does not refetch", func() {
			g.detailCalls = nil
			So(send(b, runes("g")), ShouldBeEmpty)
			So(g.detailCalls, ShouldBeEmpty)
		})
	})

	Convey("Given two quick selections", t, func() {
		g := &fakeGuide{catalog: append(append([]episode.Episode(nil), twoEpisodes...),
			episode.Episode{Season: 1, Episode: 3, Title: "Murder Between Friends"})}
		b := newBubble(context.Background(), &Options{Guide: g})
		msgs := run(b.Init())
		_, cmd := b.Update(only[catalogLoadedMsg](msgs)[0])
		first := only[detailsLoadedMsg](run(cmd))

		second := only[detailsLoadedMsg](send(b, runes("j")))
		third := only[detailsLoadedMsg](send(b, runes("j")))

		Convey("Results for earlier selections are discarded", func() {
			b.Update(second[0])
			So(b.detail, ShouldEqual, detailLoading)

			b.Update(first[0])
			So(b.detail, ShouldEqual, detailLoading)

			b.Update(third[0])
			So(b.detail, ShouldEqual, detailReady)
			So(b.details.Summary, ShouldEqual, "Summary of Murder Between Friends")

			b.Update(second[0])
			So(b.details.Summary, ShouldEqual, "Summary of Murder Between Friends")
		})
	})

	Convey("Given several seasons", t, func() {
		g := &fakeGuide{catalog: []episode.Episode{
			{Season: 1, Episode: 1, Title: "a"},
			{Season: 1, Episode: 2, Title: "b"},
			{Season: 2, Episode: 1, Title: "c"},
			{Season: 2, Episode: 2, Title: "d"},
			{Season: 3, Episode: 1, Title: "e"},
		}}
		b := loaded(g)

		Convey("] jumps to the next season and [ back to the start of the previous", func() {
			feed(b, send(b, runes("]")))
			e, _ := b.selection()
			So(e.ID(), ShouldEqual, "S02E01")

			feed(b, send(b, runes("]")))
			feed(b, send(b, runes("[")))
			e, _ = b.selection()
			So(e.ID(), ShouldEqual, "S02E01")

			feed(b, send(b, runes("j")))
			feed(b, send(b, runes("[")))
			e, _ = b.selection()
			So(e.ID(), ShouldEqual, "S01E01")
		})

		Convey("G selects the last episode", func() {
			feed(b, send(b, runes("G")))
			e, _ := b.selection()
			So(e.ID(), ShouldEqual, "S03E01")
		})
	})
}

func TestDetailsFallback(t *testing.T) {
	Convey("Given a guide whose details always fall back", t, func() {
		g := &fakeGuide{
			catalog: twoEpisodes,
			details: func(e episode.Episode) episode.Details {
				return episode.Details{
					Summary:     constant.SummaryUnavailable,
					YoutubeLink: "https://www.youtube.com/results?search_query=" + e.ID(),
					Fallback:    true,
				}
			},
		}
		b := loaded(g)

		Convey("The detail pane shows its error state", func() {
			So(b.detail, ShouldEqual, detailError)
			view := plain(b.View())
			So(view, ShouldContainSubstring, "Summary unavailable")
			So(view, ShouldContainSubstring, "Could not generate a summary")
		})

		Convey("The list and the watched toggle keep working", func() {
			send(b, runes("w"))
			So(b.watched.IsWatched(twoEpisodes[0]), ShouldBeTrue)

			feed(b, send(b, runes("j")))
			e, _ := b.selection()
			So(e.ID(), ShouldEqual, "S01E02")
			So(b.detail, ShouldEqual, detailError)
		})
	})
}

func TestWatched(t *testing.T) {
	Convey("Given a loaded guide", t, func() {
		g := &fakeGuide{catalog: twoEpisodes}
		b := loaded(g)
		day := time.Date(1979, time.September, 22, 20, 0, 0, 0, time.UTC)
		b.now = func() time.Time { return day }
		viper.Set(key.TUIDateFormat, "Jan 2, 2006")

		Convey("w marks the selection as watched and notifies", func() {
			msgs := send(b, runes("w"))
			So(only[ui.NotificationMsg](msgs), ShouldContain, ui.NotificationMsg("Marked S01E01 as watched"))
			So(b.watched.IsWatched(twoEpisodes[0]), ShouldBeTrue)
			So(b.watched.IsWatched(twoEpisodes[1]), ShouldBeFalse)

			view := plain(b.View())
			So(view, ShouldContainSubstring, "Mark as Unwatched")
			So(view, ShouldContainSubstring, "Watched on: Sep 22, 1979")

			Convey("space toggles it back", func() {
				msgs := send(b, tea.KeyMsg{Type: tea.KeySpace})
				So(only[ui.NotificationMsg](msgs), ShouldContain, ui.NotificationMsg("Marked S01E01 as unwatched"))
				So(b.watched.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestOpenLink(t *testing.T) {
	Convey("Given a loaded guide with a stubbed browser", t, func() {
		g := &fakeGuide{catalog: twoEpisodes}
		b := loaded(g)

		var opened []string
		b.opener = func(link string) error {
			opened = append(opened, link)
			return nil
		}

		Reset(func() {
			viper.Set(key.TUIMarkWatchedOnOpen, true)
		})

		Convey("o opens the details link and marks the episode watched", func() {
			viper.Set(key.TUIMarkWatchedOnOpen, true)

			msgs := send(b, runes("o"))
			So(opened, ShouldResemble, []string{"https://youtu.be/S01E01"})
			So(only[ui.NotificationMsg](msgs), ShouldContain, ui.NotificationMsg("Marked S01E01 as watched"))
			So(b.watched.IsWatched(twoEpisodes[0]), ShouldBeTrue)

			Convey("Opening again never unmarks it", func() {
				msgs := send(b, runes("o"))
				So(only[ui.NotificationMsg](msgs), ShouldBeEmpty)
				So(b.watched.IsWatched(twoEpisodes[0]), ShouldBeTrue)
			})
		})

		Convey("With marking disabled the watched map is untouched", func() {
			viper.Set(key.TUIMarkWatchedOnOpen, false)

			send(b, runes("o"))
			So(opened, ShouldHaveLength, 1)
			So(b.watched.Len(), ShouldEqual, 0)
		})

		Convey("Before details arrive a search link is opened", func() {
			send(b, runes("j"))
			send(b, runes("o"))
			So(opened, ShouldHaveLength, 1)
			So(opened[0], ShouldStartWith, constant.YoutubeSearchURL)
		})

		Convey("Browser failures are reported", func() {
			b.opener = func(string) error { return errors.New("no browser") }

			msgs := send(b, runes("o"))
			var notes []ui.NotificationMsg
			for _, m := range msgs {
				if result, ok := m.(linkOpenedMsg); ok {
					notes = append(notes, only[ui.NotificationMsg](send(b, result))...)
				}
			}
			So(notes, ShouldHaveLength, 1)
			So(string(notes[0]), ShouldStartWith, "Could not open")
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Given a loaded guide", t, func() {
		g := &fakeGuide{catalog: twoEpisodes}
		b := loaded(g)

		Convey("/ enters the filter and typing narrows the rows", func() {
			press(b, runes("/"))
			So(b.state, ShouldEqual, filterState)

			press(b, runes("h"), runes("i"), runes("g"))
			So(b.visible, ShouldResemble, []int{1})

			Convey("Selection is untouched until the user moves", func() {
				e, _ := b.selection()
				So(e.ID(), ShouldEqual, "S01E01")

				feed(b, send(b, tea.KeyMsg{Type: tea.KeyDown}))
				e, _ = b.selection()
				So(e.ID(), ShouldEqual, "S01E02")
			})

			Convey("enter keeps the filter, esc clears it", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.state, ShouldEqual, readyState)
				So(b.visible, ShouldResemble, []int{1})

				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.visible, ShouldResemble, []int{0, 1})
			})

			Convey("Keys that are commands elsewhere are typed", func() {
				press(b, runes("w"))
				So(b.watched.Len(), ShouldEqual, 0)
				So(b.filterC.Value(), ShouldEqual, "higw")
			})
		})
	})
}

func TestResize(t *testing.T) {
	Convey("Resizing keeps both panes within the window", t, func() {
		b := loaded(&fakeGuide{catalog: twoEpisodes})
		b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

		So(b.listWidth(), ShouldBeBetweenOrEqual, 24, 48)
		So(b.detailWidth(), ShouldBeGreaterThan, 20)
		So(b.View(), ShouldNotBeEmpty)
	})
}
