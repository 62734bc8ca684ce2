package guide

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/episode"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeGenerator answers with canned JSON, or fails.
type fakeGenerator struct {
	mu      sync.Mutex
	answer  string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string, out any) error {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.answer), out)
}

var show = Show{Name: "Hart to Hart", Years: "1979-1984"}

func TestFetchCatalog(t *testing.T) {
	ctx := context.Background()

	Convey("Given a backend listing episodes out of order", t, func() {
		gen := &fakeGenerator{answer: `[
			{"season": 2, "episode": 1, "title": "Hart of Darkness"},
			{"season": 1, "episode": 2, "title": "Harts in High Places"},
			{"season": 1, "episode": 1, "title": "Hart and Soul"}
		]`}
		client := New(gen, show)

		Convey("The catalog comes back sorted", func() {
			catalog, err := client.FetchCatalog(ctx)
			So(err, ShouldBeNil)
			So(catalog, ShouldHaveLength, 3)
			So(catalog[0].ID(), ShouldEqual, "S01E01")
			So(catalog[1].ID(), ShouldEqual, "S01E02")
			So(catalog[2].ID(), ShouldEqual, "S02E01")
		})

		Convey("The prompt names the show", func() {
			_, _ = client.FetchCatalog(ctx)
			So(gen.prompts[0], ShouldContainSubstring, "Hart to Hart (1979-1984)")
		})
	})

	Convey("Given a failing backend", t, func() {
		cause := errors.New("boom")
		client := New(&fakeGenerator{err: cause}, show)

		Convey("The error is a CatalogFetchError wrapping the cause", func() {
			catalog, err := client.FetchCatalog(ctx)
			So(catalog, ShouldBeNil)

			var fetchErr *CatalogFetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
		})
	})

	Convey("Given a backend answering with the wrong shape", t, func() {
		Convey("Duplicates are rejected", func() {
			client := New(&fakeGenerator{answer: `[{"season":1,"episode":1,"title":"a"},{"season":1,"episode":1,"title":"b"}]`}, show)
			_, err := client.FetchCatalog(ctx)

			var fetchErr *CatalogFetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
		})

		Convey("Non-array answers are rejected", func() {
			client := New(&fakeGenerator{answer: `{"season":1}`}, show)
			_, err := client.FetchCatalog(ctx)

			var fetchErr *CatalogFetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
		})
	})
}

func TestFetchEpisodeDetails(t *testing.T) {
	ctx := context.Background()

	Convey("Given a backend with a summary and link", t, func() {
		gen := &fakeGenerator{answer: `{"summary":"  Jonathan and Jennifer investigate.  ","youtubeLink":"https://www.youtube.com/results?search_query=hart"}`}
		details := New(gen, show).FetchEpisodeDetails(ctx, "Hart and Soul", 1, 1)

		So(details.Fallback, ShouldBeFalse)
		So(details.Summary, ShouldEqual, "Jonathan and Jennifer investigate.")
		So(details.YoutubeLink, ShouldEqual, "https://www.youtube.com/results?search_query=hart")
		So(gen.prompts[0], ShouldContainSubstring, `titled "Hart and Soul" (Season 1, Episode 1)`)
	})

	Convey("Given a backend with an unusable link", t, func() {
		gen := &fakeGenerator{answer: `{"summary":"plot","youtubeLink":"javascript:alert(1)"}`}
		details := New(gen, show).FetchEpisodeDetails(ctx, "Hart and Soul", 1, 1)

		Convey("The link is replaced by a search link", func() {
			So(details.Fallback, ShouldBeFalse)
			So(details.YoutubeLink, ShouldStartWith, constant.YoutubeSearchURL)
		})
	})

	Convey("Given a failing backend", t, func() {
		details := New(&fakeGenerator{err: errors.New("quota")}, show).FetchEpisodeDetails(ctx, "Harts in High Places", 1, 2)

		Convey("A fallback is returned instead of an error", func() {
			So(details.Fallback, ShouldBeTrue)
			So(details.Summary, ShouldEqual, constant.SummaryUnavailable)
			So(details.YoutubeLink, ShouldEqual, SearchLink(show, episode.Episode{Season: 1, Episode: 2, Title: "Harts in High Places"}))
		})
	})

	Convey("Given a backend with an empty summary", t, func() {
		details := New(&fakeGenerator{answer: `{"summary":"   ","youtubeLink":""}`}, show).FetchEpisodeDetails(ctx, "x", 1, 1)
		So(details.Fallback, ShouldBeTrue)
	})

	Convey("Concurrent calls are independent", t, func() {
		gen := &fakeGenerator{answer: `{"summary":"plot","youtubeLink":"https://youtu.be/x"}`}
		client := New(gen, show)

		var wg sync.WaitGroup
		for i := 1; i <= 8; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_ = client.FetchEpisodeDetails(ctx, "t", 1, n)
			}(i)
		}
		wg.Wait()

		So(gen.prompts, ShouldHaveLength, 8)
	})
}

func TestSearchLink(t *testing.T) {
	Convey("SearchLink encodes the show, id and title", t, func() {
		link := SearchLink(show, episode.Episode{Season: 1, Episode: 2, Title: "Harts in High Places"})

		u, err := url.Parse(link)
		So(err, ShouldBeNil)
		So(u.Host, ShouldEqual, "www.youtube.com")
		So(u.Query().Get("search_query"), ShouldEqual, "Hart to Hart S01E02 Harts in High Places")
		So(strings.Contains(link, " "), ShouldBeFalse)
	})
}

func TestErrors(t *testing.T) {
	Convey("Error messages carry context", t, func() {
		So((&CatalogFetchError{Show: show, Err: errors.New("x")}).Error(), ShouldContainSubstring, "Hart to Hart")
		So((&DetailsFetchError{ID: "S01E01", Err: errors.New("x")}).Error(), ShouldContainSubstring, "S01E01")
	})
}
