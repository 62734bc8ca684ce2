// Package guide fetches the episode catalog and per-episode details from a generative backend.
package guide

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/episode"
	"github.com/episodic-cli/episodic/log"
)

// Generator produces JSON matching the Go type of out.
// *gemini.Client satisfies it.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, out any) error
}

// Show names the series the guide covers.
type Show struct {
	Name  string
	Years string
}

func (s Show) String() string {
	if s.Years == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Years)
}

// CatalogFetchError is returned when the catalog cannot be fetched or parsed.
type CatalogFetchError struct {
	Show Show
	Err  error
}

func (e *CatalogFetchError) Error() string {
	return fmt.Sprintf("fetch episode list for %s: %v", e.Show.Name, e.Err)
}

func (e *CatalogFetchError) Unwrap() error {
	return e.Err
}

// DetailsFetchError describes why details for one episode fell back.
type DetailsFetchError struct {
	ID  string
	Err error
}

func (e *DetailsFetchError) Error() string {
	return fmt.Sprintf("fetch details for %s: %v", e.ID, e.Err)
}

func (e *DetailsFetchError) Unwrap() error {
	return e.Err
}

// Client is the episode data client. Calls are independent and may run concurrently.
type Client struct {
	gen  Generator
	show Show
}

// New returns a client for show backed by gen.
func New(gen Generator, show Show) *Client {
	return &Client{gen: gen, show: show}
}

// Show returns the series this client covers.
func (c *Client) Show() Show {
	return c.show
}

// FetchCatalog returns every episode of the show ordered by season, then episode.
// Any failure is a *CatalogFetchError.
func (c *Client) FetchCatalog(ctx context.Context) ([]episode.Episode, error) {
	log.Infof("fetching episode list for %s", c.show)

	var catalog []episode.Episode
	if err := c.gen.GenerateJSON(ctx, catalogPrompt(c.show), &catalog); err != nil {
		log.Error(err)
		return nil, &CatalogFetchError{Show: c.show, Err: err}
	}

	if err := episode.Validate(catalog); err != nil {
		log.Error(err)
		return nil, &CatalogFetchError{Show: c.show, Err: fmt.Errorf("malformed episode list: %w", err)}
	}

	episode.Sort(catalog)
	log.Infof("got %d episodes for %s", len(catalog), c.show.Name)
	return catalog, nil
}

// FetchEpisodeDetails returns the summary and video link for one episode.
// It never fails: when the backend errors or answers with something unusable
// the result is a fallback with an apology summary and a search link.
func (c *Client) FetchEpisodeDetails(ctx context.Context, title string, season, number int) episode.Details {
	e := episode.Episode{Season: season, Episode: number, Title: title}

	details, err := c.fetchDetails(ctx, e)
	if err != nil {
		err = &DetailsFetchError{ID: e.ID(), Err: err}
		log.WithFields(log.Fields{"episode": e.ID()}).Warn(err)
		return c.fallback(e)
	}

	return details
}

func (c *Client) fetchDetails(ctx context.Context, e episode.Episode) (episode.Details, error) {
	var details episode.Details
	if err := c.gen.GenerateJSON(ctx, detailsPrompt(c.show, e), &details); err != nil {
		return episode.Details{}, err
	}

	details.Summary = strings.TrimSpace(details.Summary)
	if details.Summary == "" {
		return episode.Details{}, errors.New("empty summary")
	}

	if err := validateLink(details.YoutubeLink); err != nil {
		log.Debugf("replacing link for %s: %v", e.ID(), err)
		details.YoutubeLink = SearchLink(c.show, e)
	}

	return details, nil
}

func (c *Client) fallback(e episode.Episode) episode.Details {
	return episode.Details{
		Summary:     constant.SummaryUnavailable,
		YoutubeLink: SearchLink(c.show, e),
		Fallback:    true,
	}
}

// SearchLink builds a YouTube search URL for an episode.
func SearchLink(show Show, e episode.Episode) string {
	q := url.Values{}
	q.Set("search_query", strings.TrimSpace(fmt.Sprintf("%s %s %s", show.Name, e.ID(), e.Title)))
	return constant.YoutubeSearchURL + "?" + q.Encode()
}

func validateLink(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("no link")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed link: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("link has no host")
	}
	return nil
}
