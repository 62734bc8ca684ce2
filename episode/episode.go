// Package episode defines the catalog model of the guide and the id scheme shared by every view.
package episode

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Episode is one entry of the show catalog.
type Episode struct {
	Season  int    `json:"season" jsonschema:"description=The season number."`
	Episode int    `json:"episode" jsonschema:"description=The episode number within the season."`
	Title   string `json:"title" jsonschema:"description=The title of the episode."`
}

// ID derives the episode id. Every lookup keyed by episode goes through here.
func ID(season, episode int) string {
	return fmt.Sprintf("S%02dE%02d", season, episode)
}

// ID returns the zero-padded id of e, e.g. S01E02.
func (e Episode) ID() string {
	return ID(e.Season, e.Episode)
}

// Label is the row text used by the episode list.
func (e Episode) Label() string {
	return fmt.Sprintf("E%02d: %s", e.Episode, e.Title)
}

func (e Episode) String() string {
	return fmt.Sprintf("%s %s", e.ID(), e.Title)
}

// Details is the generated companion content for one episode.
type Details struct {
	Summary     string `json:"summary" jsonschema:"description=A detailed plot summary of a few paragraphs of plain text that covers the mystery and its resolution."`
	YoutubeLink string `json:"youtubeLink" jsonschema:"description=A YouTube search URL for the episode."`

	// Fallback is set when the content was produced locally after the API failed.
	Fallback bool `json:"-"`
}

// Season is a group of consecutive catalog entries sharing a season number.
type Season struct {
	Number   int
	Episodes []Episode
}

// Header is the group title rendered above the season's rows.
func (s Season) Header() string {
	return fmt.Sprintf("Season %d", s.Number)
}

// Sort orders a catalog by season, then episode, ascending.
func Sort(catalog []Episode) {
	slices.SortStableFunc(catalog, func(a, b Episode) int {
		if a.Season != b.Season {
			return a.Season - b.Season
		}
		return a.Episode - b.Episode
	})
}

// GroupBySeason groups episodes by season. Groups keep the order in which
// their season first appears and episodes keep catalog order inside a group.
func GroupBySeason(catalog []Episode) []Season {
	groups := lo.PartitionBy(catalog, func(e Episode) int { return e.Season })

	return lo.Map(groups, func(episodes []Episode, _ int) Season {
		return Season{Number: episodes[0].Season, Episodes: episodes}
	})
}

// Index returns the position of the episode with the given id, or -1.
func Index(catalog []Episode, id string) int {
	_, i, _ := lo.FindIndexOf(catalog, func(e Episode) bool { return e.ID() == id })
	return i
}

// Validate checks that a decoded catalog has the expected shape.
func Validate(catalog []Episode) error {
	seen := make(map[string]int, len(catalog))

	for i, e := range catalog {
		switch {
		case e.Season < 1:
			return fmt.Errorf("entry %d: season must be positive, got %d", i, e.Season)
		case e.Episode < 1:
			return fmt.Errorf("entry %d: episode must be positive, got %d", i, e.Episode)
		case strings.TrimSpace(e.Title) == "":
			return fmt.Errorf("entry %d (%s): empty title", i, e.ID())
		}

		if j, dup := seen[e.ID()]; dup {
			return fmt.Errorf("entries %d and %d share id %s", j, i, e.ID())
		}
		seen[e.ID()] = i
	}

	return nil
}
