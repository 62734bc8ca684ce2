package guide

import (
	"fmt"

	"github.com/episodic-cli/episodic/episode"
)

func catalogPrompt(show Show) string {
	return fmt.Sprintf(`Generate a complete list of all episodes for the TV series "%s".
Return a JSON array where each object has "season", "episode" and "title".
Order the list chronologically by season, then by episode number.`, show)
}

func detailsPrompt(show Show, e episode.Episode) string {
	return fmt.Sprintf(`Provide a detailed plot summary for the "%s" episode titled "%s" (Season %d, Episode %d).
The summary should be engaging, well written and cover the main plot points, including the mystery and its resolution.
Write it as a few paragraphs of plain text in "summary".
In "youtubeLink" give a YouTube search URL (https://www.youtube.com/results?search_query=...) that finds this episode.`,
		show.Name, e.Title, e.Season, e.Episode)
}
