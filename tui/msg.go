package tui

import "github.com/episodic-cli/episodic/episode"

type catalogLoadedMsg struct {
	catalog []episode.Episode
}

type catalogFailedMsg struct {
	err error
}

// detailsLoadedMsg answers the details request numbered seq for episode id.
type detailsLoadedMsg struct {
	seq     int
	id      string
	details episode.Details
}

type linkOpenedMsg struct {
	link string
	err  error
}
