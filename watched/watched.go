// Package watched tracks which episodes have been watched during the session.
package watched

import (
	"time"

	"github.com/episodic-cli/episodic/episode"
	"github.com/samber/mo"
)

// Entry records when an episode was marked watched.
type Entry struct {
	WatchedOn time.Time
}

// Status maps episode ids to watch entries. A missing key means unwatched.
// The zero value is ready to use.
type Status struct {
	entries map[string]Entry
}

// New returns an empty status map.
func New() *Status {
	return &Status{entries: make(map[string]Entry)}
}

// Toggle flips the watched state of e and reports the new state.
func (s *Status) Toggle(e episode.Episode, now time.Time) bool {
	id := e.ID()
	if _, ok := s.entries[id]; ok {
		delete(s.entries, id)
		return false
	}

	s.put(id, now)
	return true
}

// Mark moves e forward to watched. An existing entry keeps its timestamp.
// It reports whether the state changed.
func (s *Status) Mark(e episode.Episode, now time.Time) bool {
	id := e.ID()
	if _, ok := s.entries[id]; ok {
		return false
	}

	s.put(id, now)
	return true
}

// IsWatched reports whether e has an entry.
func (s *Status) IsWatched(e episode.Episode) bool {
	_, ok := s.entries[e.ID()]
	return ok
}

// WatchedOn returns the time e was marked watched.
func (s *Status) WatchedOn(e episode.Episode) mo.Option[time.Time] {
	entry, ok := s.entries[e.ID()]
	if !ok {
		return mo.None[time.Time]()
	}
	return mo.Some(entry.WatchedOn)
}

// Len is the number of watched episodes.
func (s *Status) Len() int {
	return len(s.entries)
}

func (s *Status) put(id string, now time.Time) {
	if s.entries == nil {
		s.entries = make(map[string]Entry)
	}
	s.entries[id] = Entry{WatchedOn: now}
}
