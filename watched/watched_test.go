package watched

import (
	"testing"
	"time"

	"github.com/episodic-cli/episodic/episode"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	pilot  = episode.Episode{Season: 1, Episode: 1, Title: "Hart and Soul"}
	second = episode.Episode{Season: 1, Episode: 2, Title: "Harts in High Places"}
	now    = time.Date(1979, time.September, 22, 20, 0, 0, 0, time.UTC)
)

func TestToggle(t *testing.T) {
	Convey("Given a status with one watched episode", t, func() {
		s := New()
		s.Toggle(pilot, now)
		before, _ := s.WatchedOn(pilot).Get()

		Convey("Toggling another episode twice restores the map", func() {
			So(s.Toggle(second, now.Add(time.Hour)), ShouldBeTrue)
			So(s.IsWatched(second), ShouldBeTrue)
			So(s.Toggle(second, now.Add(2*time.Hour)), ShouldBeFalse)
			So(s.IsWatched(second), ShouldBeFalse)
			So(s.Len(), ShouldEqual, 1)
			at, ok := s.WatchedOn(pilot).Get()
			So(ok, ShouldBeTrue)
			So(at, ShouldEqual, before)
		})

		Convey("Toggling the watched episode removes only its entry", func() {
			s.Toggle(second, now)
			So(s.Toggle(pilot, now), ShouldBeFalse)
			So(s.IsWatched(pilot), ShouldBeFalse)
			So(s.IsWatched(second), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 1)
		})

		Convey("WatchedOn reports the toggle time", func() {
			at, ok := s.WatchedOn(pilot).Get()
			So(ok, ShouldBeTrue)
			So(at, ShouldEqual, now)
			So(s.WatchedOn(second).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("The zero value is usable", t, func() {
		var s Status
		So(s.IsWatched(pilot), ShouldBeFalse)
		So(s.Toggle(pilot, now), ShouldBeTrue)
		So(s.Len(), ShouldEqual, 1)
	})
}

func TestMark(t *testing.T) {
	Convey("Mark only moves forward", t, func() {
		s := New()
		So(s.Mark(pilot, now), ShouldBeTrue)
		So(s.Mark(pilot, now.Add(time.Hour)), ShouldBeFalse)

		at := s.WatchedOn(pilot).MustGet()
		So(at, ShouldEqual, now)
		So(s.IsWatched(pilot), ShouldBeTrue)
	})
}
