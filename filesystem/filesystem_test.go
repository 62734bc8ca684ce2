package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			Convey("And files written there stay in memory", func() {
				So(API().WriteFile("/episodic/probe", []byte("ok"), 0o644), ShouldBeNil)
				data, err := API().ReadFile("/episodic/probe")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "ok")
			})
		})
	})
}
