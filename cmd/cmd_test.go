package cmd

import (
	"bytes"
	"testing"

	"github.com/episodic-cli/episodic/key"
	"github.com/episodic-cli/episodic/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseEpisodeArgs(t *testing.T) {
	Convey("parseEpisodeArgs", t, func() {
		season, number, err := parseEpisodeArgs([]string{"1", "2"})
		So(err, ShouldBeNil)
		So(season, ShouldEqual, 1)
		So(number, ShouldEqual, 2)

		_, _, err = parseEpisodeArgs([]string{"0", "2"})
		So(err, ShouldNotBeNil)

		_, _, err = parseEpisodeArgs([]string{"1", "two"})
		So(err, ShouldNotBeNil)
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue follows the default's type", t, func() {
		v, err := parseValue(key.TUIMarkWatchedOnOpen, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(key.ShowName, []string{"Columbo"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "Columbo")

		_, err = parseValue(key.LogsJson, []string{"maybe"})
		So(err, ShouldNotBeNil)
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Unknown keys suggest the closest known key", t, func() {
		err := errUnknownKey("show.nmae")
		So(err.Error(), ShouldContainSubstring, "show.nmae")
		So(err.Error(), ShouldContainSubstring, key.ShowName)
	})
}

func TestEnvVariables(t *testing.T) {
	Convey("envVariables covers config fields, API key variables and the config path", t, func() {
		vars := envVariables()

		So(vars, ShouldContainKey, "EPISODIC_SHOW_NAME")
		So(vars, ShouldContainKey, where.EnvConfigPath)
		So(vars["API_KEY"], ShouldBeTrue)
		So(vars["EPISODIC_GEMINI_API_KEY"], ShouldBeTrue)
		So(vars["EPISODIC_SHOW_NAME"], ShouldBeFalse)
	})

	Convey("env masks secrets", t, func() {
		t.Setenv("API_KEY", "abcdefgh1234")

		var out bytes.Buffer
		envCmd.SetOut(&out)
		envCmd.Run(envCmd, nil)

		So(out.String(), ShouldContainSubstring, "1234")
		So(out.String(), ShouldNotContainSubstring, "abcdefgh1234")
	})
}

func TestSchemaCommand(t *testing.T) {
	Convey("schema prints the catalog schema", t, func() {
		var out bytes.Buffer
		schemaCmd.SetOut(&out)
		schemaCmd.Run(schemaCmd, nil)

		So(out.String(), ShouldContainSubstring, `"type": "array"`)
		So(out.String(), ShouldContainSubstring, `"season"`)
	})
}
