// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/key"
	"github.com/episodic-cli/episodic/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
	// Secret fields are masked when printed.
	Secret bool
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Episodic + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Current returns the active value, masked for secret fields.
func (f *Field) Current() any {
	v := viper.Get(f.Key)
	if f.Secret {
		return Mask(fmt.Sprint(v))
	}
	return v
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       f.Current(),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Mask hides everything but the last four characters of a secret.
func Mask(s string) string {
	if s == "" {
		return s
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, secret bool) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Secret: secret}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ShowName, "Hart to Hart", "Name of the series to build the guide for", false)
	register(key.ShowYears, "1979-1984", "Years the series aired.\nPassed to the model to disambiguate remakes", false)
	register(key.GeminiModel, "gemini-2.5-flash", "Gemini model used for catalog and summary generation", false)
	register(key.GeminiBaseURL, "https://generativelanguage.googleapis.com/v1beta", "Base URL of the Gemini REST API", false)
	register(key.GeminiAPIKey, "", "Gemini API key.\nAPI_KEY and GEMINI_API_KEY take precedence, the system keyring is used last", true)
	register(key.TUIMarkWatchedOnOpen, true, "Mark an episode as watched when its video link is opened", false)
	register(key.TUIDateFormat, "Jan 2, 2006", "Go time layout used for \"Watched on\" dates", false)
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)", false)
	register(key.LogsWrite, false, "Write logs", false)
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace", false)
	register(key.LogsJson, false, "Use json format for logs", false)
	register(key.CliColored, true, "Enable colored CLI output", false)
	register(key.CliVersionCheck, true, "Check for a newer release when printing help or version", false)

	if len(Default) != key.DefinedFieldsCount {
		panic(fmt.Sprintf("registered %d config fields, expected %d", len(Default), key.DefinedFieldsCount))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl .Current }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename .Value }}`))
