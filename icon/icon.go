// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/episodic-cli/episodic/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Check
	TV
	Book
	Link
	Progress
	Key
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(×_×)", squares: "▨"},
	Check:    {emoji: "✅", nerd: "", plain: "✓", kaomoji: "(✓)", squares: "■"},
	TV:       {emoji: "📺", nerd: "", plain: "▭", kaomoji: "[▭]", squares: "▤"},
	Book:     {emoji: "📖", nerd: "", plain: "≡", kaomoji: "(≡)", squares: "▥"},
	Link:     {emoji: "🔗", nerd: "", plain: "→", kaomoji: "(→)", squares: "▶"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・_・ヾ", squares: "▧"},
	Key:      {emoji: "🔑", nerd: "", plain: "*", kaomoji: "(⌐■_■)", squares: "▩"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
