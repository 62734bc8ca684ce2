// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 13

// Show Selection - these keys name the series the guide is built for.
const (
	ShowName  = "show.name"
	ShowYears = "show.years"
)

// Generative API - these keys configure the Gemini client.
const (
	GeminiModel   = "gemini.model"
	GeminiBaseURL = "gemini.base_url"
	GeminiAPIKey  = "gemini.api_key"
)

// Terminal User Interface (TUI) - these keys define the interactive guide's behavior.
const (
	TUIMarkWatchedOnOpen = "tui.mark_watched_on_open"
	TUIDateFormat        = "tui.date_format"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
