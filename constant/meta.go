// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Episodic is the canonical application identifier used for filesystem paths and CLI branding.
	Episodic = "episodic"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to the generative API.
	UserAgent = Episodic + "/" + Version
)

// Build metadata, injected at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
