// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	loadingState state = iota
	errorState
	readyState
	filterState
)

// detailState is the lifecycle of the detail pane, independent of the shell.
type detailState int

const (
	detailIdle detailState = iota
	detailLoading
	detailError
	detailReady
)
