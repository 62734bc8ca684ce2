// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/episodic-cli/episodic/color"
	"github.com/episodic-cli/episodic/constant"
	"github.com/episodic-cli/episodic/key"
	"github.com/episodic-cli/episodic/log"
	"github.com/episodic-cli/episodic/style"
	"github.com/spf13/viper"
)

// Notify writes a notice to w if a more recent release is available.
// Lookup failures are logged and otherwise ignored.
func Notify(ctx context.Context, w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	version, err := Latest(ctx)
	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/episodic-cli/episodic/releases/tag/v"+version),
	)
}
