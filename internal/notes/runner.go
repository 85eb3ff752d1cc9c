package notes

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Runner executes an AppleScript source and returns its output. Tests swap
// in a fake; production uses OsascriptRunner.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// OsascriptRunner runs scripts through osascript, the macOS automation
// interpreter. Each call is one blocking subprocess; there is no pooling and
// no retry.
type OsascriptRunner struct {
	log zerolog.Logger
}

// NewOsascriptRunner creates a runner that logs script executions at debug
// level.
func NewOsascriptRunner(log zerolog.Logger) *OsascriptRunner {
	return &OsascriptRunner{log: log}
}

func (r *OsascriptRunner) Run(ctx context.Context, script string) (string, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	r.log.Debug().
		Int("script_bytes", len(script)).
		Dur("took", time.Since(start)).
		Err(err).
		Msg("osascript")

	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", executionf("osascript: %s", detail)
	}

	// osascript terminates its output with a newline that is not part of
	// the script's return value.
	return strings.TrimSuffix(stdout.String(), "\n"), nil
}
