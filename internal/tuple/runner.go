package tuple

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result is the captured outcome of one Tuple invocation.
type Result struct {
	// ID correlates the invocation across output pane and diagnostics.
	ID string
	// Command is the display form of what ran, e.g. "tuple join <url>".
	Command string
	// Output is the combined stdout+stderr text, or the timeout notice.
	Output string
	// Failed is set on non-zero exit, spawn failure, or timeout.
	Failed bool
	// TimedOut marks a deadline exceeded; Output carries the notice.
	TimedOut bool
}

// Runner executes Tuple subcommands as one-shot child processes with a
// timeout, capturing combined output. Failures are reported in the Result,
// never as an error: the panel's refresh loop must survive every outcome.
type Runner struct {
	binary  string
	timeout time.Duration
	log     *slog.Logger
}

// NewRunner creates a runner for the given Tuple binary.
func NewRunner(binary string, timeout time.Duration, log *slog.Logger) *Runner {
	if binary == "" {
		binary = "tuple"
	}
	return &Runner{binary: binary, timeout: timeout, log: log}
}

// Argv builds the argv for one Tuple invocation. Only join takes an argument.
func Argv(binary, command, target string) []string {
	args := []string{binary, command}
	if command == CmdJoin && target != "" {
		args = append(args, target)
	}
	return args
}

// Run executes one subcommand and blocks until it exits or times out.
func (r *Runner) Run(ctx context.Context, command, target string) Result {
	id := uuid.NewString()[:8]
	argv := Argv(r.binary, command, target)

	res := Result{ID: id, Command: strings.Join(argv, " ")}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	out, err := exec.CommandContext(cctx, argv[0], argv[1:]...).CombinedOutput()
	res.Output = string(out)

	if cctx.Err() == context.DeadlineExceeded {
		res.Failed = true
		res.TimedOut = true
		res.Output = fmt.Sprintf("command timed out after %s", r.timeout)
		r.log.Warn("tuple command timed out", "id", id, "command", res.Command)
		return res
	}
	if err != nil {
		res.Failed = true
		if res.Output == "" {
			res.Output = err.Error()
		}
		r.log.Warn("tuple command failed", "id", id, "command", res.Command, "error", err)
		return res
	}

	r.log.Info("tuple command completed", "id", id, "command", res.Command,
		"duration", time.Since(start).Truncate(time.Millisecond))
	return res
}
