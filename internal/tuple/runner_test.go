package tuple

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/tuplepanel-io/tuplepanel/internal/logging"
)

// fakeTuple writes a shell script standing in for the tuple binary.
func fakeTuple(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}
	path := filepath.Join(t.TempDir(), "tuple")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunnerCapturesCombinedOutput(t *testing.T) {
	bin := fakeTuple(t, `echo "to stdout"; echo "to stderr" 1>&2`)
	r := NewRunner(bin, 5*time.Second, logging.Discard())

	res := r.Run(context.Background(), CmdOn, "")
	if res.Failed {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if !strings.Contains(res.Output, "to stdout") || !strings.Contains(res.Output, "to stderr") {
		t.Errorf("Output = %q, want both streams", res.Output)
	}
	if res.Command != bin+" on" {
		t.Errorf("Command = %q", res.Command)
	}
	if res.ID == "" {
		t.Error("Result.ID should be set")
	}
}

func TestRunnerReportsFailure(t *testing.T) {
	bin := fakeTuple(t, `echo "boom"; exit 3`)
	r := NewRunner(bin, 5*time.Second, logging.Discard())

	res := r.Run(context.Background(), CmdNew, "")
	if !res.Failed {
		t.Error("non-zero exit should set Failed")
	}
	if res.TimedOut {
		t.Error("failure is not a timeout")
	}
	if !strings.Contains(res.Output, "boom") {
		t.Errorf("Output = %q, want captured text even on failure", res.Output)
	}
}

func TestRunnerTimeout(t *testing.T) {
	bin := fakeTuple(t, `sleep 5`)
	r := NewRunner(bin, 100*time.Millisecond, logging.Discard())

	res := r.Run(context.Background(), CmdOn, "")
	if !res.Failed || !res.TimedOut {
		t.Fatalf("got %+v, want a timed-out failure", res)
	}
	if !strings.Contains(res.Output, "timed out") {
		t.Errorf("Output = %q, want the timeout notice", res.Output)
	}
}

func TestArgv(t *testing.T) {
	tests := []struct {
		command string
		target  string
		want    string
	}{
		{CmdOn, "", "tuple on"},
		{CmdOff, "", "tuple off"},
		{CmdNew, "", "tuple new"},
		{CmdJoin, "https://tuple.app/alice", "tuple join https://tuple.app/alice"},
		{CmdEnd, "tuple ignored", "tuple end"},
	}
	for _, tt := range tests {
		got := strings.Join(Argv("tuple", tt.command, tt.target), " ")
		if got != tt.want {
			t.Errorf("Argv(%q, %q) = %q, want %q", tt.command, tt.target, got, tt.want)
		}
	}
}
