package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/reel/internal/shared"
	"github.com/desertthunder/reel/internal/store"
	tu "github.com/desertthunder/reel/internal/testing"
	"github.com/urfave/cli/v3"
)

func whoamiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Flags:  []cli.Flag{&cli.BoolFlag{Name: "json"}},
		Action: r.AuthWhoami,
	}
}

func seedSession(t *testing.T, runner *Runner) {
	t.Helper()
	sessions, err := runner.sessions()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := sessions.Register("Ada", "ada@example.com", "hunter2"); err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}
}

func TestAuthWhoami(t *testing.T) {
	t.Run("prints the signed-in profile", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Store: store.NewMemory(), Output: output})
		seedSession(t, runner)

		if err := whoamiCommand(runner).Run(context.Background(), []string{"whoami"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got := output.String()
		for _, want := range []string{"Name: Ada", "Email: ada@example.com", "Provider: email"} {
			if !strings.Contains(got, want) {
				t.Errorf("expected output to contain %q, got %q", want, got)
			}
		}
	})

	t.Run("fails when signed out", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Store: store.NewMemory(), Output: &bytes.Buffer{}})

		err := whoamiCommand(runner).Run(context.Background(), []string{"whoami"})
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("propagates write failures", func(t *testing.T) {
		memory := store.NewMemory()
		seedSession(t, NewRunner(RunnerOpts{Store: memory}))

		runner := NewRunner(RunnerOpts{Store: memory, Output: &tu.FWriter{}})

		err := whoamiCommand(runner).Run(context.Background(), []string{"whoami"})
		if err == nil {
			t.Fatal("expected error from failing writer")
		}
		if !strings.Contains(err.Error(), "failed to write output") {
			t.Errorf("expected write error, got %v", err)
		}
	})
}
