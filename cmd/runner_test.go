package main

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/reel/internal/shared"
	"github.com/desertthunder/reel/internal/store"
	tu "github.com/desertthunder/reel/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			catalog := tu.NewMockCatalog()
			memory := store.NewMemory()

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Catalog:    catalog,
				Store:      memory,
				HTTPClient: httpClient,
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.catalog != catalog {
				t.Error("expected catalog to be set")
			}
			if runner.store != memory {
				t.Error("expected store to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{HTTPClient: nil})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})

	t.Run("requireSession", func(t *testing.T) {
		t.Run("fails when signed out", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Store: store.NewMemory()})

			_, err := runner.requireSession()
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Fatalf("expected ErrNotAuthenticated, got %v", err)
			}
		})

		t.Run("returns the signed-in user", func(t *testing.T) {
			memory := store.NewMemory()
			runner := NewRunner(RunnerOpts{Store: memory})

			sessions, err := runner.sessions()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, err := sessions.Register("Ada", "ada@example.com", "hunter2"); err != nil {
				t.Fatalf("seed registration failed: %v", err)
			}

			user, err := runner.requireSession()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Email != "ada@example.com" {
				t.Errorf("unexpected user %v", user)
			}
		})
	})

	t.Run("requireCatalog", func(t *testing.T) {
		t.Run("fails without a configured client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			_, err := runner.requireCatalog()
			if !errors.Is(err, shared.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("returns the injected client", func(t *testing.T) {
			catalog := tu.NewMockCatalog()
			runner := NewRunner(RunnerOpts{Catalog: catalog})

			got, err := runner.requireCatalog()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != catalog {
				t.Error("expected injected catalog client")
			}
		})
	})

	t.Run("favoritesService", func(t *testing.T) {
		t.Run("fails without a catalog client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Store: store.NewMemory()})

			_, err := runner.favoritesService()
			if !errors.Is(err, shared.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("shares the injected store", func(t *testing.T) {
			memory := store.NewMemory()
			runner := NewRunner(RunnerOpts{Store: memory, Catalog: tu.NewMockCatalog()})

			favorites, err := runner.favoritesService()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if _, err := favorites.Toggle(27205); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			again, _ := runner.favoritesService()
			if !again.Contains(27205) {
				t.Error("expected favorites to persist through the shared store")
			}
		})
	})
}

func TestMovieID(t *testing.T) {
	t.Run("parses a positive id", func(t *testing.T) {
		id, err := movieID("27205")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != 27205 {
			t.Errorf("expected 27205, got %d", id)
		}
	})

	t.Run("empty argument", func(t *testing.T) {
		_, err := movieID("")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("non-numeric argument", func(t *testing.T) {
		_, err := movieID("inception")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("non-positive id", func(t *testing.T) {
		for _, raw := range []string{"0", "-5"} {
			if _, err := movieID(raw); !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("movieID(%q) expected ErrInvalidArgument, got %v", raw, err)
			}
		}
	})
}

func TestSectionTitle(t *testing.T) {
	cases := map[string]string{
		"popular":     "Popular",
		"now-playing": "Now Playing",
		"upcoming":    "Upcoming",
		"top-rated":   "Top Rated",
		"unknown":     "Popular",
	}

	for section, want := range cases {
		if got := sectionTitle(section); got != want {
			t.Errorf("sectionTitle(%q) = %q, want %q", section, got, want)
		}
	}
}
