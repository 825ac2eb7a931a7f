package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Catalog.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("unexpected catalog base URL %s", config.Catalog.BaseURL)
	}
	if config.Catalog.RateLimit != 5.0 {
		t.Errorf("unexpected rate limit %v", config.Catalog.RateLimit)
	}
	if config.Store.Path == "" {
		t.Error("expected default store path")
	}
	if config.Server.Port == 0 {
		t.Error("expected default server port")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[catalog]
api_key = "secret"
rate_limit = 2.5

[store]
path = "test.db"

[providers.google]
client_id = "gid"
client_secret = "gsecret"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.Catalog.APIKey != "secret" {
			t.Errorf("unexpected api key %s", config.Catalog.APIKey)
		}
		if config.Catalog.RateLimit != 2.5 {
			t.Errorf("unexpected rate limit %v", config.Catalog.RateLimit)
		}
		if config.Store.Path != "test.db" {
			t.Errorf("unexpected store path %s", config.Store.Path)
		}
		if config.Providers.Google.ClientID != "gid" {
			t.Errorf("unexpected google client id %s", config.Providers.Google.ClientID)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		os.WriteFile(path, []byte("not [valid toml"), 0644)

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("roundtrips through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Catalog.APIKey = "written"
		config.Providers.Apple.ClientID = "apple-id"

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}
		if loaded.Catalog.APIKey != "written" {
			t.Errorf("expected saved api key, got %s", loaded.Catalog.APIKey)
		}
		if loaded.Providers.Apple.ClientID != "apple-id" {
			t.Errorf("expected saved provider id, got %s", loaded.Providers.Apple.ClientID)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		if err := SaveConfig("/nonexistent/dir/config.toml", DefaultConfig()); err == nil {
			t.Error("expected error for invalid path")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("creates from embedded template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected file to exist: %v", err)
		}
		if !strings.Contains(string(data), "[catalog]") {
			t.Errorf("expected template content, got %q", data)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected created file to parse: %v", err)
		}
		if config.Catalog.BaseURL == "" {
			t.Error("expected defaults in created file")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		os.WriteFile(path, []byte("existing"), 0644)

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when file exists")
		}

		data, _ := os.ReadFile(path)
		if string(data) != "existing" {
			t.Error("expected existing file untouched")
		}
	})
}

func TestProviderConfigMap(t *testing.T) {
	pc := ProviderConfig{ClientID: "id", ClientSecret: "secret", RedirectURI: "uri"}
	m := pc.Map()

	if m["client_id"] != "id" || m["client_secret"] != "secret" || m["redirect_uri"] != "uri" {
		t.Errorf("unexpected map %v", m)
	}
}
