package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LeftFeedURL != "http://lenta.ru/rss/last24" {
		t.Errorf("Expected default left feed, got '%s'", cfg.LeftFeedURL)
	}
	if cfg.RightFeedURL != "http://lenta.ru/rss/top7" {
		t.Errorf("Expected default right feed, got '%s'", cfg.RightFeedURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.UserAgent != "RSS Duo/1.0" {
		t.Errorf("Expected user agent 'RSS Duo/1.0', got '%s'", cfg.UserAgent)
	}
	if cfg.Serve {
		t.Error("Expected serve mode to be off by default")
	}
	if Get() != cfg {
		t.Error("Expected Get to return the loaded configuration")
	}

	left := cfg.LeftSource()
	if left.Name != "Last 24 hours" || left.URL != cfg.LeftFeedURL {
		t.Errorf("Unexpected left source: %+v", left)
	}
}

func TestLoadFlagsAndEnv(t *testing.T) {
	t.Setenv("RIGHT_FEED_URL", "https://env.example.com/rss")

	cfg, err := LoadArgs([]string{"--left-feed", "https://flag.example.com/rss", "--timeout", "5", "--serve", "--port", "9090"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LeftFeedURL != "https://flag.example.com/rss" {
		t.Errorf("Expected left feed from flag, got '%s'", cfg.LeftFeedURL)
	}
	if cfg.RightFeedURL != "https://env.example.com/rss" {
		t.Errorf("Expected right feed from env, got '%s'", cfg.RightFeedURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.Timeout)
	}
	if !cfg.Serve || cfg.Port != "9090" {
		t.Errorf("Expected serve on 9090, got serve=%v port=%s", cfg.Serve, cfg.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  left:
    name: "World"
    url: "https://file.example.com/world.xml"
  right:
    name: "Sport"
    url: "https://file.example.com/sport.xml"
timeout: 12
user_agent: "File Agent/1.0"
`

	path := filepath.Join(tempDir, "rss-duo.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArgs([]string{"--config", path, "--right-feed", "https://flag.example.com/right.xml"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LeftFeedURL != "https://file.example.com/world.xml" {
		t.Errorf("Expected left feed from file, got '%s'", cfg.LeftFeedURL)
	}
	if cfg.LeftFeedName != "World" {
		t.Errorf("Expected left name from file, got '%s'", cfg.LeftFeedName)
	}
	if cfg.RightFeedURL != "https://flag.example.com/right.xml" {
		t.Errorf("Expected flag to win over file, got '%s'", cfg.RightFeedURL)
	}
	if cfg.RightFeedName != "Sport" {
		t.Errorf("Expected right name from file, got '%s'", cfg.RightFeedName)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Expected timeout 12s from file, got %v", cfg.Timeout)
	}
	if cfg.UserAgent != "File Agent/1.0" {
		t.Errorf("Expected user agent from file, got '%s'", cfg.UserAgent)
	}
}

func TestLoadConfigFileWithEmptyEnv(t *testing.T) {
	t.Setenv("LEFT_FEED_URL", "")
	t.Setenv("USER_AGENT", "")

	content := `
feeds:
  left:
    url: "https://file.example.com/world.xml"
user_agent: "File Agent/1.0"
`

	path := filepath.Join(t.TempDir(), "rss-duo.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArgs([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LeftFeedURL != "https://file.example.com/world.xml" {
		t.Errorf("Expected empty env to leave left feed to the file, got '%s'", cfg.LeftFeedURL)
	}
	if cfg.UserAgent != "File Agent/1.0" {
		t.Errorf("Expected empty env to leave user agent to the file, got '%s'", cfg.UserAgent)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")})
	if err == nil {
		t.Error("Expected error for missing configuration file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	invalid := [][]string{
		{"--left-feed", "not a url"},
		{"--right-feed", "ftp://example.com/feed"},
		{"--left-feed", "/relative/feed.xml"},
		{"--timeout", "0"},
	}

	for _, args := range invalid {
		if _, err := LoadArgs(args); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}
