package cfg

import (
	"cmp"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Feed configuration
	LeftFeedURL   string `long:"left-feed" env:"LEFT_FEED_URL" default:"http://lenta.ru/rss/last24" description:"URL of the feed shown in the left column"`
	LeftFeedName  string `long:"left-name" env:"LEFT_FEED_NAME" default:"Last 24 hours" description:"Heading of the left column"`
	RightFeedURL  string `long:"right-feed" env:"RIGHT_FEED_URL" default:"http://lenta.ru/rss/top7" description:"URL of the feed shown in the right column"`
	RightFeedName string `long:"right-name" env:"RIGHT_FEED_NAME" default:"Top 7" description:"Heading of the right column"`
	ConfigFile    string `long:"config" env:"CONFIG_FILE" description:"Optional YAML file with feed and fetch settings"`

	// Fetch configuration
	Timeout   int    `long:"timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-feed fetch timeout in seconds"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"RSS Duo/1.0" description:"User agent string for HTTP requests"`

	// Application configuration
	Serve   bool   `long:"serve" env:"SERVE" description:"Serve the news over HTTP instead of starting the terminal UI"`
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (with --serve)"`
	LogFile string `long:"log-file" env:"LOG_FILE" description:"Write logs to this file (terminal UI logs are discarded otherwise)"`
	Debug   bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs parses args and the environment. It returns nil, nil when help
// was requested.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.ConfigFile != "" {
		fc, err := parseFile(raw.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", raw.ConfigFile, err)
		}
		applyFile(parser, &raw, fc)
	}

	cfg := &Cfg{
		LeftFeedURL:   raw.LeftFeedURL,
		LeftFeedName:  raw.LeftFeedName,
		RightFeedURL:  raw.RightFeedURL,
		RightFeedName: raw.RightFeedName,
		Timeout:       time.Duration(raw.Timeout) * time.Second,
		UserAgent:     raw.UserAgent,
		Serve:         raw.Serve,
		Port:          raw.Port,
		LogFile:       raw.LogFile,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// applyFile copies file values into options that were left at their
// defaults. Flags and environment variables take precedence.
func applyFile(parser *flags.Parser, raw *rawCfg, fc *fileCfg) {
	overrides := []struct {
		long  string
		value string
		dst   *string
	}{
		{"left-feed", fc.Feeds.Left.URL, &raw.LeftFeedURL},
		{"left-name", fc.Feeds.Left.Name, &raw.LeftFeedName},
		{"right-feed", fc.Feeds.Right.URL, &raw.RightFeedURL},
		{"right-name", fc.Feeds.Right.Name, &raw.RightFeedName},
		{"user-agent", fc.UserAgent, &raw.UserAgent},
	}

	for _, o := range overrides {
		if o.value != "" && !isExplicit(parser, o.long) {
			*o.dst = o.value
		}
	}

	if fc.Timeout > 0 && !isExplicit(parser, "timeout") {
		raw.Timeout = fc.Timeout
	}
}

func isExplicit(parser *flags.Parser, long string) bool {
	opt := parser.FindOptionByLongName(long)
	if opt == nil {
		return false
	}
	if opt.IsSet() && !opt.IsSetDefault() {
		return true
	}
	if opt.EnvDefaultKey != "" {
		if value, ok := os.LookupEnv(opt.EnvDefaultKey); ok && value != "" {
			return true
		}
	}
	return false
}

func validate(cfg *Cfg) error {
	feeds := map[string]string{
		"left feed URL":  cfg.LeftFeedURL,
		"right feed URL": cfg.RightFeedURL,
	}

	for fieldName, fieldValue := range feeds {
		u, err := url.Parse(fieldValue)
		if err != nil {
			return fmt.Errorf("%s is not a valid URL: %w", fieldName, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s must be an absolute http(s) URL, got %q", fieldName, fieldValue)
		}
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}
