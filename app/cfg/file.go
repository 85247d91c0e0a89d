package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCfg is the optional YAML configuration file.
//
//	feeds:
//	  left:
//	    name: "Last 24 hours"
//	    url: "http://lenta.ru/rss/last24"
//	  right:
//	    name: "Top 7"
//	    url: "http://lenta.ru/rss/top7"
//	timeout: 30
//	user_agent: "RSS Duo/1.0"
type fileCfg struct {
	Feeds struct {
		Left  fileFeed `yaml:"left"`
		Right fileFeed `yaml:"right"`
	} `yaml:"feeds"`
	Timeout   int    `yaml:"timeout"` // seconds
	UserAgent string `yaml:"user_agent"`
}

type fileFeed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

func parseFile(path string) (*fileCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var fc fileCfg
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if fc.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be non-negative")
	}

	return &fc, nil
}
