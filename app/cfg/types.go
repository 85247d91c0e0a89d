package cfg

import (
	"time"

	"github.com/lysyi3m/rss-duo/app/feed"
)

type Cfg struct {
	// Feeds
	LeftFeedURL   string
	LeftFeedName  string
	RightFeedURL  string
	RightFeedName string

	// Fetching
	Timeout   time.Duration
	UserAgent string

	// Application
	Serve   bool
	Port    string
	LogFile string
	Debug   bool
	Version string
}

func (c *Cfg) LeftSource() feed.Source {
	return feed.Source{Name: c.LeftFeedName, URL: c.LeftFeedURL}
}

func (c *Cfg) RightSource() feed.Source {
	return feed.Source{Name: c.RightFeedName, URL: c.RightFeedURL}
}
