package api

import (
	"context"

	"github.com/lysyi3m/rss-duo/app/feed"
)

type NewsLoaderInterface interface {
	Run(ctx context.Context) feed.State
	Sources() (feed.Source, feed.Source)
}

var _ NewsLoaderInterface = (*feed.Loader)(nil)

type Handler struct {
	loader  NewsLoaderInterface
	version string
}

type column struct {
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Articles []feed.Article `json:"articles"`
}

type newsResponse struct {
	State string  `json:"state"`
	Left  *column `json:"left,omitempty"`
	Right *column `json:"right,omitempty"`
	Error string  `json:"error,omitempty"`
	Kind  string  `json:"kind,omitempty"`
}
