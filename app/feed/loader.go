package feed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type FetcherInterface interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

type ParserInterface interface {
	Run(data []byte) (*Metadata, []Article, error)
}

var (
	_ FetcherInterface = (*Fetcher)(nil)
	_ ParserInterface  = (*Parser)(nil)
)

// Loader fetches and normalizes the left and right feeds of the home screen.
type Loader struct {
	fetcher FetcherInterface
	parser  ParserInterface
	left    Source
	right   Source
}

// NewLoader creates a new loader for the left and right feeds.
func NewLoader(fetcher FetcherInterface, parser ParserInterface, left, right Source) *Loader {
	return &Loader{
		fetcher: fetcher,
		parser:  parser,
		left:    left,
		right:   right,
	}
}

// Sources returns the left and right feeds.
func (l *Loader) Sources() (Source, Source) {
	return l.left, l.right
}

// Run issues both requests before waiting on either and returns Ready only
// when both sides succeed. The first failure on either side wins; the other
// side is cancelled because its result would be thrown away.
func (l *Loader) Run(ctx context.Context) State {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	var left, right []Article

	g.Go(func() error {
		articles, err := l.load(gctx, l.left)
		left = articles
		return err
	})

	g.Go(func() error {
		articles, err := l.load(gctx, l.right)
		right = articles
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("News load failed", "error", err, "kind", errorKind(err), "duration", time.Since(start))
		return Failed{Message: err.Error(), Err: err}
	}

	slog.Info("News loaded",
		"left", l.left.Name,
		"left_items", len(left),
		"right", l.right.Name,
		"right_items", len(right),
		"duration", time.Since(start))

	return Ready{Left: left, Right: right}
}

func (l *Loader) load(ctx context.Context, source Source) ([]Article, error) {
	data, err := l.fetcher.Run(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	metadata, articles, err := l.parser.Run(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) && parseErr.URL == "" {
			parseErr.URL = source.URL
			return nil, parseErr
		}
		return nil, err
	}

	if metadata != nil {
		slog.Debug("Feed parsed", "feed", source.Name, "title", metadata.Title, "items", len(articles))
	}

	if articles == nil {
		articles = []Article{}
	}

	return articles, nil
}

func errorKind(err error) string {
	var netErr *NetworkError
	var parseErr *ParseError

	switch {
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "unknown"
	}
}
