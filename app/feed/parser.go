package feed

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

var errMissingChannel = errors.New("missing channel element")

// Parser converts raw feed documents into normalized articles.
type Parser struct {
	text *TextExtractor
}

// NewParser creates a new feed parser.
func NewParser() *Parser {
	return &Parser{
		text: NewTextExtractor(),
	}
}

// Run parses an RSS (or Atom) document. Both feeds are parsed concurrently
// and gofeed parsers keep per-document state, so one is built per call.
func (p *Parser) Run(data []byte) (*Metadata, []Article, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &ParseError{Err: err}
	}

	// gofeed accepts <rss> without a <channel> as an empty feed.
	if gofeed.DetectFeedType(bytes.NewReader(data)) == gofeed.FeedTypeRSS && !hasChannel(data) {
		return nil, nil, &ParseError{Err: errMissingChannel}
	}

	metadata := &Metadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	if feed.Image != nil {
		metadata.ImageURL = feed.Image.URL
	}

	return metadata, p.Normalize(feed.Items), nil
}

// Normalize converts parsed items into articles. The result is never nil:
// no items yields an empty slice and a single item a one-element slice.
// Order follows the source document and IDs are unique within the result.
func (p *Parser) Normalize(items []*gofeed.Item) []Article {
	articles := make([]Article, 0, len(items))
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}
		article := p.normalizeItem(item)
		article.ID = uniqueID(article.ID, seen)

		articles = append(articles, article)
	}

	return articles
}

// uniqueID returns id, or the first id~N (N >= 2) not yet in seen, and
// records the result.
func uniqueID(id string, seen map[string]bool) string {
	candidate := id
	for n := 2; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s~%d", id, n)
	}
	seen[candidate] = true
	return candidate
}

func (p *Parser) normalizeItem(item *gofeed.Item) Article {
	guid := strings.TrimSpace(item.GUID)
	link := strings.TrimSpace(item.Link)
	description := p.text.Summary(item.Description)

	article := Article{
		ID:          cmp.Or(guid, link),
		Title:       cmp.Or(p.text.Summary(item.Title), link, "Untitled"),
		Description: description,
		Content:     p.text.Body(item.Content),
		Link:        link,
		PublishedAt: item.PublishedParsed,
	}

	if article.ID == "" {
		article.ID = p.generateID(article.Title, description)
	}

	// RSS 2.0 allows a single enclosure per item; only the first is used.
	if len(item.Enclosures) > 0 && item.Enclosures[0] != nil {
		article.ImageURL = strings.TrimSpace(item.Enclosures[0].URL)
	}

	return article
}

func (p *Parser) generateID(title, description string) string {
	content := fmt.Sprintf("%s|%s", title, description)

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// hasChannel reports whether the document root has a <channel> child.
func hasChannel(data []byte) bool {
	p := xpp.NewXMLPullParser(bytes.NewReader(data), false, charset.NewReaderLabel)

	for {
		event, err := p.Next()
		if err != nil || event == xpp.EndDocument {
			return false
		}
		if event == xpp.StartTag && p.Depth == 2 && strings.EqualFold(p.Name, "channel") {
			return true
		}
	}
}
