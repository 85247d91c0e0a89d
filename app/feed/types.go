package feed

import (
	"time"
)

type Metadata struct {
	Title       string
	Link        string
	Description string
	ImageURL    string
	Language    string
}

// Article is the normalized unit of content shown by both screens.
// It is passed by value and never modified after normalization.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Link        string     `json:"link,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func (a Article) HasImage() bool {
	return a.ImageURL != ""
}

// Body returns the text for the full view: the content when present,
// otherwise the description.
func (a Article) Body() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}

// Source is one of the two configured feeds.
type Source struct {
	Name string
	URL  string
}

// State is the outcome of one loader activation. Exactly one of Loading,
// Failed or Ready.
type State interface {
	isState()
}

type Loading struct{}

type Failed struct {
	Message string
	Err     error
}

type Ready struct {
	Left  []Article
	Right []Article
}

func (Loading) isState() {}
func (Failed) isState()  {}
func (Ready) isState()   {}
