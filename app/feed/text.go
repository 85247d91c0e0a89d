package feed

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	blockBreakRe = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>|</h[1-6]>|</blockquote>`)
	spaceRe      = regexp.MustCompile(`[ \t\f\v\r\x{00a0}]+`)
	allSpaceRe   = regexp.MustCompile(`\s+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// TextExtractor turns feed HTML fragments into plain text for the terminal.
type TextExtractor struct {
	policy *bluemonday.Policy
}

func NewTextExtractor() *TextExtractor {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)

	return &TextExtractor{policy: p}
}

// Summary strips markup and collapses all whitespace into single spaces.
func (e *TextExtractor) Summary(fragment string) string {
	if fragment == "" {
		return ""
	}
	text := html.UnescapeString(e.policy.Sanitize(fragment))
	return strings.TrimSpace(allSpaceRe.ReplaceAllString(text, " "))
}

// Body strips markup but keeps paragraph breaks.
func (e *TextExtractor) Body(fragment string) string {
	if fragment == "" {
		return ""
	}
	marked := blockBreakRe.ReplaceAllString(fragment, "$0\n\n")
	text := html.UnescapeString(e.policy.Sanitize(marked))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
	}

	text = blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}
