package sitetree

import (
	"regexp"
	"strings"
)

// TitleExtractor pulls a display title out of raw page content.
type TitleExtractor interface {
	// ExtractTitle returns the page title and true when one is present.
	// A missing or blank title returns ("", false); the caller decides
	// the fallback.
	ExtractTitle(content string) (string, bool)
}

// titleRe captures the text between the first title tag pair. The negated
// class keeps a match from spanning line terminators, so an unclosed tag
// cannot swallow the rest of the document; the lazy quantifier stops at the
// first closing tag on the line.
var titleRe = regexp.MustCompile(`(?i)<title>([^\r\n]*?)</title>`)

// TitleTagExtractor extracts the trimmed text between the first
// case-insensitive title tag pair in the document.
type TitleTagExtractor struct{}

// ExtractTitle implements TitleExtractor. Whitespace-only titles count as
// absent.
func (TitleTagExtractor) ExtractTitle(content string) (string, bool) {
	m := titleRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return "", false
	}
	return title, true
}
