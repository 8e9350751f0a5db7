package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kwrobel/sitetree"
)

// Classifier reads sitemap directives from page markup. A page opts in or
// out of the exported tree through a meta tag naming "sitemap":
//
//	<meta name="sitemap" content="include">
//	<meta name="sitemap" content="exclude">
//
// The markup is parsed structurally rather than scanned for text, so
// attribute order, quoting style, self-closing syntax, and letter case
// never affect the verdict.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify implements sitetree.Classifier. A page carrying both directives
// is included: include wins the tie by contract. Unparseable markup and
// unrecognized directive values yield VerdictUnspecified.
func (c *Classifier) Classify(_, content string) sitetree.Verdict {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return sitetree.VerdictUnspecified
	}

	include, exclude := false, false
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		if !strings.EqualFold(name, "sitemap") {
			return
		}
		value, exists := s.Attr("content")
		if !exists {
			return
		}
		switch strings.ToLower(value) {
		case "include":
			include = true
		case "exclude":
			exclude = true
		}
	})

	switch {
	case include:
		return sitetree.VerdictInclude
	case exclude:
		return sitetree.VerdictExclude
	default:
		return sitetree.VerdictUnspecified
	}
}
