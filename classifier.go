package sitetree

// Verdict is the tri-state outcome of classifying a page for the sitemap.
type Verdict int

// Classification verdicts.
const (
	// VerdictUnspecified means the page carries no recognized directive.
	// Unspecified pages are skipped and reported as warnings.
	VerdictUnspecified Verdict = iota

	// VerdictInclude means the page opted into the sitemap.
	VerdictInclude

	// VerdictExclude means the page opted out of the sitemap.
	VerdictExclude
)

// String returns the lowercase name of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictInclude:
		return "include"
	case VerdictExclude:
		return "exclude"
	default:
		return "unspecified"
	}
}

// Classifier decides whether a page belongs in the sitemap. Implementations
// are pure: the same name and content always produce the same verdict.
type Classifier interface {
	// Classify inspects a page's base name and raw content and returns
	// exactly one verdict.
	Classify(name, content string) Verdict
}

// IndexClassifier is the historical presence-based policy: index.html files
// are included and every other page is excluded. Content is ignored and the
// policy never returns VerdictUnspecified, so it produces no warnings.
type IndexClassifier struct{}

// Classify implements Classifier.
func (IndexClassifier) Classify(name, _ string) Verdict {
	if name == "index.html" {
		return VerdictInclude
	}
	return VerdictExclude
}
