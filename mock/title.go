package mock

import "github.com/kwrobel/sitetree"

var _ sitetree.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of sitetree.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(content string) (string, bool)
}

func (e *TitleExtractor) ExtractTitle(content string) (string, bool) {
	return e.ExtractTitleFn(content)
}
