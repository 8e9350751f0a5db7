package mock

import "github.com/kwrobel/sitetree"

var _ sitetree.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of sitetree.Classifier.
type Classifier struct {
	ClassifyFn func(name, content string) sitetree.Verdict
}

func (c *Classifier) Classify(name, content string) sitetree.Verdict {
	return c.ClassifyFn(name, content)
}
