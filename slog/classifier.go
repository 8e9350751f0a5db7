// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/kwrobel/sitetree"
)

// Ensure LoggingClassifier implements sitetree.Classifier.
var _ sitetree.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with per-page debug logging.
type LoggingClassifier struct {
	next   sitetree.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next sitetree.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the verdict.
func (c *LoggingClassifier) Classify(name, content string) (verdict sitetree.Verdict) {
	defer func(begin time.Time) {
		c.logger.Debug("page classified",
			"name", name,
			"verdict", verdict.String(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Classify(name, content)
}
