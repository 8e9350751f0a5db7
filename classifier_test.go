package sitetree_test

import (
	"testing"

	"github.com/kwrobel/sitetree"
	"github.com/stretchr/testify/assert"
)

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "include", sitetree.VerdictInclude.String())
	assert.Equal(t, "exclude", sitetree.VerdictExclude.String())
	assert.Equal(t, "unspecified", sitetree.VerdictUnspecified.String())
}

func TestIndexClassifier_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want sitetree.Verdict
	}{
		{name: "index page included", file: "index.html", want: sitetree.VerdictInclude},
		{name: "other page excluded", file: "about.html", want: sitetree.VerdictExclude},
		{name: "content never consulted", file: "contact.html", want: sitetree.VerdictExclude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c sitetree.IndexClassifier
			got := c.Classify(tt.file, `<meta name="sitemap" content="include">`)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexClassifier_ImplementsClassifier(t *testing.T) {
	t.Parallel()

	var _ sitetree.Classifier = sitetree.IndexClassifier{}
}
