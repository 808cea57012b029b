package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
)

func TestAttemptReadsOpenGraphTags(t *testing.T) {
	doc := core.RawDocument{
		Kind: core.KindHTML,
		Body: `<html><head>
			<title>Tacos al Pastor | Example Cooking</title>
			<meta property="og:title" content="Tacos al Pastor">
			<meta property="og:description" content="Marinated pork tacos.">
			<meta property="og:image" content="https://example.com/tacos.jpg">
		</head><body></body></html>`,
	}

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Tacos al Pastor", frag.Title)
	assert.Equal(t, "Marinated pork tacos.", frag.Description)
	assert.Equal(t, []string{"https://example.com/tacos.jpg"}, frag.ImageURLs)
}

func TestAttemptTitleTagFallback(t *testing.T) {
	doc := core.RawDocument{
		Kind: core.KindHTML,
		Body: `<html><head><title>  Weeknight Chili  </title></head><body></body></html>`,
	}

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Weeknight Chili", frag.Title)
	assert.Empty(t, frag.Description)
	assert.Empty(t, frag.ImageURLs)
}

func TestAttemptEmptyPageYieldsEmptyFragment(t *testing.T) {
	doc := core.RawDocument{Kind: core.KindHTML, Body: `<html><body></body></html>`}

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.False(t, frag.HasContent())
	assert.Empty(t, frag.Title)
}
