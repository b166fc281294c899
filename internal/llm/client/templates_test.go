package client

import (
	"strings"
	"testing"

	"fastwrite/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildResult(t *testing.T) {
	cases := []struct {
		name     string
		resp     *models.GenerationResponse
		ok       bool
		expected models.DocumentationResult
	}{
		{"nil", nil, false, models.DocumentationResult{}},
		{"empty", &models.GenerationResponse{}, false, models.DocumentationResult{}},
		{"visual only", &models.GenerationResponse{VisualContent: "graph"}, false, models.DocumentationResult{}},
		{"primary", &models.GenerationResponse{TextContent: "# Doc"}, true, models.DocumentationResult{TextContent: "# Doc"}},
		{"alternate", &models.GenerationResponse{Documentation: "# Alt", Diagram: "graph LR"}, true,
			models.DocumentationResult{TextContent: "# Alt", VisualContent: "graph LR"}},
		{"primary preferred", &models.GenerationResponse{
			TextContent: "# Primary", Documentation: "# Alt", VisualContent: "v1", Diagram: "v2",
		}, true, models.DocumentationResult{TextContent: "# Primary", VisualContent: "v1"}},
		{"mixed variants", &models.GenerationResponse{Documentation: "# Alt", VisualContent: "v1"}, true,
			models.DocumentationResult{TextContent: "# Alt", VisualContent: "v1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BuildResult(tc.resp)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOfflineDocument(t *testing.T) {
	doc := OfflineDocument("the repository at https://example.com/org/repo")
	assert.True(t, strings.HasPrefix(doc.TextContent, OfflineMarker))
	assert.Contains(t, doc.TextContent, "https://example.com/org/repo")
	assert.Empty(t, doc.VisualContent)

	assert.Contains(t, OfflineDocument(" ").TextContent, "the uploaded code")
}

func TestErrorReport(t *testing.T) {
	doc := ErrorReport("Rate limit exceeded. Please try again later.")
	assert.True(t, strings.HasPrefix(doc.TextContent, FailureMarker))
	assert.Contains(t, doc.TextContent, "Failed to generate documentation: Rate limit exceeded.")
	assert.Contains(t, doc.TextContent, "## Troubleshooting")

	assert.Contains(t, ErrorReport("").TextContent, "Failed to generate documentation: Unknown error")
}

func TestAsSubmissionError_KeepsUnionMembers(t *testing.T) {
	var err error = &ServerError{StatusCode: 500}
	assert.Same(t, err, AsSubmissionError(err))
	assert.Nil(t, AsSubmissionError(nil))
	assert.Equal(t, KindUnknown, AsSubmissionError(assert.AnError).Kind())
}
