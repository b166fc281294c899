package client

import (
	"fmt"
	"strings"

	"fastwrite/internal/models"
)

// OfflineMarker opens every offline placeholder document.
const OfflineMarker = "# Documentation Generated Offline"

// FailureMarker opens every error report document.
const FailureMarker = "# Documentation Generation Failed"

const noTextContent = "No text content was generated."

// BuildResult maps a successful response onto a DocumentationResult. The boolean is
// false when neither text field carries content; callers then fall back to
// OfflineDocument.
func BuildResult(resp *models.GenerationResponse) (models.DocumentationResult, bool) {
	if resp == nil || (resp.TextContent == "" && resp.Documentation == "") {
		return models.DocumentationResult{}, false
	}
	return models.DocumentationResult{
		TextContent:   firstNonEmpty(resp.TextContent, resp.Documentation, noTextContent),
		VisualContent: firstNonEmpty(resp.VisualContent, resp.Diagram, ""),
	}, true
}

// OfflineDocument is the placeholder produced when the endpoint answers without content.
// source describes the original project, e.g. "the repository at https://...".
func OfflineDocument(source string) models.DocumentationResult {
	if strings.TrimSpace(source) == "" {
		source = "the uploaded code"
	}
	var b strings.Builder
	b.WriteString(OfflineMarker + "\n\n")
	b.WriteString("## Project Overview\n\n")
	fmt.Fprintf(&b, "This is an offline documentation of %s.\n\n", source)
	b.WriteString("## Features\n\n- Feature 1\n- Feature 2\n- Feature 3\n\n")
	b.WriteString("## Implementation Details\n\n")
	b.WriteString("This documentation was generated offline due to API connectivity issues. ")
	b.WriteString("Please try again later for a complete documentation.")
	return models.DocumentationResult{TextContent: b.String()}
}

// ErrorReport embeds a failure message together with generic troubleshooting steps.
func ErrorReport(message string) models.DocumentationResult {
	if strings.TrimSpace(message) == "" {
		message = unknownFaultFallback
	}
	var b strings.Builder
	b.WriteString(FailureMarker + "\n\n")
	b.WriteString("## Error Information\n\n")
	fmt.Fprintf(&b, "Failed to generate documentation: %s\n\n", message)
	b.WriteString("## Troubleshooting\n\n")
	b.WriteString("- Check your internet connection\n")
	b.WriteString("- Verify your API key is correct\n")
	b.WriteString("- Try a different AI provider\n")
	b.WriteString("- The API service might be temporarily unavailable\n\n")
	b.WriteString("## Next Steps\n\n")
	b.WriteString("You can try again later or contact support if the issue persists.")
	return models.DocumentationResult{TextContent: b.String()}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
