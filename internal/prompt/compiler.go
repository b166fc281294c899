// Package prompt renders the natural-language generation request from form selections.
// Everything here is pure: the same input always yields the same prompt.
package prompt

import (
	"strings"

	"fastwrite/internal/models"
)

const (
	persona              = "You are a highly skilled software documentation expert. Generate comprehensive documentation for the following project:"
	noDescription        = "No project description provided."
	repositorySource     = "Source code from the repository"
	archiveSource        = "Source code from the uploaded ZIP file"
	noCodeSections       = "No code documentation sections selected"
	noReportSections     = "No academic report sections selected"
	literatureAuto       = "Automatically search arXiv for relevant papers based on the repository topic."
	literatureManual     = "Use the manually provided references for the literature survey."
	visualizationText    = "Include visual elements such as code structure diagrams, class hierarchy, or data flow visualizations where appropriate. Format any visual output in Mermaid.js format."
	closingInstruction   = "Format the documentation in a clear, professional style with appropriate headings, examples, and references. Include code snippets where relevant to illustrate key concepts."
	literatureLinePrefix = "For literature review: "
)

// Input is the subset of the form the compiler depends on.
type Input struct {
	Description      string
	SourceType       models.SourceType
	CodeSectionIDs   []string
	ReportSectionIDs []string
	LiteratureMode   models.LiteratureMode
	ManualReferences string
}

// FromState extracts the compiler-relevant fields of a form.
func FromState(state models.FormState) Input {
	return Input{
		Description:      state.Description,
		SourceType:       state.SourceType,
		CodeSectionIDs:   state.CodeSectionIDs,
		ReportSectionIDs: state.ReportSectionIDs,
		LiteratureMode:   state.LiteratureMode,
		ManualReferences: state.ManualReferences,
	}
}

// CompileState is Compile(FromState(state)).
func CompileState(state models.FormState) string {
	return Compile(FromState(state))
}

// Compile renders the prompt. Unset fields degrade to explicit "not provided" phrasing.
func Compile(in Input) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(persona)
	b.WriteString("\n\nProject Description:\n")
	if strings.TrimSpace(in.Description) == "" {
		b.WriteString(noDescription)
	} else {
		b.WriteString(in.Description)
	}
	b.WriteString("\n\n")
	b.WriteString(sourceSentence(in.SourceType))

	b.WriteString("\n\nGenerate the following code documentation sections:\n")
	b.WriteString(bulletList(in.CodeSectionIDs, CodeLabel, noCodeSections))

	b.WriteString("\n\nGenerate the following academic report sections:\n")
	b.WriteString(bulletList(in.ReportSectionIDs, ReportLabel, noReportSections))

	b.WriteString("\n\n")
	if text := literatureText(in); text != "" {
		b.WriteString("\n")
		b.WriteString(literatureLinePrefix)
		b.WriteString(text)
	}

	b.WriteString("\n\n")
	b.WriteString(visualizationText)
	b.WriteString("\n\n")
	b.WriteString(closingInstruction)
	b.WriteString("\n")

	return strings.TrimSpace(b.String())
}

func sourceSentence(t models.SourceType) string {
	if t == models.SourceArchive {
		return archiveSource
	}
	return repositorySource
}

func bulletList(ids []string, label func(string) string, empty string) string {
	if len(ids) == 0 {
		return empty
	}
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, "- "+label(id))
	}
	return strings.Join(lines, "\n")
}

// literatureText is empty unless the literature survey section is selected.
func literatureText(in Input) string {
	selected := false
	for _, id := range in.ReportSectionIDs {
		if id == LiteratureSurveyID {
			selected = true
			break
		}
	}
	if !selected {
		return ""
	}
	if in.LiteratureMode != models.LiteratureManual {
		return literatureAuto
	}

	refs := ReferenceLines(in.ManualReferences)
	if len(refs) == 0 {
		return literatureManual
	}
	var b strings.Builder
	b.WriteString(literatureManual)
	b.WriteString("\nReferences:")
	for _, ref := range refs {
		b.WriteString("\n- ")
		b.WriteString(ref)
	}
	return b.String()
}

// ReferenceLines splits pasted references into trimmed, non-empty lines.
func ReferenceLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
