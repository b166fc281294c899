package prompt

import (
	"strings"
	"testing"

	"fastwrite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		Description:      "A CLI that writes docs.",
		SourceType:       models.SourceRepository,
		CodeSectionIDs:   []string{"code_overview", "api_endpoints"},
		ReportSectionIDs: []string{"abstract"},
		LiteratureMode:   models.LiteratureAuto,
	}
}

func TestCompile_IsDeterministic(t *testing.T) {
	inputs := []Input{
		{},
		baseInput(),
		{SourceType: models.SourceArchive, ReportSectionIDs: []string{LiteratureSurveyID}, LiteratureMode: models.LiteratureManual, ManualReferences: "arXiv:2303.08774"},
	}
	for _, in := range inputs {
		assert.Equal(t, Compile(in), Compile(in))
	}
}

func TestCompile_FullLayout(t *testing.T) {
	got := Compile(baseInput())

	expected := strings.Join([]string{
		persona,
		"",
		"Project Description:",
		"A CLI that writes docs.",
		"",
		"Source code from the repository",
		"",
		"Generate the following code documentation sections:",
		"- Code Overview",
		"- API Endpoints",
		"",
		"Generate the following academic report sections:",
		"- Abstract",
		"",
		"",
		"",
		visualizationText,
		"",
		closingInstruction,
	}, "\n")
	assert.Equal(t, expected, got)
}

func TestCompile_EmptyFormUsesPlaceholders(t *testing.T) {
	got := Compile(Input{})

	assert.Contains(t, got, noDescription)
	assert.Contains(t, got, repositorySource)
	assert.Contains(t, got, noCodeSections)
	assert.Contains(t, got, noReportSections)
	assert.Contains(t, got, "Mermaid.js")
	assert.Contains(t, got, "code snippets")
	assert.Equal(t, strings.TrimSpace(got), got)
}

func TestCompile_NoneSelectedSides(t *testing.T) {
	onlyReport := Compile(Input{ReportSectionIDs: []string{"abstract", "conclusion"}})
	assert.Contains(t, onlyReport, noCodeSections)
	assert.Contains(t, onlyReport, "- Abstract\n- Conclusion")
	assert.NotContains(t, onlyReport, noReportSections)

	onlyCode := Compile(Input{CodeSectionIDs: []string{"setup_guide"}})
	assert.Contains(t, onlyCode, noReportSections)
	assert.Contains(t, onlyCode, "- Setup Guide")
	assert.NotContains(t, onlyCode, noCodeSections)
}

func TestCompile_UnknownIDsPassThrough(t *testing.T) {
	got := Compile(Input{CodeSectionIDs: []string{"quantum_audit"}, ReportSectionIDs: []string{"appendix"}})
	assert.Contains(t, got, "- quantum_audit")
	assert.Contains(t, got, "- appendix")
}

func TestCompile_ArchiveSourceSentence(t *testing.T) {
	in := baseInput()
	in.SourceType = models.SourceArchive
	got := Compile(in)
	assert.Contains(t, got, archiveSource)
	assert.NotContains(t, got, repositorySource+"\n")
}

func TestCompile_LiteratureOnlyWhenSurveySelected(t *testing.T) {
	for _, mode := range []models.LiteratureMode{models.LiteratureAuto, models.LiteratureManual, ""} {
		in := baseInput()
		in.LiteratureMode = mode
		in.ManualReferences = "doe2023comprehensive"
		got := Compile(in)
		assert.NotContains(t, got, literatureLinePrefix, "mode %q", mode)
		assert.NotContains(t, got, "doe2023comprehensive")
	}
}

func TestCompile_LiteratureAuto(t *testing.T) {
	in := baseInput()
	in.ReportSectionIDs = []string{"abstract", LiteratureSurveyID}
	got := Compile(in)
	assert.Contains(t, got, "\n\n\n"+literatureLinePrefix+literatureAuto)
	assert.NotContains(t, got, literatureManual)
}

func TestCompile_LiteratureManual(t *testing.T) {
	in := baseInput()
	in.ReportSectionIDs = []string{LiteratureSurveyID}
	in.LiteratureMode = models.LiteratureManual
	in.ManualReferences = "  arXiv:2303.08774\n\n doe2023comprehensive \n"

	got := Compile(in)
	require.Contains(t, got, literatureLinePrefix+literatureManual)
	assert.Contains(t, got, "References:\n- arXiv:2303.08774\n- doe2023comprehensive")
	assert.NotContains(t, got, "arXiv for relevant papers")
}

func TestCompile_LiteratureManualWithoutReferences(t *testing.T) {
	in := baseInput()
	in.ReportSectionIDs = []string{LiteratureSurveyID}
	in.LiteratureMode = models.LiteratureManual

	got := Compile(in)
	assert.Contains(t, got, literatureManual)
	assert.NotContains(t, got, "References:")
}

func TestCompileState_MatchesCompile(t *testing.T) {
	state := models.FormState{
		SourceType:       models.SourceRepository,
		RepositoryURL:    "https://example.com/org/repo",
		ProviderID:       "google",
		ModelID:          "gemini-2.0-flash",
		Description:      "desc",
		CodeSectionIDs:   []string{"code_overview"},
		ReportSectionIDs: []string{"abstract"},
		LiteratureMode:   models.LiteratureAuto,
	}
	assert.Equal(t, Compile(FromState(state)), CompileState(state))

	// Fields the compiler ignores do not change the prompt.
	other := state
	other.RepositoryURL = "https://example.com/other/repo"
	other.ProviderID = "openai"
	assert.Equal(t, CompileState(state), CompileState(other))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Literature Survey", ReportLabel(LiteratureSurveyID))
	assert.Equal(t, "Data Flow Description", CodeLabel("data_flow"))
	assert.Equal(t, "mystery", CodeLabel("mystery"))
	assert.Len(t, CodeSections(), 11)
	assert.Len(t, ReportSections(), 9)
}
