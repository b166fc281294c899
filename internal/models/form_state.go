package models

// SourceType selects where the project source comes from.
type SourceType string

const (
	SourceRepository SourceType = "repository"
	SourceArchive    SourceType = "archive"
)

func (s SourceType) Valid() bool {
	return s == SourceRepository || s == SourceArchive
}

// LiteratureMode controls how references for a literature survey are gathered.
type LiteratureMode string

const (
	LiteratureAuto   LiteratureMode = "auto"
	LiteratureManual LiteratureMode = "manual"
)

func (m LiteratureMode) Valid() bool {
	return m == LiteratureAuto || m == LiteratureManual
}

// ArchiveHandle points at a locally selected source archive. It lives only in memory
// and is never written to the session snapshot.
type ArchiveHandle struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mimeType"`
}

// FormState holds every user selection that feeds a generation request.
type FormState struct {
	SourceType       SourceType     `json:"sourceType"`
	RepositoryURL    string         `json:"repositoryUrl"`
	Archive          *ArchiveHandle `json:"archive,omitempty"`
	Description      string         `json:"description"`
	ProviderID       string         `json:"providerId"`
	ModelID          string         `json:"modelId"`
	CodeSectionIDs   []string       `json:"codeSectionIds"`
	ReportSectionIDs []string       `json:"reportSectionIds"`
	LiteratureMode   LiteratureMode `json:"literatureMode"`
	ManualReferences string         `json:"manualReferences"`
}

// Clone returns a deep copy so callers can hold a snapshot while the live state changes.
func (f FormState) Clone() FormState {
	out := f
	if f.Archive != nil {
		archive := *f.Archive
		out.Archive = &archive
	}
	out.CodeSectionIDs = append([]string(nil), f.CodeSectionIDs...)
	out.ReportSectionIDs = append([]string(nil), f.ReportSectionIDs...)
	return out
}

// HasReportSection reports whether id is among the selected report sections.
func (f FormState) HasReportSection(id string) bool {
	for _, s := range f.ReportSectionIDs {
		if s == id {
			return true
		}
	}
	return false
}

// FormSnapshot is the session-scoped serialized form. Key names match the web form
// so snapshots written by either front end can be read by the other. Pointer fields
// let hydration tell an absent key from an empty value.
type FormSnapshot struct {
	SourceType       *string   `json:"sourceType,omitempty"`
	RepositoryURL    *string   `json:"githubUrl,omitempty"`
	Description      *string   `json:"projectDescription,omitempty"`
	ProviderID       *string   `json:"selectedAiProvider,omitempty"`
	ModelID          *string   `json:"selectedAiModel,omitempty"`
	CodeSectionIDs   *[]string `json:"selectedCodeSections,omitempty"`
	ReportSectionIDs *[]string `json:"selectedReportSections,omitempty"`
	LiteratureMode   *string   `json:"literatureSource,omitempty"`
	ManualReferences *string   `json:"manualReferences,omitempty"`
}
