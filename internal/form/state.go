// Package form holds the pure state transitions of the documentation request form.
package form

import (
	"strings"

	"fastwrite/internal/models"
)

const DefaultProvider = "google"

var defaultReportSections = []string{"abstract", "introduction", "methodology"}

// Defaults returns the state a fresh session starts with. defaultModel is the
// first catalog model of DefaultProvider.
func Defaults(defaultModel string) models.FormState {
	return models.FormState{
		SourceType:       models.SourceRepository,
		ProviderID:       DefaultProvider,
		ModelID:          defaultModel,
		CodeSectionIDs:   nil,
		ReportSectionIDs: append([]string(nil), defaultReportSections...),
		LiteratureMode:   models.LiteratureAuto,
	}
}

// Event is a single user interaction with the form.
type Event interface {
	apply(s *models.FormState)
}

type SourceTypeSelected struct{ SourceType models.SourceType }
type RepositoryURLChanged struct{ URL string }
type ArchiveSelected struct{ Archive models.ArchiveHandle }
type ArchiveCleared struct{}
type DescriptionChanged struct{ Description string }

// ProviderSelected switches provider and resets the model to DefaultModelID.
type ProviderSelected struct {
	ProviderID     string
	DefaultModelID string
}

type ModelSelected struct{ ModelID string }

type CodeSectionToggled struct {
	ID      string
	Checked bool
}

type ReportSectionToggled struct {
	ID      string
	Checked bool
}

type CodeSectionsReplaced struct{ IDs []string }
type ReportSectionsReplaced struct{ IDs []string }
type LiteratureModeSelected struct{ Mode models.LiteratureMode }
type ManualReferencesChanged struct{ References string }

// Reset replaces the whole state, e.g. with Defaults.
type Reset struct{ State models.FormState }

// Apply returns the state after evt. The input is never modified.
func Apply(state models.FormState, evt Event) models.FormState {
	next := state.Clone()
	if evt != nil {
		evt.apply(&next)
	}
	return next
}

func (e SourceTypeSelected) apply(s *models.FormState) {
	if e.SourceType.Valid() {
		s.SourceType = e.SourceType
	}
}

func (e RepositoryURLChanged) apply(s *models.FormState) { s.RepositoryURL = e.URL }

// Picking an archive also switches the source to archive.
func (e ArchiveSelected) apply(s *models.FormState) {
	archive := e.Archive
	s.Archive = &archive
	s.SourceType = models.SourceArchive
}

func (ArchiveCleared) apply(s *models.FormState) { s.Archive = nil }

func (e DescriptionChanged) apply(s *models.FormState) { s.Description = e.Description }

func (e ProviderSelected) apply(s *models.FormState) {
	s.ProviderID = strings.TrimSpace(e.ProviderID)
	s.ModelID = e.DefaultModelID
}

func (e ModelSelected) apply(s *models.FormState) { s.ModelID = strings.TrimSpace(e.ModelID) }

func (e CodeSectionToggled) apply(s *models.FormState) {
	s.CodeSectionIDs = toggle(s.CodeSectionIDs, e.ID, e.Checked)
}

func (e ReportSectionToggled) apply(s *models.FormState) {
	s.ReportSectionIDs = toggle(s.ReportSectionIDs, e.ID, e.Checked)
}

func (e CodeSectionsReplaced) apply(s *models.FormState) { s.CodeSectionIDs = dedupe(e.IDs) }

func (e ReportSectionsReplaced) apply(s *models.FormState) { s.ReportSectionIDs = dedupe(e.IDs) }

func (e LiteratureModeSelected) apply(s *models.FormState) {
	if e.Mode.Valid() {
		s.LiteratureMode = e.Mode
	}
}

func (e ManualReferencesChanged) apply(s *models.FormState) { s.ManualReferences = e.References }

func (e Reset) apply(s *models.FormState) { *s = e.State.Clone() }

func toggle(ids []string, id string, checked bool) []string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ids
	}
	out := make([]string, 0, len(ids)+1)
	present := false
	for _, existing := range ids {
		if existing == id {
			present = true
			if !checked {
				continue
			}
		}
		out = append(out, existing)
	}
	if checked && !present {
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// dedupe trims ids, drops blanks and duplicates, and keeps first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
