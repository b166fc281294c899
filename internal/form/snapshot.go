package form

import (
	"encoding/json"
	"fmt"

	"fastwrite/internal/models"

	"github.com/kaptinlin/jsonrepair"
)

// Wire values used by the web form for the source type.
const (
	snapshotRepository = "github"
	snapshotArchive    = "zip"
)

// ToSnapshot captures every serializable field. The archive handle is left out.
func ToSnapshot(state models.FormState) models.FormSnapshot {
	sourceType := snapshotRepository
	if state.SourceType == models.SourceArchive {
		sourceType = snapshotArchive
	}
	code := append([]string{}, state.CodeSectionIDs...)
	report := append([]string{}, state.ReportSectionIDs...)
	literature := string(state.LiteratureMode)
	return models.FormSnapshot{
		SourceType:       &sourceType,
		RepositoryURL:    strPtr(state.RepositoryURL),
		Description:      strPtr(state.Description),
		ProviderID:       strPtr(state.ProviderID),
		ModelID:          strPtr(state.ModelID),
		CodeSectionIDs:   &code,
		ReportSectionIDs: &report,
		LiteratureMode:   &literature,
		ManualReferences: strPtr(state.ManualReferences),
	}
}

// Marshal serializes the snapshot of state.
func Marshal(state models.FormState) ([]byte, error) {
	data, err := json.Marshal(ToSnapshot(state))
	if err != nil {
		return nil, fmt.Errorf("marshal form snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a stored snapshot. Malformed JSON gets one repair attempt
// before giving up; repaired reports whether that happened.
func Unmarshal(data []byte) (snap models.FormSnapshot, repaired bool, err error) {
	if err = json.Unmarshal(data, &snap); err == nil {
		return snap, false, nil
	}
	fixed, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return models.FormSnapshot{}, false, fmt.Errorf("decode form snapshot: %w", err)
	}
	snap = models.FormSnapshot{}
	if err := json.Unmarshal([]byte(fixed), &snap); err != nil {
		return models.FormSnapshot{}, false, fmt.Errorf("decode repaired form snapshot: %w", err)
	}
	return snap, true, nil
}

// ApplySnapshot overlays every present field of snap onto state. Absent fields and
// values outside the known enums are skipped.
func ApplySnapshot(state models.FormState, snap models.FormSnapshot) models.FormState {
	next := state.Clone()
	if snap.SourceType != nil {
		switch *snap.SourceType {
		case snapshotRepository, string(models.SourceRepository):
			next.SourceType = models.SourceRepository
		case snapshotArchive, string(models.SourceArchive):
			next.SourceType = models.SourceArchive
		}
	}
	if snap.RepositoryURL != nil {
		next.RepositoryURL = *snap.RepositoryURL
	}
	if snap.Description != nil {
		next.Description = *snap.Description
	}
	if snap.ProviderID != nil {
		next.ProviderID = *snap.ProviderID
	}
	if snap.ModelID != nil {
		next.ModelID = *snap.ModelID
	}
	if snap.CodeSectionIDs != nil {
		next.CodeSectionIDs = dedupe(*snap.CodeSectionIDs)
	}
	if snap.ReportSectionIDs != nil {
		next.ReportSectionIDs = dedupe(*snap.ReportSectionIDs)
	}
	if snap.LiteratureMode != nil {
		if mode := models.LiteratureMode(*snap.LiteratureMode); mode.Valid() {
			next.LiteratureMode = mode
		}
	}
	if snap.ManualReferences != nil {
		next.ManualReferences = *snap.ManualReferences
	}
	return next
}

func strPtr(s string) *string { return &s }
