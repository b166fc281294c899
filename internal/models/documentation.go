package models

import "time"

// DocumentationResult is the single displayable artifact of a submission attempt.
type DocumentationResult struct {
	TextContent   string `json:"textContent"`
	VisualContent string `json:"visualContent"`
}

// StoredResult persists the latest DocumentationResult for the results view.
type StoredResult struct {
	Key       string `gorm:"column:result_key;primaryKey;size:100"`
	Payload   string `gorm:"type:text;not null"`
	Outcome   string `gorm:"size:50"`
	UpdatedAt time.Time
}
