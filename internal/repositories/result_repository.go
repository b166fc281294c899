package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fastwrite/internal/models"
)

// ResultKey is the single key the latest documentation result lives under.
const ResultKey = "documentationResult"

type ResultRepository interface {
	Get(ctx context.Context) (*models.DocumentationResult, string, error)
	Save(ctx context.Context, result models.DocumentationResult, outcome string) error
	Delete(ctx context.Context) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Get returns nil when no result has been stored yet.
func (r *resultRepository) Get(ctx context.Context) (*models.DocumentationResult, string, error) {
	var stored models.StoredResult
	if err := r.db.WithContext(ctx).Where("result_key = ?", ResultKey).Take(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}
	var result models.DocumentationResult
	if err := json.Unmarshal([]byte(stored.Payload), &result); err != nil {
		return nil, "", fmt.Errorf("decode stored result: %w", err)
	}
	return &result, stored.Outcome, nil
}

// Save overwrites any previous result.
func (r *resultRepository) Save(ctx context.Context, result models.DocumentationResult, outcome string) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	record := models.StoredResult{
		Key:     ResultKey,
		Payload: string(payload),
		Outcome: outcome,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "result_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "outcome", "updated_at"}),
	}).Create(&record).Error
}

func (r *resultRepository) Delete(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("result_key = ?", ResultKey).Delete(&models.StoredResult{}).Error
}
