package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fastwrite/internal/models"
)

type databaseSessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewDatabaseSessionRepository keeps snapshots in sqlite so consecutive CLI
// invocations share a session. Expired rows read as absent and are purged on save.
func NewDatabaseSessionRepository(db *gorm.DB, ttl time.Duration) SessionRepository {
	return &databaseSessionRepository{db: db, ttl: ttl, now: time.Now}
}

func (r *databaseSessionRepository) Load(ctx context.Context, sessionID string) ([]byte, bool, error) {
	var snap models.SessionSnapshot
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", sessionID, r.now()).
		Take(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(snap.Data), true, nil
}

func (r *databaseSessionRepository) Save(ctx context.Context, sessionID string, data []byte) error {
	now := r.now()
	snap := models.SessionSnapshot{
		SessionID: sessionID,
		Data:      string(data),
		ExpiresAt: now.Add(r.ttl),
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at <= ?", now).Delete(&models.SessionSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
		}).Create(&snap).Error
	})
}

func (r *databaseSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.SessionSnapshot{}).Error
}
