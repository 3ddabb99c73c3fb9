package revocation

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "task-manager-api.com/task-manager-api/internal/models"
)

// DatabaseStore is used when no Redis is configured. Expired rows are
// removed by the Janitor.
type DatabaseStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db, now: time.Now}
}

func (s *DatabaseStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	row := &model.RevokedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt.UTC(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

func (s *DatabaseStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.RevokedToken{}).
		Where("token_id = ? AND expires_at > ?", tokenID, s.now().UTC()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}

	return count > 0, nil
}

// PurgeExpired deletes revocations whose token could no longer be used anyway.
func (s *DatabaseStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now().UTC()).
		Delete(&model.RevokedToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge revoked tokens: %w", res.Error)
	}

	return res.RowsAffected, nil
}
