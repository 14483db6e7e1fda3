package db

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/progress"
	"gorm.io/gorm"
)

// ProgressRepository is the sqlite-backed progress.Store. One row per user;
// saves unconditionally overwrite the previous snapshot.
type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

func (repo *ProgressRepository) Save(ctx context.Context, userID uint, snapshot progress.Snapshot) error {
	encoded, err := json.Marshal(snapshot.Data)
	if err != nil {
		return err
	}

	row := models.OnboardingProgress{
		UserID:    userID,
		Step:      snapshot.Step,
		DataJSON:  string(encoded),
		SessionID: snapshot.SessionID,
		Email:     snapshot.Email,
		SavedAt:   snapshot.SavedAt,
	}

	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.OnboardingProgress
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&row).Error
		case err != nil:
			return err
		default:
			return tx.Model(&models.OnboardingProgress{}).Where("user_id = ?", userID).Updates(map[string]any{
				"step":       row.Step,
				"data_json":  row.DataJSON,
				"session_id": row.SessionID,
				"email":      row.Email,
				"saved_at":   row.SavedAt,
			}).Error
		}
	})
}

func (repo *ProgressRepository) Load(ctx context.Context, userID uint) (progress.Snapshot, error) {
	var row models.OnboardingProgress
	if err := repo.database.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return progress.Snapshot{}, progress.ErrNoSnapshot
		}
		return progress.Snapshot{}, err
	}

	snapshot := progress.Snapshot{
		Step:      row.Step,
		SessionID: row.SessionID,
		Email:     row.Email,
		SavedAt:   row.SavedAt,
	}
	if err := json.Unmarshal([]byte(row.DataJSON), &snapshot.Data); err != nil {
		return progress.Snapshot{}, progress.ErrCorruptSnapshot
	}
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now()
	}
	return snapshot, nil
}

func (repo *ProgressRepository) Clear(ctx context.Context, userID uint) error {
	return repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.OnboardingProgress{}).Error
}
