package repository

import (
	"context"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserQuestRepository interface {
	Create(ctx context.Context, data *entity.UserQuest) error
	GetLatest(ctx context.Context, userID, questID string) (*entity.UserQuest, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.UserQuest, error)
	Count(ctx context.Context, userID, questID string) (int64, error)
	UpdateByID(ctx context.Context, id string, status entity.UserQuestStatusType, progress int) error
}

type userQuestRepository struct{}

func NewUserQuestRepository() *userQuestRepository {
	return &userQuestRepository{}
}

func (r *userQuestRepository) Create(ctx context.Context, data *entity.UserQuest) error {
	return xcontext.DB(ctx).Create(data).Error
}

// GetLatest returns the most recent assignment of questID to userID. A user
// can hold several assignments of the same quest, only the newest one is
// still actionable.
func (r *userQuestRepository) GetLatest(ctx context.Context, userID, questID string) (*entity.UserQuest, error) {
	var record entity.UserQuest
	err := xcontext.DB(ctx).
		Where("user_id=? AND quest_id=?", userID, questID).
		Order("created_at DESC").
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userQuestRepository) GetByUserID(ctx context.Context, userID string) ([]entity.UserQuest, error) {
	var records []entity.UserQuest
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *userQuestRepository) Count(ctx context.Context, userID, questID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Where("user_id=? AND quest_id=?", userID, questID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *userQuestRepository) UpdateByID(
	ctx context.Context, id string, status entity.UserQuestStatusType, progress int,
) error {
	tx := xcontext.DB(ctx).Model(&entity.UserQuest{}).
		Where("id=?", id).
		Updates(map[string]any{
			"status":   status,
			"progress": progress,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
