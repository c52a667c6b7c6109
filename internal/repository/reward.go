package repository

import (
	"context"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RewardRepository interface {
	Create(ctx context.Context, data *entity.Reward) error
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	GetList(ctx context.Context) ([]entity.Reward, error)
	UpdateByID(ctx context.Context, id string, data *entity.Reward) error
	DeleteByID(ctx context.Context, id string) error
	CountQuestsUsing(ctx context.Context, id string) (int64, error)
}

type rewardRepository struct{}

func NewRewardRepository() *rewardRepository {
	return &rewardRepository{}
}

func (r *rewardRepository) Create(ctx context.Context, data *entity.Reward) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	var record entity.Reward
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *rewardRepository) GetList(ctx context.Context) ([]entity.Reward, error) {
	var records []entity.Reward
	if err := xcontext.DB(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateByID replaces every updatable field of the reward. Partial updates
// are not supported, callers send the whole reward.
func (r *rewardRepository) UpdateByID(ctx context.Context, id string, data *entity.Reward) error {
	return xcontext.DB(ctx).Model(&entity.Reward{}).
		Where("id=?", id).
		Updates(map[string]any{
			"name":     data.Name,
			"item":     data.Item,
			"quantity": data.Quantity,
		}).Error
}

func (r *rewardRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Reward{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *rewardRepository) CountQuestsUsing(ctx context.Context, id string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Quest{}).
		Where("reward_id=?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
