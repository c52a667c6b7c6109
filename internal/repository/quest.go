package repository

import (
	"context"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestRepository interface {
	Create(ctx context.Context, data *entity.Quest) error
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
	GetList(ctx context.Context) ([]entity.Quest, error)
	UpdateByID(ctx context.Context, id string, data *entity.Quest) error
	UpdateAutoClaimByID(ctx context.Context, id string, autoClaim bool) error
	DeleteByID(ctx context.Context, id string) error
}

type questRepository struct{}

func NewQuestRepository() *questRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, data *entity.Quest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	var record entity.Quest
	err := xcontext.DB(ctx).
		Preload("Reward").
		Take(&record, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *questRepository) GetList(ctx context.Context) ([]entity.Quest, error) {
	var records []entity.Quest
	err := xcontext.DB(ctx).
		Preload("Reward").
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *questRepository) UpdateByID(ctx context.Context, id string, data *entity.Quest) error {
	updateMap := map[string]any{}
	if data.RewardID != "" {
		updateMap["reward_id"] = data.RewardID
	}

	if data.Title != "" {
		updateMap["title"] = data.Title
	}

	if data.Description != nil {
		updateMap["description"] = data.Description
	}

	if data.Streak != 0 {
		updateMap["streak"] = data.Streak
	}

	if data.Duplication != 0 {
		updateMap["duplication"] = data.Duplication
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.Quest{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *questRepository) UpdateAutoClaimByID(ctx context.Context, id string, autoClaim bool) error {
	return xcontext.DB(ctx).Model(&entity.Quest{}).
		Where("id=?", id).
		Update("auto_claim", autoClaim).Error
}

func (r *questRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Quest{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
