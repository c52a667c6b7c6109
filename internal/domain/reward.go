package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/enum"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RewardDomain interface {
	CreateReward(context.Context, *model.CreateRewardRequest) (*model.CreateRewardResponse, error)
	GetReward(context.Context, *model.GetRewardRequest) (*model.GetRewardResponse, error)
	GetListReward(context.Context, *model.GetListRewardRequest) (*model.GetListRewardResponse, error)
	UpdateReward(context.Context, *model.UpdateRewardRequest) (*model.UpdateRewardResponse, error)
	DeleteReward(context.Context, *model.DeleteRewardRequest) (*model.DeleteRewardResponse, error)
}

type rewardDomain struct {
	rewardRepo repository.RewardRepository
}

func NewRewardDomain(rewardRepo repository.RewardRepository) *rewardDomain {
	return &rewardDomain{rewardRepo: rewardRepo}
}

func (d *rewardDomain) CreateReward(
	ctx context.Context, req *model.CreateRewardRequest,
) (*model.CreateRewardResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty reward name")
	}

	if req.Quantity == 0 {
		return nil, errorx.New(errorx.BadRequest, "Reward quantity must be positive")
	}

	item, err := enum.ToEnum[entity.RewardItemType](req.Item)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid reward item %s", req.Item)
	}

	reward := &entity.Reward{
		Base:     entity.Base{ID: uuid.NewString()},
		Name:     req.Name,
		Item:     item,
		Quantity: req.Quantity,
	}

	if err := d.rewardRepo.Create(ctx, reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateRewardResponse(model.ConvertReward(reward))
	return &resp, nil
}

func (d *rewardDomain) GetReward(
	ctx context.Context, req *model.GetRewardRequest,
) (*model.GetRewardResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	reward, err := d.rewardRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetRewardResponse(model.ConvertReward(reward))
	return &resp, nil
}

func (d *rewardDomain) GetListReward(
	ctx context.Context, req *model.GetListRewardRequest,
) (*model.GetListRewardResponse, error) {
	rewards, err := d.rewardRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of rewards: %v", err)
		return nil, errorx.Unknown
	}

	modelRewards := []model.Reward{}
	for i := range rewards {
		modelRewards = append(modelRewards, model.ConvertReward(&rewards[i]))
	}

	return &model.GetListRewardResponse{Rewards: modelRewards}, nil
}

func (d *rewardDomain) UpdateReward(
	ctx context.Context, req *model.UpdateRewardRequest,
) (*model.UpdateRewardResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	if _, err := d.rewardRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty reward name")
	}

	if req.Quantity == 0 {
		return nil, errorx.New(errorx.BadRequest, "Reward quantity must be positive")
	}

	item, err := enum.ToEnum[entity.RewardItemType](req.Item)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid reward item %s", req.Item)
	}

	err = d.rewardRepo.UpdateByID(ctx, req.ID, &entity.Reward{
		Name:     req.Name,
		Item:     item,
		Quantity: req.Quantity,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update reward: %v", err)
		return nil, errorx.Unknown
	}

	reward, err := d.rewardRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reward after update: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateRewardResponse(model.ConvertReward(reward))
	return &resp, nil
}

func (d *rewardDomain) DeleteReward(
	ctx context.Context, req *model.DeleteRewardRequest,
) (*model.DeleteRewardResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	count, err := d.rewardRepo.CountQuestsUsing(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count quests using reward: %v", err)
		return nil, errorx.Unknown
	}

	if count > 0 {
		return nil, errorx.New(errorx.BadRequest,
			"Cannot delete reward that is linked to existing quests")
	}

	if err := d.rewardRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete reward: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteRewardResponse{}, nil
}
