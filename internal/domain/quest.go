package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/questlane/backend/internal/common"
	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/xcontext"
	"github.com/questlane/backend/pkg/xredis"
	"gorm.io/gorm"
)

type QuestDomain interface {
	CreateQuest(context.Context, *model.CreateQuestRequest) (*model.CreateQuestResponse, error)
	GetQuest(context.Context, *model.GetQuestRequest) (*model.GetQuestResponse, error)
	GetListQuest(context.Context, *model.GetListQuestRequest) (*model.GetListQuestResponse, error)
	UpdateQuest(context.Context, *model.UpdateQuestRequest) (*model.UpdateQuestResponse, error)
	DeleteQuest(context.Context, *model.DeleteQuestRequest) (*model.DeleteQuestResponse, error)
}

type questDomain struct {
	questRepo   repository.QuestRepository
	rewardRepo  repository.RewardRepository
	redisClient xredis.Client
}

func NewQuestDomain(
	questRepo repository.QuestRepository,
	rewardRepo repository.RewardRepository,
	redisClient xredis.Client,
) *questDomain {
	return &questDomain{
		questRepo:   questRepo,
		rewardRepo:  rewardRepo,
		redisClient: redisClient,
	}
}

func (d *questDomain) CreateQuest(
	ctx context.Context, req *model.CreateQuestRequest,
) (*model.CreateQuestResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty quest name")
	}

	if req.Streak <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Streak must be positive")
	}

	if req.Duplication <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Duplication must be positive")
	}

	if _, err := d.rewardRepo.GetByID(ctx, req.RewardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found reward")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	quest := &entity.Quest{
		Base:        entity.Base{ID: uuid.NewString()},
		RewardID:    req.RewardID,
		Title:       req.Title,
		Description: []byte(req.Description),
		AutoClaim:   req.AutoClaim,
		Streak:      req.Streak,
		Duplication: req.Duplication,
	}

	if err := d.questRepo.Create(ctx, quest); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quest: %v", err)
		return nil, errorx.Unknown
	}

	d.invalidateCache(ctx, quest.ID)

	resp := model.CreateQuestResponse(model.ConvertQuest(quest))
	return &resp, nil
}

func (d *questDomain) GetQuest(
	ctx context.Context, req *model.GetQuestRequest,
) (*model.GetQuestResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	if d.redisClient != nil {
		var cached model.GetQuestResponse
		err := d.redisClient.GetObj(ctx, common.RedisKeyQuest(req.ID), &cached)
		if err == nil {
			return &cached, nil
		}

		if !xredis.IsNil(err) {
			xcontext.Logger(ctx).Warnf("Cannot get quest from cache: %v", err)
		}
	}

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetQuestResponse(model.ConvertQuest(quest))
	if d.redisClient != nil {
		ttl := xcontext.Configs(ctx).Cache.QuestTTL
		if err := d.redisClient.SetObj(ctx, common.RedisKeyQuest(req.ID), &resp, ttl); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache quest: %v", err)
		}
	}

	return &resp, nil
}

func (d *questDomain) GetListQuest(
	ctx context.Context, req *model.GetListQuestRequest,
) (*model.GetListQuestResponse, error) {
	if d.redisClient != nil {
		var cached model.GetListQuestResponse
		err := d.redisClient.GetObj(ctx, common.RedisKeyQuestList(), &cached)
		if err == nil {
			return &cached, nil
		}

		if !xredis.IsNil(err) {
			xcontext.Logger(ctx).Warnf("Cannot get quest list from cache: %v", err)
		}
	}

	quests, err := d.questRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of quests: %v", err)
		return nil, errorx.Unknown
	}

	modelQuests := []model.Quest{}
	for i := range quests {
		modelQuests = append(modelQuests, model.ConvertQuest(&quests[i]))
	}

	resp := &model.GetListQuestResponse{Quests: modelQuests}
	if d.redisClient != nil {
		ttl := xcontext.Configs(ctx).Cache.QuestTTL
		if err := d.redisClient.SetObj(ctx, common.RedisKeyQuestList(), resp, ttl); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache quest list: %v", err)
		}
	}

	return resp, nil
}

func (d *questDomain) UpdateQuest(
	ctx context.Context, req *model.UpdateQuestRequest,
) (*model.UpdateQuestResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	if _, err := d.questRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	if req.Streak != nil && *req.Streak <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Streak must be positive")
	}

	if req.Duplication != nil && *req.Duplication <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Duplication must be positive")
	}

	update := entity.Quest{}
	if req.RewardID != nil {
		if _, err := d.rewardRepo.GetByID(ctx, *req.RewardID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found reward")
			}

			xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
			return nil, errorx.Unknown
		}

		update.RewardID = *req.RewardID
	}

	if req.Title != nil {
		update.Title = *req.Title
	}

	if req.Description != nil {
		update.Description = []byte(*req.Description)
	}

	if req.Streak != nil {
		update.Streak = *req.Streak
	}

	if req.Duplication != nil {
		update.Duplication = *req.Duplication
	}

	if err := d.questRepo.UpdateByID(ctx, req.ID, &update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update quest: %v", err)
		return nil, errorx.Unknown
	}

	if req.AutoClaim != nil {
		if err := d.questRepo.UpdateAutoClaimByID(ctx, req.ID, *req.AutoClaim); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update quest auto claim: %v", err)
			return nil, errorx.Unknown
		}
	}

	d.invalidateCache(ctx, req.ID)

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest after update: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateQuestResponse(model.ConvertQuest(quest))
	return &resp, nil
}

func (d *questDomain) DeleteQuest(
	ctx context.Context, req *model.DeleteQuestRequest,
) (*model.DeleteQuestResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	if err := d.questRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete quest: %v", err)
		return nil, errorx.Unknown
	}

	d.invalidateCache(ctx, req.ID)

	return &model.DeleteQuestResponse{}, nil
}

func (d *questDomain) invalidateCache(ctx context.Context, questID string) {
	if d.redisClient == nil {
		return
	}

	if err := d.redisClient.Del(ctx, common.RedisKeyQuestList(), common.RedisKeyQuest(questID)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate quest cache: %v", err)
	}
}
