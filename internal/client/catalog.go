package client

import (
	"context"
	"fmt"

	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/pkg/api"
)

type CatalogCaller interface {
	GetQuest(ctx context.Context, questID string) (*model.Quest, error)
	GetListQuest(ctx context.Context) ([]model.Quest, error)
	GetReward(ctx context.Context, rewardID string) (*model.Reward, error)
}

type catalogCaller struct {
	apiGenerator api.Generator
}

func NewCatalogCaller(endpoints ...string) *catalogCaller {
	return &catalogCaller{apiGenerator: api.NewGenerator(endpoints...)}
}

func (c *catalogCaller) GetQuest(ctx context.Context, questID string) (*model.Quest, error) {
	resp, err := c.apiGenerator.New("/getQuest").
		Query(api.Parameter{"id": questID}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	if resp.Code != 200 {
		return nil, fmt.Errorf("invalid status code %d", resp.Code)
	}

	var quest model.GetQuestResponse
	if err := resp.DecodeData(&quest); err != nil {
		return nil, err
	}

	return (*model.Quest)(&quest), nil
}

func (c *catalogCaller) GetListQuest(ctx context.Context) ([]model.Quest, error) {
	resp, err := c.apiGenerator.New("/getListQuest").GET(ctx)
	if err != nil {
		return nil, err
	}

	if resp.Code != 200 {
		return nil, fmt.Errorf("invalid status code %d", resp.Code)
	}

	var quests model.GetListQuestResponse
	if err := resp.DecodeData(&quests); err != nil {
		return nil, err
	}

	return quests.Quests, nil
}

func (c *catalogCaller) GetReward(ctx context.Context, rewardID string) (*model.Reward, error) {
	resp, err := c.apiGenerator.New("/getReward").
		Query(api.Parameter{"id": rewardID}).
		GET(ctx)
	if err != nil {
		return nil, err
	}

	if resp.Code != 200 {
		return nil, fmt.Errorf("invalid status code %d", resp.Code)
	}

	var reward model.GetRewardResponse
	if err := resp.DecodeData(&reward); err != nil {
		return nil, err
	}

	return (*model.Reward)(&reward), nil
}
