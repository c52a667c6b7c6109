package testutil

import (
	"context"

	"github.com/questlane/backend/internal/model"
)

type MockCatalogCaller struct {
	GetQuestFunc     func(ctx context.Context, questID string) (*model.Quest, error)
	GetListQuestFunc func(ctx context.Context) ([]model.Quest, error)
	GetRewardFunc    func(ctx context.Context, rewardID string) (*model.Reward, error)
}

func (m *MockCatalogCaller) GetQuest(ctx context.Context, questID string) (*model.Quest, error) {
	if m.GetQuestFunc != nil {
		return m.GetQuestFunc(ctx, questID)
	}

	return nil, nil
}

func (m *MockCatalogCaller) GetListQuest(ctx context.Context) ([]model.Quest, error) {
	if m.GetListQuestFunc != nil {
		return m.GetListQuestFunc(ctx)
	}

	return nil, nil
}

func (m *MockCatalogCaller) GetReward(ctx context.Context, rewardID string) (*model.Reward, error) {
	if m.GetRewardFunc != nil {
		return m.GetRewardFunc(ctx, rewardID)
	}

	return nil, nil
}

type MockAuthCaller struct {
	AddGoldFunc     func(ctx context.Context, userID string, amount uint64) error
	AddDiamondsFunc func(ctx context.Context, userID string, amount uint64) error
}

func (m *MockAuthCaller) AddGold(ctx context.Context, userID string, amount uint64) error {
	if m.AddGoldFunc != nil {
		return m.AddGoldFunc(ctx, userID, amount)
	}

	return nil
}

func (m *MockAuthCaller) AddDiamonds(ctx context.Context, userID string, amount uint64) error {
	if m.AddDiamondsFunc != nil {
		return m.AddDiamondsFunc(ctx, userID, amount)
	}

	return nil
}

type MockProcessingCaller struct {
	TrackSignInFunc func(ctx context.Context, userID string) error
}

func (m *MockProcessingCaller) TrackSignIn(ctx context.Context, userID string) error {
	if m.TrackSignInFunc != nil {
		return m.TrackSignInFunc(ctx, userID)
	}

	return nil
}
