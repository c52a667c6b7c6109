package domain

import (
	"testing"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/model"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/errorx"
	"github.com/questlane/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_rewardDomain_CreateReward(t *testing.T) {
	ctx := testutil.MockContext()

	domain := NewRewardDomain(repository.NewRewardRepository())

	resp, err := domain.CreateReward(ctx, &model.CreateRewardRequest{
		Name:     "Weekly Gold",
		Item:     "gold",
		Quantity: 50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "Weekly Gold", resp.Name)
	require.Equal(t, "gold", resp.Item)
	require.Equal(t, uint64(50), resp.Quantity)
}

func Test_rewardDomain_CreateReward_InvalidRequest(t *testing.T) {
	ctx := testutil.MockContext()

	domain := NewRewardDomain(repository.NewRewardRepository())

	testcases := []*model.CreateRewardRequest{
		{Name: "", Item: "gold", Quantity: 50},
		{Name: "Weekly Gold", Item: "gold", Quantity: 0},
		{Name: "Weekly Gold", Item: "silver", Quantity: 50},
	}

	for _, tc := range testcases {
		_, err := domain.CreateReward(ctx, tc)
		var errx errorx.Error
		require.ErrorAs(t, err, &errx)
		require.Equal(t, errorx.BadRequest, errx.Code)
	}
}

func Test_rewardDomain_UpdateReward(t *testing.T) {
	ctx := testutil.MockContext()

	reward, err := testutil.SampleReward(ctx, nil)
	require.NoError(t, err)

	domain := NewRewardDomain(repository.NewRewardRepository())

	resp, err := domain.UpdateReward(ctx, &model.UpdateRewardRequest{
		ID:       reward.ID,
		Name:     "Diamond Pack",
		Item:     "diamond",
		Quantity: 5,
	})
	require.NoError(t, err)
	require.Equal(t, "Diamond Pack", resp.Name)
	require.Equal(t, "diamond", resp.Item)
	require.Equal(t, uint64(5), resp.Quantity)
}

func Test_rewardDomain_UpdateReward_RequiresAllFields(t *testing.T) {
	ctx := testutil.MockContext()

	reward, err := testutil.SampleReward(ctx, nil)
	require.NoError(t, err)

	domain := NewRewardDomain(repository.NewRewardRepository())

	// The update replaces the whole reward, no field may be omitted.
	testcases := []model.UpdateRewardRequest{
		{ID: reward.ID, Item: "diamond", Quantity: 5},
		{ID: reward.ID, Name: "Diamond Pack", Item: "diamond"},
		{ID: reward.ID, Name: "Diamond Pack", Quantity: 5},
	}

	for _, req := range testcases {
		_, err := domain.UpdateReward(ctx, &req)
		var errx errorx.Error
		require.ErrorAs(t, err, &errx)
		require.Equal(t, errorx.BadRequest, errx.Code)
	}
}

func Test_rewardDomain_DeleteReward(t *testing.T) {
	ctx := testutil.MockContext()

	reward, err := testutil.SampleReward(ctx, nil)
	require.NoError(t, err)

	domain := NewRewardDomain(repository.NewRewardRepository())

	_, err = domain.DeleteReward(ctx, &model.DeleteRewardRequest{ID: reward.ID})
	require.NoError(t, err)

	_, err = domain.GetReward(ctx, &model.GetRewardRequest{ID: reward.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_rewardDomain_DeleteReward_LinkedToQuest(t *testing.T) {
	ctx := testutil.MockContext()

	reward, err := testutil.SampleReward(ctx, nil)
	require.NoError(t, err)

	_, err = testutil.SampleQuest(ctx, reward.ID, nil)
	require.NoError(t, err)

	domain := NewRewardDomain(repository.NewRewardRepository())

	_, err = domain.DeleteReward(ctx, &model.DeleteRewardRequest{ID: reward.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
	require.Equal(t, "Cannot delete reward that is linked to existing quests", errx.Message)

	// The reward is still there.
	_, err = domain.GetReward(ctx, &model.GetRewardRequest{ID: reward.ID})
	require.NoError(t, err)
}

func Test_rewardDomain_GetListReward(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := testutil.SampleReward(ctx, &entity.Reward{Item: entity.GoldItem})
	require.NoError(t, err)
	_, err = testutil.SampleReward(ctx, &entity.Reward{Item: entity.DiamondItem})
	require.NoError(t, err)

	domain := NewRewardDomain(repository.NewRewardRepository())

	resp, err := domain.GetListReward(ctx, &model.GetListRewardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Rewards, 2)
}
