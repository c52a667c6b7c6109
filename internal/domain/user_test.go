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

func Test_userDomain_GetUser(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.GetUser(ctx, &model.GetUserRequest{ID: user.ID})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.ID)
	require.Equal(t, user.Name, resp.Name)
	require.Equal(t, uint64(20), resp.Gold)
	require.Equal(t, string(entity.UserNew), resp.Status)

	_, err = domain.GetUser(ctx, &model.GetUserRequest{ID: "no-such-user"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_UpdateUser(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewUserDomain(repository.NewUserRepository())

	resp, err := domain.UpdateUser(ctx, &model.UpdateUserRequest{
		Name:   user.Name,
		Status: string(entity.UserBanned),
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.UserBanned), resp.Status)

	banned, err := domain.userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entity.UserBanned, banned.Status)

	// Unknown statuses are rejected.
	_, err = domain.UpdateUser(ctx, &model.UpdateUserRequest{
		Name:   user.Name,
		Status: "frozen",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_userDomain_AddGold(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewUserDomain(repository.NewUserRepository())

	_, err = domain.AddGold(ctx, &model.AddGoldRequest{UserID: user.ID, Gold: 30})
	require.NoError(t, err)

	updated, err := domain.userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), updated.Gold)

	var errx errorx.Error

	_, err = domain.AddGold(ctx, &model.AddGoldRequest{UserID: user.ID, Gold: 0})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.AddGold(ctx, &model.AddGoldRequest{UserID: "no-such-user", Gold: 30})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_AddDiamonds(t *testing.T) {
	ctx := testutil.MockContext()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewUserDomain(repository.NewUserRepository())

	_, err = domain.AddDiamonds(ctx, &model.AddDiamondsRequest{UserID: user.ID, Diamonds: 3})
	require.NoError(t, err)

	updated, err := domain.userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(3), updated.Diamond)
}
