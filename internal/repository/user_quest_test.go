package repository_test

import (
	"testing"
	"time"

	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/repository"
	"github.com/questlane/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_userQuestRepository_GetLatest(t *testing.T) {
	ctx := testutil.MockContext()

	repo := repository.NewUserQuestRepository()

	now := time.Now()
	err := repo.Create(ctx, &entity.UserQuest{
		Base:     entity.Base{ID: "old", CreatedAt: now.Add(-time.Hour)},
		UserID:   "user1",
		QuestID:  "quest1",
		Status:   entity.UserQuestClaimed,
		Progress: 3,
	})
	require.NoError(t, err)

	err = repo.Create(ctx, &entity.UserQuest{
		Base:     entity.Base{ID: "new", CreatedAt: now},
		UserID:   "user1",
		QuestID:  "quest1",
		Status:   entity.UserQuestInProgress,
		Progress: 1,
	})
	require.NoError(t, err)

	latest, err := repo.GetLatest(ctx, "user1", "quest1")
	require.NoError(t, err)
	require.Equal(t, "new", latest.ID)
	require.Equal(t, entity.UserQuestInProgress, latest.Status)

	_, err = repo.GetLatest(ctx, "user1", "quest2")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_userQuestRepository_Count(t *testing.T) {
	ctx := testutil.MockContext()

	repo := repository.NewUserQuestRepository()

	_, err := testutil.SampleUserQuest(ctx, "user1", "quest1", nil)
	require.NoError(t, err)
	_, err = testutil.SampleUserQuest(ctx, "user1", "quest1", nil)
	require.NoError(t, err)
	_, err = testutil.SampleUserQuest(ctx, "user1", "quest2", nil)
	require.NoError(t, err)

	count, err := repo.Count(ctx, "user1", "quest1")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = repo.Count(ctx, "user2", "quest1")
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func Test_userQuestRepository_UpdateByID(t *testing.T) {
	ctx := testutil.MockContext()

	repo := repository.NewUserQuestRepository()

	userQuest, err := testutil.SampleUserQuest(ctx, "user1", "quest1", nil)
	require.NoError(t, err)

	err = repo.UpdateByID(ctx, userQuest.ID, entity.UserQuestCompleted, 3)
	require.NoError(t, err)

	updated, err := repo.GetLatest(ctx, "user1", "quest1")
	require.NoError(t, err)
	require.Equal(t, entity.UserQuestCompleted, updated.Status)
	require.Equal(t, 3, updated.Progress)

	err = repo.UpdateByID(ctx, "no-such-id", entity.UserQuestCompleted, 3)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
