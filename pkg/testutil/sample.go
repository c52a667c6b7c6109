package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/questlane/backend/internal/entity"
	"github.com/questlane/backend/internal/repository"
)

// SampleUser creates a new user in database with many fields are randomized.
// The sample user can be overwritten by non-zero fields of init.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           uuid.NewString(),
		HashedPassword: "hashed-password",
		Gold:           20,
		Status:         entity.UserNew,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleReward creates a new reward in database. The sample reward can be
// overwritten by non-zero fields of init.
func SampleReward(ctx context.Context, init *entity.Reward) (entity.Reward, error) {
	rewardRepo := repository.NewRewardRepository()

	sample := &entity.Reward{
		Base:     entity.Base{ID: uuid.NewString()},
		Name:     uuid.NewString(),
		Item:     entity.GoldItem,
		Quantity: 10,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := rewardRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleQuest creates a new quest in database referencing reward. The sample
// quest can be overwritten by non-zero fields of init.
func SampleQuest(ctx context.Context, rewardID string, init *entity.Quest) (entity.Quest, error) {
	questRepo := repository.NewQuestRepository()

	sample := &entity.Quest{
		Base:        entity.Base{ID: uuid.NewString()},
		RewardID:    rewardID,
		Title:       uuid.NewString(),
		Description: []byte("sample quest description"),
		AutoClaim:   false,
		Streak:      3,
		Duplication: 1,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := questRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleUserQuest creates a new user quest record in database. The sample
// record can be overwritten by non-zero fields of init.
func SampleUserQuest(ctx context.Context, userID, questID string, init *entity.UserQuest) (entity.UserQuest, error) {
	userQuestRepo := repository.NewUserQuestRepository()

	sample := &entity.UserQuest{
		Base:     entity.Base{ID: uuid.NewString()},
		UserID:   userID,
		QuestID:  questID,
		Status:   entity.UserQuestInProgress,
		Progress: 1,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userQuestRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
