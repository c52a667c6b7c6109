package model

import (
	"time"

	"github.com/questlane/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	lastLogin := ""
	if !user.LastLoginAt.IsZero() {
		lastLogin = user.LastLoginAt.Format(DefaultTimeLayout)
	}

	return User{
		ID:          user.ID,
		Name:        user.Name,
		Status:      string(user.Status),
		Gold:        user.Gold,
		Diamond:     user.Diamond,
		LastLoginAt: lastLogin,
	}
}

func ConvertReward(reward *entity.Reward) Reward {
	if reward == nil {
		return Reward{}
	}

	return Reward{
		ID:       reward.ID,
		Name:     reward.Name,
		Item:     string(reward.Item),
		Quantity: reward.Quantity,
	}
}

func ConvertQuest(quest *entity.Quest) Quest {
	if quest == nil {
		return Quest{}
	}

	return Quest{
		ID:          quest.ID,
		RewardID:    quest.RewardID,
		Title:       quest.Title,
		Description: string(quest.Description),
		AutoClaim:   quest.AutoClaim,
		Streak:      quest.Streak,
		Duplication: quest.Duplication,
		CreatedAt:   quest.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertUserQuest(userQuest *entity.UserQuest) UserQuest {
	if userQuest == nil {
		return UserQuest{}
	}

	return UserQuest{
		ID:       userQuest.ID,
		UserID:   userQuest.UserID,
		QuestID:  userQuest.QuestID,
		Status:   string(userQuest.Status),
		Progress: userQuest.Progress,
		Date:     userQuest.CreatedAt.Format(DefaultTimeLayout),
	}
}
