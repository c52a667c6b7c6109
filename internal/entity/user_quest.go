package entity

import "github.com/questlane/backend/pkg/enum"

type UserQuestStatusType string

var (
	UserQuestInProgress = enum.New(UserQuestStatusType("in_progress"))
	UserQuestCompleted  = enum.New(UserQuestStatusType("completed"))
	UserQuestClaimed    = enum.New(UserQuestStatusType("claimed"))
)

type UserQuest struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	QuestID string `gorm:"index"`
	Quest   Quest  `gorm:"foreignKey:QuestID"`

	Status   UserQuestStatusType
	Progress int
}
