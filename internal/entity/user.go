package entity

import (
	"time"

	"github.com/questlane/backend/pkg/enum"
)

type UserStatusType string

var (
	UserNew    = enum.New(UserStatusType("new"))
	UserNotNew = enum.New(UserStatusType("not_new"))
	UserBanned = enum.New(UserStatusType("banned"))
)

type User struct {
	Base

	Name           string `gorm:"unique"`
	HashedPassword string
	Gold           uint64
	Diamond        uint64
	Status         UserStatusType
	LastLoginAt    time.Time
}
