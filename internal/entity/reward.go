package entity

import "github.com/questlane/backend/pkg/enum"

type RewardItemType string

var (
	GoldItem    = enum.New(RewardItemType("gold"))
	DiamondItem = enum.New(RewardItemType("diamond"))
)

type Reward struct {
	Base

	Name     string
	Item     RewardItemType
	Quantity uint64
}
