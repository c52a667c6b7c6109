package entity

type Quest struct {
	Base

	RewardID string
	Reward   Reward `gorm:"foreignKey:RewardID"`

	Title       string
	Description []byte `gorm:"type:longtext"`
	AutoClaim   bool

	// Streak is the number of sign-in days needed to complete the quest.
	Streak int

	// Duplication limits how many times a user can take this quest.
	Duplication int
}
