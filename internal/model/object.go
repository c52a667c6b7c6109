package model

type User struct {
	ID          string `json:"id"`
	Name        string `json:"user_name"`
	Status      string `json:"status"`
	Gold        uint64 `json:"gold"`
	Diamond     uint64 `json:"diamond"`
	LastLoginAt string `json:"last_login_at"`
}

type Reward struct {
	ID       string `json:"id"`
	Name     string `json:"reward_name"`
	Item     string `json:"reward_item"`
	Quantity uint64 `json:"reward_qty"`
}

type Quest struct {
	ID          string `json:"id"`
	RewardID    string `json:"reward_id"`
	Title       string `json:"name"`
	Description string `json:"description"`
	AutoClaim   bool   `json:"auto_claim"`
	Streak      int    `json:"streak"`
	Duplication int    `json:"duplication"`
	CreatedAt   string `json:"created_at"`
}

type UserQuest struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	QuestID  string `json:"quest_id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Date     string `json:"date"`
}
