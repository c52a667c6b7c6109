package model

type CreateQuestRequest struct {
	RewardID    string `json:"reward_id"`
	Title       string `json:"name"`
	Description string `json:"description"`
	AutoClaim   bool   `json:"auto_claim"`
	Streak      int    `json:"streak"`
	Duplication int    `json:"duplication"`
}

type CreateQuestResponse Quest

type GetQuestRequest struct {
	ID string `json:"id"`
}

type GetQuestResponse Quest

type GetListQuestRequest struct{}

type GetListQuestResponse struct {
	Quests []Quest `json:"quests"`
}

// UpdateQuestRequest carries a partial update. Nil pointers leave the field
// unchanged.
type UpdateQuestRequest struct {
	ID          string  `json:"id"`
	RewardID    *string `json:"reward_id"`
	Title       *string `json:"name"`
	Description *string `json:"description"`
	AutoClaim   *bool   `json:"auto_claim"`
	Streak      *int    `json:"streak"`
	Duplication *int    `json:"duplication"`
}

type UpdateQuestResponse Quest

type DeleteQuestRequest struct {
	ID string `json:"id"`
}

type DeleteQuestResponse struct{}
