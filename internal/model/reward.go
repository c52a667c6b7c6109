package model

type CreateRewardRequest struct {
	Name     string `json:"reward_name"`
	Item     string `json:"reward_item"`
	Quantity uint64 `json:"reward_qty"`
}

type CreateRewardResponse Reward

type GetRewardRequest struct {
	ID string `json:"id"`
}

type GetRewardResponse Reward

type GetListRewardRequest struct{}

type GetListRewardResponse struct {
	Rewards []Reward `json:"rewards"`
}

type UpdateRewardRequest struct {
	ID       string `json:"id"`
	Name     string `json:"reward_name"`
	Item     string `json:"reward_item"`
	Quantity uint64 `json:"reward_qty"`
}

type UpdateRewardResponse Reward

type DeleteRewardRequest struct {
	ID string `json:"id"`
}

type DeleteRewardResponse struct{}
