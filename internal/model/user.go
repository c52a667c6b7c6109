package model

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse User

type UpdateUserRequest struct {
	Name   string `json:"user_name"`
	Status string `json:"status"`
}

type UpdateUserResponse User

type AddGoldRequest struct {
	UserID string `json:"user_id"`
	Gold   uint64 `json:"gold"`
}

type AddGoldResponse struct{}

type AddDiamondsRequest struct {
	UserID   string `json:"user_id"`
	Diamonds uint64 `json:"diamonds"`
}

type AddDiamondsResponse struct{}
