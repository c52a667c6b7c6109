package model

type AssignQuestRequest struct {
	UserID  string `json:"user_id"`
	QuestID string `json:"quest_id"`
}

type AssignQuestResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	QuestID  string `json:"quest_id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type GetUserQuestsRequest struct {
	UserID string `json:"user_id"`
}

type GetUserQuestsResponse struct {
	UserQuests []UserQuest `json:"user_quests"`
}

type CompleteQuestRequest struct {
	UserID  string `json:"user_id"`
	QuestID string `json:"quest_id"`
}

type CompleteQuestResponse struct {
	Message string `json:"message"`
}

type ClaimQuestRequest struct {
	UserID  string `json:"user_id"`
	QuestID string `json:"quest_id"`
}

type ClaimQuestResponse struct {
	Message string `json:"message"`
	Reward  Reward `json:"reward"`
}

type TrackSignInRequest struct {
	UserID string `json:"user_id"`
}

type TrackSignInResponse struct {
	Messages []string `json:"messages"`
}
