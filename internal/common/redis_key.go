package common

import "fmt"

func RedisKeyQuestList() string {
	return "quests:all"
}

func RedisKeyQuest(questID string) string {
	return fmt.Sprintf("quest:%s", questID)
}
