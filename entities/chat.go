package entities

import "time"

type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FarmerID  string    `gorm:"index;size:36" json:"farmerId"`
	Message   string    `json:"message"`
	Response  *string   `json:"response"`
	IsVoice   bool      `json:"isVoice"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
