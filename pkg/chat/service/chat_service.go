package service

import (
	"context"

	"farmbot/entities"
)

const (
	// ReplyUnavailable is stored when the language model cannot be reached.
	ReplyUnavailable = "I'm having trouble connecting to my knowledge base. Please check your internet connection and try again."
	// ReplyEmpty is stored when the model answers with nothing.
	ReplyEmpty = "I'm sorry, I couldn't process your question. Please try again."
)

type SendRequest struct {
	FarmerID string `json:"farmerId"`
	Message  string `json:"message"`
	IsVoice  bool   `json:"isVoice"`
}

type ChatService interface {
	// Send stores the question, asks the model and returns the message with its response.
	Send(ctx context.Context, req SendRequest) (*entities.ChatMessage, error)
	History(ctx context.Context, farmerID string) ([]entities.ChatMessage, error)
}

type FarmerFinder interface {
	FindByID(ctx context.Context, id string) (*entities.Farmer, error)
}
