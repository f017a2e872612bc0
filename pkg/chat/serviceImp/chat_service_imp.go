package serviceImp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"farmbot/entities"
	"farmbot/pkg/ai"
	repo "farmbot/pkg/chat/repository"
	"farmbot/pkg/chat/service"
)

type chatSvc struct {
	r       repo.ChatRepository
	farmers service.FarmerFinder
	llm     ai.Client
	log     *zap.Logger
}

func NewChatService(r repo.ChatRepository, farmers service.FarmerFinder, llm ai.Client, log *zap.Logger) service.ChatService {
	return &chatSvc{r: r, farmers: farmers, llm: llm, log: log.Named("chat")}
}

func (s *chatSvc) Send(ctx context.Context, req service.SendRequest) (*entities.ChatMessage, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, &entities.ValidationError{Errors: []string{"Message is required"}}
	}

	m := &entities.ChatMessage{FarmerID: req.FarmerID, Message: msg, IsVoice: req.IsVoice}
	if err := s.r.Create(ctx, m); err != nil {
		return nil, err
	}

	// an unknown farmer still gets an answer, just without profile context
	var farmer *entities.Farmer
	if req.FarmerID != "" {
		f, err := s.farmers.FindByID(ctx, req.FarmerID)
		switch {
		case err == nil:
			farmer = f
		case !errors.Is(err, entities.ErrNotFound):
			s.log.Warn("farmer lookup failed", zap.String("farmer_id", req.FarmerID), zap.Error(err))
		}
	}

	reply, err := s.llm.Answer(ctx, msg, farmer)
	switch {
	case err != nil:
		s.log.Warn("llm answer failed", zap.String("provider", s.llm.Name()), zap.Error(err))
		reply = service.ReplyUnavailable
	case strings.TrimSpace(reply) == "":
		reply = service.ReplyEmpty
	}

	return s.r.UpdateResponse(ctx, m.ID, reply)
}

func (s *chatSvc) History(ctx context.Context, farmerID string) ([]entities.ChatMessage, error) {
	return s.r.ListByFarmer(ctx, farmerID)
}
