package service

import (
	"context"
	"fmt"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/dto"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
)

type IConversationService interface {
	GetUserConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error)
	Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetMessages(ctx context.Context, conversationId uuid.UUID) ([]*dto.MessageResponse, error)
}

type conversationService struct {
	conversationRepo contract.ConversationRepository
	messageRepo      contract.MessageRepository
	userRepo         contract.UserRepository
}

func NewConversationService(
	conversationRepo contract.ConversationRepository,
	messageRepo contract.MessageRepository,
	userRepo contract.UserRepository,
) IConversationService {
	return &conversationService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
	}
}

func (s *conversationService) GetUserConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationResponse, error) {
	conversations, err := s.conversationRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		result = append(result, toConversationResponse(c))
	}
	return result, nil
}

func (s *conversationService) Create(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	user, err := s.userRepo.FindById(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.UserId)
	}

	conversation := &entity.Conversation{
		UserId: req.UserId,
		Title:  req.Title,
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}

	return toConversationResponse(conversation), nil
}

func (s *conversationService) GetMessages(ctx context.Context, conversationId uuid.UUID) ([]*dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindByConversation(ctx, conversationId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, &dto.MessageResponse{
			Id:             m.Id,
			ConversationId: m.ConversationId,
			Role:           m.Role,
			Content:        m.Content,
			AgentType:      m.AgentType,
			Metadata:       m.Metadata,
			CreatedAt:      m.CreatedAt,
		})
	}
	return result, nil
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
