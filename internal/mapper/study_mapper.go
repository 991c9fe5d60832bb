package mapper

import (
	"encoding/json"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/model"

	"gorm.io/datatypes"
)

type StudyMapper struct{}

func NewStudyMapper() *StudyMapper {
	return &StudyMapper{}
}

func (m *StudyMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		AgentType:      msg.AgentType,
		Metadata:       json.RawMessage(msg.Metadata),
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *StudyMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		AgentType:      msg.AgentType,
		Metadata:       datatypes.JSON(msg.Metadata),
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *StudyMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	updated := c.UpdatedAt
	return &entity.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: &updated,
	}
}

func (m *StudyMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	out := &model.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = *c.UpdatedAt
	}
	return out
}

func (m *StudyMapper) ProgressToEntity(p *model.UserProgress) *entity.UserProgress {
	if p == nil {
		return nil
	}
	return &entity.UserProgress{
		Id:                p.Id,
		UserId:            p.UserId,
		Topic:             p.Topic,
		QuestionsAnswered: p.QuestionsAnswered,
		CorrectAnswers:    p.CorrectAnswers,
		StudyTimeMinutes:  p.StudyTimeMinutes,
		LastStudied:       p.LastStudied,
	}
}

func (m *StudyMapper) ProgressToModel(p *entity.UserProgress) *model.UserProgress {
	if p == nil {
		return nil
	}
	return &model.UserProgress{
		Id:                p.Id,
		UserId:            p.UserId,
		Topic:             p.Topic,
		QuestionsAnswered: p.QuestionsAnswered,
		CorrectAnswers:    p.CorrectAnswers,
		StudyTimeMinutes:  p.StudyTimeMinutes,
		LastStudied:       p.LastStudied,
	}
}

func (m *StudyMapper) QuizSessionToEntity(s *model.QuizSession) *entity.QuizSession {
	if s == nil {
		return nil
	}
	return &entity.QuizSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Topic:          s.Topic,
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		Completed:      s.Completed,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *StudyMapper) QuizSessionToModel(s *entity.QuizSession) *model.QuizSession {
	if s == nil {
		return nil
	}
	return &model.QuizSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Topic:          s.Topic,
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		Completed:      s.Completed,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *StudyMapper) UserToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:        u.Id,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}

func (m *StudyMapper) UserToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:        u.Id,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}
