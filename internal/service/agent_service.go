package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/dto"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/pkg/logger"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent/intent"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent/trace"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ErrorReplyContent is sent to the client when message processing fails
// for any reason.
const ErrorReplyContent = "Sorry, I encountered an error processing your message. Please try again."

type IAgentService interface {
	// ProcessMessage runs the full pipeline for one user message: store
	// the user turn, classify, dispatch, store the agent turn, refresh
	// agent activity and update topic progress. It never returns an
	// error; failures produce an error reply the caller forwards as-is.
	ProcessMessage(ctx context.Context, userId, conversationId uuid.UUID, content string) *dto.AgentReply

	// GetAgentStatuses returns the five agent cards in fixed order.
	GetAgentStatuses() []*dto.AgentStatusResponse
}

type agentService struct {
	dispatcher      *agent.Dispatcher
	messageRepo     contract.MessageRepository
	progressRepo    contract.ProgressRepository
	quizSessionRepo contract.QuizSessionRepository
	tracker         *ActivityTracker
	traces          *trace.Recorder
	pubSub          *gochannel.GoChannel
	topicName       string
	logger          logger.ILogger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewAgentService(
	dispatcher *agent.Dispatcher,
	messageRepo contract.MessageRepository,
	progressRepo contract.ProgressRepository,
	quizSessionRepo contract.QuizSessionRepository,
	tracker *ActivityTracker,
	traces *trace.Recorder,
	pubSub *gochannel.GoChannel,
	topicName string,
	logger logger.ILogger,
) IAgentService {
	return &agentService{
		dispatcher:      dispatcher,
		messageRepo:     messageRepo,
		progressRepo:    progressRepo,
		quizSessionRepo: quizSessionRepo,
		tracker:         tracker,
		traces:          traces,
		pubSub:          pubSub,
		topicName:       topicName,
		logger:          logger,
		locks:           make(map[uuid.UUID]*sync.Mutex),
	}
}

// conversationLock serializes message processing per conversation so the
// transcript keeps strict user-then-assistant ordering.
func (s *agentService) conversationLock(conversationId uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[conversationId]
	if !ok {
		l = &sync.Mutex{}
		s.locks[conversationId] = l
	}
	return l
}

func (s *agentService) ProcessMessage(ctx context.Context, userId, conversationId uuid.UUID, content string) *dto.AgentReply {
	lock := s.conversationLock(conversationId)
	lock.Lock()
	defer lock.Unlock()

	reply, err := s.process(ctx, userId, conversationId, content)
	if err != nil {
		s.logger.Error("agent", "Failed to process message", map[string]interface{}{
			"conversationId": conversationId.String(),
			"userId":         userId.String(),
			"error":          err.Error(),
		})
		return &dto.AgentReply{
			ConversationId: conversationId,
			Content:        ErrorReplyContent,
			IsError:        true,
		}
	}
	return reply
}

func (s *agentService) process(ctx context.Context, userId, conversationId uuid.UUID, content string) (*dto.AgentReply, error) {
	userTurn := &entity.Message{
		ConversationId: conversationId,
		Role:           "user",
		Content:        content,
	}
	if err := s.messageRepo.Create(ctx, userTurn); err != nil {
		return nil, err
	}

	transcript, err := s.messageRepo.FindByConversation(ctx, conversationId)
	if err != nil {
		return nil, err
	}

	turns := make([]agent.Turn, len(transcript))
	for i, m := range transcript {
		turns[i] = agent.Turn{
			Role:      m.Role,
			Content:   m.Content,
			AgentType: agent.Type(m.AgentType),
			Metadata:  m.Metadata,
		}
	}

	agentType := intent.Classify(content)

	started := time.Now()
	response, err := s.dispatcher.Dispatch(ctx, agentType, content, conversationId, turns)
	s.recordTrace(userId, conversationId, content, agentType, time.Since(started), err)
	if err != nil {
		return nil, err
	}

	var metadata json.RawMessage
	if response.Metadata != nil {
		metadata, err = json.Marshal(response.Metadata)
		if err != nil {
			return nil, err
		}
	}

	assistantTurn := &entity.Message{
		ConversationId: conversationId,
		Role:           "assistant",
		Content:        response.Content,
		AgentType:      string(response.AgentType),
		Metadata:       metadata,
	}
	if err := s.messageRepo.Create(ctx, assistantTurn); err != nil {
		return nil, err
	}

	s.tracker.Activate(response.AgentType)
	s.publish(events.AgentActivated{
		UserId:         userId,
		ConversationId: conversationId,
		Agent:          string(response.AgentType),
		OccurredAt:     time.Now(),
	})

	s.afterDispatch(ctx, userId, response)

	return &dto.AgentReply{
		ConversationId: conversationId,
		AgentType:      string(response.AgentType),
		Content:        response.Content,
		Metadata:       metadata,
	}, nil
}

// afterDispatch applies the side effects a dispatched response implies:
// quiz session bookkeeping and topic progress. These are best effort; a
// failure here never fails the reply.
func (s *agentService) afterDispatch(ctx context.Context, userId uuid.UUID, response *agent.Response) {
	switch meta := response.Metadata.(type) {
	case agent.QuizMetadata:
		session := &entity.QuizSession{
			UserId:         userId,
			Topic:          meta.Topic,
			TotalQuestions: len(meta.Questions),
		}
		if err := s.quizSessionRepo.Create(ctx, session); err != nil {
			s.logger.Warn("agent", "Failed to record quiz session", map[string]interface{}{
				"userId": userId.String(),
				"topic":  meta.Topic,
				"error":  err.Error(),
			})
		}

	case agent.FeedbackMetadata:
		s.completeQuizSession(ctx, userId, meta)
		if meta.IsCorrect && meta.Topic != "" {
			s.updateUserProgress(ctx, userId, meta)
		}
	}
}

func (s *agentService) completeQuizSession(ctx context.Context, userId uuid.UUID, meta agent.FeedbackMetadata) {
	if meta.Topic == "" {
		return
	}

	sessions, err := s.quizSessionRepo.FindByUser(ctx, userId)
	if err != nil {
		s.logger.Warn("agent", "Failed to load quiz sessions", map[string]interface{}{
			"userId": userId.String(),
			"error":  err.Error(),
		})
		return
	}

	for _, session := range sessions {
		if session.Completed || session.Topic != meta.Topic {
			continue
		}
		if meta.IsCorrect {
			session.CorrectAnswers++
		}
		session.Completed = true
		if err := s.quizSessionRepo.Update(ctx, session); err != nil {
			s.logger.Warn("agent", "Failed to complete quiz session", map[string]interface{}{
				"sessionId": session.Id.String(),
				"error":     err.Error(),
			})
		}
		return
	}
}

func (s *agentService) updateUserProgress(ctx context.Context, userId uuid.UUID, meta agent.FeedbackMetadata) {
	correct := 0
	if meta.IsCorrect {
		correct = 1
	}

	// Study time is a fixed per-interaction approximation, not measured.
	_, err := s.progressRepo.Upsert(ctx, userId, meta.Topic, entity.ProgressDelta{
		QuestionsAnswered: 1,
		CorrectAnswers:    correct,
		StudyTimeMinutes:  1,
	})
	if err != nil {
		s.logger.Warn("agent", "Failed to update topic progress", map[string]interface{}{
			"userId": userId.String(),
			"topic":  meta.Topic,
			"error":  err.Error(),
		})
		return
	}

	s.publish(events.ProgressUpdated{
		UserId:     userId,
		Topic:      meta.Topic,
		Correct:    meta.IsCorrect,
		OccurredAt: time.Now(),
	})
}

func (s *agentService) recordTrace(userId, conversationId uuid.UUID, input string, agentType agent.Type, duration time.Duration, err error) {
	if s.traces == nil {
		return
	}
	entry := trace.Entry{
		ConversationId: conversationId,
		UserId:         userId,
		Input:          input,
		AgentType:      agentType,
		DurationMs:     duration.Milliseconds(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	s.traces.Record(entry)
}

func (s *agentService) publish(event events.Event) {
	if s.pubSub == nil {
		return
	}
	payload, err := events.Marshal(event)
	if err != nil {
		s.logger.Warn("agent", "Failed to marshal event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}
	if err := s.pubSub.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Warn("agent", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

// agentCard is the static half of an agent status entry.
type agentCard struct {
	agentType   agent.Type
	name        string
	description string
	color       string
	icon        string
}

var agentCards = []agentCard{
	{agent.TypeExplainer, "Topic Explainer", "Breaks down complex concepts", "from-edu-blue to-blue-600", "fa-lightbulb"},
	{agent.TypeQuiz, "Quiz Generator", "Creates practice questions", "from-success-green to-green-600", "fa-question-circle"},
	{agent.TypeChecker, "Answer Checker", "Evaluates your responses", "from-creative-purple to-purple-600", "fa-check-circle"},
	{agent.TypeMotivator, "Motivation Agent", "Keeps you inspired", "from-motivational-orange to-yellow-500", "fa-heart"},
	{agent.TypeMemory, "Memory Agent", "Tracks your progress", "from-gray-600 to-gray-700", "fa-history"},
}

func (s *agentService) GetAgentStatuses() []*dto.AgentStatusResponse {
	statuses := make([]*dto.AgentStatusResponse, 0, len(agentCards))
	for _, card := range agentCards {
		statuses = append(statuses, &dto.AgentStatusResponse{
			Type:        string(card.agentType),
			Name:        card.name,
			Description: card.description,
			IsActive:    s.tracker.IsActive(card.agentType),
			Color:       card.color,
			Icon:        card.icon,
		})
	}
	return statuses
}
