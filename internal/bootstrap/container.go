package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/config"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/controller"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/handler"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/pkg/logger"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/implementation"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/memory"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/service"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/websocket"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent/trace"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/generator"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ConversationController controller.IConversationController
	AgentController        controller.IAgentController
	UserController         controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Realtime chat
	ChatHandler  *handler.ChatHandler
	WebSocketHub *websocket.Hub

	// Seeded demo identity
	DemoUserId         uuid.UUID
	DemoConversationId uuid.UUID
}

// NewContainer wires the whole dependency graph. db may be nil; the
// container then runs on in-memory stores.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Storage
	var (
		userRepo         contract.UserRepository
		conversationRepo contract.ConversationRepository
		messageRepo      contract.MessageRepository
		progressRepo     contract.ProgressRepository
		quizSessionRepo  contract.QuizSessionRepository
	)
	if db != nil {
		userRepo = implementation.NewUserRepository(db)
		conversationRepo = implementation.NewConversationRepository(db)
		messageRepo = implementation.NewMessageRepository(db)
		progressRepo = implementation.NewProgressRepository(db)
		quizSessionRepo = implementation.NewQuizSessionRepository(db)
		log.Println("[INFO] Using storage: POSTGRES")
	} else {
		userRepo = memory.NewUserRepository()
		conversationRepo = memory.NewConversationRepository()
		messageRepo = memory.NewMessageRepository()
		progressRepo = memory.NewProgressRepository()
		quizSessionRepo = memory.NewQuizSessionRepository()
		log.Println("[INFO] Using storage: IN-MEMORY")
	}

	// 4. Content generation. Without credentials the deterministic
	// fallback generator serves every agent.
	var gen generator.Generator = generator.NewFallback()
	if cfg.Ai.LLMProvider == "ollama" || cfg.Ai.OpenAIAPIKey != "" {
		llmProvider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OpenAIAPIKey,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM provider: %v. Using fallback content", err)
		} else {
			gen = generator.NewLLMGenerator(llmProvider, log.Default())
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		}
	} else {
		log.Println("[INFO] No LLM credentials, using fallback content generator")
	}

	// 5. Redis (optional, for multi-instance websocket fanout)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 6. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/websocket.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 7. Agent pipeline
	quizCache := memory.NewQuizCache()
	dispatcher := agent.NewDispatcher(gen, quizCache)
	tracker := service.NewActivityTracker(time.Duration(cfg.Study.AgentActivityTTLMinutes) * time.Minute)
	traces := trace.NewRecorder(cfg.Study.TraceLimit)

	agentService := service.NewAgentService(
		dispatcher,
		messageRepo,
		progressRepo,
		quizSessionRepo,
		tracker,
		traces,
		pubSub,
		cfg.Study.EventTopic,
		sysLogger,
	)
	userService := service.NewUserService(progressRepo)
	conversationService := service.NewConversationService(conversationRepo, messageRepo, userRepo)
	consumerService := service.NewConsumerService(pubSub, cfg.Study.EventTopic, sysLogger)

	// 8. Demo identity, so a fresh install can chat immediately
	demoUserId, demoConversationId := seedDemoData(userRepo, conversationRepo, sysLogger)

	chatHandler := handler.NewChatHandler(wsHub, agentService, wsLogger, demoUserId, demoConversationId)

	return &Container{
		ConversationController: controller.NewConversationController(conversationService),
		AgentController:        controller.NewAgentController(agentService, traces),
		UserController:         controller.NewUserController(userService),
		ConsumerService:        consumerService,
		ChatHandler:            chatHandler,
		WebSocketHub:           wsHub,
		DemoUserId:             demoUserId,
		DemoConversationId:     demoConversationId,
	}
}

func seedDemoData(
	userRepo contract.UserRepository,
	conversationRepo contract.ConversationRepository,
	sysLogger logger.ILogger,
) (uuid.UUID, uuid.UUID) {
	ctx := context.Background()

	user, err := userRepo.FindByUsername(ctx, "demo")
	if err != nil {
		sysLogger.Error("bootstrap", "Failed to look up demo user", map[string]interface{}{"error": err.Error()})
		return uuid.Nil, uuid.Nil
	}
	if user == nil {
		user = &entity.User{Username: "demo", Password: "password"}
		if err := userRepo.Create(ctx, user); err != nil {
			sysLogger.Error("bootstrap", "Failed to seed demo user", map[string]interface{}{"error": err.Error()})
			return uuid.Nil, uuid.Nil
		}
	}

	conversations, err := conversationRepo.FindByUser(ctx, user.Id)
	if err != nil {
		sysLogger.Error("bootstrap", "Failed to look up demo conversation", map[string]interface{}{"error": err.Error()})
		return user.Id, uuid.Nil
	}
	if len(conversations) > 0 {
		return user.Id, conversations[0].Id
	}

	conversation := &entity.Conversation{UserId: user.Id, Title: "Study Session"}
	if err := conversationRepo.Create(ctx, conversation); err != nil {
		sysLogger.Error("bootstrap", "Failed to seed demo conversation", map[string]interface{}{"error": err.Error()})
		return user.Id, uuid.Nil
	}

	return user.Id, conversation.Id
}
