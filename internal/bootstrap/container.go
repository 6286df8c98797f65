package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-resume-be/internal/config"
	"ai-resume-be/internal/controller"
	"ai-resume-be/internal/handler"
	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/pkg/mailer"
	"ai-resume-be/internal/repository/memory"
	"ai-resume-be/internal/service"
	"ai-resume-be/internal/websocket"
	"ai-resume-be/pkg/events"
	"ai-resume-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	EditorController    controller.IEditorController
	AssistantController controller.IAssistantController
	AnalysisController  controller.IAnalysisController
	UsageController     controller.IUsageController
	WaitlistController  controller.IWaitlistController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ScoreFeedHandler *handler.ScoreFeedHandler
	WebSocketHub     *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	llmProvider, err := factory.NewLLMProvider(factory.Settings{
		Provider:      cfg.Ai.Provider,
		Model:         cfg.Ai.Model,
		OpenAIKey:     cfg.Ai.OpenAIKey,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		Temperature:   cfg.Ai.Temperature,
		MaxTokens:     cfg.Ai.MaxTokens,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. In-memory storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)
	usageRepo := memory.NewUsageRepository()
	waitlistRepo := memory.NewWaitlistRepository()

	// 5. WebSocket hub for the live score feed
	wsLogger := logger.NewIsolatedLogger("logs/scorefeed.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 6. Services
	publisherService := service.NewPublisherService(events.TopicDocumentChanged, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		events.TopicDocumentChanged,
		sessionRepo,
		wsHub,
		sysLogger,
	)

	usageService := service.NewUsageService(usageRepo, cfg.Quota.FreeDailyUses)
	documentService := service.NewDocumentService(sessionRepo, publisherService, sysLogger)
	assistantService := service.NewAssistantService(
		sessionRepo,
		usageService,
		documentService,
		llmProvider,
		publisherService,
		sysLogger,
	)
	analysisService := service.NewAnalysisService(sessionRepo, llmProvider, sysLogger)
	waitlistService := service.NewWaitlistService(waitlistRepo, emailService, sysLogger)

	// 7. Handlers & controllers
	scoreFeedHandler := handler.NewScoreFeedHandler(sessionRepo, wsHub, wsLogger)

	return &Container{
		EditorController:    controller.NewEditorController(documentService),
		AssistantController: controller.NewAssistantController(assistantService),
		AnalysisController:  controller.NewAnalysisController(analysisService),
		UsageController:     controller.NewUsageController(usageService),
		WaitlistController:  controller.NewWaitlistController(waitlistService),

		ConsumerService: consumerService,

		ScoreFeedHandler: scoreFeedHandler,
		WebSocketHub:     wsHub,

		Logger: sysLogger,
	}
}
