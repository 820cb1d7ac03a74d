package bootstrap

import (
	"context"
	"log"

	"ai-research-be/internal/config"
	"ai-research-be/internal/constant"
	"ai-research-be/internal/controller"
	"ai-research-be/internal/handler"
	"ai-research-be/internal/pkg/logger"
	"ai-research-be/internal/repository/memory"
	"ai-research-be/internal/repository/unitofwork"
	"ai-research-be/internal/service"
	"ai-research-be/internal/websocket"
	"ai-research-be/pkg/embedding"
	llmFactory "ai-research-be/pkg/llm/factory"
	"ai-research-be/pkg/ratelimit"
	searchFactory "ai-research-be/pkg/search/factory"

	pktNats "ai-research-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ResearchController controller.IResearchController
	AgentController    controller.IAgentController

	// Background Services (Exposed for main.go to run)
	MemoryConsumerService service.IMemoryConsumerService
	AutopilotService      service.IAutopilotService

	// WebSockets
	ResearchWsHandler *handler.ResearchWsHandler
	WebSocketHub      *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Capability Providers
	completionProvider, err := llmFactory.NewProvider(
		cfg.Ai.CompletionProvider,
		cfg.Ai.CompletionModel,
		cfg.Keys.AzureEndpoint,
		cfg.Keys.AzureOpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize completion provider: %v", err)
	}
	log.Printf("[INFO] Using completion provider: %s (%s)", cfg.Ai.CompletionProvider, cfg.Ai.CompletionModel)

	searchProvider, err := searchFactory.NewProvider(cfg.Ai.SearchProvider, cfg.Keys.Perplexity)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize search provider: %v", err)
	}
	log.Printf("[INFO] Using search provider: %s", cfg.Ai.SearchProvider)

	// In-memory session snapshots and the process-wide embedding space
	sessionRepo := memory.NewSessionRepository()
	space := embedding.NewSpace()

	// 3.5 Infrastructure
	// NATS (optional; empty URL disables domain event publishing)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// Redis (optional; empty URL keeps the hub single-instance)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/research_events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(constant.FindingRecordedTopic, pubSub)
	memoryConsumerService := service.NewMemoryConsumerService(
		pubSub,
		constant.FindingRecordedTopic,
		uowFactory,
	)

	researchService := service.NewResearchService(
		uowFactory,
		sessionRepo,
		wsHub,
		space,
		searchProvider,
		completionProvider,
		publisherService,
		natsPub,
		sysLogger,
		cfg.Research.SubagentCount,
	)

	agentService := service.NewAgentService(uowFactory, sysLogger)

	var autopilotService service.IAutopilotService
	if cfg.Research.AutoResearch {
		autopilotService = service.NewAutopilotService(researchService, sysLogger, cfg.Research.AutoResearchInterval)
	}

	guard := ratelimit.NewGuard(ratelimit.Config{
		Enabled:       cfg.RateLimit.Enabled,
		PerIPPerHour:  cfg.RateLimit.PerIPPerHour,
		GlobalPerHour: cfg.RateLimit.GlobalPerHour,
	})

	// 5. Controllers
	return &Container{
		ResearchController:    controller.NewResearchController(researchService, guard, sysLogger),
		AgentController:       controller.NewAgentController(agentService),
		MemoryConsumerService: memoryConsumerService,
		AutopilotService:      autopilotService,
		ResearchWsHandler:     handler.NewResearchWsHandler(wsHub, wsLogger),
		WebSocketHub:          wsHub,
	}
}
