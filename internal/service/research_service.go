// FILE: internal/service/research_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ai-research-be/internal/constant"
	"ai-research-be/internal/dto"
	"ai-research-be/internal/entity"
	"ai-research-be/internal/pkg/logger"
	"ai-research-be/internal/repository/memory"
	"ai-research-be/internal/repository/unitofwork"
	"ai-research-be/pkg/embedding"
	"ai-research-be/pkg/events"
	"ai-research-be/pkg/llm"
	"ai-research-be/pkg/llm/fallback"
	pktNats "ai-research-be/pkg/nats"
	"ai-research-be/pkg/research"
	"ai-research-be/pkg/search"
	searchfallback "ai-research-be/pkg/search/fallback"

	"github.com/google/uuid"
)

// LiveGateway is the broadcast surface the orchestrator pushes progress
// events to. The websocket hub implements it; tests substitute a
// recorder.
type LiveGateway interface {
	Broadcast(event string, payload interface{})
}

type IResearchService interface {
	// StartSession runs the full research pipeline for a topic and blocks
	// until the session reaches a terminal status. Callers wanting the
	// async behaviour run it on a goroutine; the session id also reaches
	// observers through the session_started live event.
	StartSession(ctx context.Context, topic string) (uuid.UUID, error)

	GetSession(sessionId uuid.UUID) (*dto.SessionResponse, bool)
	ListSessions() []*dto.SessionResponse
	GetEmbeddingSpace() []embedding.Point
	ClearEmbeddingSpace()
}

type researchService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.SessionRepository
	gateway          LiveGateway
	space            *embedding.Space
	searcher         search.Provider
	completions      llm.Provider
	synthesizer      *research.Synthesizer
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
	subagentCount    int
}

func NewResearchService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	gateway LiveGateway,
	space *embedding.Space,
	searcher search.Provider,
	completions llm.Provider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	subagentCount int,
) IResearchService {
	// Provider errors and empty responses must degrade to canned content
	// instead of failing the session, for both capabilities.
	wrapped := fallback.Wrap(completions)
	return &researchService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		gateway:          gateway,
		space:            space,
		searcher:         searchfallback.Wrap(searcher),
		completions:      wrapped,
		synthesizer:      research.NewSynthesizer(wrapped),
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
		subagentCount:    subagentCount,
	}
}

func (s *researchService) StartSession(ctx context.Context, topic string) (uuid.UUID, error) {
	if topic == "" {
		return uuid.Nil, fmt.Errorf("topic must not be empty")
	}

	session := &research.Session{
		Id:        uuid.New(),
		Topic:     topic,
		Status:    research.StatusPlanning,
		CreatedAt: time.Now(),
	}
	s.sessions.Save(session.Clone())
	s.logger.Info("ResearchService", "Research session started", map[string]interface{}{
		"session_id": session.Id, "topic": topic,
	})

	s.persistConversation(ctx, session)

	s.gateway.Broadcast("session_started", dto.SessionStartedEvent{
		SessionId: session.Id.String(),
		Topic:     topic,
		Status:    string(session.Status),
		Message:   fmt.Sprintf("Starting research on %q", topic),
	})

	// Initial search. The searcher is wrapped with the deterministic
	// fallback, so a backend outage degrades to canned content; only an
	// error from the fallback layer itself fails the session.
	initial, err := s.searcher.Search(ctx, topic)
	if err != nil {
		s.failSession(ctx, session, fmt.Errorf("initial search: %w", err))
		return session.Id, err
	}
	s.recordSearchResult(session, topic, initial)

	// Plan. The advisory text from the completion capability is context
	// for later prompts; the subtask shape comes from the roster.
	advisory, err := s.completions.Complete(ctx,
		fmt.Sprintf("Create a research planning approach for the topic %q: identify the key angles a specialized research team should cover.", topic),
		llm.WithSystemMessage("You are a lead researcher planning a multi-agent research session."),
	)
	if err != nil {
		s.failSession(ctx, session, fmt.Errorf("plan generation: %w", err))
		return session.Id, err
	}
	session.Plan = research.BuildPlan(topic, advisory, s.subagentCount)
	s.persistTasks(ctx, session)
	s.sessions.Save(session.Clone())

	s.gateway.Broadcast("phase_completed", dto.PhaseCompletedEvent{
		SessionId: session.Id.String(),
		Phase:     "planning",
		Message:   "Research plan created with comprehensive methodology",
	})

	// Fan-out: all workers start before any is awaited.
	session.Status = research.StatusExecuting
	s.sessions.Save(session.Clone())

	findings := s.executeSubtasks(ctx, session)
	session.Findings = findings
	s.persistFindings(ctx, session)
	s.sessions.Save(session.Clone())

	s.gateway.Broadcast("phase_completed", dto.PhaseCompletedEvent{
		SessionId: session.Id.String(),
		Phase:     "execution",
		Message:   fmt.Sprintf("Research tasks completed by %d agents", len(session.Plan.Subtasks)),
	})

	// Synthesis.
	session.Status = research.StatusSynthesizing
	s.sessions.Save(session.Clone())

	synthesis, err := s.synthesizer.Synthesize(ctx, topic, session.Findings)
	if err != nil {
		s.failSession(ctx, session, fmt.Errorf("synthesis: %w", err))
		return session.Id, err
	}
	session.Synthesis = synthesis

	s.gateway.Broadcast("phase_completed", dto.PhaseCompletedEvent{
		SessionId: session.Id.String(),
		Phase:     "synthesis",
		Message:   "Data synthesis and pattern analysis completed",
	})

	// Citations.
	session.Citations = research.BuildCitations(session.Findings)
	s.persistCitations(ctx, session)

	s.gateway.Broadcast("phase_completed", dto.PhaseCompletedEvent{
		SessionId: session.Id.String(),
		Phase:     "evaluation",
		Message:   "Research evaluation and validation completed",
	})

	// Terminal.
	now := time.Now()
	session.Status = research.StatusCompleted
	session.CompletedAt = &now
	s.completeConversation(ctx, session)
	s.sessions.Save(session.Clone())

	completedEvent := dto.ResearchCompletedEvent{
		SessionId:      session.Id.String(),
		Topic:          topic,
		SearchResults:  initial,
		AgentAnalysis:  session.Findings,
		EmbeddingCount: s.space.Len(),
	}
	s.gateway.Broadcast("research_completed", completedEvent)
	s.gateway.Broadcast("completed", completedEvent)

	if s.eventPublisher != nil {
		evt := events.NewResearchCompleted(session.Id.String(), topic, len(session.Findings), len(session.Citations))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ResearchService", "Failed to publish completion event", map[string]interface{}{
				"session_id": session.Id, "error": err.Error(),
			})
		}
	}

	s.logger.Info("ResearchService", "Research session completed", map[string]interface{}{
		"session_id": session.Id, "findings": len(session.Findings), "citations": len(session.Citations),
	})
	return session.Id, nil
}

// executeSubtasks fans the plan's subtasks out to one worker goroutine
// each and joins on the full set. Aggregation order is completion order;
// consumers must not rely on it.
func (s *researchService) executeSubtasks(ctx context.Context, session *research.Session) []research.Finding {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		findings []research.Finding
	)

	for i, subtask := range session.Plan.Subtasks {
		persona := research.Roster[i]
		wg.Add(1)
		go func(persona research.Persona, subtask research.Subtask) {
			defer wg.Done()

			s.persistWorkerStatus(ctx, session, persona, constant.MessageTypeStatus,
				fmt.Sprintf("Task started: %s", persona.Specialization))

			worker := research.NewSubagent(persona, s.searcher, s.completions)
			produced := worker.PerformResearch(ctx, session.Topic, subtask.Query)

			for _, f := range produced {
				s.recordFinding(session, subtask.Query, f)
			}

			mu.Lock()
			findings = append(findings, produced...)
			mu.Unlock()

			s.persistWorkerStatus(ctx, session, persona, constant.MessageTypeCompletion,
				fmt.Sprintf("Task completed: %s", persona.Specialization))
		}(persona, subtask)
	}

	wg.Wait()
	return findings
}

// recordFinding projects a finding into the embedding space and emits
// the per-finding live events and bus message.
func (s *researchService) recordFinding(session *research.Session, query string, f research.Finding) {
	point := s.space.Insert(f.Content, embedding.Metadata{
		SessionId: session.Id.String(),
		Agent:     f.Agent,
		Query:     query,
		Source:    "subagent_research",
	})

	s.gateway.Broadcast("newEmbedding", point)
	s.gateway.Broadcast("agent_analysis", dto.AgentAnalysisEvent{
		Agent:      f.Agent,
		Analysis:   f.Content,
		Confidence: f.Confidence,
		Timestamp:  point.CreatedAt.Format(time.RFC3339),
	})

	if f.SearchResult != nil {
		s.gateway.Broadcast("perplexity_result", f.SearchResult)
	}

	msg := dto.FindingRecordedMessage{
		SessionId:      session.Id.String(),
		AgentId:        f.AgentId,
		Agent:          f.Agent,
		Specialization: f.Specialization,
		Content:        f.Content,
		Importance:     point.Importance,
	}
	payload, err := json.Marshal(msg)
	if err == nil {
		if err := s.publisherService.Publish(context.Background(), payload); err != nil {
			s.logger.Warn("ResearchService", "Failed to publish finding message", map[string]interface{}{
				"session_id": session.Id, "error": err.Error(),
			})
		}
	}
}

// recordSearchResult projects the initial search into the space and
// emits the search events.
func (s *researchService) recordSearchResult(session *research.Session, query string, result *search.Result) {
	point := s.space.Insert(result.Text, embedding.Metadata{
		SessionId: session.Id.String(),
		Agent:     "lead_researcher",
		Query:     query,
		Source:    "initial_search",
	})

	s.gateway.Broadcast("perplexity_result", result)
	s.gateway.Broadcast("newEmbedding", point)
}

func (s *researchService) failSession(ctx context.Context, session *research.Session, cause error) {
	s.logger.Error("ResearchService", "Research session failed", map[string]interface{}{
		"session_id": session.Id, "error": cause.Error(),
	})

	now := time.Now()
	session.Status = research.StatusFailed
	session.CompletedAt = &now
	s.completeConversation(ctx, session)
	s.sessions.Save(session.Clone())

	s.gateway.Broadcast("error", dto.ErrorEvent{Message: cause.Error()})

	if s.eventPublisher != nil {
		evt := events.NewResearchFailed(session.Id.String(), session.Topic, cause.Error())
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ResearchService", "Failed to publish failure event", map[string]interface{}{
				"session_id": session.Id, "error": err.Error(),
			})
		}
	}
}

// Store writes are best-effort side effects: errors are logged and the
// in-memory session state advances regardless.

func (s *researchService) persistConversation(ctx context.Context, session *research.Session) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation := &entity.Conversation{
		Topic:     session.Topic,
		Agent1Id:  1,
		Agent2Id:  2,
		StartTime: session.CreatedAt,
		Status:    constant.ConversationStatusActive,
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		s.logger.Warn("ResearchService", "Failed to persist session record", map[string]interface{}{
			"session_id": session.Id, "error": err.Error(),
		})
		return
	}
	session.ConversationId = conversation.Id
}

func (s *researchService) completeConversation(ctx context.Context, session *research.Session) {
	if session.ConversationId == 0 {
		return
	}
	status := constant.ConversationStatusCompleted
	if session.Status == research.StatusFailed {
		status = constant.ConversationStatusFailed
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Update(ctx, &entity.Conversation{
		Id:        session.ConversationId,
		Topic:     session.Topic,
		Agent1Id:  1,
		Agent2Id:  2,
		StartTime: session.CreatedAt,
		EndTime:   session.CompletedAt,
		Status:    status,
	}); err != nil {
		s.logger.Warn("ResearchService", "Failed to finalize session record", map[string]interface{}{
			"session_id": session.Id, "error": err.Error(),
		})
	}
}

func (s *researchService) persistTasks(ctx context.Context, session *research.Session) {
	if session.ConversationId == 0 {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	for i := range session.Plan.Subtasks {
		persona := research.Roster[i]
		message := &entity.Message{
			ConversationId: session.ConversationId,
			SpeakerId:      persona.AgentId,
			Message:        fmt.Sprintf("%s will focus on %s for %s", persona.Name, persona.Specialization, session.Topic),
			Timestamp:      time.Now(),
			MessageType:    constant.MessageTypeTask,
		}
		if err := uow.MessageRepository().Create(ctx, message); err != nil {
			s.logger.Warn("ResearchService", "Failed to persist task record", map[string]interface{}{
				"session_id": session.Id, "agent": persona.Name, "error": err.Error(),
			})
		}
	}
}

func (s *researchService) persistWorkerStatus(ctx context.Context, session *research.Session, persona research.Persona, messageType, text string) {
	if session.ConversationId == 0 {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MessageRepository().Create(ctx, &entity.Message{
		ConversationId: session.ConversationId,
		SpeakerId:      persona.AgentId,
		Message:        text,
		Timestamp:      time.Now(),
		MessageType:    messageType,
	}); err != nil {
		s.logger.Warn("ResearchService", "Failed to persist worker status", map[string]interface{}{
			"session_id": session.Id, "agent": persona.Name, "error": err.Error(),
		})
	}
}

func (s *researchService) persistFindings(ctx context.Context, session *research.Session) {
	if session.ConversationId == 0 {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	for _, f := range session.Findings {
		if err := uow.MessageRepository().Create(ctx, &entity.Message{
			ConversationId: session.ConversationId,
			SpeakerId:      f.AgentId,
			Message:        f.Content,
			Timestamp:      time.Now(),
			MessageType:    constant.MessageTypeFinding,
		}); err != nil {
			s.logger.Warn("ResearchService", "Failed to persist finding record", map[string]interface{}{
				"session_id": session.Id, "agent": f.Agent, "error": err.Error(),
			})
		}
	}
}

func (s *researchService) persistCitations(ctx context.Context, session *research.Session) {
	if len(session.Citations) == 0 {
		return
	}
	rows := make([]*entity.Citation, 0, len(session.Citations))
	for _, c := range session.Citations {
		rows = append(rows, &entity.Citation{
			SessionId:    session.Id.String(),
			FindingId:    c.FindingIndex,
			SourceUrl:    c.SourceURL,
			SourceTitle:  c.SourceTitle,
			CitationText: c.Text,
			CreatedAt:    time.Now(),
		})
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CitationRepository().CreateBatch(ctx, rows); err != nil {
		s.logger.Warn("ResearchService", "Failed to persist citations", map[string]interface{}{
			"session_id": session.Id, "error": err.Error(),
		})
	}
}

func (s *researchService) GetSession(sessionId uuid.UUID) (*dto.SessionResponse, bool) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, false
	}
	return dto.NewSessionResponse(session), true
}

func (s *researchService) ListSessions() []*dto.SessionResponse {
	sessions := s.sessions.All()
	out := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, dto.NewSessionResponse(session))
	}
	return out
}

func (s *researchService) GetEmbeddingSpace() []embedding.Point {
	return s.space.Snapshot()
}

func (s *researchService) ClearEmbeddingSpace() {
	s.space.Clear()
	s.gateway.Broadcast("embeddingSpace", s.space.Snapshot())
	s.logger.Info("ResearchService", "Embedding space cleared", nil)
}
