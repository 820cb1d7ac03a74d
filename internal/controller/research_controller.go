package controller

import (
	"context"

	"ai-research-be/internal/dto"
	"ai-research-be/internal/pkg/logger"
	"ai-research-be/internal/pkg/serverutils"
	"ai-research-be/internal/service"
	"ai-research-be/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	GetEmbeddings(ctx *fiber.Ctx) error
	ClearEmbeddings(ctx *fiber.Ctx) error
}

type researchController struct {
	service service.IResearchService
	guard   *ratelimit.Guard
	logger  logger.ILogger
}

func NewResearchController(service service.IResearchService, guard *ratelimit.Guard, log logger.ILogger) IResearchController {
	return &researchController{
		service: service,
		guard:   guard,
		logger:  log,
	}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research/v1")
	h.Post("/sessions", c.StartSession)
	h.Get("/sessions", c.ListSessions)
	h.Get("/sessions/:id", c.ShowSession)
	h.Get("/embeddings", c.GetEmbeddings)
	h.Delete("/embeddings", c.ClearEmbeddings)
}

// StartSession accepts a topic, kicks the pipeline off in the background
// and responds immediately. The session id reaches the caller through
// the session_started live event.
func (c *researchController) StartSession(ctx *fiber.Ctx) error {
	if !c.guard.Allow(ctx.IP()) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(429, "Research session rate limit reached, try again later"))
	}

	var req dto.StartResearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	go func(topic string) {
		if _, err := c.service.StartSession(context.Background(), topic); err != nil {
			c.logger.Error("ResearchController", "Research session ended with error", map[string]interface{}{
				"topic": topic, "error": err.Error(),
			})
		}
	}(req.Topic)

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Research session started", dto.StartResearchResponse{
		Message: "Research started, follow the live channel for progress",
	}))
}

func (c *researchController) ListSessions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", c.service.ListSessions()))
}

func (c *researchController) ShowSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	session, ok := c.service.GetSession(id)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session", session))
}

func (c *researchController) GetEmbeddings(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get embedding space", c.service.GetEmbeddingSpace()))
}

func (c *researchController) ClearEmbeddings(ctx *fiber.Ctx) error {
	c.service.ClearEmbeddingSpace()
	return ctx.JSON(serverutils.SuccessResponse[any]("Embedding space cleared", nil))
}
