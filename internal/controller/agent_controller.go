package controller

import (
	"strconv"

	"ai-research-be/internal/pkg/serverutils"
	"ai-research-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
}

type agentController struct {
	service service.IAgentService
}

func NewAgentController(service service.IAgentService) IAgentController {
	return &agentController{service: service}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Get("", c.GetAll)
	h.Get("/:id", c.GetById)
}

func (c *agentController) GetAll(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get agents", c.service.ListAgents(ctx.Context())))
}

func (c *agentController) GetById(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid agent id"))
	}

	detail, err := c.service.GetAgentDetails(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if detail == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Agent not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get agent details", detail))
}
