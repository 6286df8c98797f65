package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/service"
)

type IUsageController interface {
	RegisterRoutes(r fiber.Router)
	GetUsage(ctx *fiber.Ctx) error
}

type usageController struct {
	service service.IUsageService
}

func NewUsageController(service service.IUsageService) IUsageController {
	return &usageController{service: service}
}

func (c *usageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/usage/v1")
	h.Get("/:id", c.GetUsage)
}

func (c *usageController) GetUsage(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrBadRequest("invalid session id")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get usage", c.service.GetUsage(id)))
}
