package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/service"
)

type IWaitlistController interface {
	RegisterRoutes(r fiber.Router)
	Subscribe(ctx *fiber.Ctx) error
}

type waitlistController struct {
	service service.IWaitlistService
}

func NewWaitlistController(service service.IWaitlistService) IWaitlistController {
	return &waitlistController{service: service}
}

func (c *waitlistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/waitlist/v1")
	h.Post("/subscribe", c.Subscribe)
}

func (c *waitlistController) Subscribe(ctx *fiber.Ctx) error {
	var req dto.SubscribeWaitlistRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Subscribe(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success subscribe to waitlist", res))
}
