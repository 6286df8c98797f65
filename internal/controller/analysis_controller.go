package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/service"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	GetScore(ctx *fiber.Ctx) error
	ScoreContent(ctx *fiber.Ctx) error
	AnalyzeKeywords(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IAnalysisService
}

func NewAnalysisController(service service.IAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analysis/v1")
	h.Get("/score/:id", c.GetScore)
	h.Post("/score", c.ScoreContent)
	h.Post("/keywords", c.AnalyzeKeywords)
}

func (c *analysisController) GetScore(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrBadRequest("invalid session id")
	}

	res, err := c.service.ScoreSession(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get score", res))
}

// ScoreContent scores arbitrary text without a session, for previews.
func (c *analysisController) ScoreContent(ctx *fiber.Ctx) error {
	var req dto.ScoreContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.ScoreContent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success score content", res))
}

func (c *analysisController) AnalyzeKeywords(ctx *fiber.Ctx) error {
	var req dto.AnalyzeKeywordsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AnalyzeKeywords(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze keywords", res))
}
