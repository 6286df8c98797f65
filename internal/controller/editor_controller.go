package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-be/internal/dto"
	"ai-resume-be/internal/pkg/serverutils"
	"ai-resume-be/internal/service"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	UpdateDocument(ctx *fiber.Ctx) error
	ExportText(ctx *fiber.Ctx) error
}

type editorController struct {
	service service.IDocumentService
}

func NewEditorController(service service.IDocumentService) IEditorController {
	return &editorController{service: service}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/editor/v1")
	h.Post("/session", c.CreateSession)
	h.Get("/session/:id", c.GetSession)
	h.Put("/session/:id/document", c.UpdateDocument)
	h.Get("/session/:id/export/txt", c.ExportText)
}

func (c *editorController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *editorController) GetSession(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSession(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *editorController) UpdateDocument(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateDocument(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update document", res))
}

func (c *editorController) ExportText(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	title, content, err := c.service.ExportText(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+title+`.txt"`)
	return ctx.SendString(content)
}

// parseIdParam reads the :id path segment as a session UUID.
func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.ErrBadRequest("invalid session id")
	}
	return id, nil
}
