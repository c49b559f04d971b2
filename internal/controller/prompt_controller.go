package controller

import (
	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/pkg/serverutils"
	"socialrobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	RegisterRootRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type promptController struct {
	service service.IPromptService
}

func NewPromptController(service service.IPromptService) IPromptController {
	return &promptController{service: service}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate", c.Generate)
	r.Get("/prompts", c.List)
}

// RegisterRootRoutes mounts /generate outside the /api group, where the
// bot clients call it.
func (c *promptController) RegisterRootRoutes(r fiber.Router) {
	r.Post("/generate", c.Generate)
}

// Generate answers with the bare {full_prompt, model} body.
func (c *promptController) Generate(ctx *fiber.Ctx) error {
	var req dto.GeneratePromptRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *promptController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListByCommunication(ctx.UserContext(), ctx.Query("communication_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get prompts", res))
}
