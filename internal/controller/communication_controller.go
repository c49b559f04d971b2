package controller

import (
	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/pkg/serverutils"
	"socialrobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICommunicationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	SetPromptSuffix(ctx *fiber.Ctx) error
	SetSubtitlesEnabled(ctx *fiber.Ctx) error
	SetConfig(ctx *fiber.Ctx) error
	GetConfig(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
	ControlPanelConfig(ctx *fiber.Ctx) error
}

type communicationController struct {
	service service.ICommunicationService
}

func NewCommunicationController(service service.ICommunicationService) ICommunicationController {
	return &communicationController{service: service}
}

func (c *communicationController) RegisterRoutes(r fiber.Router) {
	r.Post("/create-communication", c.Create)
	r.Post("/set-prompt-suffix", c.SetPromptSuffix)
	r.Post("/set-subtitles-enabled", c.SetSubtitlesEnabled)
	r.Post("/set-communication-config", c.SetConfig)
	r.Get("/get-communication-config", c.GetConfig)
	r.Post("/clear-history", c.ClearHistory)
	r.Get("/controlpanel-config", c.ControlPanelConfig)
}

// Create answers with the bare {"communicationId": ...} body the control
// panel expects.
func (c *communicationController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.Create(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *communicationController) SetPromptSuffix(ctx *fiber.Ctx) error {
	var req dto.SetPromptSuffixRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.SetPromptSuffix(ctx.UserContext(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Prompt suffix updated successfully", nil))
}

func (c *communicationController) SetSubtitlesEnabled(ctx *fiber.Ctx) error {
	var req dto.SetSubtitlesEnabledRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.SetSubtitlesEnabled(ctx.UserContext(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Subtitles setting updated", nil))
}

func (c *communicationController) SetConfig(ctx *fiber.Ctx) error {
	var req dto.SetCommunicationConfigRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.SetConfig(ctx.UserContext(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Communication config updated", nil))
}

func (c *communicationController) GetConfig(ctx *fiber.Ctx) error {
	res, err := c.service.GetConfig(ctx.UserContext(), ctx.Query("communication_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get communication config", res))
}

func (c *communicationController) ClearHistory(ctx *fiber.Ctx) error {
	var req dto.ClearHistoryRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.ClearHistory(ctx.UserContext(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Chat history cleared", nil))
}

func (c *communicationController) ControlPanelConfig(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get control panel config", c.service.ControlPanelOptions()))
}
