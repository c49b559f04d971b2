package controller

import (
	"socialrobot-be/internal/pkg/serverutils"
	"socialrobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/chat-history", c.History)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res, err := c.service.ListHistory(ctx.UserContext(), ctx.Query("communication_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}
