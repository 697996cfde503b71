package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyaid/internal/service"
)

type chatRequest struct {
	Message string `json:"message"`
}

// ListChatMessages godoc
// @Summary Chat history, oldest first
// @Tags chat
// @Produce json
// @Success 200 {array} model.ChatMessage
// @Router /api/chat [get]
func ListChatMessages(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.ListChatMessages(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(msgs)
	}
}

// SendChatMessage godoc
// @Summary Send a message to the study assistant
// @Description Returns the stored user message followed by the assistant reply.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body chatRequest true "Message"
// @Success 201 {array} model.ChatMessage
// @Failure 400 {object} errorPayload
// @Router /api/chat [post]
func SendChatMessage(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		pair, err := svc.SendChatMessage(c.UserContext(), req.Message)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(pair)
	}
}
