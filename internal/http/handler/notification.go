package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ledgerapi/internal/notify"
	"ledgerapi/internal/service"
)

type sendNotificationRequest struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// SendNotification dispatches a message over the requested channel.
func SendNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sendNotificationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		n, err := svc.Send(c.UserContext(), req.Channel, req.Recipient, req.Subject, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, notify.ErrUnknownChannel):
				return writeError(c, fiber.StatusBadRequest, "UNKNOWN_CHANNEL", "unknown notification channel")
			case errors.Is(err, service.ErrRecipientRequired):
				return writeError(c, fiber.StatusBadRequest, "RECIPIENT_REQUIRED", "recipient is required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(n)
	}
}

// ListNotifications returns dispatched notifications with limit & offset.
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, errCode := parsePage(c)
		if errCode != "" {
			return writeError(c, fiber.StatusBadRequest, errCode, "invalid pagination parameter")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
