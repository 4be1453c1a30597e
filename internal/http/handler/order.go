package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ledgerapi/internal/service"
)

type createOrderRequest struct {
	CustomerName string `json:"customer_name"`
}

type addItemRequest struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CreateOrder opens an empty order.
func CreateOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createOrderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		o, err := svc.Create(c.UserContext(), req.CustomerName)
		if err != nil {
			if errors.Is(err, service.ErrCustomerRequired) {
				return writeError(c, fiber.StatusBadRequest, "CUSTOMER_REQUIRED", "customer name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(o)
	}
}

// ListOrders returns orders with limit & offset.
func ListOrders(svc service.OrderService) fiber.Handler {
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

// GetOrder returns an order with its line items.
func GetOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(detail)
	}
}

// AddOrderItem appends a line item and returns it with the new running total.
func AddOrderItem(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req addItemRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		res, err := svc.AddItem(c.UserContext(), id, service.ItemInput{
			Name:      req.Name,
			UnitPrice: req.UnitPrice,
			Quantity:  req.Quantity,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrItemNameRequired):
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "item name is required")
			case errors.Is(err, service.ErrNegativePrice):
				return writeError(c, fiber.StatusBadRequest, "INVALID_PRICE", "unit price cannot be negative")
			case errors.Is(err, service.ErrInvalidQuantity):
				return writeError(c, fiber.StatusBadRequest, "INVALID_QUANTITY", "quantity must be at least 1")
			case errors.Is(err, service.ErrOrderNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// OrderSummary renders the order's text summary.
func OrderSummary(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		out, err := svc.Summary(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Type("txt", "utf-8")
		return c.SendString(out)
	}
}

// ArchiveOrder stores the rendered summary in object storage.
func ArchiveOrder(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Archive(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
