package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ledgerapi/internal/service"
)

type createAccountRequest struct {
	OwnerName      string `json:"owner_name"`
	OpeningBalance int64  `json:"opening_balance"`
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

// CreateAccount opens a new account.
func CreateAccount(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createAccountRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		acc, err := svc.Create(c.UserContext(), req.OwnerName, req.OpeningBalance)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOwnerRequired):
				return writeError(c, fiber.StatusBadRequest, "OWNER_REQUIRED", "owner name is required")
			case errors.Is(err, service.ErrNegativeOpening):
				return writeError(c, fiber.StatusBadRequest, "INVALID_BALANCE", "opening balance cannot be negative")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(acc)
	}
}

// GetAccount returns a single account by ID.
func GetAccount(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		acc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrAccountNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "account not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(acc)
	}
}

// DepositFunds credits an account.
func DepositFunds(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req amountRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		txn, err := svc.Deposit(c.UserContext(), id, req.Amount)
		if err != nil {
			return writeLedgerError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(txn)
	}
}

// WithdrawFunds debits an account.
func WithdrawFunds(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req amountRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		txn, err := svc.Withdraw(c.UserContext(), id, req.Amount)
		if err != nil {
			return writeLedgerError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(txn)
	}
}

// writeLedgerError translates deposit/withdraw service errors; the two
// endpoints share every failure mode.
func writeLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAmountNotPositive):
		return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "amount must be positive")
	case errors.Is(err, service.ErrAccountNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "account not found")
	case errors.Is(err, service.ErrInsufficientFunds):
		return writeError(c, fiber.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", "balance is not sufficient")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ListAccountTransactions returns an account's ledger entries with limit & offset.
func ListAccountTransactions(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, offset, errCode := parsePage(c)
		if errCode != "" {
			return writeError(c, fiber.StatusBadRequest, errCode, "invalid pagination parameter")
		}

		res, err := svc.Transactions(c.UserContext(), id, limit, offset)
		if err != nil {
			if errors.Is(err, service.ErrAccountNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "account not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ExportStatement renders and stores an account statement, returning a
// presigned download URL.
func ExportStatement(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.ExportStatement(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrAccountNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "account not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// parsePage reads limit/offset query params with the shared defaults.
// It returns a non-empty error code when a value does not parse.
func parsePage(c *fiber.Ctx) (limit, offset int, errCode string) {
	limitStr := c.Query("limit", "10")
	offsetStr := c.Query("offset", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, 0, "INVALID_LIMIT"
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return 0, 0, "INVALID_OFFSET"
	}
	return limit, offset, ""
}
