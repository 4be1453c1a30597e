package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"ledgerapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; they translate between HTTP and the
// injected services.
func RegisterRoutes(app *fiber.App, db *sql.DB, accounts service.AccountService, orders service.OrderService, notifications service.NotificationService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoints: readiness checks DB connectivity, liveness does not
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Accounts
	app.Post("/accounts", CreateAccount(accounts))
	app.Get("/accounts/:id", GetAccount(accounts))
	app.Post("/accounts/:id/deposit", DepositFunds(accounts))
	app.Post("/accounts/:id/withdraw", WithdrawFunds(accounts))
	app.Get("/accounts/:id/transactions", ListAccountTransactions(accounts))
	app.Post("/accounts/:id/statement", ExportStatement(accounts))

	// Orders
	app.Post("/orders", CreateOrder(orders))
	app.Get("/orders", ListOrders(orders))
	app.Get("/orders/:id", GetOrder(orders))
	app.Post("/orders/:id/items", AddOrderItem(orders))
	app.Get("/orders/:id/summary", OrderSummary(orders))
	app.Post("/orders/:id/archive", ArchiveOrder(orders))

	// Notifications
	app.Post("/notifications", SendNotification(notifications))
	app.Get("/notifications", ListNotifications(notifications))
}
