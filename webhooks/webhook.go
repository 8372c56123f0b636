package webhooks

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"messenger-bot/config"
	"messenger-bot/middleware"
)

// Dispatcher consumes a parsed webhook envelope. Implemented by
// handlers.Dispatcher; taken as an interface so route wiring stays
// decoupled from the handler set.
type Dispatcher interface {
	Dispatch(event WebhookEvent)
}

// RegisterRoutes wires the webhook verification and event endpoints.
// The POST route runs the signature check against the raw body before
// anything parses it.
func RegisterRoutes(app *fiber.App, cfg *config.Config, d Dispatcher) {
	webhook := app.Group("/webhook")

	webhook.Get("/", verifyWebhook(cfg))
	webhook.Post("/", middleware.VerifyRequestSignature(cfg), handleWebhookEvent(d))
}

// verifyWebhook handles the platform's subscription handshake
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode, "token", token)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent parses incoming webhook events and hands them to
// the dispatcher on a separate goroutine. The 200 acknowledgment is
// written immediately; the platform re-delivers events when it doesn't
// get one promptly, so the response never waits on outbound sends.
func handleWebhookEvent(d Dispatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebhookEvent
		if err := c.BodyParser(&body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Only process page events
		if body.Object != "page" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		go d.Dispatch(body)

		return c.SendString("EVENT_RECEIVED")
	}
}
