package handlers

import (
	"context"
	"log/slog"

	"messenger-bot/webhooks"
)

// handleOptin processes a send-to-messenger plugin authentication
// event. The ref carries whatever pass-through parameter the plugin
// was configured with.
func (d *Dispatcher) handleOptin(ctx context.Context, senderID string, optin *webhooks.Optin) {
	slog.Info("Received authentication event", "senderID", senderID, "ref", optin.Ref)
	d.send(ctx, d.textMessage(senderID, "Authentication successful"))
}

// handleDelivery logs a delivery confirmation. No reply is sent.
func (d *Dispatcher) handleDelivery(senderID string, delivery *webhooks.Delivery) {
	for _, mid := range delivery.MIDs {
		slog.Info("Received delivery confirmation for message", "mid", mid)
	}
	slog.Info("All messages delivered",
		"senderID", senderID,
		"watermark", delivery.Watermark,
		"seq", delivery.Seq,
	)
}

// handlePostback acknowledges a structured-message button tap.
func (d *Dispatcher) handlePostback(ctx context.Context, senderID string, postback *webhooks.Postback) {
	slog.Info("Received postback", "senderID", senderID, "payload", postback.Payload)
	d.send(ctx, d.textMessage(senderID, "Postback called"))
}

// handleRead logs a read confirmation. No reply is sent.
func (d *Dispatcher) handleRead(senderID string, read *webhooks.Read) {
	slog.Info("Received message read event",
		"senderID", senderID,
		"watermark", read.Watermark,
		"seq", read.Seq,
	)
}

// handleAccountLinking logs the outcome of an account linking flow.
// The authorization code is only present when status is "linked".
func (d *Dispatcher) handleAccountLinking(senderID string, link *webhooks.AccountLinking) {
	slog.Info("Received account linking event",
		"senderID", senderID,
		"status", link.Status,
		"authCode", link.AuthorizationCode,
	)
}
