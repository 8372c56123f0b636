package handlers

import (
	"context"
	"log/slog"

	"messenger-bot/models"
	"messenger-bot/webhooks"
)

// handleMessage processes an incoming message event. Echoes of the
// page's own messages are logged and skipped to avoid reply loops.
func (d *Dispatcher) handleMessage(ctx context.Context, senderID string, message *webhooks.Message) {
	if message.IsEcho {
		slog.Info("Received echo for message",
			"mid", message.MID,
			"appID", message.AppID,
			"metadata", message.Metadata,
		)
		return
	}

	if message.QuickReply != nil {
		slog.Info("Quick reply received",
			"mid", message.MID,
			"payload", message.QuickReply.Payload,
		)
		d.send(ctx, d.textMessage(senderID, "Quick reply tapped"))
		return
	}

	slog.Info("Received message",
		"senderID", senderID,
		"mid", message.MID,
		"text", message.Text,
	)

	if message.Text != "" {
		d.send(ctx, d.responseForText(senderID, message.Text))
		return
	}

	if len(message.Attachments) > 0 {
		d.send(ctx, d.textMessage(senderID, "Message with attachment received"))
	}
}

// responseForText picks the canned response for a text message. The
// keyword match is literal and case sensitive; everything else falls
// through to a random fact rather than an echo of the input.
func (d *Dispatcher) responseForText(senderID, text string) models.OutboundMessage {
	switch text {
	case "image":
		return d.imageMessage(senderID)
	case "gif":
		return d.gifMessage(senderID)
	case "audio":
		return d.audioMessage(senderID)
	case "video":
		return d.videoMessage(senderID)
	case "file":
		return d.fileMessage(senderID)
	case "button":
		return d.buttonMessage(senderID)
	case "generic":
		return d.genericMessage(senderID)
	case "receipt":
		return d.receiptMessage(senderID)
	case "quick reply":
		return d.quickReplyMessage(senderID)
	case "read receipt":
		return d.readReceipt(senderID)
	case "typing on":
		return d.typingOn(senderID)
	case "typing off":
		return d.typingOff(senderID)
	case "account linking":
		return d.accountLinkingMessage(senderID)
	default:
		return d.textMessage(senderID, d.randomFact())
	}
}
