package handlers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"messenger-bot/config"
	"messenger-bot/models"
	"messenger-bot/webhooks"
)

// Sender delivers one outbound message. Satisfied by services.SendClient.
type Sender interface {
	Send(ctx context.Context, payload models.OutboundMessage) error
}

// Dispatcher routes webhook events to their handlers and formulates the
// outbound replies. It is safe for concurrent use; the only mutable
// state is the randomness source behind fact and receipt-id selection.
type Dispatcher struct {
	cfg    *config.Config
	client Sender

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDispatcher builds a dispatcher with a time-seeded randomness source.
func NewDispatcher(cfg *config.Config, client Sender) *Dispatcher {
	return NewDispatcherWithSource(cfg, client, rand.NewSource(time.Now().UnixNano()))
}

// NewDispatcherWithSource lets callers seed the randomness used for the
// fact table and receipt order numbers.
func NewDispatcherWithSource(cfg *config.Config, client Sender, src rand.Source) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		client: client,
		rng:    rand.New(src),
	}
}

// Dispatch processes one webhook envelope: every messaging event of
// every entry is classified and handed to its handler. Entries are
// walked in array order; an event matching no known category is logged
// and dropped without affecting its siblings.
func (d *Dispatcher) Dispatch(event webhooks.WebhookEvent) {
	if event.Object != "page" {
		slog.Warn("Ignoring webhook for unknown object", "object", event.Object)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, entry := range event.Entry {
		slog.Info("Processing webhook entry",
			"pageID", entry.ID,
			"time", entry.Time,
			"events", len(entry.Messaging),
		)

		for _, messaging := range entry.Messaging {
			senderID := messaging.Sender.ID

			switch {
			case messaging.Optin != nil:
				d.handleOptin(ctx, senderID, messaging.Optin)
			case messaging.Message != nil:
				d.handleMessage(ctx, senderID, messaging.Message)
			case messaging.Delivery != nil:
				d.handleDelivery(senderID, messaging.Delivery)
			case messaging.Postback != nil:
				d.handlePostback(ctx, senderID, messaging.Postback)
			case messaging.Read != nil:
				d.handleRead(senderID, messaging.Read)
			case messaging.AccountLinking != nil:
				d.handleAccountLinking(senderID, messaging.AccountLinking)
			default:
				slog.Warn("Webhook received unknown messaging event", "senderID", senderID)
			}
		}
	}
}

// send delivers an outbound message through the Send API client. Send
// failures are logged and dropped; there is no retry and nothing for
// the caller to do about them.
func (d *Dispatcher) send(ctx context.Context, payload models.OutboundMessage) {
	if err := d.client.Send(ctx, payload); err != nil {
		slog.Error("Failed to deliver reply", "recipientID", payload.Recipient.ID, "error", err)
	}
}

func (d *Dispatcher) intn(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(n)
}
