package handlers

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messenger-bot/config"
	"messenger-bot/models"
	"messenger-bot/webhooks"
)

type sendRecorder struct {
	mu   sync.Mutex
	sent []models.OutboundMessage
}

func (r *sendRecorder) Send(_ context.Context, payload models.OutboundMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, payload)
	return nil
}

func (r *sendRecorder) payloads() []models.OutboundMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.OutboundMessage(nil), r.sent...)
}

func testConfig() *config.Config {
	return &config.Config{
		AppSecret:       "app-secret",
		VerifyToken:     "verify-token",
		PageAccessToken: "page-token",
		ServerURL:       "https://bot.example.com",
	}
}

func newTestDispatcher() (*Dispatcher, *sendRecorder) {
	recorder := &sendRecorder{}
	d := NewDispatcherWithSource(testConfig(), recorder, rand.NewSource(1))
	return d, recorder
}

func messageEnvelope(message *webhooks.Message) webhooks.WebhookEvent {
	return eventEnvelope(webhooks.Messaging{
		Sender:    webhooks.User{ID: "U"},
		Recipient: webhooks.User{ID: "P"},
		Message:   message,
	})
}

func eventEnvelope(messaging ...webhooks.Messaging) webhooks.WebhookEvent {
	return webhooks.WebhookEvent{
		Object: "page",
		Entry:  []webhooks.Entry{{ID: "1", Time: 0, Messaging: messaging}},
	}
}

func TestDispatchIgnoresNonPageObjects(t *testing.T) {
	d, recorder := newTestDispatcher()

	event := messageEnvelope(&webhooks.Message{Text: "button"})
	event.Object = "instagram"
	d.Dispatch(event)

	assert.Empty(t, recorder.payloads())
}

func TestDispatchSkipsEchoes(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(messageEnvelope(&webhooks.Message{Text: "button", IsEcho: true, AppID: 42}))

	assert.Empty(t, recorder.payloads())
}

func TestDispatchClassificationOrder(t *testing.T) {
	d, recorder := newTestDispatcher()

	// Optin outranks message when both are present on one event
	d.Dispatch(eventEnvelope(webhooks.Messaging{
		Sender:  webhooks.User{ID: "U"},
		Optin:   &webhooks.Optin{Ref: "PASS_THROUGH"},
		Message: &webhooks.Message{Text: "button"},
	}))

	sent := recorder.payloads()
	require.Len(t, sent, 1)
	assert.Equal(t, "Authentication successful", sent[0].Message.Text)
}

func TestDispatchUnknownEventIsDropped(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(eventEnvelope(
		webhooks.Messaging{Sender: webhooks.User{ID: "U"}},
		webhooks.Messaging{
			Sender:   webhooks.User{ID: "U"},
			Postback: &webhooks.Postback{Payload: "DEVELOPER_DEFINED_PAYLOAD"},
		},
	))

	// The unhandled sibling doesn't stop the postback from being answered
	sent := recorder.payloads()
	require.Len(t, sent, 1)
	assert.Equal(t, "Postback called", sent[0].Message.Text)
}

func TestDispatchSilentEvents(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(eventEnvelope(
		webhooks.Messaging{
			Sender:   webhooks.User{ID: "U"},
			Delivery: &webhooks.Delivery{MIDs: []string{"m1", "m2"}, Watermark: 1458668856253, Seq: 37},
		},
		webhooks.Messaging{
			Sender: webhooks.User{ID: "U"},
			Read:   &webhooks.Read{Watermark: 1458668856253, Seq: 38},
		},
		webhooks.Messaging{
			Sender:         webhooks.User{ID: "U"},
			AccountLinking: &webhooks.AccountLinking{Status: "linked", AuthorizationCode: "code"},
		},
	))

	assert.Empty(t, recorder.payloads())
}

func TestDispatchQuickReplyAck(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(messageEnvelope(&webhooks.Message{
		QuickReply: &webhooks.QuickReply{Payload: "PICKED_ACTION"},
	}))

	sent := recorder.payloads()
	require.Len(t, sent, 1)
	assert.Equal(t, "Quick reply tapped", sent[0].Message.Text)
}

func TestDispatchAttachmentAck(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(messageEnvelope(&webhooks.Message{
		Attachments: []webhooks.Attachment{{Type: "image", Payload: webhooks.Payload{URL: "https://cdn.example.com/a.png"}}},
	}))

	sent := recorder.payloads()
	require.Len(t, sent, 1)
	assert.Equal(t, "Message with attachment received", sent[0].Message.Text)
}

func TestDispatchButtonKeyword(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(messageEnvelope(&webhooks.Message{Text: "button"}))

	sent := recorder.payloads()
	require.Len(t, sent, 1)
	assert.Equal(t, "U", sent[0].Recipient.ID)

	attachment := sent[0].Message.Attachment
	require.NotNil(t, attachment)
	template, ok := attachment.Payload.(models.ButtonTemplate)
	require.True(t, ok)
	assert.Equal(t, "button", template.TemplateType)
}

func TestDispatchImageKeyword(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(messageEnvelope(&webhooks.Message{Text: "image"}))

	sent := recorder.payloads()
	require.Len(t, sent, 1)

	attachment := sent[0].Message.Attachment
	require.NotNil(t, attachment)
	assert.Equal(t, models.AttachmentTypeImage, attachment.Type)

	media, ok := attachment.Payload.(models.MediaPayload)
	require.True(t, ok)
	assert.Equal(t, "https://bot.example.com/assets/rift.png", media.URL)
}

func TestDispatchDefaultTextIsRandomFact(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(messageEnvelope(&webhooks.Message{Text: "hello"}))

	sent := recorder.payloads()
	require.Len(t, sent, 1)

	text := sent[0].Message.Text
	assert.NotEqual(t, "hello", text)
	assert.Contains(t, facts, text)
}

func TestDispatchEntriesInOrder(t *testing.T) {
	d, recorder := newTestDispatcher()

	d.Dispatch(webhooks.WebhookEvent{
		Object: "page",
		Entry: []webhooks.Entry{
			{ID: "1", Messaging: []webhooks.Messaging{{
				Sender:   webhooks.User{ID: "A"},
				Postback: &webhooks.Postback{Payload: "first"},
			}}},
			{ID: "2", Messaging: []webhooks.Messaging{{
				Sender:   webhooks.User{ID: "B"},
				Postback: &webhooks.Postback{Payload: "second"},
			}}},
		},
	})

	sent := recorder.payloads()
	require.Len(t, sent, 2)
	assert.Equal(t, "A", sent[0].Recipient.ID)
	assert.Equal(t, "B", sent[1].Recipient.ID)
}
