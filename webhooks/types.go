package webhooks

// WebhookEvent represents the top-level webhook payload from the platform
type WebhookEvent struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents a page entry in the webhook
type Entry struct {
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	Messaging []Messaging `json:"messaging,omitempty"`
}

// Messaging represents a single messaging event. Exactly one of the
// pointer fields is set; which one determines the event category.
type Messaging struct {
	Sender    User  `json:"sender"`
	Recipient User  `json:"recipient"`
	Timestamp int64 `json:"timestamp"`

	Optin          *Optin          `json:"optin,omitempty"`
	Message        *Message        `json:"message,omitempty"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	Read           *Read           `json:"read,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
}

// User represents a page-scoped user
type User struct {
	ID string `json:"id"`
}

// Optin represents a send-to-messenger plugin authentication event
type Optin struct {
	Ref string `json:"ref,omitempty"`
}

// Message represents a received message. At most one of Text,
// Attachments and QuickReply is populated.
type Message struct {
	MID         string       `json:"mid"`
	Text        string       `json:"text,omitempty"`
	QuickReply  *QuickReply  `json:"quick_reply,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	IsEcho      bool         `json:"is_echo,omitempty"`
	AppID       int64        `json:"app_id,omitempty"`
	Metadata    string       `json:"metadata,omitempty"`
}

// QuickReply represents a tapped quick reply
type QuickReply struct {
	Payload string `json:"payload"`
}

// Attachment represents a message attachment
type Attachment struct {
	Type    string  `json:"type"`
	Payload Payload `json:"payload"`
}

// Payload represents attachment payload
type Payload struct {
	URL string `json:"url,omitempty"`
}

// Delivery represents a message delivery confirmation
type Delivery struct {
	MIDs      []string `json:"mids,omitempty"`
	Watermark int64    `json:"watermark"`
	Seq       int64    `json:"seq,omitempty"`
}

// Postback represents a structured-message button tap
type Postback struct {
	Payload string `json:"payload"`
}

// Read represents a message read confirmation
type Read struct {
	Watermark int64 `json:"watermark"`
	Seq       int64 `json:"seq,omitempty"`
}

// AccountLinking represents an account linking status event
type AccountLinking struct {
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}
