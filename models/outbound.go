package models

// Sender actions accepted by the Send API.
const (
	SenderActionMarkSeen  = "mark_seen"
	SenderActionTypingOn  = "typing_on"
	SenderActionTypingOff = "typing_off"
)

// Attachment types accepted by the Send API.
const (
	AttachmentTypeImage    = "image"
	AttachmentTypeAudio    = "audio"
	AttachmentTypeVideo    = "video"
	AttachmentTypeFile     = "file"
	AttachmentTypeTemplate = "template"
)

// Template discriminators carried in the payload's template_type field.
const (
	TemplateTypeButton  = "button"
	TemplateTypeGeneric = "generic"
	TemplateTypeReceipt = "receipt"
)

// OutboundMessage is the Send API request body: one recipient plus
// exactly one of a message or a sender action.
type OutboundMessage struct {
	Recipient    Recipient    `json:"recipient"`
	Message      *SendMessage `json:"message,omitempty"`
	SenderAction string       `json:"sender_action,omitempty"`
}

// Recipient identifies who the outbound message is for
type Recipient struct {
	ID string `json:"id"`
}

// SendMessage carries the message content: text, a structured
// attachment, or text with quick reply options.
type SendMessage struct {
	Text         string             `json:"text,omitempty"`
	Attachment   *SendAttachment    `json:"attachment,omitempty"`
	QuickReplies []QuickReplyOption `json:"quick_replies,omitempty"`
	Metadata     string             `json:"metadata,omitempty"`
}

// SendAttachment is a media or template attachment. Payload is one of
// MediaPayload, ButtonTemplate, GenericTemplate or ReceiptTemplate;
// the payload shapes differ per template so the field is left open.
type SendAttachment struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// MediaPayload points an image/audio/video/file attachment at its URL
type MediaPayload struct {
	URL string `json:"url"`
}

// ButtonTemplate is a short text with up to three buttons
type ButtonTemplate struct {
	TemplateType string   `json:"template_type"`
	Text         string   `json:"text"`
	Buttons      []Button `json:"buttons"`
}

// GenericTemplate is a horizontally scrollable set of cards
type GenericTemplate struct {
	TemplateType string           `json:"template_type"`
	Elements     []GenericElement `json:"elements"`
}

// ReceiptTemplate is an order confirmation
type ReceiptTemplate struct {
	TemplateType  string           `json:"template_type"`
	RecipientName string           `json:"recipient_name"`
	OrderNumber   string           `json:"order_number"`
	Currency      string           `json:"currency"`
	PaymentMethod string           `json:"payment_method"`
	OrderURL      string           `json:"order_url,omitempty"`
	Timestamp     string           `json:"timestamp,omitempty"`
	Elements      []ReceiptElement `json:"elements"`
	Address       *Address         `json:"address,omitempty"`
	Summary       Summary          `json:"summary"`
	Adjustments   []Adjustment     `json:"adjustments,omitempty"`
}

// Button is a template button (web_url, postback, phone_number or
// account_link).
type Button struct {
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload,omitempty"`
}

// GenericElement is one card of a generic template
type GenericElement struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ItemURL  string   `json:"item_url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// ReceiptElement is one purchased item on a receipt template
type ReceiptElement struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Address is the shipping address on a receipt template
type Address struct {
	Street1    string `json:"street_1"`
	Street2    string `json:"street_2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// Summary is the payment summary on a receipt template
type Summary struct {
	Subtotal     float64 `json:"subtotal,omitempty"`
	ShippingCost float64 `json:"shipping_cost,omitempty"`
	TotalTax     float64 `json:"total_tax,omitempty"`
	TotalCost    float64 `json:"total_cost"`
}

// Adjustment is a discount line on a receipt template
type Adjustment struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// QuickReplyOption is one tappable reply offered with a text message
type QuickReplyOption struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload,omitempty"`
}

// SendResponse is the Send API's reply on success
type SendResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}
