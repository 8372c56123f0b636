package handlers

import (
	"fmt"

	"messenger-bot/models"
)

// textMessage builds a plain text reply.
func (d *Dispatcher) textMessage(recipientID, text string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message:   &models.SendMessage{Text: text},
	}
}

func (d *Dispatcher) mediaMessage(recipientID, attachmentType, assetPath string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message: &models.SendMessage{
			Attachment: &models.SendAttachment{
				Type:    attachmentType,
				Payload: models.MediaPayload{URL: d.cfg.ServerURL + assetPath},
			},
		},
	}
}

func (d *Dispatcher) imageMessage(recipientID string) models.OutboundMessage {
	return d.mediaMessage(recipientID, models.AttachmentTypeImage, "/assets/rift.png")
}

func (d *Dispatcher) gifMessage(recipientID string) models.OutboundMessage {
	return d.mediaMessage(recipientID, models.AttachmentTypeImage, "/assets/instagram_logo.gif")
}

func (d *Dispatcher) audioMessage(recipientID string) models.OutboundMessage {
	return d.mediaMessage(recipientID, models.AttachmentTypeAudio, "/assets/sample.mp3")
}

func (d *Dispatcher) videoMessage(recipientID string) models.OutboundMessage {
	return d.mediaMessage(recipientID, models.AttachmentTypeVideo, "/assets/allofus480.mov")
}

func (d *Dispatcher) fileMessage(recipientID string) models.OutboundMessage {
	return d.mediaMessage(recipientID, models.AttachmentTypeFile, "/assets/test.txt")
}

func (d *Dispatcher) buttonMessage(recipientID string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message: &models.SendMessage{
			Attachment: &models.SendAttachment{
				Type: models.AttachmentTypeTemplate,
				Payload: models.ButtonTemplate{
					TemplateType: models.TemplateTypeButton,
					Text:         "This is test text",
					Buttons: []models.Button{
						{Type: "web_url", URL: "https://www.oculus.com/en-us/rift/", Title: "Open Web URL"},
						{Type: "postback", Title: "Trigger Postback", Payload: "DEVELOPER_DEFINED_PAYLOAD"},
						{Type: "phone_number", Title: "Call Phone Number", Payload: "+16505551234"},
					},
				},
			},
		},
	}
}

func (d *Dispatcher) genericMessage(recipientID string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message: &models.SendMessage{
			Attachment: &models.SendAttachment{
				Type: models.AttachmentTypeTemplate,
				Payload: models.GenericTemplate{
					TemplateType: models.TemplateTypeGeneric,
					Elements: []models.GenericElement{
						{
							Title:    "rift",
							Subtitle: "Next-generation virtual reality",
							ItemURL:  "https://www.oculus.com/en-us/rift/",
							ImageURL: d.cfg.ServerURL + "/assets/rift.png",
							Buttons: []models.Button{
								{Type: "web_url", URL: "https://www.oculus.com/en-us/rift/", Title: "Open Web URL"},
								{Type: "postback", Title: "Call Postback", Payload: "Payload for first bubble"},
							},
						},
						{
							Title:    "touch",
							Subtitle: "Your Hands, Now in VR",
							ItemURL:  "https://www.oculus.com/en-us/touch/",
							ImageURL: d.cfg.ServerURL + "/assets/touch.png",
							Buttons: []models.Button{
								{Type: "web_url", URL: "https://www.oculus.com/en-us/touch/", Title: "Open Web URL"},
								{Type: "postback", Title: "Call Postback", Payload: "Payload for second bubble"},
							},
						},
					},
				},
			},
		},
	}
}

func (d *Dispatcher) receiptMessage(recipientID string) models.OutboundMessage {
	// The order number only needs to look plausible
	receiptID := fmt.Sprintf("order-%d", d.intn(1000))

	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message: &models.SendMessage{
			Attachment: &models.SendAttachment{
				Type: models.AttachmentTypeTemplate,
				Payload: models.ReceiptTemplate{
					TemplateType:  models.TemplateTypeReceipt,
					RecipientName: "Peter Chang",
					OrderNumber:   receiptID,
					Currency:      "USD",
					PaymentMethod: "Visa 1234",
					Timestamp:     "1428444852",
					Elements: []models.ReceiptElement{
						{
							Title:    "Oculus Rift",
							Subtitle: "Includes: headset, sensor, remote",
							Quantity: 1,
							Price:    599.00,
							Currency: "USD",
							ImageURL: d.cfg.ServerURL + "/assets/riftsq.png",
						},
						{
							Title:    "Samsung Gear VR",
							Subtitle: "Frost White",
							Quantity: 1,
							Price:    99.99,
							Currency: "USD",
							ImageURL: d.cfg.ServerURL + "/assets/gearvrsq.png",
						},
					},
					Address: &models.Address{
						Street1:    "1 Hacker Way",
						City:       "Menlo Park",
						PostalCode: "94025",
						State:      "CA",
						Country:    "US",
					},
					Summary: models.Summary{
						Subtotal:     698.99,
						ShippingCost: 20.00,
						TotalTax:     57.67,
						TotalCost:    626.66,
					},
					Adjustments: []models.Adjustment{
						{Name: "New Customer Discount", Amount: -50},
						{Name: "$100 Off Coupon", Amount: -100},
					},
				},
			},
		},
	}
}

func (d *Dispatcher) quickReplyMessage(recipientID string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message: &models.SendMessage{
			Text: "What's your favorite movie genre?",
			QuickReplies: []models.QuickReplyOption{
				{ContentType: "text", Title: "Action", Payload: "DEVELOPER_DEFINED_PAYLOAD_FOR_PICKING_ACTION"},
				{ContentType: "text", Title: "Comedy", Payload: "DEVELOPER_DEFINED_PAYLOAD_FOR_PICKING_COMEDY"},
				{ContentType: "text", Title: "Drama", Payload: "DEVELOPER_DEFINED_PAYLOAD_FOR_PICKING_DRAMA"},
			},
		},
	}
}

func (d *Dispatcher) senderAction(recipientID, action string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient:    models.Recipient{ID: recipientID},
		SenderAction: action,
	}
}

func (d *Dispatcher) readReceipt(recipientID string) models.OutboundMessage {
	return d.senderAction(recipientID, models.SenderActionMarkSeen)
}

func (d *Dispatcher) typingOn(recipientID string) models.OutboundMessage {
	return d.senderAction(recipientID, models.SenderActionTypingOn)
}

func (d *Dispatcher) typingOff(recipientID string) models.OutboundMessage {
	return d.senderAction(recipientID, models.SenderActionTypingOff)
}

func (d *Dispatcher) accountLinkingMessage(recipientID string) models.OutboundMessage {
	return models.OutboundMessage{
		Recipient: models.Recipient{ID: recipientID},
		Message: &models.SendMessage{
			Attachment: &models.SendAttachment{
				Type: models.AttachmentTypeTemplate,
				Payload: models.ButtonTemplate{
					TemplateType: models.TemplateTypeButton,
					Text:         "Welcome. Link your account.",
					Buttons: []models.Button{
						{Type: "account_link", URL: d.cfg.ServerURL + "/authorize"},
					},
				},
			},
		},
	}
}
