package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"messenger-bot/config"
	"messenger-bot/models"
)

const fbGraphAPI = "https://graph.facebook.com/v2.6"

// SendClient delivers outbound messages through the Send API. It keeps
// the page access token as a query credential and performs no retries:
// a failed send is logged and dropped.
type SendClient struct {
	graphAPI    string
	accessToken string
	httpClient  *http.Client
}

// NewSendClient builds a client for the configured page identity.
func NewSendClient(cfg *config.Config) *SendClient {
	return &SendClient{
		graphAPI:    fbGraphAPI,
		accessToken: cfg.PageAccessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSendClientWithEndpoint is like NewSendClient but targets a custom
// graph endpoint. Used by tests to point the client at a local server.
func NewSendClientWithEndpoint(cfg *config.Config, graphAPI string) *SendClient {
	c := NewSendClient(cfg)
	c.graphAPI = graphAPI
	return c
}

// Send posts one outbound message. On success the platform's message id
// is logged; on any transport error or non-200 status the failure is
// logged and returned with no corrective action taken.
func (c *SendClient) Send(ctx context.Context, payload models.OutboundMessage) error {
	url := fmt.Sprintf("%s/me/messages?access_token=%s", c.graphAPI, c.accessToken)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Unable to send message", "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("Failed calling Send API", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("failed calling Send API: %s", resp.Status)
	}

	var sendResp models.SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return err
	}

	if sendResp.MessageID != "" {
		slog.Info("Successfully sent message",
			"messageID", sendResp.MessageID,
			"recipientID", sendResp.RecipientID,
		)
	} else {
		slog.Info("Successfully called Send API", "recipientID", sendResp.RecipientID)
	}

	return nil
}
