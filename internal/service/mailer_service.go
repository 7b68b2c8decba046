package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contactrelay/internal/config"
	"contactrelay/internal/logging"
)

// MailMessage is a single outbound email.
type MailMessage struct {
	Source   string
	To       []string
	Subject  string
	TextBody string
}

// Mailer abstracts the email-delivery provider so handlers can be tested
// against a substitute implementation.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// MailerService sends email through the Resend HTTP API.
type MailerService struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *logging.Logger
}

// NewMailerService creates a new mailer service
func NewMailerService(settings *config.MailSettings, logger *logging.Logger) *MailerService {
	return &MailerService{
		apiKey:   settings.APIKey,
		endpoint: settings.Endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// sendEmailRequest is the provider's send payload.
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// sendEmailResponse is the provider's success payload.
type sendEmailResponse struct {
	ID string `json:"id"`
}

// providerError is the provider's error payload.
type providerError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send delivers msg through the provider. Provider-reported failures come
// back as *SendError; transport failures are returned as plain errors.
func (s *MailerService) Send(ctx context.Context, msg *MailMessage) error {
	payload := sendEmailRequest{
		From:    msg.Source,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.TextBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read mail provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return s.classifyFailure(resp.StatusCode, body)
	}

	var sent sendEmailResponse
	if err := json.Unmarshal(body, &sent); err == nil && sent.ID != "" {
		s.logger.Debug("Mail provider accepted message | id=%s", sent.ID)
	}

	return nil
}

// classifyFailure maps a provider error response onto the closed
// SendFailureReason set. 401/403 responses mean the sending identity is not
// verified or not authorized, which the provider treats as a rejection.
func (s *MailerService) classifyFailure(status int, body []byte) *SendError {
	perr := providerError{}
	if err := json.Unmarshal(body, &perr); err != nil {
		perr.Message = string(body)
	}
	if perr.Message == "" {
		perr.Message = http.StatusText(status)
	}

	reason := SendReasonUnknown
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		reason = SendReasonRejected
	}

	return &SendError{
		Reason: reason,
		Code:   perr.Name,
		Detail: perr.Message,
	}
}
