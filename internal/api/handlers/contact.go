package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"contactrelay/internal/api/dto/v1/contact"
	"contactrelay/internal/api/middleware"
	"contactrelay/internal/api/validation"
	"contactrelay/internal/config"
	"contactrelay/internal/logging"
	"contactrelay/internal/service"
	"contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Client-facing messages. The validation messages live in the validation
// package; these cover the rest of the pipeline.
const (
	msgInvalidJSON     = "Invalid JSON format"
	msgBodyNotObject   = "Request body must be a JSON object"
	msgConfigError     = "Configuration error"
	msgNotVerified     = "Email address is not verified"
	msgSendFailed      = "Failed to send email"
	msgUnexpectedError = "An error occurred processing your request"
	msgThankYou        = "Thank you! Your message has been sent."
)

// ContactHandler validates contact form submissions and forwards them to the
// configured recipient through the mail provider.
type ContactHandler struct {
	cfg    *config.Config
	logger *logging.Logger

	// The mailer is created once per process on first use and reused across
	// requests (the provider client is the only long-lived resource here).
	mailerOnce sync.Once
	mailer     service.Mailer
}

// NewContactHandler creates a new contact handler
func NewContactHandler(cfg *config.Config, logger *logging.Logger) *ContactHandler {
	return &ContactHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// NewContactHandlerWithMailer creates a contact handler with an injected
// mailer, bypassing the lazy provider client initialization.
func NewContactHandlerWithMailer(cfg *config.Config, logger *logging.Logger, mailer service.Mailer) *ContactHandler {
	h := NewContactHandler(cfg, logger)
	h.mailer = mailer
	return h
}

// getMailer lazily initializes the shared provider client.
func (h *ContactHandler) getMailer(settings *config.MailSettings) service.Mailer {
	h.mailerOnce.Do(func() {
		if h.mailer == nil {
			h.mailer = service.NewMailerService(settings, h.logger)
		}
	})
	return h.mailer
}

// Submit handles a contact form submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	requestID := c.GetString(middleware.ContextKeyRequestID)
	h.logger.Info("Processing contact form request | requestId=%s", requestID)

	req, errMsg := parseSubmission(c.Request.Body)
	if errMsg != "" {
		h.logger.Warn("Rejected request body: %s | requestId=%s", errMsg, requestID)
		utils.RespondError(c, http.StatusBadRequest, errMsg)
		return
	}

	form, errMsg := validation.ValidateForm(req)
	if errMsg != "" {
		h.logger.Warn("Validation failed: %s | requestId=%s", errMsg, requestID)
		utils.RespondError(c, http.StatusBadRequest, errMsg)
		return
	}

	h.logger.Info("Validation passed | requestId=%s email=%s", requestID, form.Email)

	settings, err := h.cfg.MailSettings()
	if err != nil {
		// The root cause goes to the log, never to the caller.
		h.logger.Error("Configuration error: %v | requestId=%s", err, requestID)
		utils.RespondError(c, http.StatusInternalServerError, msgConfigError)
		return
	}

	mailer := h.getMailer(settings)

	phone := form.Phone
	if phone == "" {
		phone = "Not provided"
	}

	msg := &service.MailMessage{
		Source:  settings.Recipient,
		To:      []string{settings.Recipient},
		Subject: fmt.Sprintf("New Contact Form Submission from %s", form.Name),
		TextBody: fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
			form.Name, form.Email, phone, form.Message,
		),
	}

	if err := mailer.Send(c.Request.Context(), msg); err != nil {
		var sendErr *service.SendError
		if errors.As(err, &sendErr) {
			h.logger.Error("Mail provider error: %s | requestId=%s code=%s detail=%s",
				sendErr.Reason, requestID, sendErr.Code, sendErr.Detail)
			if sendErr.Rejected() {
				utils.RespondError(c, http.StatusBadRequest, msgNotVerified)
				return
			}
			utils.RespondError(c, http.StatusInternalServerError, msgSendFailed)
			return
		}

		h.logger.Error("Error processing request: %v | requestId=%s", err, requestID)
		utils.RespondError(c, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	h.logger.Info("Email sent successfully | requestId=%s email=%s", requestID, form.Email)
	utils.RespondSuccess(c, msgThankYou)
}

// parseSubmission decodes the request body. The body must be a JSON object;
// an absent or empty body is treated as an empty object so field validation
// produces the specific message. Non-string field values are ignored and fail
// validation the same way missing ones do.
func parseSubmission(body io.Reader) (*contact.ContactRequest, string) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, msgInvalidJSON
	}

	if len(data) == 0 {
		data = []byte("{}")
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, msgInvalidJSON
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, msgBodyNotObject
	}

	return &contact.ContactRequest{
		Name:    stringField(obj, "name"),
		Email:   stringField(obj, "email"),
		Phone:   stringField(obj, "phone"),
		Message: stringField(obj, "message"),
	}, ""
}

func stringField(obj map[string]interface{}, key string) string {
	value, _ := obj[key].(string)
	return value
}
