package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactrelay/internal/api/dto/common"
	"contactrelay/internal/api/middleware"
	"contactrelay/internal/config"
	"contactrelay/internal/logging"
	"contactrelay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	sendFunc func(ctx context.Context, msg *service.MailMessage) error
	calls    []*service.MailMessage
}

func (m *mockMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	m.calls = append(m.calls, msg)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		MailAPIKey:     "re_test_key",
		MailAPIURL:     "https://api.resend.com",
		RecipientEmail: "test@example.com",
	}
}

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.NewLogger(&logging.Config{
		Level:      logging.LevelError,
		File:       t.TempDir() + "/test.log",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
	return logger
}

func newTestRouter(t *testing.T, cfg *config.Config, mailer service.Mailer) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	h := NewContactHandlerWithMailer(cfg, testLogger(t), mailer)
	router.POST("/api/v1/contact/submit", h.Submit)

	return router
}

func doSubmit(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) common.APIResponse {
	t.Helper()
	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const validBody = `{"name":"John Doe","email":"john@example.com","message":"This is a test message"}`

func TestSubmitSuccess(t *testing.T) {
	mailer := &mockMailer{}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you! Your message has been sent.", resp.Message)

	require.Len(t, mailer.calls, 1)
	msg := mailer.calls[0]
	assert.Equal(t, "test@example.com", msg.Source)
	assert.Equal(t, []string{"test@example.com"}, msg.To)
	assert.Contains(t, msg.Subject, "John Doe")
	assert.Contains(t, msg.TextBody, "Name: John Doe")
	assert.Contains(t, msg.TextBody, "Email: john@example.com")
	assert.Contains(t, msg.TextBody, "Phone: Not provided")
	assert.Contains(t, msg.TextBody, "This is a test message")
}

func TestSubmitSuccessWithPhone(t *testing.T) {
	mailer := &mockMailer{}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, `{"name":"John Doe","email":"john@example.com","phone":"(555) 123-4567","message":"This is a test message"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.calls, 1)
	assert.Contains(t, mailer.calls[0].TextBody, "Phone: (555) 123-4567")
}

func TestSubmitInvalidJSON(t *testing.T) {
	mailer := &mockMailer{}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, "invalid json {")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "JSON format")
	assert.Empty(t, mailer.calls)
}

func TestSubmitNonObjectBody(t *testing.T) {
	mailer := &mockMailer{}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, `[1,2,3]`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Request body must be a JSON object", resp.Message)
	assert.Empty(t, mailer.calls)
}

func TestSubmitEmptyBodyFailsNameValidation(t *testing.T) {
	mailer := &mockMailer{}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid name", decodeResponse(t, w).Message)
	assert.Empty(t, mailer.calls)
}

func TestSubmitValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "invalid name",
			body: `{"name":"J","email":"john@example.com","message":"valid message"}`,
			want: "Invalid name",
		},
		{
			name: "invalid email",
			body: `{"name":"John Doe","email":"not-an-email","message":"valid message"}`,
			want: "Invalid email",
		},
		{
			name: "invalid phone",
			body: `{"name":"John Doe","email":"john@example.com","phone":"123","message":"valid message"}`,
			want: "Invalid phone number",
		},
		{
			name: "invalid message",
			body: `{"name":"John Doe","email":"john@example.com","message":"hey"}`,
			want: "Invalid message (5-5000 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &mockMailer{}
			router := newTestRouter(t, testConfig(), mailer)

			w := doSubmit(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.want, resp.Message)
			assert.Empty(t, mailer.calls)
		})
	}
}

func TestSubmitMissingConfiguration(t *testing.T) {
	mailer := &mockMailer{}
	cfg := testConfig()
	cfg.RecipientEmail = ""
	router := newTestRouter(t, cfg, mailer)

	w := doSubmit(router, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Configuration error", resp.Message)
	// The missing variable name never leaks to the caller.
	assert.NotContains(t, w.Body.String(), "RECIPIENT_EMAIL")
	assert.Empty(t, mailer.calls)
}

func TestSubmitProviderRejection(t *testing.T) {
	mailer := &mockMailer{
		sendFunc: func(ctx context.Context, msg *service.MailMessage) error {
			return &service.SendError{
				Reason: service.SendReasonRejected,
				Code:   "validation_error",
				Detail: "The example.com domain is not verified",
			}
		},
	}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "verified")
}

func TestSubmitProviderFailure(t *testing.T) {
	mailer := &mockMailer{
		sendFunc: func(ctx context.Context, msg *service.MailMessage) error {
			return &service.SendError{
				Reason: service.SendReasonUnknown,
				Code:   "internal_server_error",
				Detail: "something broke",
			}
		},
	}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send email", decodeResponse(t, w).Message)
}

func TestSubmitUnexpectedError(t *testing.T) {
	mailer := &mockMailer{
		sendFunc: func(ctx context.Context, msg *service.MailMessage) error {
			return errors.New("connection reset")
		},
	}
	router := newTestRouter(t, testConfig(), mailer)

	w := doSubmit(router, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An error occurred processing your request", decodeResponse(t, w).Message)
}

func TestSubmitPreflight(t *testing.T) {
	mailer := &mockMailer{}
	router := newTestRouter(t, testConfig(), mailer)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact/submit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, w.Body.String())
	assert.Empty(t, mailer.calls)
}

func TestSubmitMailerInitializedOnce(t *testing.T) {
	cfg := testConfig()
	h := NewContactHandler(cfg, testLogger(t))

	settings, err := cfg.MailSettings()
	require.NoError(t, err)

	first := h.getMailer(settings)
	second := h.getMailer(settings)
	assert.Same(t, first, second)
}
