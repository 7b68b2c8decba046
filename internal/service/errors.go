package service

import "fmt"

// SendFailureReason classifies delivery-provider failures into a closed set
// so callers never branch on raw provider strings.
type SendFailureReason string

const (
	// SendReasonRejected means the provider refused the message because the
	// sending or receiving identity is not verified or not authorized.
	SendReasonRejected SendFailureReason = "MessageRejected"

	// SendReasonUnknown covers every other provider-reported failure.
	SendReasonUnknown SendFailureReason = "Unknown"
)

// SendError is a structured delivery failure reported by the mail provider.
type SendError struct {
	Reason SendFailureReason
	Code   string // provider's machine-readable error name, when present
	Detail string
}

func (e *SendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("mail provider error (%s): %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("mail provider error: %s", e.Detail)
}

// Rejected reports whether the failure is a provider rejection of the
// sender/recipient identity.
func (e *SendError) Rejected() bool {
	return e.Reason == SendReasonRejected
}
