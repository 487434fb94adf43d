// Package email renders and dispatches the order emails. Delivery is
// fire-and-forget against the configured provider; the caller only learns
// whether the dispatch attempt failed.
package email

import (
	"context"

	"dumpster_booking_backend/platform/config"
)

// OrderEmailParams carries everything the order templates need.
type OrderEmailParams struct {
	SizeName          string
	BasePrice         int
	BookingDescriptor string
	ContactName       string
	Address           string
	Phone             string
	Email             string
	Notes             string
}

// Sender dispatches order emails.
type Sender interface {
	// SendOrderEmail sends the internal order notification to the office,
	// with reply-to set to the customer when an email was provided.
	SendOrderEmail(ctx context.Context, p OrderEmailParams) error
	// SendOrderConfirmationEmail sends the confirmation to the customer.
	SendOrderConfirmationEmail(ctx context.Context, p OrderEmailParams) error
}

// NoopSender drops every email. Used when no provider is configured.
type NoopSender struct{}

func (NoopSender) SendOrderEmail(ctx context.Context, p OrderEmailParams) error {
	return nil
}

func (NoopSender) SendOrderConfirmationEmail(ctx context.Context, p OrderEmailParams) error {
	return nil
}

// NewSender picks the provider from configuration: Brevo when an API key is
// set, direct SMTP when a host is set, otherwise a no-op.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}
	if cfg.GetBrevoAPIKey() != "" {
		return NewBrevoSender(cfg), nil
	}
	if cfg.GetSMTPHost() != "" {
		return NewSMTPSender(cfg), nil
	}
	return NoopSender{}, nil
}
