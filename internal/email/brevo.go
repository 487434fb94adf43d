package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dumpster_booking_backend/platform/config"
)

// BrevoSender delivers order emails through the Brevo transactional API.
type BrevoSender struct {
	apiKey        string
	fromName      string
	fromEmail     string
	officeEmail   string
	officeName    string
	businessPhone string
	client        *http.Client
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoEmailRequest struct {
	Sender      brevoRecipient   `json:"sender"`
	To          []brevoRecipient `json:"to"`
	ReplyTo     *brevoRecipient  `json:"replyTo,omitempty"`
	Subject     string           `json:"subject"`
	HTMLContent string           `json:"htmlContent"`
}

func NewBrevoSender(cfg config.EmailConfig) *BrevoSender {
	return &BrevoSender{
		apiKey:        cfg.GetBrevoAPIKey(),
		fromName:      cfg.GetEmailFromName(),
		fromEmail:     cfg.GetEmailFromAddress(),
		officeEmail:   cfg.GetOfficeEmail(),
		officeName:    cfg.GetOfficeName(),
		businessPhone: cfg.GetBusinessPhone(),
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *BrevoSender) SendOrderEmail(ctx context.Context, p OrderEmailParams) error {
	content, err := renderEmailTemplate("order_internal.html",
		newOrderEmailData(p, b.businessPhone, "New Dumpster Order", "New Dumpster Rental Order"))
	if err != nil {
		return err
	}

	var replyTo *brevoRecipient
	if p.Email != "" {
		replyTo = &brevoRecipient{Email: p.Email}
	}

	subject := fmt.Sprintf(subjectNewOrderFmt, p.SizeName)
	return b.send(ctx, brevoRecipient{Email: b.officeEmail, Name: b.officeName}, replyTo, subject, content)
}

func (b *BrevoSender) SendOrderConfirmationEmail(ctx context.Context, p OrderEmailParams) error {
	if p.Email == "" {
		return nil
	}

	content, err := renderEmailTemplate("order_confirmation.html",
		newOrderEmailData(p, b.businessPhone, subjectOrderConfirmation, "Thanks for reaching out!"))
	if err != nil {
		return err
	}

	return b.send(ctx, brevoRecipient{Email: p.Email, Name: p.ContactName}, nil, subjectOrderConfirmation, content)
}

func (b *BrevoSender) send(ctx context.Context, to brevoRecipient, replyTo *brevoRecipient, subject, htmlContent string) error {
	payload := brevoEmailRequest{
		Sender:      brevoRecipient{Name: b.fromName, Email: b.fromEmail},
		To:          []brevoRecipient{to},
		ReplyTo:     replyTo,
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(data))
	}

	return nil
}

var _ Sender = (*BrevoSender)(nil)
