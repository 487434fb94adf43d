package email

import (
	"context"
	"fmt"
	"net"
	"time"

	"dumpster_booking_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender renders the same templates as BrevoSender but delivers via a
// direct SMTP connection using go-mail.
type SMTPSender struct {
	host          string
	port          int
	username      string
	password      string
	fromName      string
	fromEmail     string
	officeEmail   string
	businessPhone string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:          cfg.GetSMTPHost(),
		port:          cfg.GetSMTPPort(),
		username:      cfg.GetSMTPUsername(),
		password:      cfg.GetSMTPPassword(),
		fromName:      cfg.GetEmailFromName(),
		fromEmail:     cfg.GetEmailFromAddress(),
		officeEmail:   cfg.GetOfficeEmail(),
		businessPhone: cfg.GetBusinessPhone(),
	}
}

func (s *SMTPSender) SendOrderEmail(ctx context.Context, p OrderEmailParams) error {
	content, err := renderEmailTemplate("order_internal.html",
		newOrderEmailData(p, s.businessPhone, "New Dumpster Order", "New Dumpster Rental Order"))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(subjectNewOrderFmt, p.SizeName)
	return s.send(ctx, s.officeEmail, p.Email, subject, content)
}

func (s *SMTPSender) SendOrderConfirmationEmail(ctx context.Context, p OrderEmailParams) error {
	if p.Email == "" {
		return nil
	}
	content, err := renderEmailTemplate("order_confirmation.html",
		newOrderEmailData(p, s.businessPhone, subjectOrderConfirmation, "Thanks for reaching out!"))
	if err != nil {
		return err
	}
	return s.send(ctx, p.Email, "", subjectOrderConfirmation, content)
}

func (s *SMTPSender) send(ctx context.Context, toEmail, replyTo, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return fmt.Errorf("smtp reply-to: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

var _ Sender = (*SMTPSender)(nil)
