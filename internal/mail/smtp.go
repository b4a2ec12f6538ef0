package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"company-cms/internal/domain"
)

// sendTimeout bounds every SMTP conversation.
const sendTimeout = 15 * time.Second

// SMTPMailer delivers notifications through an SMTP relay.
type SMTPMailer struct {
	client     *gomail.Client
	from       string
	adminEmail string
}

func NewSMTPMailer(host string, port int, username, password, from, adminEmail string) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(username),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{
		client:     client,
		from:       from,
		adminEmail: adminEmail,
	}, nil
}

func (m *SMTPMailer) NotifyAdmin(ctx context.Context, sub *domain.ContactSubmission) error {
	body := fmt.Sprintf(
		"New contact form submission\n\nName: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		sub.Name, sub.Email, sub.Phone, sub.Message,
	)
	return m.send(ctx, m.adminEmail, "New contact form submission from "+sub.Name, body)
}

func (m *SMTPMailer) ConfirmSubmitter(ctx context.Context, sub *domain.ContactSubmission) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for contacting us. We have received your message and will get back to you shortly.\n",
		sub.Name,
	)
	return m.send(ctx, sub.Email, "We received your message", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := m.client.DialAndSendWithContext(sendCtx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
