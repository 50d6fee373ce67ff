package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aussiebroadwan/storefront/pkg/mailx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService forwards contact form messages to the shop mailbox.
type ContactService struct {
	Mail    Mailer
	Mailbox string
}

func (s *ContactService) Send(ctx context.Context, in ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	err := checkFields(validation.Errors{
		"name":    validation.Validate(in.Name, validation.Required),
		"email":   validation.Validate(in.Email, validation.Required),
		"subject": validation.Validate(in.Subject, validation.Required),
		"message": validation.Validate(in.Message, validation.Required),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	body := fmt.Sprintf(`<h2>New Contact Form Message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
`,
		html.EscapeString(in.Name),
		html.EscapeString(in.Email),
		html.EscapeString(in.Subject),
		strings.ReplaceAll(html.EscapeString(in.Message), "\n", "<br>"),
	)

	err = s.Mail.Enqueue(mailx.Message{
		To:      []string{s.Mailbox},
		ReplyTo: in.Email,
		Subject: "Contact Form: " + in.Subject,
		Body:    body,
		HTML:    true,
	})
	if err != nil {
		return fmt.Errorf("queue contact mail: %w", err)
	}

	slogx.FromContext(ctx).Info("contact message queued")
	return nil
}
