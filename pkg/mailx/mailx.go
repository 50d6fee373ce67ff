// Package mailx sends plain transactional email.
package mailx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
)

var (
	ErrNoRecipient = errors.New("mailx: no recipient")
	ErrBadAddress  = errors.New("mailx: invalid address")
)

// Message is a single email. Body is sent as text/plain unless HTML is set.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
	HTML    bool
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SMTPConfig holds connection settings for an authenticated SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string        // defaults to Username
	Timeout  time.Duration // dial and per-command timeout, defaults to 15s
}

// SMTPSender delivers through an SMTP relay with PLAIN auth. Port 465 uses
// implicit TLS; any other port requires STARTTLS.
type SMTPSender struct {
	from string
	send func(ctx context.Context, msgs ...*gomail.Msg) error
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(cfg.Timeout),
	}
	if cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPSender{from: cfg.From, send: client.DialAndSendWithContext}, nil
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if m.From == "" {
		m.From = s.from
	}

	msg, err := Build(m, time.Now())
	if err != nil {
		return err
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogSender writes messages to a logger instead of delivering them. Used when
// no SMTP relay is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(ctx context.Context, m Message) error {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "mail not delivered: no smtp relay configured",
		"to", strings.Join(m.To, ","),
		"subject", m.Subject,
	)
	return nil
}

// Build turns m into a go-mail message dated now. An unparsable Reply-To is
// dropped rather than failing the send.
func Build(m Message, now time.Time) (*gomail.Msg, error) {
	if len(m.To) == 0 {
		return nil, ErrNoRecipient
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("%w: from %q", ErrBadAddress, m.From)
	}
	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("%w: to %q", ErrBadAddress, strings.Join(m.To, ","))
	}
	if m.ReplyTo != "" {
		_ = msg.ReplyTo(m.ReplyTo)
	}

	msg.Subject(m.Subject)
	msg.SetDateWithValue(now)

	contentType := gomail.TypeTextPlain
	if m.HTML {
		contentType = gomail.TypeTextHTML
	}
	msg.SetBodyString(contentType, m.Body)

	return msg, nil
}
