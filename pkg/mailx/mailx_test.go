package mailx

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func render(t *testing.T, msg *gomail.Msg) string {
	t.Helper()
	var b bytes.Buffer
	_, err := msg.WriteTo(&b)
	require.NoError(t, err)
	return b.String()
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	msg, err := Build(Message{
		From:    "Shop <shop@example.com>",
		To:      []string{"ada@example.com"},
		ReplyTo: "customer@example.com",
		Subject: "Password Reset Request",
		Body:    "line one\nline two",
	}, now)
	require.NoError(t, err)

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	require.Equal(t, []string{"ada@example.com"}, rcpts)

	from, err := msg.GetSender(false)
	require.NoError(t, err)
	require.Equal(t, "shop@example.com", from)

	s := render(t, msg)
	require.Contains(t, s, "Subject: Password Reset Request\r\n")
	require.Contains(t, s, "<ada@example.com>")
	require.Contains(t, s, "Reply-To: <customer@example.com>")
	require.Contains(t, s, "Date: Sun, 01 Mar 2026 10:00:00 +0000")
	require.Contains(t, s, "text/plain")
	require.Contains(t, s, "line one")
	require.Contains(t, s, "line two")
}

func TestBuildHTML(t *testing.T) {
	msg, err := Build(Message{From: "shop@example.com", To: []string{"a@example.com"}, Body: "<p>hi</p>", HTML: true}, time.Now())
	require.NoError(t, err)
	require.Contains(t, render(t, msg), "text/html")
}

func TestBuildStripsHeaderInjection(t *testing.T) {
	msg, err := Build(Message{
		From:    "shop@example.com",
		To:      []string{"a@example.com"},
		Subject: "hi\r\nBcc: victim@example.com",
	}, time.Now())
	require.NoError(t, err)
	require.NotContains(t, render(t, msg), "\r\nBcc:")

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	require.Equal(t, []string{"a@example.com"}, rcpts)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(Message{From: "shop@example.com"}, time.Now())
	require.ErrorIs(t, err, ErrNoRecipient)

	_, err = Build(Message{From: "nope", To: []string{"a@example.com"}}, time.Now())
	require.ErrorIs(t, err, ErrBadAddress)

	_, err = Build(Message{From: "shop@example.com", To: []string{"not an address"}}, time.Now())
	require.ErrorIs(t, err, ErrBadAddress)

	// a broken Reply-To is dropped, not fatal
	_, err = Build(Message{From: "shop@example.com", To: []string{"a@example.com"}, ReplyTo: "???"}, time.Now())
	require.NoError(t, err)
}

func TestNewSMTPSenderRequiresHost(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Port: 587, Username: "shop@example.com"})
	require.Error(t, err)
}

func TestSMTPSender(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "shop@example.com", Password: "pw"})
	require.NoError(t, err)

	var got []*gomail.Msg
	s.send = func(_ context.Context, msgs ...*gomail.Msg) error {
		got = append(got, msgs...)
		return nil
	}

	require.NoError(t, s.Send(context.Background(), Message{To: []string{"ada@example.com"}, Subject: "x", Body: "y"}))
	require.Len(t, got, 1)

	from, err := got[0].GetSender(false)
	require.NoError(t, err)
	require.Equal(t, "shop@example.com", from)

	rcpts, err := got[0].GetRecipients()
	require.NoError(t, err)
	require.Equal(t, []string{"ada@example.com"}, rcpts)
}

func TestSMTPSenderErrors(t *testing.T) {
	t.Run("relay failure is wrapped", func(t *testing.T) {
		s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "shop@example.com"})
		require.NoError(t, err)

		boom := errors.New("boom")
		s.send = func(context.Context, ...*gomail.Msg) error { return boom }
		err = s.Send(context.Background(), Message{To: []string{"a@example.com"}})
		require.ErrorIs(t, err, boom)
	})

	t.Run("bad message never reaches the relay", func(t *testing.T) {
		s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "shop@example.com"})
		require.NoError(t, err)

		s.send = func(context.Context, ...*gomail.Msg) error {
			t.Fatal("send called")
			return nil
		}
		require.ErrorIs(t, s.Send(context.Background(), Message{}), ErrNoRecipient)
	})

	t.Run("relay hangs up", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		t.Cleanup(func() { _ = ln.Close() })
		go func() {
			for {
				conn, err := ln.Accept()
				if err != nil {
					return
				}
				_ = conn.Close()
			}
		}()

		addr := ln.Addr().(*net.TCPAddr)
		s, err := NewSMTPSender(SMTPConfig{
			Host:     "127.0.0.1",
			Port:     addr.Port,
			Username: "shop@example.com",
			Timeout:  time.Second,
		})
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.Send(ctx, Message{To: []string{"a@example.com"}})
		require.Error(t, err)
		require.NoError(t, ctx.Err(), "send should fail on its own, not by deadline")
	})
}

func TestLogSender(t *testing.T) {
	require.NoError(t, LogSender{}.Send(context.Background(), Message{To: []string{"a@example.com"}}))
}
