package email

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"staffdir/internal/platform/config"
)

func TestNewSelectsTransport(t *testing.T) {
	if _, ok := New(config.Config{}, nil).(*simulatedNotifier); !ok {
		t.Fatal("expected simulated notifier when email is disabled")
	}
	if _, ok := New(config.Config{EmailEnabled: true}, nil).(*simulatedNotifier); !ok {
		t.Fatal("expected simulated notifier without smtp host")
	}
	if _, ok := New(config.Config{EmailEnabled: true, SMTPHost: "smtp.example.com"}, nil).(*smtpNotifier); !ok {
		t.Fatal("expected smtp notifier when enabled with host")
	}
}

func TestSimulatedNotifierLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	n := New(config.Config{EmailFrom: "noreply@example.com"}, logger)

	if err := n.Send(context.Background(), "jane@acme.com", "Hello", "<p>hi</p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"to":"jane@acme.com"`) || !strings.Contains(out, `"subject":"Hello"`) {
		t.Fatalf("expected send to be logged, got %q", out)
	}
}

func TestSimulatedNotifierHonoursContext(t *testing.T) {
	n := &simulatedNotifier{delay: time.Minute, logger: slog.Default()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Send(ctx, "jane@acme.com", "Hello", "body")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	n := New(config.Config{}, nil)
	if err := n.Send(context.Background(), " ", "s", "b"); !errors.Is(err, ErrNoRecipient) {
		t.Fatalf("expected ErrNoRecipient, got %v", err)
	}
}

func TestBuildMessage(t *testing.T) {
	date := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	msg := string(buildMessage("a@example.com", "b@example.com", "Subject line", "<p>body</p>", date))
	for _, want := range []string{
		"From: a@example.com\r\n",
		"Date: Mon, 19 Oct 2026 09:30:00 +0000\r\n",
		"@example.com>\r\n",
		"To: b@example.com\r\n",
		"Subject: Subject line\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
		"\r\n\r\n<p>body</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestBuildMessageEncodesSubject(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", "Merci - Société", "x", time.Now()))
	if !strings.Contains(msg, "Subject: =?utf-8?q?") {
		t.Fatalf("expected Q-encoded subject, got %q", msg)
	}
}

func TestSMTPNotifierReportsDialFailure(t *testing.T) {
	n := New(config.Config{EmailEnabled: true, SMTPHost: "127.0.0.1", SMTPPort: 1, EmailFrom: "a@example.com"}, nil)
	err := n.Send(context.Background(), "b@example.com", "s", "b")
	if err == nil || !strings.Contains(err.Error(), "email: dial 127.0.0.1:1") {
		t.Fatalf("expected dial error, got %v", err)
	}
}
