package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"staffdir/internal/domain/contact"
	"staffdir/internal/platform/config"
)

var ErrNoRecipient = errors.New("email: recipient is required")

// simulatedNotifier stands in for a mail provider: it logs the message and
// waits for the configured delay.
type simulatedNotifier struct {
	from   string
	delay  time.Duration
	logger *slog.Logger
}

func (s *simulatedNotifier) Send(ctx context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrNoRecipient
	}
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	s.logger.Info("email sent",
		"from", s.from,
		"to", to,
		"subject", subject,
		"bytes", len(body),
	)
	return nil
}

const dialTimeout = 10 * time.Second

// smtpNotifier opens one SMTP session per message.
type smtpNotifier struct {
	host   string
	addr   string
	from   string
	auth   smtp.Auth
	useTLS bool
	now    func() time.Time
}

func New(cfg config.Config, logger *slog.Logger) contact.Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return &simulatedNotifier{from: cfg.EmailFrom, delay: cfg.EmailSimulatedDelay, logger: logger}
	}
	n := &smtpNotifier{
		host:   cfg.SMTPHost,
		addr:   net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		from:   cfg.EmailFrom,
		useTLS: cfg.SMTPUseTLS,
		now:    time.Now,
	}
	if cfg.SMTPUser != "" {
		n.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return n
}

func (n *smtpNotifier) Send(ctx context.Context, to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrNoRecipient
	}

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return fmt.Errorf("email: dial %s: %w", n.addr, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		return fmt.Errorf("email: handshake: %w", err)
	}
	defer client.Close()

	if err := n.deliver(client, to, buildMessage(n.from, to, subject, body, n.now())); err != nil {
		return fmt.Errorf("email: deliver to %s: %w", to, err)
	}
	return client.Quit()
}

func (n *smtpNotifier) deliver(client *smtp.Client, to string, msg []byte) error {
	if n.useTLS {
		if err := client.StartTLS(&tls.Config{ServerName: n.host}); err != nil {
			return err
		}
	}
	if n.auth != nil {
		if err := client.Auth(n.auth); err != nil {
			return err
		}
	}
	if err := client.Mail(n.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// buildMessage renders an HTML message. Non-ASCII subjects are Q-encoded.
func buildMessage(from, to, subject, body string, date time.Time) []byte {
	domain := "localhost"
	if _, host, ok := strings.Cut(from, "@"); ok && host != "" {
		domain = host
	}
	var b strings.Builder
	for _, h := range [][2]string{
		{"From", from},
		{"To", to},
		{"Subject", mime.QEncoding.Encode("utf-8", subject)},
		{"Date", date.Format(time.RFC1123Z)},
		{"Message-ID", "<" + uuid.NewString() + "@" + domain + ">"},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="UTF-8"`},
	} {
		b.WriteString(h[0] + ": " + h[1] + "\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
