// Package mail delivers queued mail events through an SMTP relay.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultDialTimeout = 10 * time.Second

// ErrInvalidMessage marks a mail event that can never be delivered.
var ErrInvalidMessage = service.ErrUndeliverableMail

type smtpMailer struct {
	host   string
	addr   string
	from   string
	auth   smtp.Auth
	dialer *net.Dialer
	now    func() time.Time
	logger *slog.Logger
}

// NewSMTPMailer builds the mailer from the mail section of the configuration.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mail
	if mc == nil || mc.Host == "" {
		return nil, errors.New("mail host must be provided")
	}
	if mc.From == "" {
		return nil, errors.New("mail sender must be provided")
	}

	port := mc.Port
	if port == 0 {
		port = 587
	}

	m := &smtpMailer{
		host:   mc.Host,
		addr:   net.JoinHostPort(mc.Host, strconv.Itoa(port)),
		from:   mc.From,
		dialer: &net.Dialer{Timeout: defaultDialTimeout},
		now:    time.Now,
		logger: logger,
	}
	if mc.Username != "" {
		m.auth = smtp.PlainAuth("", mc.Username, mc.Password, mc.Host)
	}

	return m, nil
}

// Send delivers event in one SMTP session. The context bounds dialing and,
// through the connection deadline, the whole exchange.
func (m *smtpMailer) Send(ctx context.Context, event *service.MailEvent) error {
	msg, err := m.buildMessage(event)
	if err != nil {
		return err
	}

	conn, err := m.dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return errors.Wrapf(err, "dial %s", m.addr)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()

			return errors.WithStack(err)
		}
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "smtp handshake")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "smtp starttls")
		}
	}
	if m.auth != nil {
		if err := client.Auth(m.auth); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}

	if err := client.Mail(m.from); err != nil {
		return errors.Wrap(err, "smtp MAIL FROM")
	}
	if err := client.Rcpt(event.To); err != nil {
		return errors.Wrap(err, "smtp RCPT TO")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "smtp write body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "smtp end of data")
	}

	m.logger.Info("Mail sent", slog.String("to", event.To), slog.String("request_id", event.RequestID))

	return errors.Wrap(client.Quit(), "smtp QUIT")
}

func (m *smtpMailer) buildMessage(event *service.MailEvent) ([]byte, error) {
	if event == nil || event.To == "" {
		return nil, errors.Wrap(ErrInvalidMessage, "recipient is required")
	}
	if strings.ContainsAny(event.To, "\r\n") || strings.ContainsAny(event.Subject, "\r\n") {
		return nil, errors.Wrap(ErrInvalidMessage, "header contains a line break")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", m.from)
	fmt.Fprintf(&buf, "To: %s\r\n", event.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", event.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", m.now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", uuid.NewString(), m.host)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(event.Body, "\r\n", "\n"), "\n", "\r\n"))

	return buf.Bytes(), nil
}
