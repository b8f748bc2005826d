package mailer

import (
	"context"
	"crypto/tls"
	"net"
	"net/smtp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dev334/hemo-be/src/shared/config"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Mailer is the outbound mail collaborator. Send failures must surface to
// whoever triggered the message - there is no retry or queueing behind it.
//
//counterfeiter:generate . Mailer
type Mailer interface {
	Send(ctx context.Context, toAddress string, subject string, htmlBody string) error

	// Ping dials and authenticates against the relay without sending
	// anything. Exposed so the health check can exercise the relay
	// explicitly instead of testing it as a startup side effect.
	Ping(ctx context.Context) error
}

var _ Mailer = SMTPMailer{}

type SMTPMailer struct {
	Config config.SMTP
}

func (m SMTPMailer) Send(ctx context.Context, toAddress string, subject string, htmlBody string) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(m.Config.User); err != nil {
		return errors.Wrap(err, "Failed to set the mail sender")
	}

	if err := client.Rcpt(toAddress); err != nil {
		return errors.Wrap(err, "Failed to set the mail recipient")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "Failed to open the mail data stream")
	}

	msg := strings.Join([]string{
		"From: " + m.Config.User,
		"To: " + toAddress,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if _, err := writer.Write([]byte(msg)); err != nil {
		return errors.Wrap(err, "Failed to write the mail body")
	}

	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "Failed to close the mail data stream")
	}

	if err := client.Quit(); err != nil {
		return errors.Wrap(err, "Failed to quit the SMTP session")
	}

	return nil
}

func (m SMTPMailer) Ping(ctx context.Context) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return errors.Wrap(err, "SMTP relay didn't respond to NOOP")
	}

	return client.Quit()
}

func (m SMTPMailer) connect(ctx context.Context) (*smtp.Client, error) {
	dialer := net.Dialer{}

	conn, err := dialer.DialContext(ctx, "tcp", m.Config.Addr())
	if err != nil {
		return nil, errors.Wrap(err, "Failed to dial the SMTP relay")
	}

	client, err := smtp.NewClient(conn, m.Config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "Failed to start an SMTP session")
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName: m.Config.Host,
			MinVersion: tls.VersionTLS12,
		}

		if err := client.StartTLS(tlsConfig); err != nil {
			_ = client.Close()
			return nil, errors.Wrap(err, "Failed to upgrade the SMTP session to TLS")
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", m.Config.User, m.Config.Password, m.Config.Host)
		if err := client.Auth(auth); err != nil {
			_ = client.Close()
			return nil, errors.Wrap(err, "Failed to authenticate against the SMTP relay")
		}
	}

	return client, nil
}
