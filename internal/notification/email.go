package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/sharath018/event-management-backend/config"
)

// Deliverer hands a message to its recipients.
type Deliverer interface {
	Deliver(ctx context.Context, msg Message) error
}

// NewDeliverer returns an SMTP sender when SMTP_HOST is configured, else a
// deliverer that only logs.
func NewDeliverer(cfg *config.Config) Deliverer {
	if cfg.SMTPHost == "" {
		return LogDeliverer{}
	}
	return NewEmailSender(cfg)
}

// ===========================
// 📝 Log deliverer

// LogDeliverer writes each announcement to the process log.
type LogDeliverer struct{}

func (LogDeliverer) Deliver(ctx context.Context, msg Message) error {
	log.Printf("📣 Announcement %s for %q to %d participant(s): %s",
		msg.AnnouncementID, msg.EventName, len(msg.Recipients), msg.Text)
	return nil
}

// ===========================
// 📧 SMTP

var emailTemplate = template.Must(template.New("announcement").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #667eea;">{{.Subject}}</h2>
  <p>{{.Body}}</p>
  <hr>
  <p style="font-size: 12px; color: #999;">You are receiving this because you registered for {{.Event}}.</p>
</body>
</html>`))

// EmailSender sends announcements over SMTP with STARTTLS.
type EmailSender struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromName  string
	FromAddr  string
	BatchSize int
	// send is swapped in tests.
	send func(addr string, to []string, message []byte) error
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	e := &EmailSender{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromName:  cfg.SMTPFromName,
		FromAddr:  cfg.SMTPFromEmail,
		BatchSize: 50,
	}
	e.send = e.sendMailWithTLS
	return e
}

// Deliver sends the message in batches of BatchSize recipients.
func (e *EmailSender) Deliver(ctx context.Context, msg Message) error {
	total := len(msg.Recipients)
	if total == 0 {
		return nil
	}
	batchSize := e.BatchSize
	if batchSize <= 0 {
		batchSize = total
	}

	var lastErr error
	sent, failed := 0, 0
	for i := 0; i < total; i += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := i + batchSize
		if end > total {
			end = total
		}
		batch := msg.Recipients[i:end]

		if err := e.Send(batch, msg.Subject(), msg.Text, msg.EventName); err != nil {
			log.Printf("❌ Batch %d-%d failed: %v", i+1, end, err)
			lastErr = err
			failed += len(batch)
		} else {
			sent += len(batch)
		}

		if end < total {
			time.Sleep(200 * time.Millisecond)
		}
	}

	log.Printf("📊 Email send complete: %d succeeded, %d failed out of %d total", sent, failed, total)
	if failed > 0 {
		return fmt.Errorf("%d/%d emails failed, last error: %w", failed, total, lastErr)
	}
	return nil
}

// Send renders the HTML template and sends the email
func (e *EmailSender) Send(to []string, subject, body, event string) error {
	var htmlBody bytes.Buffer
	if err := emailTemplate.Execute(&htmlBody, map[string]string{
		"Subject": subject,
		"Body":    body,
		"Event":   event,
	}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", e.FromName, e.FromAddr)
	var msg strings.Builder
	for _, h := range [][2]string{
		{"From", from},
		{"To", strings.Join(to, ", ")},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="UTF-8"`},
	} {
		msg.WriteString(h[0] + ": " + h[1] + "\r\n")
	}
	msg.WriteString("\r\n" + htmlBody.String())

	addr := fmt.Sprintf("%s:%s", e.Host, e.Port)
	log.Printf("📤 Sending email to %d recipient(s) via %s", len(to), addr)
	if err := e.send(addr, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (e *EmailSender) sendMailWithTLS(addr string, to []string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: e.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if e.Username != "" {
		if err = client.Auth(smtp.PlainAuth("", e.Username, e.Password, e.Host)); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err = client.Mail(e.FromAddr); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = writer.Write(message); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return client.Quit()
}
