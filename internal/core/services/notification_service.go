package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"studesk/internal/adapters/persistence/models"
	"studesk/internal/config"
	"studesk/internal/core/domain"
)

const mailDialTimeout = 10 * time.Second

// Mailer sends transactional notifications to students over SMTP.
// When SMTP is not configured every send is a silent no-op and
// endpoints report sent=false.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer creates a new mailer
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled checks if outbound mail is configured
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// Send delivers a plain-text message to a single recipient
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.Enabled() {
		return nil
	}

	raw := buildMessage(m.cfg.From, to, subject, body)

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	dialer := &net.Dialer{Timeout: mailDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.cfg.StartTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
				return err
			}
		}
	}

	if m.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(strings.TrimSpace(to)); err != nil {
		return err
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write(raw); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// buildMessage assembles a minimal RFC 822 plain-text message
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: text/plain; charset=utf-8\r\n")
	fmt.Fprintf(&b, "\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// NotifyRequestDecision mails a student about an accept/reject decision.
// Called after the transition committed; failures are logged only.
func (m *Mailer) NotifyRequestDecision(request *models.DocumentRequest) {
	if !m.Enabled() {
		return
	}

	subject := fmt.Sprintf("Votre demande %s", request.ReferenceNumber)
	var body string
	if domain.RequestStatus(request.Status) == domain.RequestAccepted {
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande %s a été acceptée.",
			request.Student.FullName(), request.ReferenceNumber)
	} else {
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande %s a été rejetée.",
			request.Student.FullName(), request.ReferenceNumber)
		if request.RejectionReason != "" {
			body += "\nMotif : " + request.RejectionReason
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.Send(ctx, request.Student.Email, subject, body); err != nil {
		log.Printf("⚠️ Failed to send decision mail for %s: %v", request.ReferenceNumber, err)
	}
}

// NotifyComplaintResponse mails a student the recorded complaint response
func (m *Mailer) NotifyComplaintResponse(complaint *models.Complaint) {
	if !m.Enabled() {
		return
	}

	subject := fmt.Sprintf("Réponse à votre réclamation %s", complaint.ReferenceNumber)
	body := fmt.Sprintf("Bonjour,\n\nVotre réclamation %s a reçu une réponse :\n\n%s",
		complaint.ReferenceNumber, complaint.Response)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.Send(ctx, complaint.Email, subject, body); err != nil {
		log.Printf("⚠️ Failed to send complaint response mail for %s: %v", complaint.ReferenceNumber, err)
	}
}
