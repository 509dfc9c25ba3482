package mailer

import (
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"studio-backend/internal/config"
)

// Sender delivers one outbound email. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to, subject, html string) error
}

// Dispatch sends through s and absorbs any failure. Notification delivery
// must never fail the state change that triggered it.
func Dispatch(s Sender, to, subject, html string) {
	if err := s.Send(to, subject, html); err != nil {
		log.Printf("Email to %s failed: %v", to, err)
		return
	}
	log.Printf("Email sent to %s: %s", to, subject)
}

const dialTimeout = 15 * time.Second

// SMTPSender speaks SMTP with STARTTLS when the server offers it.
type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
	FromAddr string
	FromName string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromAddr: cfg.SenderEmail,
		FromName: cfg.SenderName,
	}
}

func (s *SMTPSender) Send(to, subject, html string) error {
	address := net.JoinHostPort(s.Host, s.Port)

	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return fmt.Errorf("mailer: dial: %w", err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(dialTimeout))

	client, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return fmt.Errorf("mailer: client: %w", err)
	}
	defer client.Quit()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return fmt.Errorf("mailer: starttls: %w", err)
		}
	}
	if s.Username != "" {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("mailer: auth: %w", err)
		}
	}

	if err := client.Mail(s.FromAddr); err != nil {
		return fmt.Errorf("mailer: MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("mailer: RCPT TO %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: DATA: %w", err)
	}
	if _, err := w.Write(s.buildMessage(to, subject, html)); err != nil {
		_ = w.Close()
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: close data: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(to, subject, html string) []byte {
	var b strings.Builder
	b.WriteString("From: " + mime.QEncoding.Encode("utf-8", s.FromName) + " <" + s.FromAddr + ">\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)
	b.WriteString("\r\n")
	return []byte(b.String())
}
