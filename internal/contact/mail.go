package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mrz1836/postmark"
)

// ErrMissingCredentials is returned when a mail relay lacks credentials.
var ErrMissingCredentials = errors.New("mail credentials not configured")

// Subject builds the email subject line for a submission.
func Subject(sub Submission) string {
	return "Portfolio Contact: " + sub.Subject
}

// Body renders the plain-text summary used by mail relays and the mailto
// fallback.
func Body(sub Submission) string {
	return fmt.Sprintf(`
Name: %s
Email: %s
Subject: %s

Message:
%s
`, sub.FullName(), sub.Email, sub.Subject, sub.Message)
}

// SMTPConfig configures SMTPRelay.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPRelay mails submissions through an SMTP server.
type SMTPRelay struct {
	cfg  SMTPConfig
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPRelay validates cfg and returns a relay.
func NewSMTPRelay(cfg SMTPConfig) (*SMTPRelay, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: SMTP_USER and SMTP_PASS are required", ErrMissingCredentials)
	}
	if cfg.Host == "" || cfg.Port == "" || cfg.To == "" {
		return nil, fmt.Errorf("%w: SMTP host, port and recipient are required", ErrMissingCredentials)
	}

	return &SMTPRelay{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		send: smtp.SendMail,
	}, nil
}

// Send implements Relay.
func (r *SMTPRelay) Send(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte("To: " + r.cfg.To + "\r\n" +
		"Subject: " + headerSafe(Subject(sub)) + "\r\n" +
		"From: " + r.cfg.Username + "\r\n" +
		"Reply-To: " + headerSafe(sub.Email) + "\r\n" +
		"\r\n" +
		"New contact form submission from your portfolio:\r\n" +
		Body(sub) + "\r\n")

	if err := r.send(r.cfg.Host+":"+r.cfg.Port, r.auth, r.cfg.Username, []string{r.cfg.To}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// headerSafe strips line breaks so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// PostmarkConfig configures PostmarkRelay.
type PostmarkConfig struct {
	ServerToken string
	From        string
	To          string
}

// PostmarkRelay sends submissions through Postmark's transactional API.
type PostmarkRelay struct {
	client *postmark.Client
	cfg    PostmarkConfig
}

// NewPostmarkRelay validates cfg and returns a relay.
func NewPostmarkRelay(cfg PostmarkConfig) (*PostmarkRelay, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrMissingCredentials)
	}
	if cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("%w: sender and recipient are required", ErrMissingCredentials)
	}

	return &PostmarkRelay{
		client: postmark.NewClient(cfg.ServerToken, ""),
		cfg:    cfg,
	}, nil
}

// Send implements Relay.
func (r *PostmarkRelay) Send(ctx context.Context, sub Submission) error {
	resp, err := r.client.SendEmail(ctx, postmark.Email{
		From:     r.cfg.From,
		To:       r.cfg.To,
		ReplyTo:  sub.Email,
		Subject:  Subject(sub),
		TextBody: Body(sub),
		Tag:      "contact",
	})
	if err != nil {
		return fmt.Errorf("postmark send: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%w: postmark error %d - %s", ErrRelayRejected, resp.ErrorCode, resp.Message)
	}
	return nil
}
