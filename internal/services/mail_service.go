package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	MailProviderSMTP     = "smtp"
	MailProviderSendGrid = "sendgrid"
	MailProviderLog      = "log"
)

type IMailService interface {
	SendMailToResetPassword(ctx context.Context, to, token string) error
}

// SMTPConfig holds the SMTP transport settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	UseSSL     bool // implicit TLS (465) instead of STARTTLS (587)
	RequireTLS bool // fail when the server does not offer STARTTLS
}

type MailConfig struct {
	Provider       string
	From           string
	FromName       string
	AppName        string
	AppBaseURL     string
	SMTP           SMTPConfig
	SendGridAPIKey string
}

type mailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type mailTransport interface {
	deliver(ctx context.Context, msg mailMessage) error
}

type mailService struct {
	cfg       MailConfig
	htmlTpl   *template.Template
	textTpl   *texttemplate.Template
	transport mailTransport
	now       func() time.Time
}

func NewMailService(cfg MailConfig, logger *zap.Logger) (IMailService, error) {
	var transport mailTransport
	switch cfg.Provider {
	case MailProviderSMTP, "":
		if cfg.SMTP.Host == "" {
			return nil, fmt.Errorf("smtp mail provider: host is required")
		}
		transport = &smtpTransport{cfg: cfg.SMTP, from: cfg.From, fromHeader: formatFromHeader(cfg.FromName, cfg.From)}
	case MailProviderSendGrid:
		if cfg.SendGridAPIKey == "" || cfg.From == "" {
			return nil, fmt.Errorf("sendgrid mail provider: api key and sender are required")
		}
		transport = &sendgridTransport{
			client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
			from:   sgmail.NewEmail(cfg.FromName, cfg.From),
		}
	case MailProviderLog:
		if logger == nil {
			logger = zap.NewNop()
		}
		transport = &logTransport{logger: logger}
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
	return newMailService(cfg, transport), nil
}

func newMailService(cfg MailConfig, transport mailTransport) *mailService {
	return &mailService{
		cfg:       cfg,
		htmlTpl:   template.Must(template.New("html").Parse(htmlTemplate)),
		textTpl:   texttemplate.Must(texttemplate.New("text").Parse(plainTextTemplate)),
		transport: transport,
		now:       time.Now,
	}
}

func (s *mailService) SendMailToResetPassword(ctx context.Context, to, token string) error {
	subject := "Reset your password"
	html, text, err := s.render(emailData{
		Title:     subject,
		Intro:     "We received a request to reset your password. Use the button below to choose a new one. If you did not ask for this, ignore this email.",
		ButtonURL: resetPasswordLink(s.cfg.AppBaseURL, token),
		ButtonTxt: "Reset password",
		AppName:   s.cfg.AppName,
		Year:      s.now().Year(),
	})
	if err != nil {
		return err
	}
	return s.transport.deliver(ctx, mailMessage{To: to, Subject: subject, HTML: html, Text: text})
}

func resetPasswordLink(baseURL, token string) string {
	return fmt.Sprintf("%s/v1/auth/reset-password?token=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
}

type emailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const htmlTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f1f5f9; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; }
    .container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; }
    .header { padding: 24px 32px; font-weight: 700; color: #1d4ed8; border-bottom: 1px solid #e2e8f0; }
    .hero { padding: 32px; }
    .btn { display: inline-block; padding: 14px 28px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 8px; font-weight: 600; }
    .muted { color: #64748b; font-size: 13px; word-break: break-all; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .ButtonURL}}
        <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
        <p class="muted">If the button does not work, open this link: {{.ButtonURL}}</p>
      {{end}}
    </div>
    <div class="footer">&copy; {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{if .ButtonURL}}
Open this link:
{{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *mailService) render(data emailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// SMTP

type smtpTransport struct {
	cfg        SMTPConfig
	from       string
	fromHeader string
}

func (t *smtpTransport) deliver(ctx context.Context, msg mailMessage) error {
	addr := net.JoinHostPort(t.cfg.Host, fmt.Sprint(t.cfg.Port))
	tlsCfg := &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var (
		conn net.Conn
		err  error
	)
	if t.cfg.UseSSL {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !t.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if t.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if t.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(t.from); err != nil {
		return err
	}
	if err = c.Rcpt(msg.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	body := buildMIMEMessage(t.fromHeader, msg, time.Now())
	if _, err = w.Write(body); err != nil {
		return err
	}
	return w.Close()
}

func buildMIMEMessage(fromHeader string, m mailMessage, date time.Time) []byte {
	boundary := fmt.Sprintf("alt_%d", date.UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", m.To)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", m.Subject))
	write("Date: %s\r\n", date.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", m.Text)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", m.HTML)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func formatFromHeader(name, address string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), address)
}

// SendGrid

type sendgridTransport struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func (t *sendgridTransport) deliver(ctx context.Context, msg mailMessage) error {
	message := sgmail.NewSingleEmail(t.from, msg.Subject, sgmail.NewEmail("", msg.To), msg.Text, msg.HTML)
	resp, err := t.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Log, for local development.

type logTransport struct {
	logger *zap.Logger
}

func (t *logTransport) deliver(_ context.Context, msg mailMessage) error {
	// The body carries a live reset link and is never logged.
	t.logger.Info("mail not sent, log provider in use",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("text_bytes", len(msg.Text)))
	return nil
}
