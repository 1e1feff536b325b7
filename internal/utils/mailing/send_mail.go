package mailing

import (
	"fmt"
	"html"
	"wine-diary/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	Mailer interface {
		SendWelcome(toEmail string, name string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     int
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
		dialer *gomail.Dialer
	}

	noopMailer struct{}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfigInt("SMTP_PORT", 587),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// NewMailer returns an SMTP mailer, or one that sends nothing when
// SMTP_HOST is not configured.
func NewMailer(config MailConfig) Mailer {
	if config.SMTPHost == "" {
		return noopMailer{}
	}
	return &smtpMailer{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPEmail, config.SMTPPassword),
	}
}

func (m *smtpMailer) SendWelcome(toEmail string, name string) error {
	return m.dialer.DialAndSend(m.welcomeMessage(toEmail, name))
}

func (m *smtpMailer) welcomeMessage(toEmail string, name string) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", "Welcome to Wine Diary")
	mailer.SetBody("text/html", WelcomeBody(name, m.config.AppURL))
	return mailer
}

func WelcomeBody(name string, appURL string) string {
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your wine diary is ready. Every bottle you taste can now be noted down.</p>", html.EscapeString(name))
	if appURL != "" {
		body += fmt.Sprintf(`<p><a href="%s">Open your diary</a></p>`, html.EscapeString(appURL))
	}
	return body
}

func (noopMailer) SendWelcome(string, string) error { return nil }
