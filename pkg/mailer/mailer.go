package mailer

import (
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/pixeltrack/pixeltrack/pkg/mailer Mailer

// Mailer is the interface for sending transactional emails
type Mailer interface {
	// SendPasswordReset sends the link that lets a user choose a new password
	SendPasswordReset(email, name, resetURL string, expiresIn time.Duration) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	APIEndpoint  string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendPasswordReset sends the password reset link
func (m *SMTPMailer) SendPasswordReset(email, name, resetURL string, expiresIn time.Duration) error {
	msg, err := m.newMessage(email)
	if err != nil {
		return err
	}

	subject := "Redefinição de senha - PixelTrack"
	msg.Subject(subject)

	htmlBody, plainBody := passwordResetBodies(name, resetURL, expiresIn)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// test mode: no client, just log what would have been sent
	if client == nil {
		log.Printf("Sending password reset email to: %s", email)
		log.Printf("From: %s <%s>", m.config.FromName, m.config.FromEmail)
		log.Printf("Subject: %s", subject)
		log.Printf("Reset URL: %s", resetURL)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) newMessage(to string) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("failed to set email recipient: %w", err)
	}
	return msg, nil
}

func passwordResetBodies(name, resetURL string, expiresIn time.Duration) (string, string) {
	greeting := "Olá"
	if name != "" {
		greeting += ", " + name
	}
	validity := formatValidity(expiresIn)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Redefinição de senha</h1>
			<p>%s.</p>
			<p>Recebemos um pedido para redefinir a senha da sua conta PixelTrack.</p>
			<p><a href="%s">Escolher uma nova senha</a></p>
			<p>Se o link não funcionar, copie e cole este endereço no navegador:</p>
			<p>%s</p>
			<p>O link expira em %s. Se você não fez este pedido, ignore este email.</p>
			<p>Equipe PixelTrack</p>
		</body>
	</html>`, greeting, resetURL, resetURL, validity)

	plainBody := fmt.Sprintf(
		"%s.\n\nRecebemos um pedido para redefinir a senha da sua conta PixelTrack.\n\n"+
			"Use este link para escolher uma nova senha: %s\n\n"+
			"O link expira em %s. Se você não fez este pedido, ignore este email.\n\n"+
			"Equipe PixelTrack", greeting, resetURL, validity)

	return htmlBody, plainBody
}

func formatValidity(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hora"
		}
		return fmt.Sprintf("%d horas", hours)
	}
	minutes := int(d / time.Minute)
	if minutes == 1 {
		return "1 minuto"
	}
	return fmt.Sprintf("%d minutos", minutes)
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// unauthenticated relays (port 25, local MTA) are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just prints emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendPasswordReset prints the reset link to stdout
func (m *ConsoleMailer) SendPasswordReset(email, name, resetURL string, expiresIn time.Duration) error {
	_, plainBody := passwordResetBodies(name, resetURL, expiresIn)

	fmt.Println("==============================================================")
	fmt.Println("                   PASSWORD RESET EMAIL                       ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", email)
	fmt.Printf("Subject: Redefinição de senha - PixelTrack\n\n")
	fmt.Println(plainBody)
	fmt.Println("==============================================================")

	return nil
}
