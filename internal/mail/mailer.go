// Package mail delivers the platform's transactional email: account
// verification and password reset links. Delivery is retried with capped
// backoff and failures are logged with structure rather than swallowed.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/pkg/retry"

	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// MailerInterface defines the outbound mail operations used by the services
type MailerInterface interface {
	SendVerification(ctx context.Context, user *models.User, token string) error
	SendPasswordReset(ctx context.Context, user *models.User, token string) error
}

// Mailer sends templated mail over SMTP
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
	log     *logger.Logger
}

// NewMailer creates a mailer from the application config
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:    cfg.MailFrom,
		baseURL: cfg.FrontendBaseURL,
		log:     logger.New(),
	}
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<p>Hi {{.Name}},</p>
<p>Confirm your hackathon account by following this link:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>The link expires soon. If you did not register, ignore this mail.</p>
`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<p>Hi {{.Name}},</p>
<p>A password reset was requested for your account. Follow this link to
choose a new password:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>If you did not request a reset, ignore this mail.</p>
`))

// SendVerification mails the account confirmation link
func (m *Mailer) SendVerification(ctx context.Context, user *models.User, token string) error {
	link := fmt.Sprintf("%s/confirm_email?token=%s", m.baseURL, token)
	return m.send(ctx, user, "hackathon mail confirmation", verificationTmpl, link)
}

// SendPasswordReset mails the password reset link
func (m *Mailer) SendPasswordReset(ctx context.Context, user *models.User, token string) error {
	link := fmt.Sprintf("%s/change_password?token=%s", m.baseURL, token)
	return m.send(ctx, user, "hackathon password reset", passwordResetTmpl, link)
}

func (m *Mailer) send(ctx context.Context, user *models.User, subject string, tmpl *template.Template, link string) error {
	var body bytes.Buffer
	err := tmpl.Execute(&body, struct {
		Name string
		Link string
	}{Name: user.FirstName, Link: link})
	if err != nil {
		return fmt.Errorf("render mail template: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", link)
	msg.AddAlternative("text/html", body.String())

	err = retry.Do(ctx, retry.MailConfig(), func() error {
		return m.dialer.DialAndSend(msg)
	})
	if err != nil {
		m.log.WithError(err).WithFields(map[string]interface{}{
			"to":      user.Email,
			"subject": subject,
		}).Error("mail delivery failed")
		return fmt.Errorf("send mail: %w", err)
	}

	m.log.WithFields(map[string]interface{}{
		"to":      user.Email,
		"subject": subject,
	}).Info("mail sent")
	return nil
}
