package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/Prajwalng2/Major-Project-temp/internal/config"
	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
)

// SMTPEmailSender delivers application confirmation mail. It satisfies
// queue.EmailSender.
type SMTPEmailSender struct {
	config *config.Config
}

type confirmationData struct {
	ApplicantName string
	SchemeTitle   string
	ApplicationID string
}

func NewSMTPEmailSender(cfg *config.Config) *SMTPEmailSender {
	return &SMTPEmailSender{config: cfg}
}

func (s *SMTPEmailSender) SendApplicationConfirmation(ctx context.Context, to, applicantName, schemeTitle, applicationID string) error {
	if s.config.SMTPHost == "" {
		// No SMTP configured: log instead of failing the task so local
		// setups still acknowledge applications.
		logger.Info("SMTP not configured, skipping confirmation email",
			"to", to, "application_id", applicationID)
		return nil
	}

	data := confirmationData{
		ApplicantName: applicantName,
		SchemeTitle:   schemeTitle,
		ApplicationID: applicationID,
	}

	subject, htmlBody, textBody, err := s.generateEmailContent(data)
	if err != nil {
		return fmt.Errorf("failed to generate email content: %w", err)
	}

	recipients := []string{to}
	for _, adminEmail := range s.config.AdminEmails {
		if strings.TrimSpace(adminEmail) != "" {
			recipients = append(recipients, strings.TrimSpace(adminEmail))
		}
	}

	return s.sendEmail(recipients, subject, htmlBody, textBody)
}

func (s *SMTPEmailSender) generateEmailContent(data confirmationData) (subject, htmlBody, textBody string, err error) {
	subjectTpl := "Application Received - {{.SchemeTitle}} ({{.ApplicationID}})"

	subjectT, _ := template.New("subject").Parse(subjectTpl)
	htmlT, _ := template.New("html").Parse(getConfirmationHTMLTemplate())
	textT, _ := template.New("text").Parse(getConfirmationTextTemplate())

	var subjectBuf, htmlBuf, textBuf bytes.Buffer

	if err := subjectT.Execute(&subjectBuf, data); err != nil {
		return "", "", "", err
	}
	if err := htmlT.Execute(&htmlBuf, data); err != nil {
		return "", "", "", err
	}
	if err := textT.Execute(&textBuf, data); err != nil {
		return "", "", "", err
	}

	return subjectBuf.String(), htmlBuf.String(), textBuf.String(), nil
}

func (s *SMTPEmailSender) sendEmail(recipients []string, subject, htmlBody, textBody string) error {
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	message := fmt.Sprintf(`From: %s
To: %s
Subject: %s
MIME-Version: 1.0
Content-Type: multipart/alternative; boundary="boundary123"

--boundary123
Content-Type: text/plain; charset=UTF-8

%s

--boundary123
Content-Type: text/html; charset=UTF-8

%s

--boundary123--`,
		s.config.SMTPFrom,
		strings.Join(recipients, ", "),
		subject,
		textBody,
		htmlBody)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.SMTPFrom, recipients, []byte(message))
}

// Email templates
func getConfirmationHTMLTemplate() string {
	return `<html><body>
<h2>Application Received</h2>
<p>Dear {{.ApplicantName}},</p>
<p>Your application for <strong>{{.SchemeTitle}}</strong> has been received.</p>
<p>Your reference number is <strong>{{.ApplicationID}}</strong>. Keep it for any follow-up with the implementing agency.</p>
<p>This portal records your interest and forwards it; the final decision rests with the scheme's implementing agency.</p>
</body></html>`
}

func getConfirmationTextTemplate() string {
	return `Application Received

Dear {{.ApplicantName}},

Your application for {{.SchemeTitle}} has been received.

Your reference number is {{.ApplicationID}}. Keep it for any follow-up with the implementing agency.

This portal records your interest and forwards it; the final decision rests with the scheme's implementing agency.`
}
