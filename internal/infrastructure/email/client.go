// Package email provides email sending via Resend
package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"

	"github.com/prelandr/prelandr-go/internal/infrastructure/email/templates"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

// Service describes outbound email operations.
type Service interface {
	SendSitePublishedEmail(toEmail, siteName, templateID, siteURL string) error
	SendDownloadLinkEmail(toEmail, siteName, downloadURL, expiresIn string) error
}

// ResendClient sends through the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NoopService is used when no API key is configured. Sends are logged
// and dropped so publish and export flows never fail on email.
type NoopService struct {
	logger *logging.ChanneledLogger
}

// NewService returns a ResendClient when apiKey is set, NoopService otherwise.
func NewService(apiKey, fromEmail, fromName string, logger *logging.ChanneledLogger) Service {
	if apiKey == "" {
		logger.Email().Warn("RESEND_API_KEY not set, email sending disabled")
		return &NoopService{logger: logger}
	}
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (c *ResendClient) send(toEmail, subject, content string) error {
	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Content: content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}
	return nil
}

func (c *ResendClient) SendSitePublishedEmail(toEmail, siteName, templateID, siteURL string) error {
	content := templates.GetSitePublishedEmailContent(templates.SitePublishedEmailProps{
		SiteName:   siteName,
		TemplateID: templateID,
		SiteURL:    siteURL,
	})
	return c.send(toEmail, fmt.Sprintf("%s is live", siteName), content)
}

func (c *ResendClient) SendDownloadLinkEmail(toEmail, siteName, downloadURL, expiresIn string) error {
	content := templates.GetDownloadLinkEmailContent(templates.DownloadLinkEmailProps{
		SiteName:    siteName,
		DownloadURL: downloadURL,
		ExpiresIn:   expiresIn,
	})
	return c.send(toEmail, fmt.Sprintf("Download link for %s", siteName), content)
}

func (s *NoopService) SendSitePublishedEmail(toEmail, siteName, _, _ string) error {
	s.logger.Email().Info("Email sending disabled, skipping publish notification",
		"to", toEmail, "site", siteName)
	return nil
}

func (s *NoopService) SendDownloadLinkEmail(toEmail, siteName, _, _ string) error {
	s.logger.Email().Info("Email sending disabled, skipping download link",
		"to", toEmail, "site", siteName)
	return nil
}
