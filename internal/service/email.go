package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed email channel. An empty apiKey
// yields a disabled service that drops every send.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendLoanRequestNotification(ctx context.Context, toEmail, toName, requesterName, toolName string) error {
	subject := fmt.Sprintf("New request for %s", toolName)
	body := fmt.Sprintf("Hello %s,\n\n%s wants to borrow your tool %q. Open the app to approve or reject the request.\n\nBest regards,\nThe VeciTools Team", toName, requesterName, toolName)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendLoanStatusNotification(ctx context.Context, toEmail, toName, toolName, statusLine string) error {
	subject := fmt.Sprintf("Update on %s", toolName)
	body := fmt.Sprintf("Hello %s,\n\n%s\n\nBest regards,\nThe VeciTools Team", toName, statusLine)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendToolModerationNotification(ctx context.Context, toEmail, toName, toolName string, approved bool) error {
	subject := fmt.Sprintf("Moderation result for %s", toolName)
	verdict := fmt.Sprintf("Sorry, your tool %q has been rejected.", toolName)
	if approved {
		verdict = fmt.Sprintf("Congratulations! Your tool %q has been approved and is now visible in the catalog.", toolName)
	}
	body := fmt.Sprintf("Hello %s,\n\n%s\n\nBest regards,\nThe VeciTools Team", toName, verdict)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	if s.apiKey == "" {
		return nil // email channel disabled
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
