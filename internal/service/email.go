package service

import (
	"context"
	"fmt"

	"clothshare-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, subject, body string) error {
	if s.apiKey == "" {
		// No key configured (local development); log instead of sending.
		logger.InfoContext(ctx, "Email suppressed, no SendGrid key configured", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

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

func (s *emailService) SendRentalRequested(ctx context.Context, ownerEmail, renterName, itemTitle string) error {
	subject := "New rental request"
	body := fmt.Sprintf("%s requested to rent %q.\n\nOpen ClothShare to accept or decline the request.", renterName, itemTitle)
	return s.send(ctx, ownerEmail, subject, body)
}

func (s *emailService) SendRentalAccepted(ctx context.Context, renterEmail, itemTitle, ownerName string) error {
	subject := "Rental request accepted"
	body := fmt.Sprintf("%s accepted your request to rent %q. Arrange pickup with the owner.", ownerName, itemTitle)
	return s.send(ctx, renterEmail, subject, body)
}

func (s *emailService) SendRentalRejected(ctx context.Context, renterEmail, itemTitle, ownerName string) error {
	subject := "Rental request declined"
	body := fmt.Sprintf("%s declined your request to rent %q.", ownerName, itemTitle)
	return s.send(ctx, renterEmail, subject, body)
}

func (s *emailService) SendRentalCompleted(ctx context.Context, email, itemTitle string, totalAmount float64) error {
	subject := "Rental completed"
	body := fmt.Sprintf("The rental of %q is complete. Total amount: %.2f.", itemTitle, totalAmount)
	return s.send(ctx, email, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, renterEmail, itemTitle, endDate string) error {
	subject := "Return reminder"
	body := fmt.Sprintf("Your rental of %q ends today (%s). Please arrange the return with the owner.", itemTitle, endDate)
	return s.send(ctx, renterEmail, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, itemTitle, endDate string) error {
	subject := "Rental overdue"
	body := fmt.Sprintf("The rental of %q was due back on %s and has not been marked complete.", itemTitle, endDate)
	return s.send(ctx, email, subject, body)
}
