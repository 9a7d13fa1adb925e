package services

import (
	"context"
	"fmt"
	"log"

	"memberorg/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSubmissionConfirmation sends a confirmation email for an accepted public
// submission using the "submission_confirmation" template.
func (s *emailService) SendSubmissionConfirmation(ctx context.Context, data *domain.SubmissionConfirmationData) error {
	if data == nil {
		return fmt.Errorf("submission confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("submission_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render submission_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Submission confirmation sent to %s", data.Email)
	return nil
}
