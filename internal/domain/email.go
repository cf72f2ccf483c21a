package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// A returned error is a transport failure; callers decide whether it is
// fatal (single sends) or recorded per-recipient (bulk dispatch).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the registration invitation email.
type InvitationEmailData struct {
	Email        string
	Link         string
	ExpiresHours int
}

// PasswordResetEmailData holds data for the password reset email.
type PasswordResetEmailData struct {
	Email          string
	Link           string
	ExpiresMinutes int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvitation(ctx context.Context, data *InvitationEmailData) error
	SendPasswordReset(ctx context.Context, data *PasswordResetEmailData) error
}
