package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// Success means the provider accepted the message for delivery,
	// not that the recipient received it.
	Send(ctx context.Context, email *Email) error
}
