// Package mailer provides a provider-agnostic email message type and
// sending interface.
//
// The package separates the message shape from the delivery mechanism,
// allowing providers to be swapped without touching the code that builds
// messages.
//
// # Usage
//
// Basic usage with the built-in Resend provider:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/notifika/mailroom/pkg/mailer"
//		"github.com/notifika/mailroom/pkg/mailer/resend"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender := resend.New(resend.Config{
//			APIKey:      os.Getenv("RESEND_API_KEY"),
//			SenderEmail: "team@example.com",
//			SenderName:  "Team",
//		})
//
//		err := sender.Send(ctx, &mailer.Email{
//			To:      []string{"user@example.com"},
//			Subject: "Monthly report",
//			HTML:    "<p>Report attached.</p>",
//			Attachments: []mailer.Attachment{{
//				Filename:    "report.pdf",
//				ContentType: "application/pdf",
//				Content:     pdfBytes,
//			}},
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		// Send email using your provider's API
//		return nil
//	}
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: No HTML or text content provided
//   - ErrSendFailed: Email sending failed
package mailer
