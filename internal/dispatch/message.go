package dispatch

import (
	"github.com/notifika/mailroom/pkg/mailer"
	"github.com/notifika/mailroom/pkg/sanitizer"
)

// MessageSpec carries everything needed to compose one outgoing email.
type MessageSpec struct {
	Sender     string
	Recipient  string
	Subject    string
	Body       string
	Attachment *mailer.Attachment
	HTML       bool
}

// BuildMessage composes a mail message from the spec. HTML bodies get a
// plain-text alternative derived by stripping markup. No I/O happens here;
// the same spec always yields the same message.
func BuildMessage(spec MessageSpec) *mailer.Email {
	email := &mailer.Email{
		From:    spec.Sender,
		To:      []string{spec.Recipient},
		Subject: spec.Subject,
	}

	if spec.HTML {
		email.HTML = spec.Body
		email.Text = sanitizer.PlainText(spec.Body)
	} else {
		email.Text = spec.Body
	}

	if spec.Attachment != nil {
		email.Attachments = []mailer.Attachment{*spec.Attachment}
	}

	return email
}
