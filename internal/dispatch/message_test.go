package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notifika/mailroom/pkg/mailer"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	t.Run("html body gets text alternative", func(t *testing.T) {
		t.Parallel()

		email := BuildMessage(MessageSpec{
			Sender:    "noreply@example.com",
			Recipient: "alice@example.com",
			Subject:   "Notification #R1",
			Body:      "<p>Hello <strong>Alice</strong></p>",
			HTML:      true,
		})

		require.Equal(t, "noreply@example.com", email.From)
		require.Equal(t, []string{"alice@example.com"}, email.To)
		require.Equal(t, "Notification #R1", email.Subject)
		require.Equal(t, "<p>Hello <strong>Alice</strong></p>", email.HTML)
		require.Equal(t, "Hello Alice", email.Text)
		require.Empty(t, email.Attachments)
	})

	t.Run("plain body goes to text only", func(t *testing.T) {
		t.Parallel()

		email := BuildMessage(MessageSpec{
			Sender:    "noreply@example.com",
			Recipient: "bob@example.com",
			Subject:   "Notification #R2",
			Body:      "plain words",
		})

		require.Empty(t, email.HTML)
		require.Equal(t, "plain words", email.Text)
	})

	t.Run("attachment carried through", func(t *testing.T) {
		t.Parallel()

		att := mailer.Attachment{
			Filename:    "report.pdf",
			ContentType: "application/pdf",
			Content:     []byte{0x25, 0x50, 0x44, 0x46},
		}

		email := BuildMessage(MessageSpec{
			Sender:     "noreply@example.com",
			Recipient:  "alice@example.com",
			Subject:    "Notification #R1",
			Body:       "<p>attached</p>",
			Attachment: &att,
			HTML:       true,
		})

		require.Len(t, email.Attachments, 1)
		require.Equal(t, att, email.Attachments[0])
	})

	t.Run("deterministic for same spec", func(t *testing.T) {
		t.Parallel()

		spec := MessageSpec{
			Sender:    "noreply@example.com",
			Recipient: "alice@example.com",
			Subject:   "Notification #R1",
			Body:      "<p>same</p>",
			HTML:      true,
		}

		require.Equal(t, BuildMessage(spec), BuildMessage(spec))
	})

	t.Run("built message passes provider validation", func(t *testing.T) {
		t.Parallel()

		email := BuildMessage(MessageSpec{
			Sender:    "noreply@example.com",
			Recipient: "alice@example.com",
			Subject:   "Notification #R1",
			Body:      "<p>ok</p>",
			HTML:      true,
		})

		require.NoError(t, email.Validate())
	})
}
