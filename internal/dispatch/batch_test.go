package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validBatch() Batch {
	return Batch{
		SenderEmail: "noreply@example.com",
		Records: []Request{
			{
				Recipient:      "alice@example.com",
				ReferenceID:    "R1",
				Body:           "<p>Hello Alice</p>",
				AttachmentName: "alice.pdf",
			},
			{
				Recipient:      "bob@example.com",
				ReferenceID:    "R2",
				Body:           "<p>Hello Bob</p>",
				AttachmentName: "bob.pdf",
			},
		},
	}
}

func TestBatchValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid batch", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validBatch().Validate())
	})

	t.Run("missing sender", func(t *testing.T) {
		t.Parallel()

		b := validBatch()
		b.SenderEmail = ""
		err := b.Validate()
		require.ErrorIs(t, err, ErrInvalidBatch)
		require.Contains(t, err.Error(), "sender_email")
	})

	t.Run("whitespace-only sender is blank", func(t *testing.T) {
		t.Parallel()

		b := validBatch()
		b.SenderEmail = "   "
		require.ErrorIs(t, b.Validate(), ErrInvalidBatch)
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		b := validBatch()
		b.Records = nil
		err := b.Validate()
		require.ErrorIs(t, err, ErrInvalidBatch)
		require.Contains(t, err.Error(), "at least one record")
	})

	t.Run("malformed recipient address passes validation", func(t *testing.T) {
		t.Parallel()

		// Address format is the transport's concern; only presence is checked.
		b := validBatch()
		b.Records[0].Recipient = "not-an-email"
		require.NoError(t, b.Validate())
	})

	recordFieldTests := []struct {
		mutate func(*Request)
		name   string
		field  string
	}{
		{name: "missing recipient", mutate: func(r *Request) { r.Recipient = "" }, field: "email_destinatario"},
		{name: "missing reference id", mutate: func(r *Request) { r.ReferenceID = "" }, field: "id_retorno"},
		{name: "missing body", mutate: func(r *Request) { r.Body = "" }, field: "mensagem_enviada"},
		{name: "missing attachment name", mutate: func(r *Request) { r.AttachmentName = " " }, field: "anexo"},
	}

	for _, tt := range recordFieldTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := validBatch()
			tt.mutate(&b.Records[1])
			err := b.Validate()
			require.ErrorIs(t, err, ErrInvalidBatch)
			require.Contains(t, err.Error(), tt.field)
			require.Contains(t, err.Error(), "record 1")
		})
	}

	t.Run("one bad record rejects the whole batch", func(t *testing.T) {
		t.Parallel()

		b := validBatch()
		b.Records = append(b.Records, Request{Recipient: "carol@example.com"})
		err := b.Validate()
		require.ErrorIs(t, err, ErrInvalidBatch)
		require.Contains(t, err.Error(), "record 2")
	})
}
