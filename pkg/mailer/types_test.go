package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailValidate(t *testing.T) {
	t.Parallel()

	valid := Email{
		To:      []string{"user@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	}

	tests := []struct {
		mutate  func(*Email)
		wantErr error
		name    string
	}{
		{name: "valid html email", mutate: func(*Email) {}, wantErr: nil},
		{name: "text-only is valid", mutate: func(e *Email) { e.HTML = ""; e.Text = "hi" }, wantErr: nil},
		{name: "no recipient", mutate: func(e *Email) { e.To = nil }, wantErr: ErrNoRecipient},
		{name: "no subject", mutate: func(e *Email) { e.Subject = "" }, wantErr: ErrNoSubject},
		{name: "no content", mutate: func(e *Email) { e.HTML = "" }, wantErr: ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email := valid
			tt.mutate(&email)
			err := email.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
