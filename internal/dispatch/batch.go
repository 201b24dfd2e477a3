package dispatch

import (
	"fmt"
	"strings"
)

// Request is one recipient record of a notification batch.
// JSON names follow the upstream wire contract.
type Request struct {
	Recipient      string `json:"email_destinatario"`
	ReferenceID    string `json:"id_retorno"`
	Body           string `json:"mensagem_enviada"`
	AttachmentName string `json:"anexo"`
}

// missingField reports the first blank required field, or "".
func (r Request) missingField() string {
	switch {
	case isBlank(r.Recipient):
		return "email_destinatario"
	case isBlank(r.ReferenceID):
		return "id_retorno"
	case isBlank(r.Body):
		return "mensagem_enviada"
	case isBlank(r.AttachmentName):
		return "anexo"
	}
	return ""
}

// Batch is the invocation envelope: a sender address plus the records
// to process.
type Batch struct {
	SenderEmail string    `json:"sender_email"`
	Records     []Request `json:"data"`
}

// Validate checks the envelope before any record is processed. Only field
// presence is verified; recipient address format is left to the delivery
// attempt so a malformed address surfaces as a per-record failure rather
// than rejecting the whole batch.
func (b Batch) Validate() error {
	if isBlank(b.SenderEmail) {
		return fmt.Errorf("%w: sender_email is required", ErrInvalidBatch)
	}
	if len(b.Records) == 0 {
		return fmt.Errorf("%w: data must contain at least one record", ErrInvalidBatch)
	}
	for i, rec := range b.Records {
		if field := rec.missingField(); field != "" {
			return fmt.Errorf("%w: record %d: %s is required", ErrInvalidBatch, i, field)
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
