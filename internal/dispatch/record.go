package dispatch

import "time"

// RecordState tracks a record through the processing pipeline.
// Every record reaches exactly one terminal state (sent or send_failed);
// there is no retry and no abandonment.
type RecordState string

const (
	StatePending            RecordState = "pending"
	StateAttachmentResolved RecordState = "attachment_resolved"
	StateAttachmentMissing  RecordState = "attachment_missing"
	StateSent               RecordState = "sent"
	StateSendFailed         RecordState = "send_failed"
)

// ProcessedRecord is the enriched outcome of one input record. SentAt is
// stamped once when processing of the record begins. ErrorMessage is empty
// exactly when the delivery attempt succeeded; a missing attachment alone
// does not populate it.
type ProcessedRecord struct {
	Request
	SentAt       time.Time
	ErrorMessage string
	State        RecordState
}
