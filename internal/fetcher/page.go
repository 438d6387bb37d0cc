package fetcher

import "github.com/feral-file/ff-account-sync/internal/domain"

// PageStatus is the typed result of one remote page fetch
type PageStatus string

const (
	PageStatusOK        PageStatus = "ok"
	PageStatusEmpty     PageStatus = "empty"
	PageStatusCancelled PageStatus = "cancelled"
	PageStatusFailed    PageStatus = "failed"
)

// Page is one page of native transaction records
type Page struct {
	Status  PageStatus
	Records []domain.RawTransaction
}

// EventPage is one batch of token transfer events
type EventPage struct {
	Status PageStatus
	Events []domain.RawTransferEvent
}

// Interrupted reports whether the fetch was cancelled or failed rather than answered
func (s PageStatus) Interrupted() bool {
	return s == PageStatusCancelled || s == PageStatusFailed
}
