package messaging

import (
	"context"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// Publisher defines the interface for publishing sync events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSyncCompleted publishes the report of a finished account sync
	PublishSyncCompleted(ctx context.Context, report *domain.SyncReport) error
	// Close drains and closes the connection
	Close()
}
