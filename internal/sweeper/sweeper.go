package sweeper

import (
	"context"
)

// Sweeper is a long-running background loop driven by a schedule
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop to exit and waits for the current cycle to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
