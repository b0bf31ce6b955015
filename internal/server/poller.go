package server

import (
	"context"

	"tt-league-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	Refresh(ctx context.Context) error
}
