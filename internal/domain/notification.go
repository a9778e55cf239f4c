package domain

import "context"

// NotificationService defines the interface for notification services
type NotificationService interface {
	// SendSuccess sends a success notification with statistics
	SendSuccess(ctx context.Context, stats Statistics) error

	// SendError sends an error notification with error details
	SendError(ctx context.Context, err error) error
}

// Statistics holds the final statistics for a season load
type Statistics struct {
	Season          string
	TotalItems      int
	Removed         int
	Added           int
	RefreshRequired bool
}
