package commentary

import "context"

// Repository describes commentary persistence needs from use cases.
type Repository interface {
	// List returns events ordered by over and ball, newest first.
	List(ctx context.Context, filter Filter) ([]Event, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// ListByFlag returns a match's events carrying flag, in play order.
	ListByFlag(ctx context.Context, matchID int64, flag Flag) ([]Event, error)
}
