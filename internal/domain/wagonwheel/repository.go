package wagonwheel

import "context"

type Repository interface {
	// ListByMatch returns shots ordered by unique over.
	ListByMatch(ctx context.Context, filter Filter) ([]Shot, error)
}
