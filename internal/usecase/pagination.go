package usecase

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// PageRequest is a normalized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest applies the listing defaults. Pages below 1 become 1; a missing
// limit takes def and anything above max is capped.
func NewPageRequest(page, limit, def, max int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

func newPagination(req PageRequest, total int64) Pagination {
	pages := 0
	if req.Limit > 0 {
		pages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	return Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: pages,
	}
}

// Page is one slice of a listing plus its pagination block.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// listWithCount runs the page query and the count query concurrently.
func listWithCount[T any](
	ctx context.Context,
	list func(ctx context.Context) ([]T, error),
	count func(ctx context.Context) (int64, error),
) ([]T, int64, error) {
	var (
		items []T
		total int64
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		items, err = list(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = count(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
