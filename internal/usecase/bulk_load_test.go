package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

func TestBulkLoad_SingleBatch(t *testing.T) {
	t.Parallel()

	calls := 0
	written, err := bulkLoad(context.Background(), logging.NewNop(), "rows", []int{1, 2, 3}, 2,
		func(_ context.Context, rows []int) (int64, error) {
			calls++
			return int64(len(rows)), nil
		})
	if err != nil {
		t.Fatalf("bulk load: %v", err)
	}
	if written != 3 || calls != 1 {
		t.Fatalf("expected one call writing 3 rows, got calls=%d written=%d", calls, written)
	}
}

func TestBulkLoad_FallsBackToChunks(t *testing.T) {
	t.Parallel()

	rows := make([]int, 10)
	var sizes []int
	written, err := bulkLoad(context.Background(), logging.NewNop(), "rows", rows, 4,
		func(_ context.Context, batch []int) (int64, error) {
			sizes = append(sizes, len(batch))
			if len(batch) > 4 {
				return 0, errors.New("too many parameters")
			}
			if len(sizes) == 3 {
				return 0, errors.New("chunk failed")
			}
			return int64(len(batch)), nil
		})
	if err != nil {
		t.Fatalf("bulk load: %v", err)
	}
	if len(sizes) != 4 || sizes[1] != 4 || sizes[3] != 2 {
		t.Fatalf("unexpected attempts: %v", sizes)
	}
	// The second chunk fails and is skipped.
	if written != 6 {
		t.Fatalf("unexpected written count: %d", written)
	}
}

func TestBulkLoad_Empty(t *testing.T) {
	t.Parallel()

	written, err := bulkLoad[int](context.Background(), logging.NewNop(), "rows", nil, 4, nil)
	if err != nil || written != 0 {
		t.Fatalf("expected no-op, got written=%d err=%v", written, err)
	}
}
