package usecase

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

// bulkLoad inserts rows in one batch. When the batch fails it falls back to sequential
// chunks; failed chunks are logged and skipped. It returns the number of rows written.
func bulkLoad[T any](
	ctx context.Context,
	logger *logging.Logger,
	table string,
	rows []T,
	chunkSize int,
	insert func(ctx context.Context, rows []T) (int64, error),
) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if chunkSize <= 0 {
		chunkSize = defaultImportChunkSize
	}

	written, err := insert(ctx, rows)
	if err == nil {
		return written, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, errors.Wrapf(ctxErr, "bulk load %s", table)
	}

	chunks := (len(rows) + chunkSize - 1) / chunkSize
	logger.WarnContext(ctx, "bulk insert failed, falling back to chunks",
		"table", table,
		"rows", len(rows),
		"chunk_size", chunkSize,
		"chunks", chunks,
		"error", err,
	)

	var total int64
	for i := 0; i < chunks; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return total, errors.Wrapf(ctxErr, "bulk load %s chunk %d", table, i+1)
		}

		start := i * chunkSize
		end := min(start+chunkSize, len(rows))
		n, err := insert(ctx, rows[start:end])
		if err != nil {
			logger.ErrorContext(ctx, "chunk insert failed",
				"table", table,
				"chunk", i+1,
				"chunks", chunks,
				"error", err,
			)
			continue
		}
		total += n
		logger.InfoContext(ctx, "chunk inserted",
			"table", table,
			"chunk", i+1,
			"chunks", chunks,
			"written", total,
		)
	}
	return total, nil
}
