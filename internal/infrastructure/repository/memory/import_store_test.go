package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
)

func TestImportStoreRollsBackFailedTx(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewImportStore()

	err := store.RunInTx(ctx, func(ctx context.Context, w importer.Writer) error {
		if _, err := w.UpsertTeam(ctx, team.Team{TID: 1, Title: "Chennai Super Kings"}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatalf("expected tx error")
	}

	total, err := store.Count(ctx, importer.TableTeams)
	if err != nil {
		t.Fatalf("count teams: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected rolled back teams, got %d", total)
	}
}

func TestImportStoreUpsertKeepsID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewImportStore()

	var first, second int64
	err := store.RunInTx(ctx, func(ctx context.Context, w importer.Writer) error {
		var err error
		if first, err = w.UpsertTeam(ctx, team.Team{TID: 7, Title: "Old"}); err != nil {
			return err
		}
		second, err = w.UpsertTeam(ctx, team.Team{TID: 7, Title: "New"})
		return err
	})
	if err != nil {
		t.Fatalf("run tx: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable id, got %d and %d", first, second)
	}
	teams := store.Teams()
	if len(teams) != 1 || teams[0].Title != "New" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

func TestImportStoreCommentarySkipsDuplicatesAndEnforcesBulkLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewImportStore()
	store.MaxBulkRows = 2

	err := store.RunInTx(ctx, func(ctx context.Context, w importer.Writer) error {
		if _, err := w.InsertCommentary(ctx, make([]commentary.Event, 3)); err == nil {
			t.Fatalf("expected bulk limit error")
		}
		written, err := w.InsertCommentary(ctx, []commentary.Event{{EventID: "a"}, {EventID: "a"}})
		if err != nil {
			return err
		}
		if written != 1 {
			t.Fatalf("expected duplicate skipped, written=%d", written)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run tx: %v", err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[importer.TableCommentaries] != 1 {
		t.Fatalf("unexpected commentary count: %d", counts[importer.TableCommentaries])
	}
}

func TestImportStoreCountRejectsUnknownTable(t *testing.T) {
	t.Parallel()

	if _, err := NewImportStore().Count(context.Background(), importer.Table("leagues")); err == nil {
		t.Fatalf("expected unknown table error")
	}
}
