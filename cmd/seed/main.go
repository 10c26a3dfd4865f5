// Command seed loads the IPL fixture directory into Postgres.
//
// Usage:
//
//	seed run --data-dir ./data/Indian_Premier_League_2022-03-26 --season 2022
//	seed status
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sugerdarco/IPL-Data-Platform/internal/app"
	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/importer"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Import IPL fixture JSON into Postgres",
		SilenceUsage: true,
	}
	root.AddCommand(runCmd(out), statusCmd(out))
	return root
}

func runCmd(out io.Writer) *cobra.Command {
	var dataDir, season string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every import stage, skipping stages that already hold data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withImporter(cmd.Context(), dataDir, season, func(ctx context.Context, svc *usecase.ImportService, logger *logging.Logger) error {
				report, err := svc.Run(ctx)
				printStages(out, report.Stages)
				if err != nil {
					logger.Error("import failed", "error", err)
					return err
				}
				printCounts(out, report.Counts)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "fixture root (defaults to IMPORT_DATA_DIR)")
	cmd.Flags().StringVar(&season, "season", "", "season written on squad rows (defaults to IMPORT_SQUAD_SEASON)")
	return cmd
}

func statusCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print row counts of the import tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withImporter(cmd.Context(), "", "", func(ctx context.Context, svc *usecase.ImportService, logger *logging.Logger) error {
				counts, err := svc.Status(ctx)
				if err != nil {
					logger.Error("read import status failed", "error", err)
					return err
				}
				printCounts(out, counts)
				return nil
			})
		},
	}
}

func withImporter(ctx context.Context, dataDir, season string, fn func(context.Context, *usecase.ImportService, *logging.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewConsole(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	db, err := app.OpenDB(ctx, cfg, logger)
	if err != nil {
		logger.Error("open database failed", "error", err)
		return err
	}
	defer func() { _ = db.Close() }()

	return fn(ctx, app.NewImportService(cfg, db, dataDir, season, logger), logger)
}

func printStages(out io.Writer, stages []usecase.StageResult) {
	if len(stages) == 0 {
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tSTATUS\tEXISTING\tWRITTEN\tDROPPED\tDURATION")
	for _, st := range stages {
		status := "loaded"
		if st.Skipped {
			status = "skipped"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", st.Stage, status, st.Existing, st.Written, st.Dropped, st.Duration.Round(time.Millisecond))
	}
	_ = tw.Flush()
}

func printCounts(out io.Writer, counts importer.Counts) {
	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, string(table))
	}
	sort.Strings(tables)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tROWS")
	for _, table := range tables {
		fmt.Fprintf(tw, "%s\t%d\n", table, counts[importer.Table(table)])
	}
	_ = tw.Flush()
}
