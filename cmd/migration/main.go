package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sugerdarco/IPL-Data-Platform/internal/app"
	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var migrationsDir string

	root := &cobra.Command{
		Use:          "migration",
		Short:        "Apply or inspect the IPL data schema migrations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&migrationsDir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR, ./db/migrations)")

	withMigrator := func(run func(m *migrate.Migrate, logger *logging.Logger, args []string) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := logging.NewConsole(cfg.LogLevel)
			defer func() { _ = logger.Sync() }()

			dir, err := resolveMigrationsDir(migrationsDir)
			if err != nil {
				logger.Error("resolve migrations dir failed", "error", err)
				return err
			}

			sourceURL := "file://" + filepath.ToSlash(dir)
			m, err := migrate.New(sourceURL, app.DatabaseURL(cfg))
			if err != nil {
				logger.Error("create migrator failed", "source", sourceURL, "error", err)
				return fmt.Errorf("create migrator: %w", err)
			}
			defer closeMigrator(m, logger)

			return run(m, logger.With("source", sourceURL), args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *migrate.Migrate, logger *logging.Logger, _ []string) error {
				if err := handleMigrationErr(m.Up(), logger); err != nil {
					return err
				}
				logger.Info("migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1 step)",
			Args:  cobra.MaximumNArgs(1),
			RunE: withMigrator(func(m *migrate.Migrate, logger *logging.Logger, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				if err := handleMigrationErr(m.Steps(-steps), logger); err != nil {
					return err
				}
				logger.Info("migrations rolled back", "steps", steps)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *migrate.Migrate, _ *logging.Logger, _ []string) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("version: none")
					fmt.Println("dirty: false")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				fmt.Printf("version: %d\n", version)
				fmt.Printf("dirty: %t\n", dirty)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(m *migrate.Migrate, logger *logging.Logger, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				logger.Info("forced schema version", "version", version)
				return nil
			}),
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to a target version",
			Args:    cobra.ExactArgs(1),
			RunE: withMigrator(func(m *migrate.Migrate, logger *logging.Logger, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				if err := handleMigrationErr(m.Migrate(target), logger); err != nil {
					return err
				}
				logger.Info("migrated to version", "version", target)
				return nil
			}),
		},
	)

	return root
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func handleMigrationErr(err error, logger *logging.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source failed", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db failed", "error", dbErr)
	}
}

func resolveMigrationsDir(flagValue string) (string, error) {
	candidates := []string{
		strings.TrimSpace(flagValue),
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked --dir, MIGRATIONS_DIR, MIGRATIONS_PATH, ./db/migrations, /app/db/migrations)")
}
