package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/database"
	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Voice Diary API.

The schema is managed with GORM auto-migration: applying migrations
creates missing tables and adds missing columns and indexes for every
registered model. Existing columns are never dropped or narrowed.

Available subcommands:
  up      - Apply all pending migrations
  down    - Rollback the last migration
  status  - Show current migration status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

This command auto-migrates every registered model, creating missing
tables and adding missing columns, bringing the schema up to date.`,
	RunE: runMigrateUp,
}

// migrateDownCmd rolls back the last migration
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback the last migration",
	Long: `Rollback the last applied migration.

Auto-migration is additive and keeps no version history, so there is
nothing to roll back to; the command explains that. Restore a database
backup to revert schema changes.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

This command lists every registered model with its table name and
whether the table exists in the configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// openDatabase opens the configured diary database for a subcommand
// that runs outside the server
func openDatabase() (*database.DB, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

// tableName resolves the table a model migrates into
func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	all := models.AllModels()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, model := range all {
			fmt.Fprintf(out, "  would migrate %s\n", tableName(db.DB, model))
		}
		return nil
	}

	if err := db.AutoMigrate(all...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Applied migrations for %d model(s):\n", len(all))
	for _, model := range all {
		fmt.Fprintf(out, "  %s\n", tableName(db.DB, model))
	}
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	return fmt.Errorf("rollback is not supported: auto-migration keeps no version history; restore a database backup instead")
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, repeatString("=", 50))

	migrator := db.DB.Migrator()
	pending := 0
	for _, model := range models.AllModels() {
		name := tableName(db.DB, model)
		if migrator.HasTable(model) {
			fmt.Fprintf(out, "  [applied] %s\n", name)
		} else {
			fmt.Fprintf(out, "  [pending] %s\n", name)
			pending++
		}
	}

	if pending > 0 {
		fmt.Fprintf(out, "\n%d table(s) pending; run 'diary-api migrate up'\n", pending)
	} else {
		fmt.Fprintln(out, "\nSchema is up to date")
	}
	return nil
}

// repeatString repeats a string n times
func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
