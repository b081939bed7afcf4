package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/internal/services/seed"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed <export.json>",
	Short: "Import diary data from a JSON export",
	Long: `Import episodes and shards from a JSON export into the database.

The importer accepts exports wrapped in "data", episodes with nested
shards, bare shard lists and the legacy "clips" naming, with camelCase
or snake_case keys. Rows are upserted by ID, and an existing shard's
analysis document is merged on write so user edits and publish state
survive a re-import.

Example:
  diary-api seed ./exports/diary-2026-03.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Exports may predate the schema; make sure the tables exist
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return err
	}

	importer := seed.NewImporter(db.DB)
	result, err := importer.ImportJSON(cmd.Context(), raw)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
