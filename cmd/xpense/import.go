package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xpense/xpense/internal/common"
	"github.com/xpense/xpense/internal/tabular"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a spreadsheet",
		Long: `Import transactions from a tabular file.

Files ending in .csv are read as plain delimited text (no quoted
fields); anything else is read as a workbook. Rows that fail validation
are skipped; exact duplicates of existing entries are dropped, so
importing the same file twice adds nothing the second time.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportFile,
	}

	cmd.Flags().Bool("dry-run", false, "parse and validate without touching the ledger")
	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImportFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	importer := tabular.NewImporter(tabular.NewXLSXCodec(), slog.Default())
	batch, err := importer.Read(filename, data)
	if err != nil {
		if errors.Is(err, common.ErrNothingToImport) {
			// A payload with no usable rows is a no-op, not a failure.
			fmt.Println("No valid rows found to import.")
			return nil
		}
		return common.NewUserError("import failed", err)
	}

	if batch.Skipped > 0 {
		slog.Warn("some rows were skipped", "skipped", batch.Skipped)
	}

	if viper.GetBool("import.dry_run") {
		fmt.Printf("Would import %d row(s).\n", len(batch.Transactions))
		return nil
	}

	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	added, err := store.Merge(batch.Transactions)
	if err != nil {
		return fmt.Errorf("failed to merge imported transactions: %w", err)
	}

	slog.Info("import complete",
		"rows", len(batch.Transactions),
		"added", added,
		"duplicates", len(batch.Transactions)-added,
		"skipped", batch.Skipped)
	fmt.Printf("Imported %d row(s).\n", len(batch.Transactions))
	return nil
}
