package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/painpoint-engine/internal/query"
	"github.com/pdiddy/painpoint-engine/internal/store"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List and export stored pain points",
	Long: `Records lists stored pain points with the same filtering, sorting, and
pagination the HTTP API offers, and can export the full store to a JSON or
YAML file.`,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().String("category", "", "filter by category (empty or \"all\" for everything)")
	recordsCmd.Flags().String("liked", "", "filter by flag: \"true\" for liked, \"false\" for unliked")
	recordsCmd.Flags().String("sort-by", query.SortByDate, "sort key: date, sentiment, or score")
	recordsCmd.Flags().String("sort-order", query.OrderDesc, "sort order: asc or desc")
	recordsCmd.Flags().Int("page", 1, "page number")
	recordsCmd.Flags().Int("limit", 10, "records per page")
	recordsCmd.Flags().Bool("json", false, "print the page as JSON instead of a table")
	recordsCmd.Flags().String("export", "", "export the full store to this .json or .yaml file")

	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	_, categories := newClassifier()
	svc, err := openStore(cfg.Store, categories)
	if err != nil {
		return err
	}
	defer svc.Close() //nolint:errcheck

	records, err := svc.Load(cmd.Context())
	if err != nil {
		return err
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := store.Export(records, exportPath); err != nil {
			return err
		}
		fmt.Printf("Exported %d record(s) to %s\n", len(records), exportPath)
		return nil
	}

	opts := query.Options{}
	opts.Category, _ = cmd.Flags().GetString("category")
	opts.Liked, _ = cmd.Flags().GetString("liked")
	opts.SortBy, _ = cmd.Flags().GetString("sort-by")
	opts.SortOrder, _ = cmd.Flags().GetString("sort-order")
	opts.Page, _ = cmd.Flags().GetInt("page")
	opts.Limit, _ = cmd.Flags().GetInt("limit")

	res, err := query.Apply(records, opts)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return query.FormatJSON(res, os.Stdout)
	}
	query.FormatTable(res, os.Stdout)
	return nil
}
