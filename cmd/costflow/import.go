package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dnguyen-vn/costflow/internal/cli"
	"github.com/dnguyen-vn/costflow/internal/common"
	"github.com/dnguyen-vn/costflow/internal/ledger"
	"github.com/dnguyen-vn/costflow/internal/model"
)

// importRow is one parsed CSV line:
// name,category,budget_limit,spent_amount,assignee,due_date
type importRow struct {
	form ledger.AddForm
	line int
}

func importCmd() *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import cost lines from a CSV file",
		Long: `Import cost lines from a CSV with the columns:

  name,category,budget_limit,spent_amount,assignee,due_date

A header row is detected and skipped. All imported lines share the tier
given with --priority.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parsedTier, err := model.ParsePriorityTier(tier)
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer file.Close()

			rows, err := parseImportFile(file, parsedTier)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return common.ErrEmptyImport
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reg, led, err := loadState(ctx, store)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(rows),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing cost lines..."),
			)

			for _, row := range rows {
				led.Add(row.form)
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			common.LogInfo("imported cost lines", common.Fields{"count": len(rows), "file": args[0]})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d cost lines", len(rows))))
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "priority", "medium", "priority tier for imported lines (low, medium, high, urgent)")

	return cmd
}

func parseImportFile(r io.Reader, tier model.PriorityTier) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []importRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++

		if line == 1 && isHeaderRow(record) {
			continue
		}

		row, err := parseImportRecord(record, tier)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrInvalidImportRow, line, err)
		}
		row.line = line
		rows = append(rows, row)
	}

	return rows, nil
}

func isHeaderRow(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name")
}

func parseImportRecord(record []string, tier model.PriorityTier) (importRow, error) {
	if len(record) < 4 {
		return importRow{}, fmt.Errorf("want at least 4 columns, got %d", len(record))
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return importRow{}, fmt.Errorf("name is empty")
	}

	category := strings.TrimSpace(record[1])
	if category == "" {
		category = ledger.DefaultCategory
	}

	budgetLimit, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return importRow{}, fmt.Errorf("invalid budget_limit %q", record[2])
	}
	spentAmount, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return importRow{}, fmt.Errorf("invalid spent_amount %q", record[3])
	}
	if budgetLimit < 0 || spentAmount < 0 {
		return importRow{}, fmt.Errorf("amounts cannot be negative")
	}

	form := ledger.AddForm{
		Name:        name,
		Category:    category,
		BudgetLimit: budgetLimit,
		SpentAmount: spentAmount,
		Tier:        tier,
	}
	if len(record) > 4 {
		form.Assignee = strings.TrimSpace(record[4])
	}
	if len(record) > 5 {
		form.DueDate = strings.TrimSpace(record[5])
	}

	return importRow{form: form}, nil
}
