package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dnguyen-vn/costflow/internal/cli"
	"github.com/dnguyen-vn/costflow/internal/tax"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the project budget position",
		Long:  `Summarize total spend, tax, and budget usage across all cost lines.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reg, led, err := loadState(ctx, store)
			if err != nil {
				return err
			}

			summary := led.Summary()
			totals := tax.Sum(led.Costs(), reg.Categories())

			fmt.Println(cli.TitleStyle.Render("Budget report"))
			fmt.Printf("  Cost lines:     %d\n", led.Len())
			fmt.Printf("  Total spent:    %s\n", formatVND(summary.TotalSpent))
			fmt.Printf("  Total tax:      %s\n", formatVND(totals.Tax))
			fmt.Printf("  Total with tax: %s\n", formatVND(totals.WithTax))
			fmt.Printf("  Budget limit:   %s\n", formatVND(summary.BudgetLimit))
			fmt.Printf("  Usage:          %s\n",
				cli.BudgetStatusStyle(summary.Status).Render(fmt.Sprintf("%d%%", summary.UsagePercent)))
			fmt.Printf("  Status:         %s\n", cli.RenderBudgetStatus(summary.Status))

			return nil
		},
	}
}
