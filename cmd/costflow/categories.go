package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dnguyen-vn/costflow/internal/cli"
	"github.com/dnguyen-vn/costflow/internal/model"
	"github.com/dnguyen-vn/costflow/internal/tax"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, and update the categories cost lines are classified under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryTaxCmd())
	cmd.AddCommand(resetCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reg, _, err := loadState(ctx, store)
			if err != nil {
				return err
			}

			categories := reg.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'costflow categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Tax rate"),
				cli.HeaderStyle.Render("Taxable"),
				cli.HeaderStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 7),
				strings.Repeat("-", 40))

			for _, cat := range categories {
				rate := cli.SubtleStyle.Render("—")
				if effective := tax.DefaultRate(cat.Name, categories); effective > 0 {
					rate = fmt.Sprintf("%.0f%%", effective)
				}

				taxable := ""
				if tax.IsTaxable(cat.Name, categories) {
					taxable = cli.SuccessIcon
				}

				desc := cat.Description
				if desc == "" {
					desc = cli.SubtleStyle.Render("(no description)")
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.Name, rate, taxable, desc)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		color       string
		description string
		taxRate     float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reg, led, err := loadState(ctx, store)
			if err != nil {
				return err
			}

			category := model.Category{
				Name:        name,
				Color:       color,
				Description: description,
			}
			if cmd.Flags().Changed("tax-rate") {
				category.TaxRate = &taxRate
			}
			if err := category.Validate(); err != nil {
				return err
			}

			if !reg.Add(category) {
				fmt.Println(cli.FormatError(fmt.Sprintf("category %q already exists", name)))
				return nil
			}

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q", name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#6B7280", "display color tag")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 0, "tax rate percent (0-100)")

	return cmd
}

func updateCategoryTaxCmd() *cobra.Command {
	var (
		description string
		taxRate     float64
	)

	cmd := &cobra.Command{
		Use:   "update-tax <name>",
		Short: "Update a category's tax rate or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reg, led, err := loadState(ctx, store)
			if err != nil {
				return err
			}

			var ratePtr *float64
			if cmd.Flags().Changed("tax-rate") {
				ratePtr = &taxRate
			}
			var descPtr *string
			if cmd.Flags().Changed("description") {
				descPtr = &description
			}
			if ratePtr == nil && descPtr == nil {
				return fmt.Errorf("nothing to update: pass --tax-rate and/or --description")
			}

			if !reg.UpdateTax(name, ratePtr, descPtr) {
				fmt.Println(cli.FormatError(fmt.Sprintf("category %q not found", name)))
				return nil
			}

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %q", name)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&taxRate, "tax-rate", 0, "tax rate percent (0-100)")
	cmd.Flags().StringVar(&description, "description", "", "category description")

	return cmd
}

func resetCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default category set",
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

			reg.Reset()

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Categories restored to defaults"))
			return nil
		},
	}
}
