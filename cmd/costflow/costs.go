package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dnguyen-vn/costflow/internal/cli"
	"github.com/dnguyen-vn/costflow/internal/ledger"
	"github.com/dnguyen-vn/costflow/internal/model"
	"github.com/dnguyen-vn/costflow/internal/tax"
)

func costsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Manage project cost lines",
		Long:  `Add, edit, pin, reorder, and delete the cost lines of the project budget.`,
	}

	cmd.AddCommand(listCostsCmd())
	cmd.AddCommand(quickAddCostCmd())
	cmd.AddCommand(addCostCmd())
	cmd.AddCommand(editCostCmd())
	cmd.AddCommand(deleteCostCmd())
	cmd.AddCommand(pinCostCmd())
	cmd.AddCommand(moveCostCmd())
	cmd.AddCommand(doneCostCmd())

	return cmd
}

func parseCostID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cost id %q", arg)
	}
	return id, nil
}

func listCostsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost lines",
		Long:  `Display cost lines pinned-first in priority order, with tax applied per category.`,
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

			visible := led.Search(search)
			if len(visible) == 0 {
				if search != "" {
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No cost lines match %q.", search)))
				} else {
					fmt.Println(cli.InfoStyle.Render("No cost lines yet. Use 'costflow costs add' to create one."))
				}
				return nil
			}

			categories := reg.Categories()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Tax"),
				cli.HeaderStyle.Render("Total"),
				cli.HeaderStyle.Render("Status"),
				cli.HeaderStyle.Render("Due"))

			for _, item := range visible {
				name := item.Name
				if item.IsPinned {
					name = cli.PinStyle.Render(cli.PinIcon) + " " + name
				}

				taxCol := cli.SubtleStyle.Render("—")
				total := item.SpentAmount
				if outcome := tax.Apply(item, categories); outcome.Applied {
					taxCol = formatVND(outcome.TaxAmount)
					total = outcome.TotalWithTax
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					item.ID, name, item.Category,
					formatVND(item.SpentAmount), taxCol, formatVND(total),
					item.Status, item.DueDate)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name or category, case-insensitive")

	return cmd
}

func quickAddCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick-add <name>",
		Short: "Add a cost line with defaults",
		Long:  `Create a cost line with the default category and budget, ready to be edited later.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			before := led.Len()
			led.QuickAdd(args[0])
			if led.Len() == before {
				fmt.Println(cli.InfoStyle.Render("Nothing added: name is empty."))
				return nil
			}

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			item := led.Selected()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (ID: %d)", item.Name, item.ID)))
			return nil
		},
	}
}

func addCostCmd() *cobra.Command {
	var (
		category    string
		assignee    string
		avatar      string
		dueDate     string
		tier        string
		budgetLimit int64
		spentAmount int64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a cost line with full details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parsedTier, err := model.ParsePriorityTier(tier)
			if err != nil {
				return err
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

			before := led.Len()
			led.Add(ledger.AddForm{
				Name:           args[0],
				Category:       category,
				BudgetLimit:    budgetLimit,
				SpentAmount:    spentAmount,
				Assignee:       assignee,
				AssigneeAvatar: avatar,
				DueDate:        dueDate,
				Tier:           parsedTier,
			})
			if led.Len() == before {
				fmt.Println(cli.InfoStyle.Render("Nothing added: name is empty."))
				return nil
			}

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			item := led.Selected()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (ID: %d, priority %d)", item.Name, item.ID, item.Priority)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", ledger.DefaultCategory, "category name")
	cmd.Flags().Int64Var(&budgetLimit, "budget", ledger.DefaultBudgetLimit, "allocated ceiling for this line")
	cmd.Flags().Int64Var(&spentAmount, "spent", 0, "amount already spent, pre-tax")
	cmd.Flags().StringVar(&assignee, "assignee", "", "display name of the assignee")
	cmd.Flags().StringVar(&avatar, "avatar", "", "assignee avatar reference")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date for display (defaults to today)")
	cmd.Flags().StringVar(&tier, "priority", "medium", "priority tier (low, medium, high, urgent)")

	return cmd
}

func editCostCmd() *cobra.Command {
	var (
		name        string
		category    string
		budgetLimit int64
		spentAmount int64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a cost line",
		Long:  `Change a cost line's name, category, budget limit, or spent amount.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseCostID(args[0])
			if err != nil {
				return err
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

			led.StartEdit(id)
			if !led.Editing() {
				fmt.Println(cli.FormatError(fmt.Sprintf("cost line %d not found", id)))
				return nil
			}

			if cmd.Flags().Changed("name") {
				led.StageName(name)
			}
			if cmd.Flags().Changed("category") {
				led.StageCategory(category)
			}
			if cmd.Flags().Changed("budget") {
				led.StageBudgetLimit(budgetLimit)
			}
			if cmd.Flags().Changed("spent") {
				led.StageSpentAmount(spentAmount)
			}
			led.SaveEdit()

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated cost line %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().Int64Var(&budgetLimit, "budget", 0, "new budget limit")
	cmd.Flags().Int64Var(&spentAmount, "spent", 0, "new spent amount")

	return cmd
}

func deleteCostCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a cost line",
		Long:  `Permanently remove a cost line. Asks for confirmation unless --force is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseCostID(args[0])
			if err != nil {
				return err
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

			var target *model.CostItem
			for _, c := range led.Costs() {
				if c.ID == id {
					item := c
					target = &item
					break
				}
			}
			if target == nil {
				fmt.Println(cli.FormatError(fmt.Sprintf("cost line %d not found", id)))
				return nil
			}

			if !force {
				prompter := cli.NewPrompter(os.Stdin, os.Stdout)
				confirmed, err := prompter.Confirm(ctx, fmt.Sprintf("Delete %q? This cannot be undone.", target.Name))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(cli.InfoStyle.Render("Deletion canceled."))
					return nil
				}
			}

			led.Remove(id)

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %q", target.Name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}

func pinCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle a cost line's pin",
		Long:  `Pinned cost lines sort ahead of unpinned ones regardless of priority.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseCostID(args[0])
			if err != nil {
				return err
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

			if _, found := pinStateOf(led.Costs(), id); !found {
				fmt.Println(cli.FormatError(fmt.Sprintf("cost line %d not found", id)))
				return nil
			}

			led.TogglePin(id)

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			pinned, _ := pinStateOf(led.Costs(), id)
			if pinned {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Pinned cost line %d", id)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Unpinned cost line %d", id)))
			}
			return nil
		},
	}
}

func pinStateOf(costs []model.CostItem, id int64) (pinned, found bool) {
	for i := range costs {
		if costs[i].ID == id {
			return costs[i].IsPinned, true
		}
	}
	return false, false
}

func moveCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <before-id>",
		Short: "Move a cost line to another line's position",
		Long:  `Reorder the collection by moving one line to the position of another. Every line's priority is rewritten to match the new order.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sourceID, err := parseCostID(args[0])
			if err != nil {
				return err
			}
			destID, err := parseCostID(args[1])
			if err != nil {
				return err
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

			led.Reorder(sourceID, destID)

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Reordered cost lines"))
			return nil
		},
	}
}

func doneCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a cost line completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseCostID(args[0])
			if err != nil {
				return err
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

			led.SetStatus(id, model.StatusCompleted)

			if err := saveState(ctx, store, reg, led); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Marked cost line %d completed", id)))
			return nil
		},
	}
}
