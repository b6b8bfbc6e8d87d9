package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

// budgetsCmd holds the flags for the 'budgets' subcommand.
type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "display spending against allocations" }
func (*budgetsCmd) Usage() string {
	return `fds budgets

  Displays every budget with its progress gauge. Progress is unclamped: an
  overspent budget shows more than 100%.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BudgetsMarkdown(d.Budgets))
	return subcommands.ExitSuccess
}

// setBudgetCmd holds the flags for the 'set-budget' subcommand.
type setBudgetCmd struct {
	id        string
	category  string
	allocated string
	spent     string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "create or replace a category budget" }
func (*setBudgetCmd) Usage() string {
	return `fds set-budget -cat <category> -allocated <amount> [-spent <amount>] [-id <budget-id>]

  Sets a budget. With -id of an existing budget, that budget is replaced;
  otherwise a new one is created.
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the budget to replace (optional)")
	f.StringVar(&c.category, "cat", "", "Category name the budget tracks")
	f.StringVar(&c.allocated, "allocated", "", "Allocated amount")
	f.StringVar(&c.spent, "spent", "0", "Spent amount")
}

func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	allocated, err := findash.ParseMoney(c.allocated)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing allocated amount %q: %v\n", c.allocated, err)
		return subcommands.ExitUsageError
	}
	spent, err := findash.ParseMoney(c.spent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing spent amount %q: %v\n", c.spent, err)
		return subcommands.ExitUsageError
	}
	id := c.id
	if id == "" {
		id = findash.NewID()
	}
	b := findash.Budget{ID: id, Category: c.category, Allocated: allocated, Spent: spent}
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.SetBudget(b)
	})
}

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display savings goals" }
func (*goalsCmd) Usage() string {
	return `fds goals

  Displays every savings goal with its progress gauge.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GoalsMarkdown(d.Goals))
	return subcommands.ExitSuccess
}

// addGoalCmd holds the flags for the 'add-goal' subcommand.
type addGoalCmd struct {
	name   string
	target string
	saved  string
	emoji  string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "add a savings goal" }
func (*addGoalCmd) Usage() string {
	return `fds add-goal -name <name> -target <amount> [-saved <amount>] [-emoji <emoji>]

  Adds a savings goal.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal")
	f.StringVar(&c.target, "target", "", "Target amount")
	f.StringVar(&c.saved, "saved", "0", "Amount already saved")
	f.StringVar(&c.emoji, "emoji", "", "Emoji shown next to the goal (optional)")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := findash.ParseMoney(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target amount %q: %v\n", c.target, err)
		return subcommands.ExitUsageError
	}
	saved, err := findash.ParseMoney(c.saved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing saved amount %q: %v\n", c.saved, err)
		return subcommands.ExitUsageError
	}
	g := findash.Goal{ID: findash.NewID(), Name: c.name, Target: target, Saved: saved, Emoji: c.emoji}
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.AddGoal(g)
	})
}
