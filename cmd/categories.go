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

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the category taxonomy" }
func (*categoriesCmd) Usage() string {
	return `fds categories

  Lists every category with its sub-categories and ids.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CategoriesMarkdown(d.Categories))
	return subcommands.ExitSuccess
}

// addCategoryCmd holds the flags for the 'add-category' subcommand.
type addCategoryCmd struct {
	name string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "add a top-level category" }
func (*addCategoryCmd) Usage() string {
	return `fds add-category -name <name>

  Adds a category. The name must be unique among categories.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the category")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.AddCategory(findash.NewID(), c.name)
	})
}

// renameCategoryCmd holds the flags for the 'rename-category' subcommand.
type renameCategoryCmd struct {
	id   string
	name string
}

func (*renameCategoryCmd) Name() string     { return "rename-category" }
func (*renameCategoryCmd) Synopsis() string { return "rename a category everywhere" }
func (*renameCategoryCmd) Usage() string {
	return `fds rename-category -id <category-id> -name <new-name>

  Renames a category. Transactions and budgets referencing the old name are
  updated in the same edit.
`
}

func (c *renameCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the category")
	f.StringVar(&c.name, "name", "", "New name of the category")
}

func (c *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.RenameCategory(c.id, c.name)
	})
}

// delCategoryCmd holds the flags for the 'del-category' subcommand.
type delCategoryCmd struct {
	id string
}

func (*delCategoryCmd) Name() string     { return "del-category" }
func (*delCategoryCmd) Synopsis() string { return "delete an unreferenced category" }
func (*delCategoryCmd) Usage() string {
	return `fds del-category -id <category-id>

  Deletes a category and its sub-categories. Rejected while any transaction
  still references the category.
`
}

func (c *delCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the category")
}

func (c *delCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.DeleteCategory(c.id)
	})
}

// addSubCmd holds the flags for the 'add-sub' subcommand.
type addSubCmd struct {
	category string
	name     string
}

func (*addSubCmd) Name() string     { return "add-sub" }
func (*addSubCmd) Synopsis() string { return "add a sub-category under a category" }
func (*addSubCmd) Usage() string {
	return `fds add-sub -cat <category-id> -name <name>

  Adds a sub-category. The name must be unique within its parent; the same
  name may exist under another category.
`
}

func (c *addSubCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "cat", "", "Id of the parent category")
	f.StringVar(&c.name, "name", "", "Name of the sub-category")
}

func (c *addSubCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.AddSubCategory(c.category, findash.NewID(), c.name)
	})
}

// renameSubCmd holds the flags for the 'rename-sub' subcommand.
type renameSubCmd struct {
	category string
	id       string
	name     string
}

func (*renameSubCmd) Name() string     { return "rename-sub" }
func (*renameSubCmd) Synopsis() string { return "rename a sub-category everywhere" }
func (*renameSubCmd) Usage() string {
	return `fds rename-sub -cat <category-id> -id <sub-id> -name <new-name>

  Renames a sub-category and updates referencing transactions in the same
  edit.
`
}

func (c *renameSubCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "cat", "", "Id of the parent category")
	f.StringVar(&c.id, "id", "", "Id of the sub-category")
	f.StringVar(&c.name, "name", "", "New name of the sub-category")
}

func (c *renameSubCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.RenameSubCategory(c.category, c.id, c.name)
	})
}

// delSubCmd holds the flags for the 'del-sub' subcommand.
type delSubCmd struct {
	category string
	id       string
}

func (*delSubCmd) Name() string     { return "del-sub" }
func (*delSubCmd) Synopsis() string { return "delete an unreferenced sub-category" }
func (*delSubCmd) Usage() string {
	return `fds del-sub -cat <category-id> -id <sub-id>

  Deletes a sub-category. Rejected while any transaction still references it.
`
}

func (c *delSubCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "cat", "", "Id of the parent category")
	f.StringVar(&c.id, "id", "", "Id of the sub-category")
}

func (c *delSubCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.DeleteSubCategory(c.category, c.id)
	})
}
