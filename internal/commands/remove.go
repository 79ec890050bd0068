package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a todo item" }
func (c *RemoveCmd) Usage() string     { return "todo remove <index>" }
func (c *RemoveCmd) NeedsStores() bool { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	index, err := ParseIndexArg(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	item, err := svc.RemoveItem(index - 1)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	if item == nil {
		fmt.Fprintf(errOut, "Error: Invalid item index %d\n", index)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Removed: %s\n", item)
	}
	return exitcode.Success
}
