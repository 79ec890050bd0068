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
	Register(&CompleteCmd{})
	Register(&UncompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a todo item as complete" }
func (c *CompleteCmd) Usage() string     { return "todo complete <index>" }
func (c *CompleteCmd) NeedsStores() bool { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(cfg, svc, args, true, out, errOut)
}

// UncompleteCmd implements the uncomplete command.
type UncompleteCmd struct{}

func (c *UncompleteCmd) Name() string      { return "uncomplete" }
func (c *UncompleteCmd) Aliases() []string { return []string{"undone"} }
func (c *UncompleteCmd) Synopsis() string  { return "Mark a todo item as incomplete" }
func (c *UncompleteCmd) Usage() string     { return "todo uncomplete <index>" }
func (c *UncompleteCmd) NeedsStores() bool { return true }

func (c *UncompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UncompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(cfg, svc, args, false, out, errOut)
}

// runMark is the shared implementation for complete and uncomplete.
// The user-supplied index is 1-based; the store takes 0-based.
func runMark(cfg *config.Config, svc service.Service, args []string, complete bool, out, errOut io.Writer) int {
	index, err := ParseIndexArg(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var ok bool
	if complete {
		ok, err = svc.CompleteItem(index - 1)
	} else {
		ok, err = svc.UncompleteItem(index - 1)
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	if !ok {
		fmt.Fprintf(errOut, "Error: Invalid item index %d\n", index)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		state := "complete"
		if !complete {
			state = "incomplete"
		}
		fmt.Fprintf(out, "Marked item %d as %s.\n", index, state)
	}
	return exitcode.Success
}
