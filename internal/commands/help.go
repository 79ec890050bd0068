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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStores() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo add [common flags] <text...>                 Add an item (patterns expanded)
  todo list [common flags] [--filter|-f all|pending|completed]
  todo complete [common flags] <index>              Mark an item complete (1-based)
  todo uncomplete [common flags] <index>            Mark an item incomplete
  todo remove [common flags] <index>                Remove an item
  todo clear [common flags]                         Remove all completed items
  todo pattern add [common flags] <prefix> <text...>
  todo pattern remove [common flags] <prefix>
  todo pattern list [common flags]
  todo pattern find [common flags] <partial>
  todo expand [common flags] <text...>              Print expanded text
  todo doctor [common flags]                        Validate the store files
  todo tui [common flags]                           Interactive item list
  todo watch [common flags]                         Reprint the list on file changes
  todo help
  todo version

Common flags:
  --config <file>        Override config file path
  --todo-file <file>     Override item store path
  --pattern-file <file>  Override pattern store path
  --quiet                Suppress informational output
`
